// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import "context"

// # Chapter Data Access

// Repository defines the data access contract for the chapter corpus.
//
// Every method that returns a [*Chapter] returns a deep copy; callers own
// the result and may not reach the repository's internal state through it.
type Repository interface {

	/*
		List returns one page of chapters in corpus order.

		Parameters:
		  - context: context.Context
		  - limit: int (Page size)
		  - offset: int (Slice offset, derived from the page number)

		Returns:
		  - []*Chapter: The requested page, at most limit entries
		  - int: Total chapters in the corpus
		  - error: Storage failures
	*/
	List(context context.Context, limit, offset int) ([]*Chapter, int, error)

	/*
		FindByID returns the chapter with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - *Chapter: Hydrated chapter
		  - error: apperr.NotFound if the ID is unknown
	*/
	FindByID(context context.Context, id int) (*Chapter, error)

	/*
		SetRead sets the read flag on a chapter and returns the updated record.

		Parameters:
		  - context: context.Context
		  - id: int
		  - read: bool (Desired flag value)

		Returns:
		  - *Chapter: The authoritative updated record
		  - error: apperr.NotFound if the ID is unknown
	*/
	SetRead(context context.Context, id int, read bool) (*Chapter, error)

	/*
		AppendNote appends a note to a chapter and returns the updated record.

		Notes are append-only: they are never reordered or deleted.

		Parameters:
		  - context: context.Context
		  - id: int
		  - text: string (Non-empty note text)

		Returns:
		  - *Chapter: The authoritative updated record
		  - error: apperr.NotFound if the ID is unknown
	*/
	AppendNote(context context.Context, id int, text string) (*Chapter, error)
}
