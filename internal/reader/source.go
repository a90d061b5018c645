// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"context"

	"github.com/taibuivan/leio/internal/core/chapter"
)

// # Chapter Source Contract

// Page is one batch of chapters returned by a single list request.
type Page struct {
	// Chapters is the ordered batch, at most the requested page size.
	Chapters []chapter.Chapter

	// Total is the chapter count the store reported at fetch time.
	Total int
}

// Source is the authoritative backend a [Session] reads from and mutates
// against. The HTTP implementation in this package talks to the Leio API;
// tests substitute scripted fakes.
//
// Every returned chapter is a fresh copy the session may own outright.
type Source interface {

	/*
		ListPage fetches one page of the corpus.

		Parameters:
		  - context: context.Context
		  - page: int (1-indexed page number)
		  - size: int (Page size)

		Returns:
		  - Page: The ordered batch plus the store's total
		  - error: Transport or availability failures
	*/
	ListPage(context context.Context, page, size int) (Page, error)

	/*
		SetRead sets a chapter's read flag to the desired value.

		Parameters:
		  - context: context.Context
		  - id: int
		  - read: bool

		Returns:
		  - *chapter.Chapter: The authoritative updated record
		  - error: Transport failures, or unknown-ID rejections
	*/
	SetRead(context context.Context, id int, read bool) (*chapter.Chapter, error)

	/*
		AddNote appends a note to a chapter.

		Parameters:
		  - context: context.Context
		  - id: int
		  - text: string (Non-empty, pre-trimmed)

		Returns:
		  - *chapter.Chapter: The authoritative updated record
		  - error: Transport failures, or unknown-ID rejections
	*/
	AddNote(context context.Context, id int, text string) (*chapter.Chapter, error)
}
