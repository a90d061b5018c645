// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slide serves markdown slide decks by identifier.

Decks are static study material that accompanies the chapter corpus. They are
looked up by slug (e.g. "memory-management") and returned as raw markdown;
rendering is entirely the client's concern.

Core Responsibility:

  - Lookup: Resolves a deck slug to its markdown text.
  - Caching: Optionally fronts the filesystem with a Redis TTL cache.
*/
package slide

import "context"

// # Slide Deck Data Access

// Repository defines the lookup contract for slide decks.
type Repository interface {

	/*
		Get returns the raw markdown text of a deck.

		Parameters:
		  - context: context.Context
		  - deck: string (Slug identifier, already normalized)

		Returns:
		  - string: Raw markdown text
		  - error: apperr.NotFound if the deck is unknown
	*/
	Get(context context.Context, deck string) (string, error)
}
