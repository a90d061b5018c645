// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import "errors"

// # Session Error Taxonomy
//
// Every error returned by a [Session] intent wraps exactly one of these
// sentinels, so the UI layer can branch with [errors.Is] without parsing
// messages. None of them is fatal: the session stays usable and the same
// logical operation can be retried afterwards.

var (
	// ErrFetchFailed reports a failed page request. The cursor and the
	// accumulated cache are untouched, so LoadMore can simply be retried.
	ErrFetchFailed = errors.New("page fetch failed")

	// ErrMutationFailed reports a failed toggle or note request. Optimistic
	// state has already been reverted where applicable.
	ErrMutationFailed = errors.New("mutation failed")

	// ErrConflictingMutation reports a rejected mutation because another one
	// for the same chapter is still pending. Retry after it resolves.
	ErrConflictingMutation = errors.New("conflicting mutation pending")

	// ErrUnknownChapter reports a mutation against an ID that is not in the
	// accumulated cache. The source is never called in that case.
	ErrUnknownChapter = errors.New("unknown chapter")

	// ErrEmptyNote reports a note rejected before any source call because
	// its text was empty after trimming.
	ErrEmptyNote = errors.New("note text is empty")

	// ErrSessionClosed reports an intent issued after Close. Responses that
	// arrive after Close are discarded with this same error.
	ErrSessionClosed = errors.New("session closed")
)
