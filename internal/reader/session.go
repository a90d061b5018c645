// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reader implements the client-side reading session: the pagination,
caching, and optimistic-state layer between a UI and the chapter store.

It maintains an accumulated view of every chapter fetched so far, a
monotonically advancing page cursor, and a derived read-progress counter,
while guaranteeing:

  - Exactly one page request in flight at a time; redundant triggers are
    observable no-ops.
  - No duplicate chapter IDs in the cache, whatever pages the store returns.
  - The read counter always equals a full recount of the cache — it is never
    adjusted incrementally, which is the bug class this layer exists to kill.
  - At most one pending mutation per chapter; a second one is rejected, not
    interleaved.
  - Responses arriving after Close are discarded without touching state.

The UI layer only reads [Snapshot] values and issues intent calls; it never
mutates session state directly.
*/
package reader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/leio/internal/core/chapter"
	"github.com/taibuivan/leio/pkg/slice"
)

// # Session State

// Session owns the client-side chapter cache for one reading session.
//
// # Concurrency
//
// All state lives behind one mutex. Network calls are issued outside the
// lock; the inFlight flag and the pending set are what uphold the ordering
// rules while a call is suspended.
type Session struct {
	source   Source
	pageSize int
	logger   *slog.Logger

	mu          sync.Mutex
	accumulated []chapter.Chapter
	nextPage    int
	total       int
	hasMore     bool
	inFlight    bool
	readCount   int
	pending     map[int]struct{}
	closed      bool
}

// NewSession constructs an empty session over the given source.
//
// The cursor starts at page 1 and hasMore starts true, so the first
// LoadMore always issues a fetch.
func NewSession(source Source, pageSize int, logger *slog.Logger) *Session {
	return &Session{
		source:   source,
		pageSize: pageSize,
		logger:   logger,
		nextPage: 1,
		hasMore:  true,
		pending:  make(map[int]struct{}),
	}
}

// Snapshot is the read-only view the UI renders from.
type Snapshot struct {
	// Chapters is a deep copy of the accumulated cache, first-seen order.
	Chapters []chapter.Chapter

	// ReadCount is the number of cached chapters with Read == true.
	ReadCount int

	// Total is the corpus size last reported by the store (0 before the
	// first successful fetch).
	Total int

	// NextPage is the page the next fetch will request.
	NextPage int

	// HasMore reports whether another fetch could yield new chapters.
	HasMore bool

	// InFlight reports whether a page request is currently outstanding.
	InFlight bool
}

// Snapshot returns a copy of the current session state.
func (session *Session) Snapshot() Snapshot {
	session.mu.Lock()
	defer session.mu.Unlock()

	return Snapshot{
		Chapters:  slice.Map(session.accumulated, func(c chapter.Chapter) chapter.Chapter { return *c.Clone() }),
		ReadCount: session.readCount,
		Total:     session.total,
		NextPage:  session.nextPage,
		HasMore:   session.hasMore,
		InFlight:  session.inFlight,
	}
}

// # Pagination / Fetch Gate

/*
LoadMore fetches the next page if one is warranted.

Description: This is the single entry point for every "need more data"
trigger — initial mount and scroll alike. It is a guaranteed no-op while a
fetch is already in flight or when the corpus is exhausted, so callers may
fire it as often as they like.

Returns:
  - bool: true if a page was fetched and merged; false if the call was a
    no-op (already in flight, exhausted) or failed
  - error: ErrFetchFailed on source failure (cursor and cache untouched, so
    a retry is safe); ErrSessionClosed after Close
*/
func (session *Session) LoadMore(context context.Context) (bool, error) {

	// Gate check and in-flight claim, atomically.
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return false, fmt.Errorf("reader: load more: %w", ErrSessionClosed)
	}
	if session.inFlight || !session.hasMore {
		session.mu.Unlock()
		return false, nil
	}
	session.inFlight = true
	requestPage := session.nextPage
	session.mu.Unlock()

	// Suspension point: the network call runs outside the lock.
	page, err := session.source.ListPage(context, requestPage, session.pageSize)

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.closed {
		// The session was torn down while we were waiting. Discard the
		// response entirely; the state no longer belongs to anyone.
		return false, fmt.Errorf("reader: load more: %w", ErrSessionClosed)
	}

	session.inFlight = false

	if err != nil {
		session.logger.Warn("page_fetch_failed",
			slog.Int("page", requestPage),
			slog.Any("error", err),
		)
		return false, fmt.Errorf("reader: page %d: %w: %w", requestPage, ErrFetchFailed, err)
	}

	before := len(session.accumulated)
	session.accumulated = merge(session.accumulated, page.Chapters)
	added := len(session.accumulated) - before

	session.total = page.Total
	session.nextPage++

	// A page that contributed nothing new means the store has no more for
	// us regardless of what the nominal total says.
	if added == 0 {
		session.hasMore = false
	} else {
		session.hasMore = len(session.accumulated) < page.Total
	}

	session.recount()

	session.logger.Debug("page_merged",
		slog.Int("page", requestPage),
		slog.Int("added", added),
		slog.Int("cached", len(session.accumulated)),
		slog.Bool("has_more", session.hasMore),
	)

	return true, nil
}

// # Mutation Reconciliation

/*
ToggleRead flips a chapter's read flag, optimistically first.

Description: The flip is applied locally before the source call so the UI
gets immediate feedback, then the source's returned record overwrites the
local one (authoritative, not a field merge — it corrects any optimistic
mismatch). On failure the flip is reverted.

Returns:
  - error: ErrUnknownChapter if id is not cached (no source call);
    ErrConflictingMutation if a mutation for id is already pending (no
    source call); ErrMutationFailed on source failure (state reverted);
    ErrSessionClosed after Close
*/
func (session *Session) ToggleRead(context context.Context, id int) error {

	// Claim the chapter and apply the optimistic flip, atomically.
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return fmt.Errorf("reader: toggle read: %w", ErrSessionClosed)
	}

	index := session.indexOf(id)
	if index < 0 {
		session.mu.Unlock()
		return fmt.Errorf("reader: toggle read: chapter %d: %w", id, ErrUnknownChapter)
	}

	if _, busy := session.pending[id]; busy {
		session.mu.Unlock()
		return fmt.Errorf("reader: toggle read: chapter %d: %w", id, ErrConflictingMutation)
	}

	desired := !session.accumulated[index].Read
	session.pending[id] = struct{}{}
	session.accumulated[index].Read = desired
	session.recount()
	session.mu.Unlock()

	// Suspension point.
	updated, err := session.source.SetRead(context, id, desired)

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.closed {
		return fmt.Errorf("reader: toggle read: %w", ErrSessionClosed)
	}

	delete(session.pending, id)

	// The cache only grows, so the record is still where we left it.
	index = session.indexOf(id)

	if err != nil {
		if index >= 0 {
			session.accumulated[index].Read = !desired
		}
		session.recount()

		session.logger.Warn("toggle_read_failed",
			slog.Int("chapter_id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("reader: toggle read: chapter %d: %w: %w", id, ErrMutationFailed, err)
	}

	if index >= 0 {
		session.accumulated[index] = *updated.Clone()
	}
	session.recount()

	return nil
}

/*
AddNote appends a note to a chapter through the source.

Description: There is no optimistic local append — notes are append-only,
and a duplicate append on retry would corrupt the list, so only the
source's confirmed record is trusted. Text empty after trimming is
rejected before any source call.

Returns:
  - error: ErrEmptyNote for blank text (no source call); ErrUnknownChapter
    if id is not cached (no source call); ErrConflictingMutation if a
    mutation for id is already pending (no source call); ErrMutationFailed
    on source failure; ErrSessionClosed after Close
*/
func (session *Session) AddNote(context context.Context, id int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("reader: add note: chapter %d: %w", id, ErrEmptyNote)
	}

	// Claim the chapter, atomically. No local state changes yet.
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return fmt.Errorf("reader: add note: %w", ErrSessionClosed)
	}

	if session.indexOf(id) < 0 {
		session.mu.Unlock()
		return fmt.Errorf("reader: add note: chapter %d: %w", id, ErrUnknownChapter)
	}

	if _, busy := session.pending[id]; busy {
		session.mu.Unlock()
		return fmt.Errorf("reader: add note: chapter %d: %w", id, ErrConflictingMutation)
	}

	session.pending[id] = struct{}{}
	session.mu.Unlock()

	// Suspension point.
	updated, err := session.source.AddNote(context, id, text)

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.closed {
		return fmt.Errorf("reader: add note: %w", ErrSessionClosed)
	}

	delete(session.pending, id)

	if err != nil {
		session.logger.Warn("add_note_failed",
			slog.Int("chapter_id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("reader: add note: chapter %d: %w: %w", id, ErrMutationFailed, err)
	}

	if index := session.indexOf(id); index >= 0 {
		session.accumulated[index] = *updated.Clone()
	}
	session.recount()

	return nil
}

// # Lifecycle

// Close tears the session down.
//
// Responses from calls still suspended at this point are discarded without
// being applied — the session's state is frozen as of Close.
func (session *Session) Close() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.closed = true
}

// # Internal Helpers

// indexOf finds a cached chapter by ID. Callers must hold the mutex.
func (session *Session) indexOf(id int) int {
	for i := range session.accumulated {
		if session.accumulated[i].ID == id {
			return i
		}
	}
	return -1
}

// recount recomputes readCount from the full cache. Callers must hold the
// mutex.
//
// Never adjust readCount incrementally: a ±1 computed from a stale snapshot
// is exactly the drift this full recount exists to make impossible.
func (session *Session) recount() {
	session.readCount = slice.CountFunc(session.accumulated, func(c chapter.Chapter) bool {
		return c.Read
	})
}
