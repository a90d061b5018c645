// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/leio/internal/core/chapter"
	"github.com/taibuivan/leio/internal/reader"
)

// # Scripted Fake Source

// fakeSource serves the seed corpus from an in-memory repository and lets
// tests inject failures, count calls, and block individual operations.
type fakeSource struct {
	repo chapter.Repository

	mu           sync.Mutex
	listCalls    int
	setReadCalls int
	addNoteCalls int

	failList    bool
	failSetRead bool
	failAddNote bool

	// When non-nil, the matching operation signals listEntered/setReadEntered
	// on entry and then blocks until the gate channel is closed.
	listGate       chan struct{}
	listEntered    chan struct{}
	setReadGate    chan struct{}
	setReadEntered chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{repo: chapter.NewMemoryRepository(chapter.SeedCorpus())}
}

func (f *fakeSource) ListPage(ctx context.Context, page, size int) (reader.Page, error) {
	f.mu.Lock()
	f.listCalls++
	fail, gate, entered := f.failList, f.listGate, f.listEntered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if fail {
		return reader.Page{}, errors.New("store unavailable")
	}

	records, total, err := f.repo.List(ctx, size, (page-1)*size)
	if err != nil {
		return reader.Page{}, err
	}

	batch := make([]chapter.Chapter, len(records))
	for i, record := range records {
		batch[i] = *record
	}
	return reader.Page{Chapters: batch, Total: total}, nil
}

func (f *fakeSource) SetRead(ctx context.Context, id int, read bool) (*chapter.Chapter, error) {
	f.mu.Lock()
	f.setReadCalls++
	fail, gate, entered := f.failSetRead, f.setReadGate, f.setReadEntered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if fail {
		return nil, errors.New("store unavailable")
	}

	return f.repo.SetRead(ctx, id, read)
}

func (f *fakeSource) AddNote(ctx context.Context, id int, text string) (*chapter.Chapter, error) {
	f.mu.Lock()
	f.addNoteCalls++
	fail := f.failAddNote
	f.mu.Unlock()

	if fail {
		return nil, errors.New("store unavailable")
	}

	return f.repo.AppendNote(ctx, id, text)
}

func (f *fakeSource) calls() (list, setRead, addNote int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.setReadCalls, f.addNoteCalls
}

func newTestSession(source reader.Source) *reader.Session {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return reader.NewSession(source, 5, logger)
}

// # Pagination

/*
TestSession_LoadMore_EndToEnd walks the full pagination scenario: 12
chapters, page size 5, three fetches, then guaranteed no-ops.
*/
func TestSession_LoadMore_EndToEnd(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	// Page 1
	fetched, err := session.LoadMore(ctx)
	require.NoError(t, err)
	assert.True(t, fetched)

	snapshot := session.Snapshot()
	assert.Len(t, snapshot.Chapters, 5)
	assert.Equal(t, 12, snapshot.Total)
	assert.Equal(t, 2, snapshot.NextPage)
	assert.True(t, snapshot.HasMore)

	// Page 2
	fetched, err = session.LoadMore(ctx)
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Len(t, session.Snapshot().Chapters, 10)

	// Page 3 (partial) exhausts the corpus
	fetched, err = session.LoadMore(ctx)
	require.NoError(t, err)
	assert.True(t, fetched)

	snapshot = session.Snapshot()
	assert.Len(t, snapshot.Chapters, 12)
	assert.False(t, snapshot.HasMore)

	// Further triggers are no-ops with zero source calls
	for range 3 {
		fetched, err = session.LoadMore(ctx)
		require.NoError(t, err)
		assert.False(t, fetched)
	}

	listCalls, _, _ := source.calls()
	assert.Equal(t, 3, listCalls)
}

/*
TestSession_LoadMore_GateExclusivity fires the gate while a fetch is
suspended and requires exactly one outstanding source call.
*/
func TestSession_LoadMore_GateExclusivity(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	source.listGate = make(chan struct{})
	source.listEntered = make(chan struct{}, 1)
	session := newTestSession(source)

	done := make(chan error, 1)
	go func() {
		_, err := session.LoadMore(ctx)
		done <- err
	}()

	// Wait until the first fetch is suspended inside the source.
	<-source.listEntered

	// Redundant triggers while in flight are guaranteed no-ops.
	for range 5 {
		fetched, err := session.LoadMore(ctx)
		require.NoError(t, err)
		assert.False(t, fetched)
	}

	listCalls, _, _ := source.calls()
	assert.Equal(t, 1, listCalls)
	assert.True(t, session.Snapshot().InFlight)

	// Release the suspended fetch and let it complete.
	close(source.listGate)
	require.NoError(t, <-done)

	snapshot := session.Snapshot()
	assert.False(t, snapshot.InFlight)
	assert.Len(t, snapshot.Chapters, 5)
}

/*
TestSession_LoadMore_FailureLeavesStateRetryable verifies a failed fetch
changes nothing except surfacing ErrFetchFailed.
*/
func TestSession_LoadMore_FailureLeavesStateRetryable(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	// Land page 1, then break the store.
	_, err := session.LoadMore(ctx)
	require.NoError(t, err)
	source.failList = true

	before := session.Snapshot()

	fetched, err := session.LoadMore(ctx)
	assert.False(t, fetched)
	require.Error(t, err)
	assert.ErrorIs(t, err, reader.ErrFetchFailed)

	after := session.Snapshot()
	assert.Equal(t, before.NextPage, after.NextPage)
	assert.Equal(t, len(before.Chapters), len(after.Chapters))
	assert.False(t, after.InFlight)

	// Heal the store; the retry resumes exactly where it left off.
	source.failList = false
	fetched, err = session.LoadMore(ctx)
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Len(t, session.Snapshot().Chapters, 10)
}

/*
TestSession_NoDuplicateIDs feeds overlapping pages via a tiny page size and
checks the cache never holds an ID twice.
*/
func TestSession_NoDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	for {
		fetched, err := session.LoadMore(ctx)
		require.NoError(t, err)
		if !fetched {
			break
		}
	}

	seen := make(map[int]bool)
	for _, c := range session.Snapshot().Chapters {
		assert.False(t, seen[c.ID], "duplicate chapter id %d", c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, seen, 12)
}

// # Mutations

/*
TestSession_ToggleRead_Optimistic verifies flip, authoritative overwrite,
and counter maintenance on the happy path.
*/
func TestSession_ToggleRead_Optimistic(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	_, err := session.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Snapshot().ReadCount)

	require.NoError(t, session.ToggleRead(ctx, 3))

	snapshot := session.Snapshot()
	assert.Equal(t, 1, snapshot.ReadCount)
	assert.True(t, snapshot.Chapters[2].Read)

	// Toggling back clears the flag again.
	require.NoError(t, session.ToggleRead(ctx, 3))
	assert.Equal(t, 0, session.Snapshot().ReadCount)
}

/*
TestSession_ToggleRead_RevertOnFailure: chapter 3 starts unread, the store
call fails, and the flag must end unread with ErrMutationFailed surfaced.
*/
func TestSession_ToggleRead_RevertOnFailure(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	_, err := session.LoadMore(ctx)
	require.NoError(t, err)

	source.failSetRead = true

	err = session.ToggleRead(ctx, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, reader.ErrMutationFailed)

	snapshot := session.Snapshot()
	assert.False(t, snapshot.Chapters[2].Read)
	assert.Equal(t, 0, snapshot.ReadCount)

	// The session stays usable: the same toggle succeeds once the store heals.
	source.failSetRead = false
	require.NoError(t, session.ToggleRead(ctx, 3))
	assert.Equal(t, 1, session.Snapshot().ReadCount)
}

/*
TestSession_ToggleRead_UnknownChapter verifies the source is never called
for an ID that is not in the cache.
*/
func TestSession_ToggleRead_UnknownChapter(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	_, err := session.LoadMore(ctx)
	require.NoError(t, err)

	// Chapter 11 exists in the store but has not been fetched yet.
	err = session.ToggleRead(ctx, 11)
	assert.ErrorIs(t, err, reader.ErrUnknownChapter)

	err = session.ToggleRead(ctx, 999)
	assert.ErrorIs(t, err, reader.ErrUnknownChapter)

	_, setReadCalls, _ := source.calls()
	assert.Equal(t, 0, setReadCalls)
}

/*
TestSession_ToggleRead_ConflictRejected issues a second toggle for the same
chapter while the first is suspended; it must be rejected without a source
call and without a state transition.
*/
func TestSession_ToggleRead_ConflictRejected(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	source.setReadGate = make(chan struct{})
	source.setReadEntered = make(chan struct{}, 1)
	session := newTestSession(source)

	_, err := session.LoadMore(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- session.ToggleRead(ctx, 4) }()

	<-source.setReadEntered

	// Second toggle on the same chapter: rejected.
	err = session.ToggleRead(ctx, 4)
	assert.ErrorIs(t, err, reader.ErrConflictingMutation)

	// The claim covers both mutation kinds: a note on the same chapter is
	// rejected too.
	err = session.AddNote(ctx, 4, "blocked too")
	assert.ErrorIs(t, err, reader.ErrConflictingMutation)

	close(source.setReadGate)
	require.NoError(t, <-done)

	_, setReadCalls, _ := source.calls()
	assert.Equal(t, 1, setReadCalls)

	// After resolution the chapter accepts mutations again.
	require.NoError(t, session.ToggleRead(ctx, 4))
}

/*
TestSession_AddNote_AuthoritativeOnly verifies no optimistic append: the
note appears exactly once, and only after the store confirms.
*/
func TestSession_AddNote_AuthoritativeOnly(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	_, err := session.LoadMore(ctx)
	require.NoError(t, err)

	require.NoError(t, session.AddNote(ctx, 2, "  allocators lie productively  "))

	snapshot := session.Snapshot()
	assert.Equal(t, []string{"allocators lie productively"}, snapshot.Chapters[1].Notes)
}

/*
TestSession_AddNote_EmptyRejected: empty and whitespace-only notes produce
zero source calls and leave the note list unchanged.
*/
func TestSession_AddNote_EmptyRejected(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	_, err := session.LoadMore(ctx)
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\n\t"} {
		err = session.AddNote(ctx, 5, text)
		assert.ErrorIs(t, err, reader.ErrEmptyNote)
	}

	_, _, addNoteCalls := source.calls()
	assert.Equal(t, 0, addNoteCalls)
	assert.Empty(t, session.Snapshot().Chapters[4].Notes)
}

/*
TestSession_AddNote_FailureLeavesNotesUntouched verifies a failed note call
surfaces ErrMutationFailed with nothing to revert.
*/
func TestSession_AddNote_FailureLeavesNotesUntouched(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	session := newTestSession(source)

	_, err := session.LoadMore(ctx)
	require.NoError(t, err)

	source.failAddNote = true

	err = session.AddNote(ctx, 1, "lost to the void")
	assert.ErrorIs(t, err, reader.ErrMutationFailed)
	assert.Empty(t, session.Snapshot().Chapters[0].Notes)
}

// # Lifecycle

/*
TestSession_Close_DiscardsLateResponse closes the session while a fetch is
suspended; the response must not be applied.
*/
func TestSession_Close_DiscardsLateResponse(t *testing.T) {
	ctx := context.Background()
	source := newFakeSource()
	source.listGate = make(chan struct{})
	source.listEntered = make(chan struct{}, 1)
	session := newTestSession(source)

	done := make(chan error, 1)
	go func() {
		_, err := session.LoadMore(ctx)
		done <- err
	}()

	<-source.listEntered
	session.Close()
	close(source.listGate)

	err := <-done
	assert.ErrorIs(t, err, reader.ErrSessionClosed)

	// The fetched page was discarded, not applied.
	assert.Empty(t, session.Snapshot().Chapters)

	// Intents after Close fail fast.
	_, err = session.LoadMore(ctx)
	assert.ErrorIs(t, err, reader.ErrSessionClosed)
	assert.ErrorIs(t, session.ToggleRead(ctx, 1), reader.ErrSessionClosed)
}

// # Counter Consistency

/*
TestSession_ReadCount_RandomOperations drives a random sequence of loads,
toggles, and notes (with intermittent store failures) and checks after every
step that ReadCount equals a full recount of the snapshot.
*/
func TestSession_ReadCount_RandomOperations(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	source := newFakeSource()
	session := newTestSession(source)

	// Seed the cache so mutations have something to hit.
	_, err := session.LoadMore(ctx)
	require.NoError(t, err)

	for step := 0; step < 500; step++ {
		// Roughly one in five source calls fails.
		source.failSetRead = rng.Intn(5) == 0
		source.failAddNote = rng.Intn(5) == 0

		switch rng.Intn(4) {
		case 0:
			_, _ = session.LoadMore(ctx)
		case 1:
			_ = session.ToggleRead(ctx, 1+rng.Intn(14))
		case 2:
			_ = session.AddNote(ctx, 1+rng.Intn(14), "note")
		case 3:
			_ = session.AddNote(ctx, 1+rng.Intn(14), "  ")
		}

		snapshot := session.Snapshot()

		want := 0
		seen := make(map[int]bool)
		for _, c := range snapshot.Chapters {
			require.False(t, seen[c.ID], "step %d: duplicate id %d", step, c.ID)
			seen[c.ID] = true
			if c.Read {
				want++
			}
		}

		require.Equal(t, want, snapshot.ReadCount, "step %d: counter drifted", step)
	}
}
