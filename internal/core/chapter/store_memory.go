// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// The in-memory implementation of the chapter corpus.
//
// The corpus is seeded at construction and lives for the lifetime of the
// process. Restarting the server resets all reading progress; the data
// layer stays a plain guarded slice on purpose.

package chapter

import (
	"context"
	"sync"

	"github.com/taibuivan/leio/internal/platform/apperr"
)

// # In-Memory Repository

// memoryRepository implements [Repository] over a mutex-guarded slice.
type memoryRepository struct {
	mu       sync.RWMutex
	chapters []*Chapter
}

// NewMemoryRepository constructs an in-memory chapter store.
//
// IDs are assigned sequentially from 1 in the order chapters are given,
// overriding any IDs already set on the input.
func NewMemoryRepository(chapters []*Chapter) Repository {
	owned := make([]*Chapter, len(chapters))
	for i, c := range chapters {
		clone := c.Clone()
		clone.ID = i + 1
		owned[i] = clone
	}
	return &memoryRepository{chapters: owned}
}

// # Repository Implementation

/*
List returns one page of chapters in corpus order.

Description: Slices the corpus by limit/offset. An offset past the end of
the corpus yields an empty page, not an error, so clients can probe freely.
*/
func (repository *memoryRepository) List(context context.Context, limit, offset int) ([]*Chapter, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	total := len(repository.chapters)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}

	page := make([]*Chapter, 0, end-offset)
	for _, c := range repository.chapters[offset:end] {
		page = append(page, c.Clone())
	}

	return page, total, nil
}

/*
FindByID returns a copy of the chapter with the given ID.
*/
func (repository *memoryRepository) FindByID(context context.Context, id int) (*Chapter, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	c := repository.lookup(id)
	if c == nil {
		return nil, apperr.NotFound("Chapter")
	}

	return c.Clone(), nil
}

/*
SetRead sets the read flag and returns the updated record.
*/
func (repository *memoryRepository) SetRead(context context.Context, id int, read bool) (*Chapter, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	c := repository.lookup(id)
	if c == nil {
		return nil, apperr.NotFound("Chapter")
	}

	c.Read = read

	return c.Clone(), nil
}

/*
AppendNote appends a note and returns the updated record.
*/
func (repository *memoryRepository) AppendNote(context context.Context, id int, text string) (*Chapter, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	c := repository.lookup(id)
	if c == nil {
		return nil, apperr.NotFound("Chapter")
	}

	c.Notes = append(c.Notes, text)

	return c.Clone(), nil
}

// lookup finds a chapter by ID. Callers must hold the mutex.
func (repository *memoryRepository) lookup(id int) *Chapter {
	for _, c := range repository.chapters {
		if c.ID == id {
			return c
		}
	}
	return nil
}
