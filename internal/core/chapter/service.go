// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"log/slog"

	"github.com/taibuivan/leio/internal/platform/validate"
)

const (
	FieldNoteText = "text"
	FieldRead     = "read"

	// MaxNoteLen bounds a single note so the in-memory corpus cannot be
	// grown without limit by one chatty client.
	MaxNoteLen = 2000
)

// # Service Layer

// Service orchestrates the business logic for chapters.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Chapter Retrieval

/*
ListChapters retrieves one page of the corpus.

Parameters:
  - context: context.Context
  - limit: int (Page size)
  - offset: int

Returns:
  - []*Chapter: The requested page in corpus order
  - int: Total chapter count
  - error: Storage or execution errors
*/
func (service *Service) ListChapters(context context.Context, limit, offset int) ([]*Chapter, int, error) {
	return service.repo.List(context, limit, offset)
}

/*
GetChapter retrieves a single chapter by its ID.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Chapter: The hydrated chapter
  - error: apperr.NotFound if the ID is unknown
*/
func (service *Service) GetChapter(context context.Context, id int) (*Chapter, error) {
	return service.repo.FindByID(context, id)
}

// # Reading Progress

/*
ToggleRead sets a chapter's read flag to the requested value.

Description: The store is authoritative — the returned record is what the
client must reconcile into any local cache, whatever it optimistically
displayed in the meantime.

Parameters:
  - context: context.Context
  - id: int
  - read: bool (Desired flag value)

Returns:
  - *Chapter: The authoritative updated record
  - error: apperr.NotFound if the ID is unknown
*/
func (service *Service) ToggleRead(context context.Context, id int, read bool) (*Chapter, error) {
	updated, err := service.repo.SetRead(context, id, read)
	if err != nil {
		return nil, err
	}

	service.logger.Info("chapter_read_toggled",
		slog.Int("chapter_id", id),
		slog.Bool("read", read),
	)

	return updated, nil
}

/*
AddNote appends a free-text note to a chapter.

Description: Rejects empty or oversized text before touching storage.
Notes are append-only, so the service never deduplicates or rewrites them.

Parameters:
  - context: context.Context
  - id: int
  - text: string

Returns:
  - *Chapter: The authoritative updated record, note appended
  - error: Validation errors, or apperr.NotFound if the ID is unknown
*/
func (service *Service) AddNote(context context.Context, id int, text string) (*Chapter, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldNoteText, text)
	validator.MaxLen(FieldNoteText, text, MaxNoteLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Storage persistence
	updated, err := service.repo.AppendNote(context, id, text)
	if err != nil {
		return nil, err
	}

	service.logger.Info("chapter_note_added",
		slog.Int("chapter_id", id),
		slog.Int("note_count", len(updated.Notes)),
	)

	return updated, nil
}
