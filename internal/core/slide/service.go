// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide

import (
	"context"
	"log/slog"

	"github.com/taibuivan/leio/internal/platform/validate"
	"github.com/taibuivan/leio/pkg/slug"
)

const FieldDeck = "deck"

// # Service Layer

// Service orchestrates slide deck lookups.
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

/*
GetDeck resolves a deck identifier to its raw markdown text.

Description: The requested identifier is slug-normalized first (so
"Memory Management" and "memory-management" resolve identically), then
validated against the slug grammar before any filesystem access.

Parameters:
  - context: context.Context
  - deck: string (Requested deck identifier)

Returns:
  - string: Raw markdown text
  - error: Validation errors, or apperr.NotFound if the deck is unknown
*/
func (service *Service) GetDeck(context context.Context, deck string) (string, error) {

	// Identifier normalization
	normalized := slug.From(deck)

	validator := &validate.Validator{}
	validator.Required(FieldDeck, normalized)
	validator.Slug(FieldDeck, normalized)

	if err := validator.Err(); err != nil {
		return "", err
	}

	text, err := service.repo.Get(context, normalized)
	if err != nil {
		return "", err
	}

	service.logger.Debug("slide_deck_served",
		slog.String("deck", normalized),
		slog.Int("bytes", len(text)),
	)

	return text, nil
}
