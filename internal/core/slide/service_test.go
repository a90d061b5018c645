// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/leio/internal/core/slide"
	"github.com/taibuivan/leio/internal/platform/apperr"
)

const deckText = "# Memory Management\n\n---\n\n## Stacks\n\nFreeing is a register move.\n"

// newTestService writes one deck into a temp directory and wires a service
// over the filesystem repository (no cache).
func newTestService(t *testing.T) *slide.Service {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "memory-management.md"), []byte(deckText), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return slide.NewService(slide.NewFSRepository(dir), logger)
}

/*
TestService_GetDeck verifies lookup and identifier normalization.
*/
func TestService_GetDeck(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	// The exact slug and un-normalized spellings of it resolve identically.
	for _, deck := range []string{"memory-management", "Memory Management", "Mémory-Management"} {
		text, err := service.GetDeck(ctx, deck)
		require.NoError(t, err, deck)
		assert.Equal(t, deckText, text)
	}
}

/*
TestService_GetDeck_NotFound verifies the 404 mapping for unknown decks.
*/
func TestService_GetDeck_NotFound(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	_, err := service.GetDeck(ctx, "no-such-deck")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_GetDeck_InvalidIdentifier verifies hostile identifiers never
reach the filesystem.
*/
func TestService_GetDeck_InvalidIdentifier(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	for _, deck := range []string{"", "   ", "!!!"} {
		_, err := service.GetDeck(ctx, deck)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	}

	// Traversal attempts normalize into plain slugs that simply don't exist.
	_, err := service.GetDeck(ctx, "../../etc/passwd")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
