// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taibuivan/leio/internal/platform/apperr"
)

// # Filesystem Repository

// fsRepository implements [Repository] over a directory of .md files.
//
// The deck slug maps directly to a filename: "memory-management" resolves
// to <dir>/memory-management.md. Slugs are validated upstream, so the slug
// grammar (no dots, no separators) is what keeps lookups inside the
// directory.
type fsRepository struct {
	dir string
}

// NewFSRepository constructs a filesystem-backed slide store.
func NewFSRepository(dir string) Repository {
	return &fsRepository{dir: dir}
}

/*
Get reads a deck's markdown from disk.
*/
func (repository *fsRepository) Get(context context.Context, deck string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(repository.dir, deck+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperr.NotFound("Slide deck")
		}
		return "", fmt.Errorf("slide: failed to read deck %q: %w", deck, err)
	}

	return string(raw), nil
}
