// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import "github.com/taibuivan/leio/internal/core/chapter"

// # Merge / Dedup

// merge combines a fetched page into the accumulated cache without
// duplicating IDs, preserving first-seen order.
//
// # Idempotence
//
// Merging the same page twice yields the same result as merging it once.
// This is the invariant that makes a retried or shifted page safe: entries
// already present are skipped, and new entries append in the page's own
// order. The result is a fresh slice; accumulated is never mutated.
func merge(accumulated, incoming []chapter.Chapter) []chapter.Chapter {
	seen := make(map[int]struct{}, len(accumulated))
	for _, c := range accumulated {
		seen[c.ID] = struct{}{}
	}

	result := make([]chapter.Chapter, len(accumulated), len(accumulated)+len(incoming))
	copy(result, accumulated)

	for _, c := range incoming {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		result = append(result, c)
	}

	return result
}
