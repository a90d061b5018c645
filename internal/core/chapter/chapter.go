// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package chapter defines the core domain entities for the Leio reading tracker.

It manages the book's chapter corpus: immutable study material (summaries,
cliffnotes) plus the two mutable reading fields (the read flag and the
append-only note list).

Core Responsibility:

  - Corpus: Holds the ordered chapter list with stable integer IDs.
  - Progress: Tracks the per-chapter read flag.
  - Notes: Collects free-text study notes, append-only.

This package acts as the source of truth for all chapter-related data models.
*/
package chapter

// # Domain Entities

// Chapter is a unit of book content with reading progress attached.
//
// ID is assigned once by the repository and is stable for the lifetime of
// the corpus. Title, Summary, Details, and Cliffnotes are immutable after
// creation; Read and Notes change only through repository operations.
type Chapter struct {
	// ID is the unique positive integer identifier.
	ID int `json:"id"`

	// Title is the chapter heading.
	Title string `json:"title"`

	// Summary is the one-paragraph teaser shown in list views.
	Summary string `json:"summary"`

	// Details is the long-form chapter description.
	Details string `json:"details"`

	// Cliffnotes is the ordered list of key takeaways.
	Cliffnotes []string `json:"cliffnotes"`

	// Read reports whether the reader has completed this chapter.
	Read bool `json:"read"`

	// Notes is the append-only list of free-text reader notes.
	Notes []string `json:"notes"`
}

// Clone returns a deep copy of the chapter.
//
// # Aliasing
//
// The repository and the reader session both hand out clones so that no
// caller can mutate shared slices behind the owner's back.
func (c *Chapter) Clone() *Chapter {
	clone := *c
	clone.Cliffnotes = append([]string(nil), c.Cliffnotes...)
	clone.Notes = append([]string(nil), c.Notes...)
	return &clone
}
