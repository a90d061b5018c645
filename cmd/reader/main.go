// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command reader is an interactive terminal client for the Leio API.
//
// It drives a [reader.Session] over the HTTP source: chapters accumulate as
// pages are loaded, read flags toggle optimistically, and notes append once
// the server confirms them.
//
// # Commands
//
//	more              load the next page of chapters
//	list              print the accumulated chapters
//	read <id>         toggle the read flag on a chapter
//	note <id> <text>  append a note to a chapter
//	slide <deck>      print a slide deck's markdown
//	quit              close the session and exit
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/taibuivan/leio/internal/platform/config"
	"github.com/taibuivan/leio/internal/reader"
)

func main() {
	// Environment supplies the defaults (READER_TIMEOUT, PAGE_SIZE);
	// flags override per invocation.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("addr", "http://localhost:8080", "base URL of the Leio API")
	timeout := flag.Duration("timeout", cfg.ReaderTimeout, "per-request timeout")
	pageSize := flag.Int("page-size", cfg.PageSize, "chapters fetched per page")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	source := reader.NewHTTPSource(*addr, *timeout)
	session := reader.NewSession(source, *pageSize, logger)
	defer session.Close()

	ctx := context.Background()

	fmt.Printf("leio reader — connected to %s\n", *addr)
	fmt.Println("commands: more, list, read <id>, note <id> <text>, slide <deck>, quit")

	// Load the first page up front so "list" has something to show.
	if _, err := session.LoadMore(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "initial load failed: %v\n", err)
	} else {
		printChapters(session.Snapshot())
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		command, argument, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch command {
		case "":
			continue

		case "more":
			fetched, err := session.LoadMore(ctx)
			if err != nil {
				printError(err)
				continue
			}
			if !fetched {
				fmt.Println("nothing more to load")
				continue
			}
			printChapters(session.Snapshot())

		case "list":
			printChapters(session.Snapshot())

		case "read":
			id, err := strconv.Atoi(strings.TrimSpace(argument))
			if err != nil {
				fmt.Println("usage: read <id>")
				continue
			}
			if err := session.ToggleRead(ctx, id); err != nil {
				printError(err)
				continue
			}
			printChapters(session.Snapshot())

		case "note":
			rawID, text, _ := strings.Cut(strings.TrimSpace(argument), " ")
			id, err := strconv.Atoi(rawID)
			if err != nil {
				fmt.Println("usage: note <id> <text>")
				continue
			}
			if err := session.AddNote(ctx, id, text); err != nil {
				printError(err)
				continue
			}
			fmt.Println("note saved")

		case "slide":
			deck := strings.TrimSpace(argument)
			if deck == "" {
				fmt.Println("usage: slide <deck>")
				continue
			}
			text, err := source.GetSlides(ctx, deck)
			if err != nil {
				printError(err)
				continue
			}
			fmt.Println(text)

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q\n", command)
		}
	}
}

// printChapters renders the session cache with progress and note counts.
func printChapters(snapshot reader.Snapshot) {
	for _, chapter := range snapshot.Chapters {
		marker := " "
		if chapter.Read {
			marker = "x"
		}

		notes := ""
		if len(chapter.Notes) > 0 {
			notes = fmt.Sprintf("  (%d notes)", len(chapter.Notes))
		}

		fmt.Printf("  [%s] %2d. %s%s\n", marker, chapter.ID, chapter.Title, notes)
	}

	fmt.Printf("  %d/%d read, %d of %d chapters loaded", snapshot.ReadCount, len(snapshot.Chapters), len(snapshot.Chapters), snapshot.Total)
	if snapshot.HasMore {
		fmt.Print(" — type 'more' for the next page")
	}
	fmt.Println()
}

// printError translates the session's failure taxonomy into terminal text.
func printError(err error) {
	switch {
	case errors.Is(err, reader.ErrUnknownChapter):
		fmt.Println("no such chapter in the loaded list")
	case errors.Is(err, reader.ErrConflictingMutation):
		fmt.Println("that chapter has a change in flight; try again in a moment")
	case errors.Is(err, reader.ErrEmptyNote):
		fmt.Println("notes cannot be empty")
	case errors.Is(err, reader.ErrFetchFailed), errors.Is(err, reader.ErrMutationFailed):
		fmt.Printf("server unavailable: %v\n", err)
	default:
		fmt.Printf("error: %v\n", err)
	}
}
