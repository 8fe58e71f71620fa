// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// ingest.go - Knowledge ingestion command handler.
//
// Handles "ramo ingest" which sends raw company text to the backend for Q&A
// extraction and vector indexing.
//
// Examples:
//   ramo ingest notes.txt
//   cat handbook.md | ramo ingest
//   ramo ingest --max-pairs 5 faq.txt
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ramolabs/ramo-tui/internal/api"
)

// MaxIngestSize caps the text sent in one ingest call (200KB).
const MaxIngestSize = 200 * 1024

// HandleIngest reads text from a file or stdin and submits it for ingestion.
func HandleIngest(args Args) {
	var data []byte
	var err error

	if args.File != "" {
		data, err = os.ReadFile(args.File)
		if err != nil {
			fail(err)
		}
	} else {
		data, err = io.ReadAll(io.LimitReader(os.Stdin, MaxIngestSize+1))
		if err != nil {
			fail(err)
		}
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		fail(fmt.Errorf("nothing to ingest; pass a file or pipe text on stdin"))
	}
	if len(text) > MaxIngestSize {
		fail(fmt.Errorf("input exceeds %d bytes", MaxIngestSize))
	}

	client, cfg := newClient(args)
	if !api.NewSessionManager(client).IsLoggedIn() {
		fail(fmt.Errorf("not logged in; run 'ramo login' first"))
	}

	maxPairs := cfg.Chat.MaxIngestPairs
	if args.MaxPairs > 0 {
		maxPairs = args.MaxPairs
	}

	// Extraction runs an LLM pass server-side; no client timeout.
	result, err := client.Ingest(context.Background(), text, maxPairs)
	if err != nil {
		fail(err)
	}

	if !result.Success {
		fmt.Println(errorStyle.Render("Ingestion failed: " + result.Error))
		if result.RawPreview != "" {
			fmt.Println(metaStyle.Render("Raw model output:"))
			fmt.Println(result.RawPreview)
		}
		os.Exit(1)
	}

	fmt.Println(successStyle.Render(
		fmt.Sprintf("Ingested %d Q&A pairs for %s.", result.CreatedCount, result.CompanyName)))
	if !args.Quiet {
		for _, qa := range result.Preview {
			fmt.Printf("  Q: %s\n  A: %s\n", qa.Question, qa.Answer)
		}
	}
}
