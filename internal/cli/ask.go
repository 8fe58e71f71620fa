// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler.
//
// Handles "ramo ask" which sends one question to the backend and renders the
// answer as markdown on stdout.
//
// Examples:
//   ramo ask "What does your company do?"
//   ramo ask --mode standard "Opening hours?"
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer is the global glamour renderer for markdown output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n") + "\n"
}

// HandleAsk sends a single question and prints the reply.
func HandleAsk(args Args) {
	if strings.TrimSpace(args.Query) == "" {
		fail(fmt.Errorf("usage: ramo ask \"question\""))
	}

	client, cfg := newClient(args)
	apiKey := client.Credentials().APIKey()
	if apiKey == "" {
		fail(fmt.Errorf("no API key stored; run 'ramo apikey' after logging in"))
	}

	mode := cfg.Chat.DefaultMode
	if args.Mode != "" {
		mode = args.Mode
	}

	// No timeout: answer generation can be slow, ctrl+c is the escape hatch.
	ctx := context.Background()

	if strings.EqualFold(mode, "smart") {
		resp, err := client.ChatSmart(ctx, apiKey, args.Query)
		if err != nil {
			fail(err)
		}
		fmt.Print(renderMarkdown(resp.Response))
		if !args.Quiet {
			if resp.RelevantStoresFound != nil {
				fmt.Fprintln(os.Stderr, metaStyle.Render(
					fmt.Sprintf("Relevant stores: %d", *resp.RelevantStoresFound)))
			}
			if resp.Cached {
				fmt.Fprintln(os.Stderr, metaStyle.Render("(cached)"))
			}
		}
		return
	}

	resp, err := client.Chat(ctx, apiKey, args.Query)
	if err != nil {
		fail(err)
	}
	fmt.Print(renderMarkdown(resp.Response))
	if !args.Quiet && resp.Cached {
		fmt.Fprintln(os.Stderr, metaStyle.Render("(cached)"))
	}
}
