// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// configs.go - Canned Q&A pair management ("ramo configs") and local
// configuration ("ramo config").
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ramolabs/ramo-tui/internal/api"
	"github.com/ramolabs/ramo-tui/internal/config"
	"github.com/ramolabs/ramo-tui/internal/util"
)

// HandleConfigs manages canned Q&A pairs on the backend.
func HandleConfigs(args Args) {
	client, _ := newClient(args)

	if !api.NewSessionManager(client).IsLoggedIn() {
		fail(fmt.Errorf("not logged in; run 'ramo login' first"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	switch args.Subcommand {
	case "", "list":
		resp, err := client.ListConfigs(ctx)
		if err != nil {
			fail(err)
		}
		if len(resp.ChatConfigs) == 0 {
			fmt.Println(infoStyle.Render("No Q&A pairs configured."))
			return
		}
		for _, c := range resp.ChatConfigs {
			fmt.Printf("%s\n  Q: %s\n  A: %s\n",
				metaStyle.Render(c.ID),
				c.Question,
				util.TruncateRunes(c.Answer, 200))
		}

	case "add":
		question, err := promptLine("Question")
		if err != nil {
			fail(err)
		}
		answer, err := promptLine("Answer")
		if err != nil {
			fail(err)
		}
		resp, err := client.CreateConfig(ctx, question, answer)
		if err != nil {
			fail(err)
		}
		fmt.Println(successStyle.Render(resp.Message))
		if resp.ConfigID != "" {
			fmt.Printf("  ID: %s\n", resp.ConfigID)
		}

	case "update":
		if len(args.Raw) == 0 {
			fail(fmt.Errorf("usage: ramo configs update <id>"))
		}
		id := args.Raw[0]
		question, err := promptLine("Question")
		if err != nil {
			fail(err)
		}
		answer, err := promptLine("Answer")
		if err != nil {
			fail(err)
		}
		resp, err := client.UpdateConfig(ctx, id, question, answer)
		if err != nil {
			fail(err)
		}
		if resp.Failed() {
			fail(fmt.Errorf("update rejected: %s", resp.Error))
		}
		fmt.Println(successStyle.Render(resp.Message))

	default:
		fail(fmt.Errorf("unknown configs subcommand %q (list, add, update)", args.Subcommand))
	}
}

// HandleConfig shows or edits the local TOML configuration.
func HandleConfig(args Args) {
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	switch args.Subcommand {
	case "", "show":
		path, _ := config.Path()
		fmt.Println(infoStyle.Render("Config: " + path))
		fmt.Printf("  api.base_url        = %s\n", cfg.API.BaseURL)
		fmt.Printf("  api.verbose         = %v\n", cfg.API.Verbose)
		fmt.Printf("  chat.default_mode   = %s\n", cfg.Chat.DefaultMode)
		fmt.Printf("  chat.max_ingest_pairs = %d\n", cfg.Chat.MaxIngestPairs)
		fmt.Printf("  ui.word_wrap        = %d\n", cfg.UI.WordWrap)

	case "set":
		if len(args.Raw) < 2 {
			fail(fmt.Errorf("usage: ramo config set KEY VALUE"))
		}
		key, value := strings.ToLower(args.Raw[0]), args.Raw[1]
		switch key {
		case "api.base_url":
			cfg.API.BaseURL = value
		case "api.verbose":
			cfg.API.Verbose = strings.EqualFold(value, "true")
		case "chat.default_mode":
			cfg.Chat.DefaultMode = value
		case "chat.max_ingest_pairs":
			fmt.Sscanf(value, "%d", &cfg.Chat.MaxIngestPairs)
		case "ui.word_wrap":
			fmt.Sscanf(value, "%d", &cfg.UI.WordWrap)
		default:
			fail(fmt.Errorf("unknown config key %q", key))
		}
		if err := cfg.Validate(); err != nil {
			fail(err)
		}
		if err := config.Save(cfg); err != nil {
			fail(err)
		}
		fmt.Println(successStyle.Render("Saved."))

	default:
		fail(fmt.Errorf("unknown config subcommand %q (show, set)", args.Subcommand))
	}
}
