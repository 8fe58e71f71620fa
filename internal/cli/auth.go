// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth.go - Account command handlers: register, login, logout, profile,
// subscribe, apikey.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ramolabs/ramo-tui/internal/api"
	"github.com/ramolabs/ramo-tui/internal/credentials"
)

// authTimeout bounds account operations; chat requests stay unbounded.
const authTimeout = 30 * time.Second

// HandleLogin prompts for credentials and stores the session token.
func HandleLogin(args Args) {
	client, _ := newClient(args)
	session := api.NewSessionManager(client)

	email, err := promptLine("Email")
	if err != nil {
		fail(err)
	}
	password, err := promptPassword("Password")
	if err != nil {
		fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	resp, err := session.Login(ctx, email, password)
	if err != nil {
		fail(err)
	}

	if !resp.Authenticated() {
		fmt.Println(warningStyle.Render(resp.Message))
		return
	}
	fmt.Println(successStyle.Render("Logged in."))
	if client.Credentials().APIKey() == "" {
		fmt.Println(infoStyle.Render("No API key stored yet. Run 'ramo apikey' to issue one."))
	}
}

// HandleRegister prompts for account details and creates an account.
// Registration never logs the user in.
func HandleRegister(args Args) {
	client, _ := newClient(args)
	session := api.NewSessionManager(client)

	var req api.RegisterRequest
	var err error
	if req.CompanyName, err = promptLine("Company name"); err != nil {
		fail(err)
	}
	if req.Founded, err = promptLine("Founded (year)"); err != nil {
		fail(err)
	}
	if req.Location, err = promptLine("Location"); err != nil {
		fail(err)
	}
	if req.Email, err = promptLine("Email"); err != nil {
		fail(err)
	}
	if req.Password, err = promptPassword("Password"); err != nil {
		fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	resp, err := session.Register(ctx, req)
	if err != nil {
		fail(err)
	}

	fmt.Println(successStyle.Render(resp.Message))
	fmt.Println(infoStyle.Render("Run 'ramo login' to sign in."))
}

// HandleLogout discards the stored session token. The API key stays put.
func HandleLogout(args Args) {
	client, _ := newClient(args)
	api.NewSessionManager(client).Logout()
	fmt.Println(successStyle.Render("Logged out."))
}

// HandleProfile shows the account profile for the stored session.
func HandleProfile(args Args) {
	client, _ := newClient(args)
	session := api.NewSessionManager(client)

	if !session.IsLoggedIn() {
		fail(fmt.Errorf("not logged in; run 'ramo login' first"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	resp, err := session.FetchProfile(ctx)
	if err != nil {
		fail(err)
	}
	if !resp.Found() {
		fmt.Println(warningStyle.Render(resp.Message))
		return
	}

	u := resp.User
	fmt.Println(welcomeStyle.Render(u.CompanyName))
	fmt.Printf("  Email:      %s\n", u.Email)
	fmt.Printf("  Founded:    %s\n", u.Founded)
	fmt.Printf("  Location:   %s\n", u.Location)
	fmt.Printf("  Subscribed: %v\n", u.IsSubscribed)
	if resp.APIKey != "" {
		fmt.Printf("  API key:    %s\n", resp.APIKey)
	}
}

// HandleSubscribe activates the subscription for the logged-in account.
func HandleSubscribe(args Args) {
	client, _ := newClient(args)
	session := api.NewSessionManager(client)

	if !session.IsLoggedIn() {
		fail(fmt.Errorf("not logged in; run 'ramo login' first"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	resp, err := session.Subscribe(ctx)
	if err != nil {
		fail(err)
	}
	fmt.Println(successStyle.Render(resp.Message))
}

// HandleAPIKey issues a fresh API key and stores it for chat use.
func HandleAPIKey(args Args) {
	client, _ := newClient(args)
	session := api.NewSessionManager(client)

	if !session.IsLoggedIn() {
		fail(fmt.Errorf("not logged in; run 'ramo login' first"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	resp, err := session.CreateAPIKey(ctx)
	if err != nil {
		fail(err)
	}

	if resp.APIKey == "" {
		fmt.Println(warningStyle.Render(resp.Message))
		return
	}

	client.Credentials().Set(credentials.KeyAPIKey, resp.APIKey)
	fmt.Println(successStyle.Render("API key issued and stored."))
	if !args.Quiet {
		fmt.Printf("  %s\n", resp.APIKey)
	}
}
