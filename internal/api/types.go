// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

// Wire types for the RAMO backend. Field names follow the backend's JSON
// contract exactly; optional fields stay pointer-typed only where presence
// itself carries meaning.

// =============================================================================
// SESSION / ACCOUNT
// =============================================================================

// LoginResponse is the POST /login reply. A reply without a token is a
// rejected login; Message carries the backend's explanation.
type LoginResponse struct {
	Message     string `json:"message"`
	UniqueToken string `json:"unique_token,omitempty"`
}

// Authenticated reports whether the login was accepted.
func (r *LoginResponse) Authenticated() bool {
	return r.UniqueToken != ""
}

// User is the workspace owner record inside a profile.
type User struct {
	ID           string `json:"_id"`
	CompanyName  string `json:"company_name"`
	Founded      string `json:"founded"`
	Location     string `json:"location"`
	Email        string `json:"email"`
	IsSubscribed bool   `json:"isSubscribed,omitempty"`
}

// ProfileResponse is the GET /profile reply: either a populated profile
// (User non-nil) or the backend's "not a user" explanation in Message.
// Found discriminates the two shapes.
type ProfileResponse struct {
	User    *User  `json:"user,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
	Message string `json:"message,omitempty"`
}

// Found reports whether the reply carries a real profile.
func (r *ProfileResponse) Found() bool {
	return r.User != nil
}

// RegisterRequest is the POST /register body.
type RegisterRequest struct {
	CompanyName string `json:"company_name"`
	Founded     string `json:"founded"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// RegisterResponse is the POST /register reply. Registration never logs the
// user in; UserID is set when an account was created.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// SubscribeResponse is the POST /subscribe-me reply.
type SubscribeResponse struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// CreateAPIKeyResponse is the POST /add-api-key reply. APIKey is empty when
// issuance was deferred and Message explains why.
type CreateAPIKeyResponse struct {
	Message string `json:"message"`
	APIKey  string `json:"api_key,omitempty"`
}

// =============================================================================
// CHAT
// =============================================================================

// ChatResponse is the POST /chat reply.
type ChatResponse struct {
	Response string `json:"response"`
	Cached   bool   `json:"cached,omitempty"`
}

// ChatSmartResponse is the POST /chat-smart reply. RelevantStoresFound is a
// pointer because its mere presence controls whether the relevance note is
// shown, even for a count of zero.
type ChatSmartResponse struct {
	Response            string `json:"response"`
	RelevantStoresFound *int   `json:"relevant_stores_found,omitempty"`
	SearchUsed          bool   `json:"search_used,omitempty"`
	Cached              bool   `json:"cached,omitempty"`
}

// =============================================================================
// CHAT CONFIG
// =============================================================================

// ChatConfig is a stored question/answer knowledge unit. Identity is the ID;
// question and answer are the editable parts.
type ChatConfig struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ChatConfigsResponse is the GET /get-chat-config reply.
type ChatConfigsResponse struct {
	ChatConfigs []ChatConfig `json:"chat_configs"`
}

// CreateConfigResponse is the POST /chat-config reply.
type CreateConfigResponse struct {
	Message  string `json:"message"`
	ConfigID string `json:"config_id"`
}

// UpdateConfigResponse is the PUT /update-chat-config/:id reply. The backend
// overloads 2xx for logical failure: a non-empty Error with a null ConfigID
// means the update did not happen. Callers inspect Failed; the gateway does
// not turn this shape into a transport error.
type UpdateConfigResponse struct {
	Message  string  `json:"message"`
	ConfigID *string `json:"config_id"`
	Error    string  `json:"error,omitempty"`
}

// Failed reports a logical failure inside a successful response.
func (r *UpdateConfigResponse) Failed() bool {
	return r.Error != ""
}

// =============================================================================
// KNOWLEDGE INGESTION
// =============================================================================

// QAPair is one generated question/answer pair in an ingest preview.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// IngestResult is the POST /ingest-company-knowledge reply. Success false is
// a logical failure, not a transport error; RawPreview may carry the
// unparsed model output for diagnostic display.
type IngestResult struct {
	Success      bool     `json:"success"`
	CompanyName  string   `json:"company_name,omitempty"`
	CreatedCount int      `json:"created_count,omitempty"`
	InsertedIDs  []string `json:"inserted_ids,omitempty"`
	Preview      []QAPair `json:"preview,omitempty"`
	Error        string   `json:"error,omitempty"`
	RawPreview   string   `json:"raw_preview,omitempty"`
}
