// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

// CreateIssueRequest is the provider independent payload an installation turns into a remote ticket
type CreateIssueRequest struct {
	Title       string
	Description string
	Project     string
	IssueType   string
	// links back to the rule which created the ticket, empty if unknown
	RuleURL string
	// additional provider specific fields, keyed by the remote field reference name
	Fields map[string]any
}

type ExternalIssueData struct {
	Key         string         `json:"key"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	WebURL      string         `json:"webUrl"`
	Metadata    map[string]any `json:"metadata"`
}

type FormFieldChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormField struct {
	Name         string            `json:"name"`
	Label        string            `json:"label"`
	Type         string            `json:"type"`
	Required     bool              `json:"required"`
	Choices      []FormFieldChoice `json:"choices,omitempty"`
	DefaultValue string            `json:"defaultValue,omitempty"`
	Placeholder  string            `json:"placeholder,omitempty"`
	UpdatesForm  bool              `json:"updatesForm,omitempty"`
}
