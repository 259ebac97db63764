// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"context"

	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
)

// EventState is the evaluation state of a rule for a single event.
type EventState struct {
	IsNew                 bool `json:"isNew"`
	IsRegression          bool `json:"isRegression"`
	IsNewGroupEnvironment bool `json:"isNewGroupEnvironment"`
	HasReappeared         bool `json:"hasReappeared"`
}

// RuleFuture is handed to a callback once per rule which scheduled it.
type RuleFuture struct {
	Rule   models.Rule
	Kwargs any
}

type CallbackFunc func(ctx context.Context, event dtos.Event, futures []RuleFuture) error

// CallbackFuture is what an action schedules in After.
// Futures sharing a Key are collapsed into a single callback invocation.
type CallbackFuture struct {
	Key      string
	Callback CallbackFunc
	Kwargs   any
}

// RuleAction is implemented once per provider and selected by ID from the rule configuration.
type RuleAction interface {
	ID() string
	After(ctx context.Context, event dtos.Event, state EventState) ([]CallbackFuture, error)
	RenderLabel() string
}

// RuleActionFactory decodes the stored action data of a rule into a ready to use action.
type RuleActionFactory func(rule models.Rule, data map[string]any) (RuleAction, error)
