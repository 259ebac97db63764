// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/l3montree-dev/alertflow/database/models"
)

// Event is a single occurrence which made a rule fire. Group carries its project.
type Event struct {
	ID        string            `json:"eventId"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Level     string            `json:"level"`
	Culprit   string            `json:"culprit"`
	Tags      map[string]string `json:"tags"`
	Timestamp time.Time         `json:"timestamp"`

	Group models.Group `json:"-"`
}

type FireRuleRequest struct {
	GroupID string            `json:"groupId" validate:"required,uuid"`
	EventID string            `json:"eventId"`
	Title   string            `json:"title" validate:"required"`
	Message string            `json:"message"`
	Level   string            `json:"level" validate:"omitempty,oneof=debug info warning error fatal"`
	Culprit string            `json:"culprit"`
	Tags    map[string]string `json:"tags"`

	IsNew                 bool `json:"isNew"`
	IsRegression          bool `json:"isRegression"`
	IsNewGroupEnvironment bool `json:"isNewGroupEnvironment"`
	HasReappeared         bool `json:"hasReappeared"`
}

type RuleLabelsDTO struct {
	RuleID string   `json:"ruleId"`
	Labels []string `json:"labels"`
}
