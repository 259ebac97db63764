// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RuleActionData is one entry of a rules action list.
// Data stays loosely typed in storage and is decoded by the action factory registered for ID.
type RuleActionData struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

type Rule struct {
	Model

	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project     Project   `json:"project" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
	Label       string    `json:"label" gorm:"type:text;not null"`
	Environment *string   `json:"environment" gorm:"type:text"`

	Actions datatypes.JSONSlice[RuleActionData] `json:"actions"`
}

func (Rule) TableName() string {
	return "rules"
}
