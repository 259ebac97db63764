// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import "github.com/google/uuid"

// Group collects all events sharing one fingerprint
type Group struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project   Project   `json:"project" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`

	Title   string `json:"title" gorm:"type:text;not null"`
	Culprit string `json:"culprit" gorm:"type:text"`
	Level   string `json:"level" gorm:"type:text;default:'error'"`
}

func (Group) TableName() string {
	return "groups"
}
