// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LinkedType string

const (
	LinkedTypeCommit      LinkedType = "commit"
	LinkedTypePullRequest LinkedType = "pull_request"
	LinkedTypeIssue       LinkedType = "issue"
)

type Relationship string

const (
	RelationshipResolves   Relationship = "resolves"
	RelationshipReferences Relationship = "references"
)

// GroupLink associates a group with something living outside, most of the time an ExternalIssue.
// There is at most one link per (group, linked type, relationship, provider).
type GroupLink struct {
	Model

	GroupID   uuid.UUID `json:"groupId" gorm:"type:uuid;not null;uniqueIndex:idx_group_link_provider"`
	Group     Group     `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE;"`
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`

	LinkedType   LinkedType   `json:"linkedType" gorm:"type:text;not null;uniqueIndex:idx_group_link_provider"`
	LinkedID     uuid.UUID    `json:"linkedId" gorm:"type:uuid;not null;index"`
	Relationship Relationship `json:"relationship" gorm:"type:text;not null;uniqueIndex:idx_group_link_provider"`
	Provider     string       `json:"provider" gorm:"type:text;not null;uniqueIndex:idx_group_link_provider"`

	Data datatypes.JSONMap `json:"data"`
}

func (GroupLink) TableName() string {
	return "group_links"
}
