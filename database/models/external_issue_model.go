// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExternalIssue is the local record of a ticket living in a remote issue tracker
type ExternalIssue struct {
	Model

	OrgID         uuid.UUID   `json:"orgId" gorm:"type:uuid;not null;index"`
	IntegrationID uuid.UUID   `json:"integrationId" gorm:"type:uuid;not null;uniqueIndex:idx_external_issue_integration_key"`
	Integration   Integration `json:"-" gorm:"foreignKey:IntegrationID;constraint:OnDelete:CASCADE;"`

	Key         string            `json:"key" gorm:"type:text;not null;uniqueIndex:idx_external_issue_integration_key"`
	Title       string            `json:"title" gorm:"type:text"`
	Description string            `json:"description" gorm:"type:text"`
	WebURL      string            `json:"webUrl" gorm:"type:text"`
	Metadata    datatypes.JSONMap `json:"metadata"`
}

func (ExternalIssue) TableName() string {
	return "external_issues"
}
