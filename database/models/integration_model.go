// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IntegrationStatus string

const (
	IntegrationStatusActive   IntegrationStatus = "active"
	IntegrationStatusDisabled IntegrationStatus = "disabled"
)

type IntegrationMetadata struct {
	DomainName     string `json:"domain_name"`
	DefaultProject string `json:"default_project,omitempty"`
}

// Integration is a connection to a remote service, shared by all organizations it was installed into.
type Integration struct {
	Model

	Provider   string                                  `json:"provider" gorm:"type:text;not null;uniqueIndex:idx_integration_provider_external_id"`
	ExternalID string                                  `json:"externalId" gorm:"type:text;not null;uniqueIndex:idx_integration_provider_external_id"`
	Name       string                                  `json:"name" gorm:"type:text;not null"`
	Metadata   datatypes.JSONType[IntegrationMetadata] `json:"metadata"`
	Status     IntegrationStatus                       `json:"status" gorm:"type:text;default:'active'"`

	Organizations []OrganizationIntegration `json:"-" gorm:"foreignKey:IntegrationID;constraint:OnDelete:CASCADE;"`
}

func (Integration) TableName() string {
	return "integrations"
}

type OrganizationIntegration struct {
	Model

	OrgID         uuid.UUID   `json:"orgId" gorm:"type:uuid;not null;uniqueIndex:idx_org_integration"`
	Org           Org         `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	IntegrationID uuid.UUID   `json:"integrationId" gorm:"type:uuid;not null;uniqueIndex:idx_org_integration"`
	Integration   Integration `json:"integration" gorm:"foreignKey:IntegrationID;constraint:OnDelete:CASCADE;"`

	// the identity used to authenticate outbound calls made on behalf of the organization
	DefaultAuthID *uuid.UUID        `json:"defaultAuthId" gorm:"type:uuid"`
	Status        IntegrationStatus `json:"status" gorm:"type:text;default:'active'"`
}

func (OrganizationIntegration) TableName() string {
	return "organization_integrations"
}
