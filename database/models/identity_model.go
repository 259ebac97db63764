// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IdentityProvider struct {
	Model
	Type       string            `json:"type" gorm:"type:text;not null"`
	ExternalID *string           `json:"externalId" gorm:"type:text"`
	Config     datatypes.JSONMap `json:"config"`
}

func (IdentityProvider) TableName() string {
	return "identity_providers"
}

// Identity is a credential bound to a user and an identity provider.
type Identity struct {
	Model

	IdpID uuid.UUID        `json:"idpId" gorm:"type:uuid;not null;index"`
	Idp   IdentityProvider `json:"idp" gorm:"foreignKey:IdpID;constraint:OnDelete:CASCADE;"`

	UserID     string `json:"userId" gorm:"type:text;not null;index"`
	ExternalID string `json:"externalId" gorm:"type:text;not null"`

	AccessToken  string    `json:"-" gorm:"type:text"`
	RefreshToken string    `json:"-" gorm:"type:text"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Scopes       string    `json:"scopes" gorm:"type:text"`
}

func (Identity) TableName() string {
	return "identities"
}

func (i Identity) IsExpired(now time.Time, leeway time.Duration) bool {
	if i.ExpiresAt.IsZero() {
		return false
	}
	return now.Add(leeway).After(i.ExpiresAt)
}
