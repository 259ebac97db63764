// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/gorm"
)

type identityRepository struct {
	*GormRepository[uuid.UUID, models.Identity]
}

var _ shared.IdentityRepository = (*identityRepository)(nil)

func NewIdentityRepository(db *gorm.DB) *identityRepository {
	return &identityRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Identity](db),
	}
}

func (r *identityRepository) UpdateToken(tx *gorm.DB, id uuid.UUID, accessToken string, refreshToken string, expiresAt time.Time) error {
	updates := map[string]any{
		"access_token": accessToken,
		"expires_at":   expiresAt,
	}
	// some providers only hand out a refresh token once
	if refreshToken != "" {
		updates["refresh_token"] = refreshToken
	}
	return r.GetDB(tx).Model(&models.Identity{}).Where("id = ?", id).Updates(updates).Error
}
