// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/gorm"
)

type groupLinkRepository struct {
	*GormRepository[uuid.UUID, models.GroupLink]
}

var _ shared.GroupLinkRepository = (*groupLinkRepository)(nil)

func NewGroupLinkRepository(db *gorm.DB) *groupLinkRepository {
	return &groupLinkRepository{
		GormRepository: newGormRepository[uuid.UUID, models.GroupLink](db),
	}
}

func (r *groupLinkRepository) issueReferences(tx *gorm.DB, groupID uuid.UUID, provider string) *gorm.DB {
	return r.GetDB(tx).Model(&models.GroupLink{}).Where(
		"group_id = ? AND linked_type = ? AND relationship = ? AND provider = ?",
		groupID, models.LinkedTypeIssue, models.RelationshipReferences, provider,
	)
}

func (r *groupLinkRepository) FindIssueReference(tx *gorm.DB, groupID uuid.UUID, provider string) (models.GroupLink, error) {
	var link models.GroupLink
	err := r.issueReferences(tx, groupID, provider).First(&link).Error
	return link, err
}

func (r *groupLinkRepository) ExistsIssueReference(tx *gorm.DB, groupID uuid.UUID, provider string) (bool, error) {
	var count int64
	if err := r.issueReferences(tx, groupID, provider).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
