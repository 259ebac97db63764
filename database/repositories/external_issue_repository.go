// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/gorm"
)

type externalIssueRepository struct {
	*GormRepository[uuid.UUID, models.ExternalIssue]
}

var _ shared.ExternalIssueRepository = (*externalIssueRepository)(nil)

func NewExternalIssueRepository(db *gorm.DB) *externalIssueRepository {
	return &externalIssueRepository{
		GormRepository: newGormRepository[uuid.UUID, models.ExternalIssue](db),
	}
}

func (r *externalIssueRepository) FindByIntegrationAndKey(tx *gorm.DB, integrationID uuid.UUID, key string) (models.ExternalIssue, error) {
	return r.first(tx, "integration_id = ? AND key = ?", integrationID, key)
}

func (r *externalIssueRepository) FindByGroupAndProvider(tx *gorm.DB, groupID uuid.UUID, provider string) ([]models.ExternalIssue, error) {
	var issues []models.ExternalIssue
	err := r.GetDB(tx).
		Joins("JOIN group_links ON group_links.linked_id = external_issues.id").
		Where("group_links.group_id = ? AND group_links.provider = ? AND group_links.linked_type = ?", groupID, provider, models.LinkedTypeIssue).
		Find(&issues).Error
	return issues, err
}
