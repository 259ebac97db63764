// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/gorm"
)

type ruleRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Rule]
}

var _ shared.RuleRepository = (*ruleRepository)(nil)

func NewRuleRepository(db *gorm.DB) *ruleRepository {
	return &ruleRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Rule](db),
	}
}

// ReadInOrg only returns the rule if its project belongs to the organization
func (r *ruleRepository) ReadInOrg(orgID uuid.UUID, id uuid.UUID) (models.Rule, error) {
	var rule models.Rule
	err := r.db.Preload("Project").
		Joins("JOIN projects ON projects.id = rules.project_id").
		Where("rules.id = ? AND projects.organization_id = ?", id, orgID).
		First(&rule).Error
	return rule, err
}
