// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/gorm"
)

type groupRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Group]
}

var _ shared.GroupRepository = (*groupRepository)(nil)

func NewGroupRepository(db *gorm.DB) *groupRepository {
	return &groupRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Group](db),
	}
}

func (r *groupRepository) ReadWithProject(id uuid.UUID) (models.Group, error) {
	var group models.Group
	err := r.db.Preload("Project").Preload("Project.Organization").First(&group, "id = ?", id).Error
	return group, err
}
