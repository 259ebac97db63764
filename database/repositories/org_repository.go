// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/gorm"
)

type orgRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Org]
}

var _ shared.OrganizationRepository = (*orgRepository)(nil)

func NewOrgRepository(db *gorm.DB) *orgRepository {
	return &orgRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Org](db),
	}
}

func (g *orgRepository) ReadBySlug(slug string) (models.Org, error) {
	return g.first(nil, "slug = ?", slug)
}

type projectRepository struct {
	*GormRepository[uuid.UUID, models.Project]
}

var _ shared.ProjectRepository = (*projectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}
