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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Org struct {
	Model
	Name     string    `json:"name" gorm:"type:text;not null"`
	Slug     string    `json:"slug" gorm:"type:text;unique;not null;index"`
	Projects []Project `json:"projects" gorm:"foreignKey:OrganizationID;"`

	Integrations []OrganizationIntegration `json:"integrations" gorm:"foreignKey:OrgID;"`
}

func (m Org) TableName() string {
	return "organizations"
}

func (m *Org) BeforeSave(tx *gorm.DB) error {
	if m.Slug == "" {
		m.Slug = slug.Make(m.Name)
	}
	return nil
}

type Project struct {
	Model
	Name           string    `json:"name" gorm:"type:text"`
	OrganizationID uuid.UUID `json:"organizationId" gorm:"uniqueIndex:idx_project_org_slug;not null;type:uuid"`
	Organization   Org       `json:"organization" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	Slug           string    `json:"slug" gorm:"type:text;uniqueIndex:idx_project_org_slug;not null"`
}

func (m Project) TableName() string {
	return "projects"
}

func (m *Project) BeforeSave(tx *gorm.DB) error {
	if m.Slug == "" {
		m.Slug = slug.Make(m.Name)
	}
	return nil
}
