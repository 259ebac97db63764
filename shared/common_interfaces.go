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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
)

type OrganizationRepository interface {
	Read(id uuid.UUID) (models.Org, error)
	ReadBySlug(slug string) (models.Org, error)
	Save(tx DB, org *models.Org) error
}

type ProjectRepository interface {
	Read(id uuid.UUID) (models.Project, error)
	Save(tx DB, project *models.Project) error
}

type GroupRepository interface {
	Read(id uuid.UUID) (models.Group, error)
	ReadWithProject(id uuid.UUID) (models.Group, error)
	Save(tx DB, group *models.Group) error
}

type IntegrationRepository interface {
	Read(id uuid.UUID) (models.Integration, error)
	Save(tx DB, integration *models.Integration) error
	Delete(tx DB, id uuid.UUID) error
	FindByProviderAndExternalID(provider string, externalID string) (models.Integration, error)
	ReadOrganizationIntegration(orgID uuid.UUID, integrationID uuid.UUID) (models.OrganizationIntegration, error)
	AddOrganization(tx DB, integration models.Integration, orgID uuid.UUID, defaultAuthID *uuid.UUID) (models.OrganizationIntegration, error)
}

type IdentityRepository interface {
	Read(id uuid.UUID) (models.Identity, error)
	Save(tx DB, identity *models.Identity) error
	UpdateToken(tx DB, id uuid.UUID, accessToken string, refreshToken string, expiresAt time.Time) error
}

type ExternalIssueRepository interface {
	Create(tx DB, issue *models.ExternalIssue) error
	FindByIntegrationAndKey(tx DB, integrationID uuid.UUID, key string) (models.ExternalIssue, error)
	FindByGroupAndProvider(tx DB, groupID uuid.UUID, provider string) ([]models.ExternalIssue, error)
	Transaction(fn func(tx DB) error) error
}

type GroupLinkRepository interface {
	Create(tx DB, link *models.GroupLink) error
	FindIssueReference(tx DB, groupID uuid.UUID, provider string) (models.GroupLink, error)
	ExistsIssueReference(tx DB, groupID uuid.UUID, provider string) (bool, error)
}

type RuleRepository interface {
	Read(id uuid.UUID) (models.Rule, error)
	ReadInOrg(orgID uuid.UUID, id uuid.UUID) (models.Rule, error)
	Save(tx DB, rule *models.Rule) error
}

type ExternalIssueService interface {
	HasLinkedIssue(groupID uuid.UUID, provider string) (bool, error)
	LinkExternalIssue(ctx context.Context, group models.Group, integration models.Integration, orgID uuid.UUID, data dtos.ExternalIssueData) (models.ExternalIssue, error)
}

// IssueCreator is implemented by every installation which is able to open a ticket in a remote tracker.
type IssueCreator interface {
	CreateIssue(ctx context.Context, req dtos.CreateIssueRequest) (dtos.ExternalIssueData, error)
}
