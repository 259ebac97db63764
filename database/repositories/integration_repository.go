// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/gorm"
)

type integrationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Integration]
}

var _ shared.IntegrationRepository = (*integrationRepository)(nil)

func NewIntegrationRepository(db *gorm.DB) *integrationRepository {
	return &integrationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Integration](db),
	}
}

func (r *integrationRepository) FindByProviderAndExternalID(provider string, externalID string) (models.Integration, error) {
	return r.first(nil, "provider = ? AND external_id = ?", provider, externalID)
}

func (r *integrationRepository) ReadOrganizationIntegration(orgID uuid.UUID, integrationID uuid.UUID) (models.OrganizationIntegration, error) {
	var orgIntegration models.OrganizationIntegration
	err := r.db.Preload("Integration").First(&orgIntegration, "org_id = ? AND integration_id = ?", orgID, integrationID).Error
	return orgIntegration, err
}

// AddOrganization installs the integration into the organization.
// Installing it twice updates the default identity instead.
func (r *integrationRepository) AddOrganization(tx *gorm.DB, integration models.Integration, orgID uuid.UUID, defaultAuthID *uuid.UUID) (models.OrganizationIntegration, error) {
	var orgIntegration models.OrganizationIntegration
	err := r.GetDB(tx).Where(models.OrganizationIntegration{OrgID: orgID, IntegrationID: integration.ID}).
		Attrs(models.OrganizationIntegration{Status: models.IntegrationStatusActive}).
		FirstOrCreate(&orgIntegration).Error
	if err != nil {
		return orgIntegration, err
	}

	if defaultAuthID != nil {
		orgIntegration.DefaultAuthID = defaultAuthID
		if err := r.GetDB(tx).Model(&orgIntegration).Update("default_auth_id", defaultAuthID).Error; err != nil {
			return orgIntegration, err
		}
	}
	orgIntegration.Integration = integration
	return orgIntegration, nil
}
