// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExternalIssueService struct {
	externalIssueRepository shared.ExternalIssueRepository
	groupLinkRepository     shared.GroupLinkRepository
}

var _ shared.ExternalIssueService = (*ExternalIssueService)(nil)

func NewExternalIssueService(externalIssueRepository shared.ExternalIssueRepository, groupLinkRepository shared.GroupLinkRepository) *ExternalIssueService {
	return &ExternalIssueService{
		externalIssueRepository: externalIssueRepository,
		groupLinkRepository:     groupLinkRepository,
	}
}

// HasLinkedIssue reports whether the group already references an issue of the provider.
func (s *ExternalIssueService) HasLinkedIssue(groupID uuid.UUID, provider string) (bool, error) {
	return s.groupLinkRepository.ExistsIssueReference(nil, groupID, provider)
}

// LinkExternalIssue stores the remote ticket and links it to the group.
// If another ticket of the same provider got linked in the meantime, ErrGroupAlreadyLinked is returned
// and nothing is written.
func (s *ExternalIssueService) LinkExternalIssue(ctx context.Context, group models.Group, integration models.Integration, orgID uuid.UUID, data dtos.ExternalIssueData) (models.ExternalIssue, error) {
	var issue models.ExternalIssue

	err := s.externalIssueRepository.Transaction(func(tx shared.DB) error {
		tx = tx.WithContext(ctx)

		existing, err := s.externalIssueRepository.FindByIntegrationAndKey(tx, integration.ID, data.Key)
		switch {
		case err == nil:
			issue = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			issue = models.ExternalIssue{
				OrgID:         orgID,
				IntegrationID: integration.ID,
				Key:           data.Key,
				Title:         data.Title,
				Description:   data.Description,
				WebURL:        data.WebURL,
				Metadata:      datatypes.JSONMap(data.Metadata),
			}
			if err := s.externalIssueRepository.Create(tx, &issue); err != nil {
				return fmt.Errorf("could not save external issue %s: %w", data.Key, err)
			}
		default:
			return fmt.Errorf("could not look up external issue %s: %w", data.Key, err)
		}

		link := models.GroupLink{
			GroupID:      group.ID,
			ProjectID:    group.ProjectID,
			LinkedType:   models.LinkedTypeIssue,
			LinkedID:     issue.ID,
			Relationship: models.RelationshipReferences,
			Provider:     integration.Provider,
			Data: datatypes.JSONMap{
				"provider": integration.Provider,
				"key":      data.Key,
			},
		}
		if err := s.groupLinkRepository.Create(tx, &link); err != nil {
			if database.IsDuplicateKeyError(err) {
				return shared.ErrGroupAlreadyLinked
			}
			return fmt.Errorf("could not link group %s: %w", group.ID, err)
		}
		return nil
	})
	if err != nil {
		return models.ExternalIssue{}, err
	}

	slog.Info("linked external issue", "group", group.ID, "provider", integration.Provider, "key", issue.Key)
	return issue, nil
}
