// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commonint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/monitoring"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/gorm"
)

// RemovedIntegrationName is shown instead of the integration name once the integration got deleted.
const RemovedIntegrationName = "[removed]"

// InstallationFactory binds an integration to the organization a ticket is created in.
type InstallationFactory func(ctx context.Context, integration models.Integration, orgID uuid.UUID) (shared.IssueCreator, error)

// TicketActionConfig is the decoded, provider independent part of a ticket action.
type TicketActionConfig struct {
	IntegrationID uuid.UUID
	Project       string
	IssueType     string
	Title         string
	Description   string
	Fields        map[string]any
}

type TicketActionDependencies struct {
	IntegrationRepository shared.IntegrationRepository
	ExternalIssueService  shared.ExternalIssueService
	NewInstallation       InstallationFactory
	// used to link the ticket back to the rule, no link if empty
	FrontendURL string
}

// TicketEventAction creates a ticket in a remote tracker once per group.
// Providers embed it and only provide the id, the provider name and the label template.
type TicketEventAction struct {
	id            string
	provider      string
	labelTemplate string

	rule   models.Rule
	config TicketActionConfig

	integrationRepository shared.IntegrationRepository
	externalIssueService  shared.ExternalIssueService
	newInstallation       InstallationFactory
	frontendURL           string
}

func NewTicketEventAction(id, provider, labelTemplate string, rule models.Rule, config TicketActionConfig, deps TicketActionDependencies) *TicketEventAction {
	return &TicketEventAction{
		id:                    id,
		provider:              provider,
		labelTemplate:         labelTemplate,
		rule:                  rule,
		config:                config,
		integrationRepository: deps.IntegrationRepository,
		externalIssueService:  deps.ExternalIssueService,
		newInstallation:       deps.NewInstallation,
		frontendURL:           strings.TrimSuffix(deps.FrontendURL, "/"),
	}
}

func (a *TicketEventAction) ID() string {
	return a.id
}

func (a *TicketEventAction) Rule() models.Rule {
	return a.rule
}

func (a *TicketEventAction) Config() TicketActionConfig {
	return a.config
}

// FutureKey groups all futures targeting the same integration into one callback.
func (a *TicketEventAction) FutureKey() string {
	return fmt.Sprintf("%s:%s", a.provider, a.config.IntegrationID)
}

// IntegrationName returns the display name of the configured integration or RemovedIntegrationName.
func (a *TicketEventAction) IntegrationName() string {
	integration, err := a.integrationRepository.Read(a.config.IntegrationID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("could not read integration", "integration", a.config.IntegrationID, "err", err)
		}
		return RemovedIntegrationName
	}
	return integration.Name
}

func (a *TicketEventAction) RenderLabel() string {
	return strings.ReplaceAll(a.labelTemplate, "{integration}", a.IntegrationName())
}

// After always schedules exactly one callback.
// If the group already references an issue of the provider the callback does nothing.
func (a *TicketEventAction) After(ctx context.Context, event dtos.Event, state shared.EventState) ([]shared.CallbackFuture, error) {
	linked, err := a.externalIssueService.HasLinkedIssue(event.Group.ID, a.provider)
	if err != nil {
		return nil, fmt.Errorf("could not check for linked issues of group %s: %w", event.Group.ID, err)
	}

	if linked {
		slog.Debug("group already linked, skipping ticket creation", "group", event.Group.ID, "provider", a.provider, "rule", a.rule.ID)
		monitoring.TicketSuppressedAmount.WithLabelValues(a.provider).Inc()
		return []shared.CallbackFuture{{
			Key:      a.FutureKey(),
			Callback: noopCallback,
			Kwargs:   a.config,
		}}, nil
	}

	return []shared.CallbackFuture{{
		Key:      a.FutureKey(),
		Callback: a.createTickets,
		Kwargs:   a.config,
	}}, nil
}

func noopCallback(ctx context.Context, event dtos.Event, futures []shared.RuleFuture) error {
	return nil
}

func (a *TicketEventAction) createTickets(ctx context.Context, event dtos.Event, futures []shared.RuleFuture) error {
	var errs []error
	for _, future := range futures {
		config, ok := future.Kwargs.(TicketActionConfig)
		if !ok {
			errs = append(errs, fmt.Errorf("unexpected kwargs %T for %s", future.Kwargs, a.id))
			continue
		}
		if err := a.createTicket(ctx, event, future.Rule, config); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *TicketEventAction) createTicket(ctx context.Context, event dtos.Event, rule models.Rule, config TicketActionConfig) error {
	integration, err := a.integrationRepository.Read(config.IntegrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("integration of rule action does not exist anymore", "integration", config.IntegrationID, "rule", rule.ID)
			return nil
		}
		return fmt.Errorf("could not read integration %s: %w", config.IntegrationID, err)
	}

	// another future of the same callback might have linked the group already
	linked, err := a.externalIssueService.HasLinkedIssue(event.Group.ID, a.provider)
	if err != nil {
		return fmt.Errorf("could not check for linked issues of group %s: %w", event.Group.ID, err)
	}
	if linked {
		monitoring.TicketSuppressedAmount.WithLabelValues(a.provider).Inc()
		return nil
	}

	orgID := event.Group.Project.OrganizationID
	installation, err := a.newInstallation(ctx, integration, orgID)
	if err != nil {
		return fmt.Errorf("integration %s: %w", integration.ID, err)
	}

	data, err := installation.CreateIssue(ctx, a.buildRequest(event, rule, config))
	if err != nil {
		monitoring.TicketCreationFailedAmount.WithLabelValues(a.provider).Inc()
		return fmt.Errorf("integration %s: could not create issue: %w", integration.ID, err)
	}
	monitoring.TicketCreatedAmount.WithLabelValues(a.provider).Inc()

	if _, err := a.externalIssueService.LinkExternalIssue(ctx, event.Group, integration, orgID, data); err != nil {
		if errors.Is(err, shared.ErrGroupAlreadyLinked) {
			slog.Warn("group got linked concurrently, remote issue stays unlinked", "group", event.Group.ID, "integration", integration.ID, "key", data.Key)
			return nil
		}
		return fmt.Errorf("integration %s: could not link issue %s: %w", integration.ID, data.Key, err)
	}

	slog.Info("created ticket for group", "group", event.Group.ID, "integration", integration.ID, "key", data.Key, "rule", rule.ID)
	return nil
}

func (a *TicketEventAction) buildRequest(event dtos.Event, rule models.Rule, config TicketActionConfig) dtos.CreateIssueRequest {
	title := config.Title
	if title == "" {
		title = event.Title
	}
	description := config.Description
	if description == "" {
		description = event.Message
	}

	return dtos.CreateIssueRequest{
		Title:       RenderTemplate(title, event),
		Description: RenderTemplate(description, event),
		Project:     config.Project,
		IssueType:   config.IssueType,
		RuleURL:     a.ruleURL(event, rule),
		Fields:      config.Fields,
	}
}

func (a *TicketEventAction) ruleURL(event dtos.Event, rule models.Rule) string {
	project := event.Group.Project
	if a.frontendURL == "" || project.Organization.Slug == "" || rule.ID == uuid.Nil {
		return ""
	}
	return fmt.Sprintf("%s/%s/projects/%s/alerts/rules/%s/", a.frontendURL, project.Organization.Slug, project.Slug, rule.ID)
}
