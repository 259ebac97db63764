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

package vstsint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/common"
	"github.com/l3montree-dev/alertflow/config"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/integrations/commonint"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/l3montree-dev/alertflow/utils"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const Provider = "vsts"

// VstsIntegrationFactory builds installations of azure devops integrations.
// All installations share one transport and with it the response cache.
type VstsIntegrationFactory struct {
	integrationRepository shared.IntegrationRepository
	identityRepository    shared.IdentityRepository
	oauth2Config          *oauth2.Config
	transport             http.RoundTripper
	limiter               *rate.Limiter
}

func NewVstsIntegrationFactory(cfg config.Config, integrationRepository shared.IntegrationRepository, identityRepository shared.IdentityRepository) *VstsIntegrationFactory {
	cache := common.NewCacheTransport(cfg.HTTPCache.Size, cfg.HTTPCache.TTL)

	var oauth2Config *oauth2.Config
	if cfg.AzureDevOps.ClientID != "" {
		oauth2Config = &oauth2.Config{
			ClientID:     cfg.AzureDevOps.ClientID,
			ClientSecret: cfg.AzureDevOps.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.AzureDevOps.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
			Scopes: []string{cfg.AzureDevOps.Scope},
		}
	} else {
		slog.Warn("AZURE_DEVOPS_CLIENT_ID is not set, expired azure devops tokens will not be refreshed")
	}

	limit := rate.Inf
	if cfg.AzureDevOps.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.AzureDevOps.RequestsPerSecond)
	}

	return &VstsIntegrationFactory{
		integrationRepository: integrationRepository,
		identityRepository:    identityRepository,
		oauth2Config:          oauth2Config,
		transport:             cache.Wrap(otelhttp.NewTransport(http.DefaultTransport)),
		limiter:               rate.NewLimiter(limit, max(cfg.AzureDevOps.RequestBurst, 1)),
	}
}

// New binds the integration to the organization.
func (f *VstsIntegrationFactory) New(integration models.Integration, orgID uuid.UUID) *VstsIntegration {
	return &VstsIntegration{
		factory:     f,
		integration: integration,
		orgID:       orgID,
	}
}

// Load reads the integration and binds it to the organization.
func (f *VstsIntegrationFactory) Load(integrationID uuid.UUID, orgID uuid.UUID) (*VstsIntegration, error) {
	orgIntegration, err := f.integrationRepository.ReadOrganizationIntegration(orgID, integrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrIntegrationNotFound
		}
		return nil, fmt.Errorf("could not read integration %s: %w", integrationID, err)
	}
	if orgIntegration.Integration.Provider != Provider {
		return nil, shared.ErrIntegrationNotFound
	}
	return f.New(orgIntegration.Integration, orgID), nil
}

// Installation satisfies commonint.InstallationFactory.
func (f *VstsIntegrationFactory) Installation(ctx context.Context, integration models.Integration, orgID uuid.UUID) (shared.IssueCreator, error) {
	return f.New(integration, orgID), nil
}

var _ commonint.InstallationFactory = (*VstsIntegrationFactory)(nil).Installation

// VstsIntegration is an azure devops integration installed into an organization.
type VstsIntegration struct {
	factory     *VstsIntegrationFactory
	integration models.Integration
	orgID       uuid.UUID
}

var _ shared.IssueCreator = (*VstsIntegration)(nil)

func (i *VstsIntegration) Model() models.Integration {
	return i.integration
}

func (i *VstsIntegration) OrgID() uuid.UUID {
	return i.orgID
}

// GetClient authenticates with the default identity of the organization integration.
func (i *VstsIntegration) GetClient(ctx context.Context) (*Client, error) {
	orgIntegration, err := i.factory.integrationRepository.ReadOrganizationIntegration(i.orgID, i.integration.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrIntegrationNotFound
		}
		return nil, fmt.Errorf("could not read organization integration: %w", err)
	}
	if orgIntegration.DefaultAuthID == nil {
		return nil, shared.ErrNoDefaultIdentity
	}

	identity, err := i.factory.identityRepository.Read(*orgIntegration.DefaultAuthID)
	if err != nil {
		return nil, fmt.Errorf("could not read identity %s: %w", *orgIntegration.DefaultAuthID, err)
	}

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: commonint.NewIdentityTokenSource(ctx, i.factory.identityRepository, i.factory.oauth2Config, identity),
			Base:   i.factory.transport,
		},
	}

	return NewClient(i.integration.Metadata.Data().DomainName, httpClient).WithRateLimiter(i.factory.limiter), nil
}

func (i *VstsIntegration) defaultProject() string {
	return i.integration.Metadata.Data().DefaultProject
}

func (i *VstsIntegration) CreateIssue(ctx context.Context, req dtos.CreateIssueRequest) (dtos.ExternalIssueData, error) {
	client, err := i.GetClient(ctx)
	if err != nil {
		return dtos.ExternalIssueData{}, err
	}

	project := req.Project
	if project == "" {
		project = i.defaultProject()
	}
	if project == "" {
		return dtos.ExternalIssueData{}, fmt.Errorf("no project given and integration %s has no default project", i.integration.ID)
	}

	workItemType := req.IssueType
	if workItemType == "" {
		workItemType = string(WorkItemTypeTask)
	}

	operations := []JSONPatchOperation{
		{Op: "add", Path: "/fields/System.Title", Value: req.Title},
		{Op: "add", Path: "/fields/System.Description", Value: req.Description},
	}
	for _, field := range slices.Sorted(maps.Keys(req.Fields)) {
		operations = append(operations, JSONPatchOperation{Op: "add", Path: "/fields/" + field, Value: req.Fields[field]})
	}
	if req.RuleURL != "" {
		operations = append(operations, JSONPatchOperation{
			Op:   "add",
			Path: "/relations/-",
			Value: map[string]any{
				"rel": "Hyperlink",
				"url": req.RuleURL,
			},
		})
	}

	workItem, err := client.CreateWorkItem(ctx, project, workItemType, operations)
	if err != nil {
		return dtos.ExternalIssueData{}, err
	}

	return dtos.ExternalIssueData{
		Key:         strconv.Itoa(workItem.ID),
		Title:       req.Title,
		Description: req.Description,
		WebURL:      workItem.WebURL(),
		Metadata: map[string]any{
			"project":      project,
			"workItemType": workItemType,
			"rev":          workItem.Rev,
		},
	}, nil
}

// GetCreateIssueConfig returns the form fields of the create ticket action.
// The work item types are the ones of project, or of the default project if empty.
func (i *VstsIntegration) GetCreateIssueConfig(ctx context.Context, project string) ([]dtos.FormField, error) {
	client, err := i.GetClient(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := client.GetProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}

	if project == "" {
		project = i.defaultProject()
	}
	if project == "" && len(projects) > 0 {
		project = projects[0].ID
	}

	projectChoices := utils.Map(projects, func(p Project) dtos.FormFieldChoice {
		return dtos.FormFieldChoice{Value: p.ID, Label: p.Name}
	})

	typeChoices := workItemTypeChoices()
	if project != "" {
		types, err := client.GetWorkItemTypes(ctx, project)
		if err != nil {
			return nil, fmt.Errorf("could not list work item types of project %s: %w", project, err)
		}
		enabled := utils.Filter(types, func(t WorkItemTypeDefinition) bool { return !t.IsDisabled })
		typeChoices = utils.Map(enabled, func(t WorkItemTypeDefinition) dtos.FormFieldChoice {
			return dtos.FormFieldChoice{Value: t.ReferenceName, Label: t.Name}
		})
	}

	defaultType := ""
	if task, ok := utils.Find(typeChoices, func(c dtos.FormFieldChoice) bool { return c.Value == string(WorkItemTypeTask) }); ok {
		defaultType = task.Value
	} else if len(typeChoices) > 0 {
		defaultType = typeChoices[0].Value
	}

	return []dtos.FormField{
		{
			Name:         "project",
			Label:        "Project",
			Type:         "choice",
			Required:     true,
			Choices:      projectChoices,
			DefaultValue: project,
			Placeholder:  project,
			UpdatesForm:  true,
		},
		{
			Name:         "work_item_type",
			Label:        "Work Item Type",
			Type:         "choice",
			Required:     true,
			Choices:      typeChoices,
			DefaultValue: defaultType,
			Placeholder:  "Bug",
		},
		{
			Name:        "title",
			Label:       "Title",
			Type:        "string",
			Placeholder: "{{event.title}}",
		},
		{
			Name:        "description",
			Label:       "Description",
			Type:        "textarea",
			Placeholder: "{{event.message}}",
		},
	}, nil
}
