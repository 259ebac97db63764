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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/config"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/database/repositories"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/integrations/commonint"
	"github.com/l3montree-dev/alertflow/integrationtestutil"
	"github.com/l3montree-dev/alertflow/services"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type azureDevopsServer struct {
	*httptest.Server
	calls      atomic.Int32
	operations []JSONPatchOperation
}

func newAzureDevopsServer(t *testing.T) *azureDevopsServer {
	s := &azureDevopsServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		assert.Equal(t, "Bearer 123456789", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPatch && r.URL.Path == "/0987654321/_apis/wit/workitems/$Microsoft.VSTS.WorkItemTypes.Task":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&s.operations))
			w.Write([]byte(workItemResponse)) // nolint:errcheck
		case r.Method == http.MethodGet && r.URL.Path == "/_apis/projects":
			w.Write([]byte(`{"count":1,"value":[{"id":"ac7c05bb-7f8e-4880-85a6-e08f37fd4a10","name":"Fabrikam-Fiber-Git","state":"wellFormed"}]}`)) // nolint:errcheck
		case r.Method == http.MethodGet && r.URL.Path == "/0987654321/_apis/wit/workitemtypes":
			w.Write([]byte(`{"count":3,"value":[{"name":"Bug","referenceName":"Microsoft.VSTS.WorkItemTypes.Bug"},{"name":"Task","referenceName":"Microsoft.VSTS.WorkItemTypes.Task"},{"name":"Old","referenceName":"Custom.Old","isDisabled":true}]}`)) // nolint:errcheck
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.String())
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

type actionTestSetup struct {
	db      shared.DB
	server  *azureDevopsServer
	fixture integrationtestutil.VstsFixture
	factory *VstsIntegrationFactory
	deps    commonint.TicketActionDependencies
	rule    models.Rule
}

func newActionTestSetup(t *testing.T) actionTestSetup {
	db := integrationtestutil.InitSQLiteDatabase(t)
	server := newAzureDevopsServer(t)
	fixture := integrationtestutil.CreateVstsIntegration(t, db, server.URL+"/")

	integrationRepository := repositories.NewIntegrationRepository(db)
	factory := NewVstsIntegrationFactory(config.Config{
		HTTPCache: config.HTTPCacheConfig{Size: 10, TTL: time.Minute},
	}, integrationRepository, repositories.NewIdentityRepository(db))

	rule := models.Rule{ProjectID: fixture.Project.ID, Label: "test rule"}
	require.NoError(t, db.Create(&rule).Error)

	return actionTestSetup{
		db:      db,
		server:  server,
		fixture: fixture,
		factory: factory,
		deps: commonint.TicketActionDependencies{
			IntegrationRepository: integrationRepository,
			ExternalIssueService: services.NewExternalIssueService(
				repositories.NewExternalIssueRepository(db),
				repositories.NewGroupLinkRepository(db),
			),
			NewInstallation: factory.Installation,
		},
		rule: rule,
	}
}

func (s actionTestSetup) event() dtos.Event {
	return dtos.Event{ID: "ev-1", Title: s.fixture.Group.Title, Level: "error", Group: s.fixture.Group}
}

func TestAzureDevopsCreateTicketAction(t *testing.T) {
	t.Run("should create the work item and store the external issue", func(t *testing.T) {
		s := newActionTestSetup(t)
		action, err := NewAzureDevopsCreateTicketAction(s.rule, map[string]any{
			"title":          "Hello",
			"description":    "Fix this.",
			"project":        "0987654321",
			"work_item_type": "Microsoft.VSTS.WorkItemTypes.Task",
			"integration":    s.fixture.Integration.ID,
		}, s.deps)
		require.NoError(t, err)

		event := s.event()
		futures, err := action.After(context.Background(), event, shared.EventState{IsNew: true})
		require.NoError(t, err)
		require.Len(t, futures, 1)

		err = futures[0].Callback(context.Background(), event, []shared.RuleFuture{{Rule: s.rule, Kwargs: futures[0].Kwargs}})
		require.NoError(t, err)

		assert.Equal(t, int32(1), s.server.calls.Load())
		require.Len(t, s.server.operations, 2)
		assert.Equal(t, JSONPatchOperation{Op: "add", Path: "/fields/System.Title", Value: "Hello"}, s.server.operations[0])
		assert.Equal(t, JSONPatchOperation{Op: "add", Path: "/fields/System.Description", Value: "Fix this."}, s.server.operations[1])

		var externalIssue models.ExternalIssue
		require.NoError(t, s.db.First(&externalIssue, "key = ?", "309").Error)
		assert.Equal(t, s.fixture.Integration.ID, externalIssue.IntegrationID)
		assert.Equal(t, s.fixture.Org.ID, externalIssue.OrgID)
		assert.Equal(t, "Hello", externalIssue.Title)

		var links []models.GroupLink
		require.NoError(t, s.db.Find(&links, "group_id = ?", s.fixture.Group.ID).Error)
		require.Len(t, links, 1)
		assert.Equal(t, externalIssue.ID, links[0].LinkedID)
		assert.Equal(t, models.RelationshipReferences, links[0].Relationship)
	})

	t.Run("should not create a work item if the group already references one", func(t *testing.T) {
		s := newActionTestSetup(t)
		externalIssue := models.ExternalIssue{
			OrgID:         s.fixture.Org.ID,
			IntegrationID: s.fixture.Integration.ID,
			Key:           "6",
			Title:         s.fixture.Group.Title,
			Description:   "Fix this.",
		}
		require.NoError(t, s.db.Create(&externalIssue).Error)
		require.NoError(t, s.db.Create(&models.GroupLink{
			GroupID:      s.fixture.Group.ID,
			ProjectID:    s.fixture.Project.ID,
			LinkedType:   models.LinkedTypeIssue,
			LinkedID:     externalIssue.ID,
			Relationship: models.RelationshipReferences,
			Provider:     Provider,
		}).Error)

		action, err := NewAzureDevopsCreateTicketAction(s.rule, map[string]any{
			"title":          "Hello",
			"description":    "Fix this.",
			"project":        "0987654321",
			"work_item_type": "Microsoft.VSTS.WorkItemTypes.Task",
			"integration":    s.fixture.Integration.ID.String(),
		}, s.deps)
		require.NoError(t, err)

		event := s.event()
		futures, err := action.After(context.Background(), event, shared.EventState{})
		require.NoError(t, err)
		require.Len(t, futures, 1)

		require.NoError(t, futures[0].Callback(context.Background(), event, nil))
		require.NoError(t, futures[0].Callback(context.Background(), event, []shared.RuleFuture{{Rule: s.rule, Kwargs: futures[0].Kwargs}}))
		assert.Equal(t, int32(0), s.server.calls.Load())

		var count int64
		require.NoError(t, s.db.Model(&models.ExternalIssue{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("should refuse to run with an incomplete configuration", func(t *testing.T) {
		s := newActionTestSetup(t)
		action, err := NewAzureDevopsCreateTicketAction(s.rule, map[string]any{
			"integration": s.fixture.Integration.ID.String(),
		}, s.deps)
		require.NoError(t, err)

		futures, err := action.After(context.Background(), s.event(), shared.EventState{})
		assert.Error(t, err)
		assert.Nil(t, futures)
		assert.Equal(t, int32(0), s.server.calls.Load())
	})
}

func TestAzureDevopsCreateTicketActionRenderLabel(t *testing.T) {
	t.Run("should render the integration name", func(t *testing.T) {
		s := newActionTestSetup(t)
		action, err := NewAzureDevopsCreateTicketAction(s.rule, map[string]any{
			"integration":    s.fixture.Integration.ID.String(),
			"work_item_type": "Microsoft.VSTS.WorkItemTypes.Task",
			"project":        "0987654321",
			"dynamic_form_fields": map[string]any{
				"project": map[string]any{
					"name":         "project",
					"required":     true,
					"type":         "choice",
					"choices":      []any{[]any{"ac7c05bb-7f8e-4880-85a6-e08f37fd4a10", "Fabrikam-Fiber-Git"}},
					"defaultValue": "ac7c05bb-7f8e-4880-85a6-e08f37fd4a10",
					"label":        "Project",
					"updatesForm":  true,
				},
			},
		}, s.deps)
		require.NoError(t, err)

		assert.Equal(t, "Create an Azure DevOps work item in fabrikam-fiber-inc with these ", action.RenderLabel())
	})

	t.Run("should render the removed placeholder without integration", func(t *testing.T) {
		s := newActionTestSetup(t)
		deletedID := s.fixture.Integration.ID
		require.NoError(t, s.db.Delete(&models.Integration{}, "id = ?", deletedID).Error)

		action, err := NewAzureDevopsCreateTicketAction(s.rule, map[string]any{"integration": deletedID.String()}, s.deps)
		require.NoError(t, err)

		assert.Equal(t, "Create an Azure DevOps work item in [removed] with these ", action.RenderLabel())
	})
}

func TestDecodeCreateTicketConfig(t *testing.T) {
	integrationID := uuid.New()

	t.Run("should decode additional fields", func(t *testing.T) {
		config, err := DecodeCreateTicketConfig(map[string]any{"integration": integrationID.String(), "fields": map[string]any{"System.Tags": "alertflow"}})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"System.Tags": "alertflow"}, config.Fields)
	})

	t.Run("should accept the integration as uuid", func(t *testing.T) {
		config, err := DecodeCreateTicketConfig(map[string]any{"integration": integrationID, "work_item_type": "Microsoft.VSTS.WorkItemTypes.Bug"})
		require.NoError(t, err)
		assert.Equal(t, integrationID.String(), config.Integration)
		assert.Equal(t, WorkItemTypeBug, config.WorkItemType)
	})

	t.Run("should reject unknown work item types", func(t *testing.T) {
		_, err := DecodeCreateTicketConfig(map[string]any{"integration": integrationID.String(), "work_item_type": "Bug"})
		assert.Error(t, err)
	})

	t.Run("should require the integration", func(t *testing.T) {
		_, err := DecodeCreateTicketConfig(map[string]any{"project": "0987654321"})
		assert.Error(t, err)

		_, err = DecodeCreateTicketConfig(map[string]any{"integration": "not-a-uuid"})
		assert.Error(t, err)
	})

	t.Run("should know every work item type", func(t *testing.T) {
		for _, w := range workItemTypes {
			assert.True(t, w.Type.Valid(), w.Type)
		}
		assert.Len(t, workItemTypeChoices(), 15)
		assert.False(t, WorkItemType("Microsoft.VSTS.WorkItemTypes.Unknown").Valid())
	})
}
