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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVstsIntegrationCreateIssue(t *testing.T) {
	t.Run("should use the default project and link the rule", func(t *testing.T) {
		s := newActionTestSetup(t)
		installation := s.factory.New(s.fixture.Integration, s.fixture.Org.ID)

		data, err := installation.CreateIssue(context.Background(), dtos.CreateIssueRequest{
			Title:       "Hello",
			Description: "Fix this.",
			IssueType:   string(WorkItemTypeTask),
			RuleURL:     "https://app.example.com/baz-corp/projects/bar/alerts/rules/1/",
		})
		require.NoError(t, err)

		assert.Equal(t, "309", data.Key)
		assert.Equal(t, "https://fabrikam-fiber-inc.visualstudio.com/web/wi.aspx?pcguid=d81542e4-cdfa-4333-b082-1ae2d6c3ad16&id=309", data.WebURL)
		assert.Equal(t, "0987654321", data.Metadata["project"])

		require.Len(t, s.server.operations, 3)
		assert.Equal(t, "/relations/-", s.server.operations[2].Path)
		assert.Equal(t, map[string]any{"rel": "Hyperlink", "url": "https://app.example.com/baz-corp/projects/bar/alerts/rules/1/"}, s.server.operations[2].Value)
	})

	t.Run("should add the configured fields sorted by name", func(t *testing.T) {
		s := newActionTestSetup(t)
		installation := s.factory.New(s.fixture.Integration, s.fixture.Org.ID)

		_, err := installation.CreateIssue(context.Background(), dtos.CreateIssueRequest{
			Title:     "Hello",
			IssueType: string(WorkItemTypeTask),
			Fields: map[string]any{
				"System.Tags":     "alertflow",
				"System.AreaPath": "Fabrikam-Fiber-Git\\Website",
			},
		})
		require.NoError(t, err)

		require.Len(t, s.server.operations, 4)
		assert.Equal(t, JSONPatchOperation{Op: "add", Path: "/fields/System.AreaPath", Value: "Fabrikam-Fiber-Git\\Website"}, s.server.operations[2])
		assert.Equal(t, JSONPatchOperation{Op: "add", Path: "/fields/System.Tags", Value: "alertflow"}, s.server.operations[3])
	})

	t.Run("should fail without a default identity", func(t *testing.T) {
		s := newActionTestSetup(t)
		require.NoError(t, s.db.Model(&models.OrganizationIntegration{}).Where("id = ?", s.fixture.OrganizationIntegration.ID).Update("default_auth_id", nil).Error)

		_, err := s.factory.New(s.fixture.Integration, s.fixture.Org.ID).CreateIssue(context.Background(), dtos.CreateIssueRequest{Title: "Hello"})
		assert.ErrorIs(t, err, shared.ErrNoDefaultIdentity)
		assert.Equal(t, int32(0), s.server.calls.Load())
	})

	t.Run("should fail if the integration is not installed in the organization", func(t *testing.T) {
		s := newActionTestSetup(t)

		_, err := s.factory.New(s.fixture.Integration, uuid.New()).CreateIssue(context.Background(), dtos.CreateIssueRequest{Title: "Hello"})
		assert.ErrorIs(t, err, shared.ErrIntegrationNotFound)
	})
}

func TestVstsIntegrationFactoryLoad(t *testing.T) {
	s := newActionTestSetup(t)

	installation, err := s.factory.Load(s.fixture.Integration.ID, s.fixture.Org.ID)
	require.NoError(t, err)
	assert.Equal(t, s.fixture.Integration.ID, installation.Model().ID)
	assert.Equal(t, s.fixture.Org.ID, installation.OrgID())

	_, err = s.factory.Load(uuid.New(), s.fixture.Org.ID)
	assert.ErrorIs(t, err, shared.ErrIntegrationNotFound)
}

func TestVstsIntegrationGetCreateIssueConfig(t *testing.T) {
	s := newActionTestSetup(t)
	installation := s.factory.New(s.fixture.Integration, s.fixture.Org.ID)

	fields, err := installation.GetCreateIssueConfig(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, fields, 4)

	project := fields[0]
	assert.Equal(t, "project", project.Name)
	assert.True(t, project.UpdatesForm)
	assert.Equal(t, "0987654321", project.DefaultValue)
	assert.Equal(t, []dtos.FormFieldChoice{{Value: "ac7c05bb-7f8e-4880-85a6-e08f37fd4a10", Label: "Fabrikam-Fiber-Git"}}, project.Choices)

	workItemType := fields[1]
	assert.Equal(t, "work_item_type", workItemType.Name)
	assert.Equal(t, string(WorkItemTypeTask), workItemType.DefaultValue)
	// disabled types are not offered
	assert.Equal(t, []dtos.FormFieldChoice{
		{Value: "Microsoft.VSTS.WorkItemTypes.Bug", Label: "Bug"},
		{Value: "Microsoft.VSTS.WorkItemTypes.Task", Label: "Task"},
	}, workItemType.Choices)

	// served from the cache the second time
	calls := s.server.calls.Load()
	_, err = installation.GetCreateIssueConfig(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, calls, s.server.calls.Load())
}
