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

package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/database/repositories"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/integrationtestutil"
	"github.com/l3montree-dev/alertflow/mocks"
	"github.com/l3montree-dev/alertflow/rules"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ruleControllerSetup struct {
	controller *RuleController
	org        models.Org
	group      models.Group
	rule       models.Rule
	action     *mocks.RuleAction
}

func newRuleControllerSetup(t *testing.T) ruleControllerSetup {
	db := integrationtestutil.InitSQLiteDatabase(t)
	org, project, group := integrationtestutil.CreateOrgProjectAndGroup(t, db)

	rule := models.Rule{
		ProjectID: project.ID,
		Label:     "on new groups",
		Actions:   []models.RuleActionData{{ID: "test.action", Data: map[string]any{}}},
	}
	require.NoError(t, db.Create(&rule).Error)

	action := mocks.NewRuleAction(t)
	registry := rules.NewRegistry()
	registry.Register("test.action", func(rule models.Rule, data map[string]any) (shared.RuleAction, error) {
		return action, nil
	})

	return ruleControllerSetup{
		controller: NewRuleController(
			repositories.NewRuleRepository(db),
			repositories.NewGroupRepository(db),
			rules.NewProcessor(registry),
		),
		org:    org,
		group:  group,
		rule:   rule,
		action: action,
	}
}

func (s ruleControllerSetup) context(method string, body string, ruleID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e := echo.New()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("ruleID")
	ctx.SetParamValues(ruleID)
	shared.SetOrg(ctx, s.org)
	return ctx, rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr.Code
}

func TestRuleControllerLabels(t *testing.T) {
	t.Run("should return the label of every action", func(t *testing.T) {
		s := newRuleControllerSetup(t)
		s.action.On("RenderLabel").Return("Create an Azure DevOps work item in fabrikam-fiber-inc with these ")

		ctx, rec := s.context(http.MethodGet, "", s.rule.ID.String())
		require.NoError(t, s.controller.Labels(ctx))

		var body dtos.RuleLabelsDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, s.rule.ID.String(), body.RuleID)
		assert.Equal(t, []string{"Create an Azure DevOps work item in fabrikam-fiber-inc with these "}, body.Labels)
	})

	t.Run("should not expose rules of other organizations", func(t *testing.T) {
		s := newRuleControllerSetup(t)
		s.org = models.Org{Model: models.Model{ID: uuid.New()}}

		ctx, _ := s.context(http.MethodGet, "", s.rule.ID.String())
		assert.Equal(t, 404, httpStatus(t, s.controller.Labels(ctx)))
	})

	t.Run("should reject an invalid rule id", func(t *testing.T) {
		s := newRuleControllerSetup(t)

		ctx, _ := s.context(http.MethodGet, "", "not-a-uuid")
		assert.Equal(t, 400, httpStatus(t, s.controller.Labels(ctx)))
	})
}

func TestRuleControllerFire(t *testing.T) {
	t.Run("should run the rule actions for the group", func(t *testing.T) {
		s := newRuleControllerSetup(t)
		var received dtos.Event
		s.action.On("After", mock.Anything, mock.Anything, shared.EventState{IsNew: true}).Return([]shared.CallbackFuture{{
			Key: "test:1",
			Callback: func(ctx context.Context, event dtos.Event, futures []shared.RuleFuture) error {
				received = event
				return nil
			},
		}}, nil)

		body := `{"groupId":"` + s.group.ID.String() + `","eventId":"ev-1","title":"TypeError","message":"foo is undefined","level":"error","isNew":true}`
		ctx, rec := s.context(http.MethodPost, body, s.rule.ID.String())
		require.NoError(t, s.controller.Fire(ctx))

		assert.Equal(t, 202, rec.Code)
		assert.Equal(t, "ev-1", received.ID)
		assert.Equal(t, "foo is undefined", received.Message)
		assert.Equal(t, s.group.ID, received.Group.ID)
		assert.Equal(t, s.org.ID, received.Group.Project.OrganizationID)
	})

	t.Run("should answer with bad gateway if a callback failed", func(t *testing.T) {
		s := newRuleControllerSetup(t)
		s.action.On("After", mock.Anything, mock.Anything, mock.Anything).Return([]shared.CallbackFuture{{
			Key: "test:1",
			Callback: func(ctx context.Context, event dtos.Event, futures []shared.RuleFuture) error {
				return errors.New("azure devops returned 500")
			},
		}}, nil)

		body := `{"groupId":"` + s.group.ID.String() + `","title":"TypeError"}`
		ctx, _ := s.context(http.MethodPost, body, s.rule.ID.String())
		assert.Equal(t, 502, httpStatus(t, s.controller.Fire(ctx)))
	})

	t.Run("should validate the request body", func(t *testing.T) {
		s := newRuleControllerSetup(t)

		ctx, _ := s.context(http.MethodPost, `{"groupId":"nope"}`, s.rule.ID.String())
		assert.Equal(t, 400, httpStatus(t, s.controller.Fire(ctx)))
	})

	t.Run("should return not found for an unknown group", func(t *testing.T) {
		s := newRuleControllerSetup(t)

		body := `{"groupId":"` + uuid.New().String() + `","title":"TypeError"}`
		ctx, _ := s.context(http.MethodPost, body, s.rule.ID.String())
		assert.Equal(t, 404, httpStatus(t, s.controller.Fire(ctx)))
	})
}
