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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/config"
	"github.com/l3montree-dev/alertflow/database/repositories"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/integrations/vstsint"
	"github.com/l3montree-dev/alertflow/integrationtestutil"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationControllerCreateIssueConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/_apis/projects":
			w.Write([]byte(`{"count":1,"value":[{"id":"ac7c05bb-7f8e-4880-85a6-e08f37fd4a10","name":"Fabrikam-Fiber-Git"}]}`)) // nolint:errcheck
		case "/Fabrikam-Fiber-Git/_apis/wit/workitemtypes":
			w.Write([]byte(`{"count":1,"value":[{"name":"Bug","referenceName":"Microsoft.VSTS.WorkItemTypes.Bug"}]}`)) // nolint:errcheck
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	db := integrationtestutil.InitSQLiteDatabase(t)
	fixture := integrationtestutil.CreateVstsIntegration(t, db, server.URL+"/")
	controller := NewIntegrationController(vstsint.NewVstsIntegrationFactory(
		config.Config{HTTPCache: config.HTTPCacheConfig{Size: 10, TTL: time.Minute}},
		repositories.NewIntegrationRepository(db),
		repositories.NewIdentityRepository(db),
	))

	newContext := func(integrationID string, project string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/?project="+project, nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)
		ctx.SetParamNames("integrationID")
		ctx.SetParamValues(integrationID)
		shared.SetOrg(ctx, fixture.Org)
		return ctx, rec
	}

	t.Run("should return the form fields of the selected project", func(t *testing.T) {
		ctx, rec := newContext(fixture.Integration.ID.String(), "Fabrikam-Fiber-Git")
		require.NoError(t, controller.CreateIssueConfig(ctx))

		var fields []dtos.FormField
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
		require.Len(t, fields, 4)
		assert.Equal(t, "project", fields[0].Name)
		assert.Equal(t, []dtos.FormFieldChoice{{Value: "Microsoft.VSTS.WorkItemTypes.Bug", Label: "Bug"}}, fields[1].Choices)
	})

	t.Run("should return not found for an integration outside of the organization", func(t *testing.T) {
		ctx, _ := newContext(uuid.New().String(), "")
		assert.Equal(t, 404, httpStatus(t, controller.CreateIssueConfig(ctx)))
	})

	t.Run("should answer with bad gateway if azure devops fails", func(t *testing.T) {
		ctx, _ := newContext(fixture.Integration.ID.String(), "Broken")
		assert.Equal(t, 502, httpStatus(t, controller.CreateIssueConfig(ctx)))
	})
}
