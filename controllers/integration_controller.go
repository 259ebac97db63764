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
	"errors"
	"log/slog"

	"github.com/l3montree-dev/alertflow/integrations/vstsint"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/labstack/echo/v4"
)

type IntegrationController struct {
	vstsIntegrationFactory *vstsint.VstsIntegrationFactory
}

func NewIntegrationController(vstsIntegrationFactory *vstsint.VstsIntegrationFactory) *IntegrationController {
	return &IntegrationController{
		vstsIntegrationFactory: vstsIntegrationFactory,
	}
}

// @Summary Form fields of the create work item action
// @Tags Integrations
// @Param organization path string true "Organization slug"
// @Param integrationID path string true "Integration ID"
// @Param project query string false "Selected Azure DevOps project"
// @Success 200 {array} dtos.FormField
// @Router /organizations/{organization}/integrations/{integrationID}/create-issue-config [get]
func (c *IntegrationController) CreateIssueConfig(ctx shared.Context) error {
	org := shared.GetOrg(ctx)
	integrationID, err := shared.GetUUIDParam(ctx, "integrationID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid integration id").WithInternal(err)
	}

	installation, err := c.vstsIntegrationFactory.Load(integrationID, org.ID)
	if err != nil {
		if errors.Is(err, shared.ErrIntegrationNotFound) {
			return echo.NewHTTPError(404, "integration not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not load integration").WithInternal(err)
	}

	fields, err := installation.GetCreateIssueConfig(ctx.Request().Context(), ctx.QueryParam("project"))
	if err != nil {
		slog.Error("could not fetch create issue config", "err", err, "integrationID", integrationID)
		return echo.NewHTTPError(502, "could not fetch configuration from azure devops").WithInternal(err)
	}

	return ctx.JSON(200, fields)
}
