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

package router

import (
	"github.com/l3montree-dev/alertflow/controllers"
	"github.com/l3montree-dev/alertflow/middlewares"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/labstack/echo/v4"
)

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	apiV1Router APIV1Router,
	ruleController *controllers.RuleController,
	integrationController *controllers.IntegrationController,
	organizationRepository shared.OrganizationRepository,
) OrgRouter {
	/**
	Organization scoped router
	All routes below this line are scoped to a specific organization.
	*/
	organizationRouter := apiV1Router.Group.Group("/organizations/:organization",
		middlewares.OrganizationMiddleware(organizationRepository))

	organizationRouter.GET("/rules/:ruleID/labels/", ruleController.Labels)
	organizationRouter.POST("/rules/:ruleID/fire/", ruleController.Fire)

	organizationRouter.GET("/integrations/:integrationID/create-issue-config/", integrationController.CreateIssueConfig)

	return OrgRouter{
		Group: organizationRouter,
	}
}
