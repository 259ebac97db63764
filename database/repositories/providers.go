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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/l3montree-dev/alertflow/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewOrgRepository, fx.As(new(shared.OrganizationRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewGroupRepository, fx.As(new(shared.GroupRepository)))),
	fx.Provide(fx.Annotate(NewIntegrationRepository, fx.As(new(shared.IntegrationRepository)))),
	fx.Provide(fx.Annotate(NewIdentityRepository, fx.As(new(shared.IdentityRepository)))),
	fx.Provide(fx.Annotate(NewExternalIssueRepository, fx.As(new(shared.ExternalIssueRepository)))),
	fx.Provide(fx.Annotate(NewGroupLinkRepository, fx.As(new(shared.GroupLinkRepository)))),
	fx.Provide(fx.Annotate(NewRuleRepository, fx.As(new(shared.RuleRepository)))),
)
