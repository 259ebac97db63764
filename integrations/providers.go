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

package integrations

import (
	"github.com/l3montree-dev/alertflow/config"
	"github.com/l3montree-dev/alertflow/integrations/commonint"
	"github.com/l3montree-dev/alertflow/integrations/vstsint"
	"github.com/l3montree-dev/alertflow/rules"
	"github.com/l3montree-dev/alertflow/shared"
	"go.uber.org/fx"
)

// Module provides all integration constructors and registers their rule actions
var Module = fx.Options(
	// Azure DevOps Integration
	fx.Provide(vstsint.NewVstsIntegrationFactory),

	fx.Invoke(RegisterRuleActions),
)

func RegisterRuleActions(
	registry *rules.Registry,
	cfg config.Config,
	integrationRepository shared.IntegrationRepository,
	externalIssueService shared.ExternalIssueService,
	vstsFactory *vstsint.VstsIntegrationFactory,
) {
	registry.Register(vstsint.CreateTicketActionID, vstsint.NewCreateTicketActionFactory(commonint.TicketActionDependencies{
		IntegrationRepository: integrationRepository,
		ExternalIssueService:  externalIssueService,
		NewInstallation:       vstsFactory.Installation,
		FrontendURL:           cfg.FrontendURL,
	}))
}
