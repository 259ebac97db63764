// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"github.com/l3montree-dev/alertflow/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewExternalIssueService, fx.As(new(shared.ExternalIssueService)))),
)
