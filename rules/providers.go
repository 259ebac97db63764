// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package rules

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewRegistry),
	fx.Provide(NewProcessor),
)
