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

package shared

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
)

func GetOrg(ctx Context) models.Org {
	return ctx.Get("organization").(models.Org)
}

func SetOrg(ctx Context, org models.Org) {
	ctx.Set("organization", org)
}

func HasOrganization(ctx Context) bool {
	_, ok := ctx.Get("organization").(models.Org)
	return ok
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v != "" {
		return SanitizeParam(v)
	}
	// middlewares might place it into the context
	if s, ok := ctx.Get(param).(string); ok {
		return s
	}
	return ""
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	v := GetParam(ctx, param)
	if v == "" {
		return uuid.Nil, fmt.Errorf("missing %s parameter", param)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s parameter: %w", param, err)
	}
	return id, nil
}
