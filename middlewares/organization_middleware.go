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

package middlewares

import (
	"errors"
	"log/slog"

	"github.com/l3montree-dev/alertflow/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// OrganizationMiddleware resolves the :organization slug and places the organization into the context.
func OrganizationMiddleware(organizationRepository shared.OrganizationRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			organization := shared.GetParam(ctx, "organization")
			if organization == "" {
				slog.Error("no organization provided")
				return echo.NewHTTPError(400, "no organization")
			}

			org, err := organizationRepository.ReadBySlug(organization)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(404, "organization not found").WithInternal(err)
				}
				return echo.NewHTTPError(500, "could not read organization").WithInternal(err)
			}

			shared.SetOrg(ctx, org)
			return next(ctx)
		}
	}
}
