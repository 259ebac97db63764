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
	"os"
	"time"

	"github.com/l3montree-dev/alertflow/config"
	"github.com/l3montree-dev/alertflow/database"
	"github.com/l3montree-dev/alertflow/middlewares"
	"github.com/l3montree-dev/alertflow/rules"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv *echo.Echo, db shared.DB, registry *rules.Registry) APIV1Router {
	apiV1Router := srv.Group("/api/v1")

	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		resp := InfoResponse{
			Build: BuildInfo{
				Version: config.Version,
				Commit:  config.Commit,
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(middlewares.StartedAt).Seconds()),
			},
			Actions: registry.IDs(),
		}

		host, _ := os.Hostname()
		if host != "" {
			resp.Process.Hostname = host
		}

		dbInfo := DatabaseInfo{Status: "unknown"}
		sqlDB, err := db.DB()
		if err != nil {
			errMsg := "failed to get database instance"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		} else if err := sqlDB.Ping(); err != nil {
			errMsg := "database ping failed"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		} else {
			dbInfo.Status = "healthy"
			dbInfo.DBStats = sqlDB.Stats()

			// migrations only exist for postgres
			if db.Dialector.Name() == "postgres" {
				if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
					dbInfo.MigrationVersion = &ver
					dbInfo.MigrationDirty = &dirty
				} else {
					errStr := err.Error()
					dbInfo.MigrationError = &errStr
				}
			}
		}
		resp.Database = dbInfo

		return ctx.JSON(200, resp)
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		// Check database connectivity
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{
		Group: apiV1Router,
	}
}
