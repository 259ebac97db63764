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

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/alertflow/config"
	"github.com/l3montree-dev/alertflow/controllers"
	"github.com/l3montree-dev/alertflow/database"
	"github.com/l3montree-dev/alertflow/database/repositories"
	"github.com/l3montree-dev/alertflow/integrations"
	"github.com/l3montree-dev/alertflow/middlewares"
	"github.com/l3montree-dev/alertflow/monitoring"
	"github.com/l3montree-dev/alertflow/router"
	"github.com/l3montree-dev/alertflow/rules"
	"github.com/l3montree-dev/alertflow/services"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

//	@title			alertflow API
//	@version		v1
//	@description	alertflow API

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg, err := config.Load(viper.New(), os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("could not load configuration", "err", err)
		os.Exit(1)
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}
	flush, err := monitoring.InitErrorTracking(cfg.ErrorTrackingDSN, environment, config.Version)
	if err != nil {
		slog.Error("could not initialize error tracking", "err", err)
		flush = func() {}
	}
	defer flush()

	shutdownTracing, err := monitoring.InitTracing(context.Background(), cfg.TracingEndpoint)
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer shutdownTracing(context.Background()) // nolint:errcheck

	// Catch panics
	defer func() {
		if err := recover(); err != nil {
			monitoring.RecoverAndAlert("alertflow crashed", err)
			flush()
			os.Exit(1)
		}
	}()

	db, pool, err := database.NewConnection(context.Background(), database.PoolConfigFromConfig(cfg))
	if err != nil {
		slog.Error(err.Error()) // print detailed error message to stdout
		panic(errors.New("Failed to setup database connection"))
	}

	// Run database migrations using the existing database connection
	if !cfg.DisableAutomigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(newServer),
		repositories.Module,
		services.Module,
		rules.Module,
		integrations.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(OrgRouter router.OrgRouter) {}),
		fx.Invoke(func(server *echo.Echo) {}),
	).Run()
}

func newServer(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool) *echo.Echo {
	server := middlewares.NewServer(cfg)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "port", cfg.Port)
				if err := server.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					monitoring.Alert("server stopped unexpectedly", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer pool.Close()
			return server.Shutdown(ctx)
		},
	})
	return server
}
