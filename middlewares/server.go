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
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/l3montree-dev/alertflow/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

// StartedAt is set once the server is created
var StartedAt time.Time

func registerMiddlewares(e *echo.Echo, cfg config.Config) {
	e.Pre(middleware.AddTrailingSlash())

	allowOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowOrigins = []string{cfg.FrontendURL}
	}
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     allowOrigins,
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(otelecho.Middleware("alertflow"))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		he, ok := err.(*echo.HTTPError)
		if !ok {
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		var message any
		switch m := he.Message.(type) {
		case string:
			message = echo.Map{"message": m}
		case json.Marshaler:
			// this type knows how to format itself to JSON
			message = m
		case error:
			message = echo.Map{"message": m.Error()}
		default:
			message = m
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(he.Code); err != nil {
				slog.Error("could not send error response", "err", err)
			}
			return
		}
		if err := ctx.JSON(he.Code, message); err != nil {
			slog.Error("could not send error response", "err", err)
		}
	}
}

func NewServer(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)
	StartedAt = time.Now()
	return e
}
