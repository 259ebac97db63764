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

package database

import (
	"time"

	"github.com/l3montree-dev/alertflow/config"
)

// PoolConfig holds database connection pool configuration
type PoolConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// PoolConfigFromConfig maps the loaded configuration to the pool settings.
// Unset or invalid values fall back to the defaults of config.Load.
func PoolConfigFromConfig(cfg config.Config) PoolConfig {
	poolCfg := PoolConfig{
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		DBName:          cfg.Postgres.DB,
		MaxOpenConns:    25,
		MinConns:        5,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	}

	if cfg.Postgres.MaxOpenConns > 0 {
		poolCfg.MaxOpenConns = int32(cfg.Postgres.MaxOpenConns)
	}
	if cfg.Postgres.MinConns >= 0 {
		poolCfg.MinConns = int32(cfg.Postgres.MinConns)
	}

	return poolCfg
}
