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

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// filled at build time
var (
	Version = "dev"
	Commit  = "unknown"
)

type PostgresConfig struct {
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	DB              string        `mapstructure:"db"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

type AzureDevOpsConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TokenURL     string `mapstructure:"token_url"`
	Scope        string `mapstructure:"scope"`

	// outbound requests per second, shared by all installations
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	RequestBurst      int     `mapstructure:"request_burst"`
}

type HTTPCacheConfig struct {
	Size int           `mapstructure:"size"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type Config struct {
	Port               string            `mapstructure:"port"`
	FrontendURL        string            `mapstructure:"frontend_url"`
	ErrorTrackingDSN   string            `mapstructure:"error_tracking_dsn"`
	TracingEndpoint    string            `mapstructure:"otel_exporter_otlp_endpoint"`
	DisableAutomigrate bool              `mapstructure:"disable_automigrate"`
	Postgres           PostgresConfig    `mapstructure:"postgres"`
	AzureDevOps        AzureDevOpsConfig `mapstructure:"azure_devops"`
	HTTPCache          HTTPCacheConfig   `mapstructure:"http_cache"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("frontend_url", "")
	v.SetDefault("error_tracking_dsn", "")
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("disable_automigrate", false)

	v.SetDefault("postgres.user", "alertflow")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.db", "alertflow")
	// DB_* names are kept for existing deployments
	v.SetDefault("postgres.max_open_conns", 25)
	v.SetDefault("postgres.min_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", 4*time.Hour)
	v.SetDefault("postgres.conn_max_idle_time", 15*time.Minute)

	v.SetDefault("azure_devops.client_id", "")
	v.SetDefault("azure_devops.client_secret", "")
	v.SetDefault("azure_devops.token_url", "https://login.microsoftonline.com/organizations/oauth2/v2.0/token")
	v.SetDefault("azure_devops.scope", "499b84ac-1321-427f-aa17-267ca6975798/.default offline_access")
	v.SetDefault("azure_devops.requests_per_second", 10)
	v.SetDefault("azure_devops.request_burst", 5)

	v.SetDefault("http_cache.size", 256)
	v.SetDefault("http_cache.ttl", 5*time.Minute)
}

// Load reads the configuration from the environment (POSTGRES_HOST, AZURE_DEVOPS_CLIENT_ID, ...)
// and, if set, from the config file.
func Load(v *viper.Viper, configFile string) (Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range map[string]string{
		"postgres.max_open_conns":     "DB_MAX_OPEN_CONNS",
		"postgres.min_conns":          "DB_MIN_CONNS",
		"postgres.conn_max_lifetime":  "DB_CONN_MAX_LIFETIME",
		"postgres.conn_max_idle_time": "DB_CONN_MAX_IDLE_TIME",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("could not bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	return cfg, nil
}
