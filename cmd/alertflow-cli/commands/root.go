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

package commands

import (
	"context"
	"fmt"

	"github.com/l3montree-dev/alertflow/config"
	"github.com/l3montree-dev/alertflow/database"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "alertflow-cli",
	Short: "Management cli",
	Long:  `The alertflow cli can be used to maintain the database of an alertflow instance and to inspect its rules.`,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a config file, environment variables take precedence")
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(viper.New(), configFile)
}

// connect opens the database. The returned func closes the pool.
func connect(cmd *cobra.Command) (config.Config, shared.DB, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("could not load configuration: %w", err)
	}

	db, pool, err := database.NewConnection(context.Background(), database.PoolConfigFromConfig(cfg))
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return cfg, db, pool.Close, nil
}
