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
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/l3montree-dev/alertflow/database"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrateCmd := cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema",
	}

	migrateCmd.AddCommand(newMigrateUpCommand())
	migrateCmd.AddCommand(newMigrateVersionCommand())
	return &migrateCmd
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, closeDB, err := connect(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			return database.RunMigrationsWithDB(db)
		},
	}
}

func newMigrateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, closeDB, err := connect(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "no migration applied")
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}
