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
	"fmt"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/alertflow/database/repositories"
	"github.com/l3montree-dev/alertflow/integrations"
	"github.com/l3montree-dev/alertflow/integrations/vstsint"
	"github.com/l3montree-dev/alertflow/rules"
	"github.com/l3montree-dev/alertflow/services"
	"github.com/spf13/cobra"
)

func NewRulesCommand() *cobra.Command {
	rulesCmd := cobra.Command{
		Use:   "rules",
		Short: "Inspect alert rules",
	}

	rulesCmd.AddCommand(newRulesLabelsCommand())
	return &rulesCmd
}

func newRulesLabelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "labels <rule-id>",
		Short: "Print the label of every action of a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid rule id: %w", err)
			}

			cfg, db, closeDB, err := connect(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			integrationRepository := repositories.NewIntegrationRepository(db)
			registry := rules.NewRegistry()
			integrations.RegisterRuleActions(
				registry,
				cfg,
				integrationRepository,
				services.NewExternalIssueService(repositories.NewExternalIssueRepository(db), repositories.NewGroupLinkRepository(db)),
				vstsint.NewVstsIntegrationFactory(cfg, integrationRepository, repositories.NewIdentityRepository(db)),
			)

			rule, err := repositories.NewRuleRepository(db).Read(ruleID)
			if err != nil {
				return fmt.Errorf("could not read rule %s: %w", ruleID, err)
			}

			labels, err := rules.NewProcessor(registry).RenderLabels(rule)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text.FgHiCyan.Sprintf("%s (%s)", rule.Label, rule.ID))

			labelTable := table.NewWriter()
			labelTable.SetOutputMirror(cmd.OutOrStdout())
			labelTable.SetStyle(table.StyleLight)
			labelTable.AppendHeader(table.Row{"#", "Action", "Label"})
			for i, label := range labels {
				labelTable.AppendRow(table.Row{i + 1, rule.Actions[i].ID, label})
			}
			labelTable.Render()
			return nil
		},
	}
}
