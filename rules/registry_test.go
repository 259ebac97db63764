// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package rules

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/mocks"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleWithActions(ids ...string) models.Rule {
	rule := models.Rule{Model: models.Model{ID: uuid.New()}, Label: "rule"}
	for _, id := range ids {
		rule.Actions = append(rule.Actions, models.RuleActionData{ID: id, Data: map[string]any{"id": id}})
	}
	return rule
}

func TestRegistryInstantiate(t *testing.T) {
	t.Run("should build the actions in the stored order", func(t *testing.T) {
		registry := NewRegistry()
		var seen []string
		factory := func(rule models.Rule, data map[string]any) (shared.RuleAction, error) {
			seen = append(seen, data["id"].(string))
			return mocks.NewRuleAction(t), nil
		}
		registry.Register("b", factory)
		registry.Register("a", factory)

		actions, err := registry.Instantiate(ruleWithActions("b", "a", "b"))
		require.NoError(t, err)
		assert.Len(t, actions, 3)
		assert.Equal(t, []string{"b", "a", "b"}, seen)
		assert.Equal(t, []string{"a", "b"}, registry.IDs())
	})

	t.Run("should list the id of an unknown action", func(t *testing.T) {
		registry := NewRegistry()

		_, err := registry.Instantiate(ruleWithActions("integrations.unknown"))
		assert.ErrorIs(t, err, ErrUnknownAction)
		assert.Contains(t, err.Error(), "integrations.unknown")
	})

	t.Run("should wrap the factory error", func(t *testing.T) {
		registry := NewRegistry()
		invalid := errors.New("invalid config")
		registry.Register("a", func(rule models.Rule, data map[string]any) (shared.RuleAction, error) {
			return nil, invalid
		})

		_, err := registry.Instantiate(ruleWithActions("a"))
		assert.ErrorIs(t, err, invalid)
	})

	t.Run("should panic on a duplicate id", func(t *testing.T) {
		registry := NewRegistry()
		factory := func(rule models.Rule, data map[string]any) (shared.RuleAction, error) { return nil, nil }
		registry.Register("a", factory)
		assert.Panics(t, func() { registry.Register("a", factory) })
	})
}
