// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package rules

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
)

var ErrUnknownAction = errors.New("unknown rule action")

// Registry maps the action ids stored on rules to their factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]shared.RuleActionFactory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]shared.RuleActionFactory),
	}
}

// Register panics on duplicate ids, two providers claiming the same id is a programming error.
func (r *Registry) Register(id string, factory shared.RuleActionFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[id]; ok {
		panic(fmt.Sprintf("rule action %s registered twice", id))
	}
	r.factories[id] = factory
}

func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Instantiate builds every action of the rule in the order they are stored.
func (r *Registry) Instantiate(rule models.Rule) ([]shared.RuleAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]shared.RuleAction, 0, len(rule.Actions))
	for _, actionData := range rule.Actions {
		factory, ok := r.factories[actionData.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAction, actionData.ID)
		}
		action, err := factory(rule, actionData.Data)
		if err != nil {
			return nil, fmt.Errorf("could not build action %s of rule %s: %w", actionData.ID, rule.ID, err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}
