// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package rules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/monitoring"
	"github.com/l3montree-dev/alertflow/shared"
)

type Processor struct {
	registry *Registry
}

func NewProcessor(registry *Registry) *Processor {
	return &Processor{registry: registry}
}

type scheduledCallback struct {
	callback shared.CallbackFunc
	futures  []shared.RuleFuture
}

// Apply runs the actions of a single rule.
func (p *Processor) Apply(ctx context.Context, rule models.Rule, event dtos.Event, state shared.EventState) error {
	return p.ApplyAll(ctx, []models.Rule{rule}, event, state)
}

// ApplyAll runs the actions of all rules which fired for the event.
// Futures sharing a key are handed to a single callback invocation, in the order the keys first appeared.
func (p *Processor) ApplyAll(ctx context.Context, rules []models.Rule, event dtos.Event, state shared.EventState) error {
	var errs []error
	scheduled := make(map[string]*scheduledCallback)
	order := make([]string, 0)

	for _, rule := range rules {
		actions, err := p.registry.Instantiate(rule)
		if err != nil {
			monitoring.Alert("could not instantiate rule actions", err)
			errs = append(errs, err)
			continue
		}

		for _, action := range actions {
			futures, err := action.After(ctx, event, state)
			if err != nil {
				err = fmt.Errorf("action %s of rule %s: %w", action.ID(), rule.ID, err)
				monitoring.Alert("rule action failed", err)
				errs = append(errs, err)
				continue
			}

			for _, future := range futures {
				s, ok := scheduled[future.Key]
				if !ok {
					s = &scheduledCallback{callback: future.Callback}
					scheduled[future.Key] = s
					order = append(order, future.Key)
				}
				s.futures = append(s.futures, shared.RuleFuture{Rule: rule, Kwargs: future.Kwargs})
			}
		}
	}

	for _, key := range order {
		s := scheduled[key]
		if err := p.invoke(ctx, key, s, event); err != nil {
			err = fmt.Errorf("callback %s: %w", key, err)
			monitoring.Alert("rule callback failed", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (p *Processor) invoke(ctx context.Context, key string, s *scheduledCallback, event dtos.Event) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("rule callback panicked", r)
			err = fmt.Errorf("callback panicked: %v", r)
		}
		monitoring.RuleCallbackDuration.WithLabelValues(key).Observe(time.Since(start).Seconds())
	}()

	slog.Debug("running rule callback", "key", key, "futures", len(s.futures), "event", event.ID)
	return s.callback(ctx, event, s.futures)
}

// RenderLabels returns the label of every action of the rule.
func (p *Processor) RenderLabels(rule models.Rule) ([]string, error) {
	actions, err := p.registry.Instantiate(rule)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(actions))
	for _, action := range actions {
		labels = append(labels, action.RenderLabel())
	}
	return labels, nil
}
