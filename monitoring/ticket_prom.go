// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TicketCreatedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "alertflow_ticket_created_amount",
	Help: "The total number of tickets created by rule actions",
}, []string{"provider"})

var TicketSuppressedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "alertflow_ticket_suppressed_amount",
	Help: "The total number of ticket creations skipped because the group was already linked",
}, []string{"provider"})

var TicketCreationFailedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "alertflow_ticket_creation_failed_amount",
	Help: "The total number of ticket creations that failed",
}, []string{"provider"})

var RuleCallbackDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "alertflow_rule_callback_duration_seconds",
	Help:    "Duration of rule action callbacks",
	Buckets: prometheus.DefBuckets,
}, []string{"key"})
