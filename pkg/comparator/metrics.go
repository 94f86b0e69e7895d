/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomePassed  = "passed"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
	outcomeError   = "error"

	// operatorInvalid replaces rejected operators so that client input never
	// becomes a label value.
	operatorInvalid = "invalid"
)

var (
	comparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datecompare_comparisons_total",
			Help: "Total number of date comparisons by operator and outcome",
		},
		[]string{"operator", "outcome"}, // passed, failed, skipped or error
	)

	conditionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datecompare_client_conditions_total",
			Help: "Total number of client-side conditions built",
		},
		[]string{"status"}, // success or error
	)
)
