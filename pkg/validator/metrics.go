/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "datecompare_validation_duration_seconds",
			Help:    "Time taken to validate a model against a rule set",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	ruleEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datecompare_rule_evaluations_total",
			Help: "Total number of rule evaluations by status",
		},
		[]string{"status"}, // passed, failed or skipped
	)
)
