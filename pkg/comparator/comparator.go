/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparator

import (
	"log/slog"

	"github.com/NVIDIA/datecompare/pkg/dateformat"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

// Compare evaluates spec and returns the verdict.
//
// An unknown operator or an unsupported date format returns an
// ErrCodeInvalidConfiguration error; these are never reported as validation
// failures. Values that cannot be parsed yield a valid, unevaluated result.
func Compare(spec Spec) (Result, error) {
	op, err := operator.Parse(spec.Operator.String())
	if err != nil {
		comparisonsTotal.WithLabelValues(operatorInvalid, outcomeError).Inc()
		return Result{}, err
	}

	res := Result{
		Valid:       true,
		Operator:    op,
		MessageKind: KindFor(op),
	}

	if spec.AllowEmpty && isEmpty(spec.PrimaryValue) {
		res.Reason = ReasonEmptyAllowed
		comparisonsTotal.WithLabelValues(op.String(), outcomeSkipped).Inc()
		return res, nil
	}

	if _, err := dateformat.Layout(spec.DateFormat); err != nil {
		comparisonsTotal.WithLabelValues(op.String(), outcomeError).Inc()
		return Result{}, err
	}

	primary, err := dateformat.Parse(spec.DateFormat, spec.PrimaryValue)
	if err != nil {
		slog.Debug("comparison not evaluated, primary value is not a date",
			"value", spec.PrimaryValue,
			"format", spec.DateFormat,
			"error", err)
		res.Reason = ReasonUnparseablePrimary
		comparisonsTotal.WithLabelValues(op.String(), outcomeSkipped).Inc()
		return res, nil
	}

	secondary, err := dateformat.Parse(spec.DateFormat, spec.SecondaryValue)
	if err != nil {
		slog.Debug("comparison not evaluated, compare value is not a date",
			"value", spec.SecondaryValue,
			"format", spec.DateFormat,
			"error", err)
		res.Reason = ReasonUnparseableSecondary
		comparisonsTotal.WithLabelValues(op.String(), outcomeSkipped).Inc()
		return res, nil
	}

	res.Evaluated = true
	res.DiffSeconds = secondary.Unix() - primary.Unix()
	res.Valid = op.Holds(res.DiffSeconds)

	if res.Valid {
		comparisonsTotal.WithLabelValues(op.String(), outcomePassed).Inc()
	} else {
		comparisonsTotal.WithLabelValues(op.String(), outcomeFailed).Inc()
	}

	return res, nil
}

func isEmpty(value string) bool {
	return value == ""
}
