/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package comparator compares two date values with a comparison operator.
//
// # Overview
//
// Compare parses a primary value (the attribute being validated) and a
// secondary value (a constant or a sibling attribute) with the same date
// format, computes diff = secondary - primary in whole seconds and applies the
// operator:
//
//	=   diff == 0
//	!=  diff != 0
//	>   diff <  0   primary is later than secondary
//	>=  diff <= 0
//	<   diff >  0   primary is earlier than secondary
//	<=  diff >= 0
//
// The result carries a MessageKind selecting one of six message templates.
//
// # Usage
//
//	res, err := comparator.Compare(comparator.Spec{
//	    PrimaryValue:   "2020-01-02 00:00:00",
//	    SecondaryValue: "2020-01-01 00:00:00",
//	    Operator:       operator.GreaterThan,
//	})
//	if err != nil {
//	    return err // unknown operator or unsupported date format
//	}
//	if !res.Valid {
//	    msg := comparator.DefaultMessages().Render(res.MessageKind, params)
//	}
//
// # Unparseable Dates
//
// When either value cannot be parsed the comparison is not decided and the
// result is valid with Evaluated set to false. Malformed dates therefore never
// fail validation on their own; pair the rule with a format check when that
// matters.
//
// # Client Conditions
//
// BuildCondition returns a Condition describing the equivalent client-side
// check. Rendering it into a particular client technology is left to the
// caller.
package comparator
