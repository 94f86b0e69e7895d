/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validator applies date comparison rules to a model.
//
// # Overview
//
// A RuleSet lists comparison rules. Each rule names one or more attributes of
// a model and compares each of them with either a constant (compareValue) or
// a sibling attribute (compareAttribute). When neither is given the sibling
// defaults to "<attribute>_repeat".
//
// # Rule Set Format
//
//	kind: DateCompareRuleSet
//	apiVersion: datecompare.nvidia.com/v1alpha1
//	metadata:
//	  name: booking
//	rules:
//	  - attributes: [end_date]
//	    compareAttribute: start_date
//	    operator: ">"
//	    dateFormat: Y-m-d
//	    allowEmpty: true
//	  - attributes: [start_date]
//	    compareValue: "2020-01-01"
//	    operator: ">="
//	    dateFormat: Y-m-d
//	    message: "{attribute} cannot be before {compareValue}."
//
// # Supported Operators
//
//   - "=" or "==" - dates are equal
//   - "!="        - dates differ
//   - ">"         - attribute is later than the compare date
//   - ">="        - attribute is later than or equal to the compare date
//   - "<"         - attribute is earlier than the compare date
//   - "<="        - attribute is earlier than or equal to the compare date
//
// # Usage
//
//	v := validator.New(
//	    validator.WithVersion(version),
//	    validator.WithErrorSink(form.Errors),
//	)
//	result, err := v.Validate(ctx, ruleSet, model)
//	if err != nil {
//	    return err // configuration problem, e.g. unknown operator
//	}
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//
// Client-side checks:
//
//	conds, err := v.ClientConditions(ruleSet, model)
//
// # Result Structure
//
// ValidationResult contains:
//   - Summary: pass/fail/skip counts and overall status
//   - Results: per attribute and rule outcome
//   - Errors: failure messages grouped by attribute
//
// # Error Handling
//
// Unknown operators and unsupported date formats abort validation with an
// INVALID_CONFIGURATION error. Rules are skipped when the attribute already
// has an error and skipOnError is true (the default). Values that are not
// dates pass without being compared.
package validator
