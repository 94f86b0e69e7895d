/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datecompare/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a model against a date comparison rule set",
		Description: `Evaluates every rule of the rule set against the model and writes a
DateCompareValidationResult document.

Rule set (kind: DateCompareRuleSet):

  kind: DateCompareRuleSet
  apiVersion: datecompare.nvidia.com/v1alpha1
  rules:
    - attributes: [end_date]
      compareAttribute: start_date
      operator: ">"
      dateFormat: Y-m-d

Model (kind: DateCompareModel):

  kind: DateCompareModel
  apiVersion: datecompare.nvidia.com/v1alpha1
  attributes:
    start_date: "2024-05-01"
    end_date: "2024-05-03"
  labels:
    start_date: Check-in

# Examples

  datecompare validate --rules rules.yaml --model booking.yaml
  datecompare validate -r cm://default/rules -m booking.json -o cm://default/results --fail-on-error`,
		Flags: append(append(ruleFlags(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with an error when any rule fails",
			},
		), outputFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rs, model, err := loadInputs(ctx, cmd)
			if err != nil {
				return err
			}

			v := validator.New(
				validator.WithVersion(version),
				validator.WithOnly(cmd.StringSlice("only")...),
			)

			res, err := v.Validate(ctx, rs, model)
			if err != nil {
				return err
			}

			slog.Info("model validated",
				"status", res.Summary.Status,
				"passed", res.Summary.Passed,
				"failed", res.Summary.Failed,
				"skipped", res.Summary.Skipped)

			if err := writeOutput(ctx, cmd, res); err != nil {
				return err
			}

			if !res.Valid() && cmd.Bool("fail-on-error") {
				return fmt.Errorf("validation failed: %d of %d rule(s) failed", res.Summary.Failed, res.Summary.Total)
			}
			return nil
		},
	}
}
