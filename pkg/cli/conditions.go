/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datecompare/pkg/comparator"
	"github.com/NVIDIA/datecompare/pkg/validator"
)

// ConditionOutput is a client condition with its rendered expression.
type ConditionOutput struct {
	comparator.Condition `json:",inline" yaml:",inline"`

	Expression string `json:"expression" yaml:"expression"`
}

func conditionsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "conditions",
		EnableShellCompletion: true,
		Usage:                 "Print the client-side conditions of a rule set",
		Description: `Builds the checks a client form would run before submitting, one per rule
attribute. Each condition names the input element, the operator that
signals failure and the message to show.

# Examples

  datecompare conditions --rules rules.yaml --model booking.yaml --id-prefix Booking`,
		Flags: append(append(ruleFlags(),
			&cli.StringFlag{
				Name:  "id-prefix",
				Usage: "Prefix of generated element ids (e.g. Booking -> Booking_end_date)",
			},
		), outputFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rs, model, err := loadInputs(ctx, cmd)
			if err != nil {
				return err
			}

			prefix := cmd.String("id-prefix")
			if prefix == "" {
				prefix = model.Name
			}

			v := validator.New(
				validator.WithIDResolver(validator.PrefixedIDResolver(prefix)),
				validator.WithOnly(cmd.StringSlice("only")...),
			)

			conds, err := v.ClientConditions(rs, model)
			if err != nil {
				return err
			}

			out := make([]ConditionOutput, 0, len(conds))
			for _, c := range conds {
				out = append(out, ConditionOutput{Condition: c, Expression: c.Expression()})
			}
			return writeOutput(ctx, cmd, out)
		},
	}
}
