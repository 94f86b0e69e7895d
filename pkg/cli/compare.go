/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datecompare/pkg/comparator"
	"github.com/NVIDIA/datecompare/pkg/dateformat"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

// CompareOutput is written by the compare command.
type CompareOutput struct {
	comparator.Result `json:",inline" yaml:",inline"`

	// Message is the rendered failure message, empty when valid.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two date values",
		Description: `Compares --value with --compare-value using --operator. Both values are
parsed with --format-date, which accepts PHP (Y-m-d H:i:s), moment
(YYYY-MM-DD HH:mm:ss) or Go (2006-01-02 15:04:05) notation.

Values that cannot be parsed are reported as valid and not evaluated.

# Examples

  datecompare compare --value 2024-05-03 --compare-value 2024-05-01 --operator '>' --format-date Y-m-d
  datecompare compare --value '' --compare-value 2024-05-01 --allow-empty --format json`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "value",
				Usage: "Date value being validated",
			},
			&cli.StringFlag{
				Name:  "compare-value",
				Usage: "Date value compared against",
			},
			&cli.StringFlag{
				Name:  "operator",
				Value: string(operator.Default),
				Usage: "Comparison operator (" + strings.Join(operator.SupportedOperatorsAsStrings(), " ") + ")",
			},
			&cli.StringFlag{
				Name:  "format-date",
				Value: dateformat.DefaultFormat,
				Usage: "Date format of both values",
			},
			&cli.BoolFlag{
				Name:  "allow-empty",
				Usage: "Treat an empty --value as valid",
			},
			&cli.StringFlag{
				Name:  "label",
				Value: "Value",
				Usage: "Label of the value used in the failure message",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with an error when the comparison fails",
			},
		}, outputFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			spec := comparator.Spec{
				PrimaryValue:   cmd.String("value"),
				SecondaryValue: cmd.String("compare-value"),
				DateFormat:     cmd.String("format-date"),
				Operator:       operator.Operator(cmd.String("operator")),
				AllowEmpty:     cmd.Bool("allow-empty"),
			}

			res, err := comparator.Compare(spec)
			if err != nil {
				return err
			}

			out := CompareOutput{Result: res}
			if !res.Valid {
				out.Message = comparator.DefaultMessages().Render(res.MessageKind, map[string]string{
					comparator.ParamAttribute:        cmd.String("label"),
					comparator.ParamCompareValue:     spec.SecondaryValue,
					comparator.ParamCompareAttribute: spec.SecondaryValue,
				})
			}

			slog.Debug("compared values",
				"operator", res.Operator,
				"valid", res.Valid,
				"evaluated", res.Evaluated,
				"diff", res.DiffSeconds)

			if err := writeOutput(ctx, cmd, out); err != nil {
				return err
			}

			if !res.Valid && cmd.Bool("fail-on-error") {
				return fmt.Errorf("comparison failed: %s", out.Message)
			}
			return nil
		},
	}
}
