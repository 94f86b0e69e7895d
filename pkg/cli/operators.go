/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datecompare/pkg/comparator"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

// OperatorInfo describes one supported operator.
type OperatorInfo struct {
	Operator operator.Operator      `json:"operator" yaml:"operator"`
	FailWhen operator.Operator      `json:"failWhen" yaml:"failWhen"`
	Kind     comparator.MessageKind `json:"messageKind" yaml:"messageKind"`
	Message  string                 `json:"message" yaml:"message"`
}

// OperatorList is written by the operators command.
type OperatorList []OperatorInfo

// TableHeader implements serializer.Tabular.
func (l OperatorList) TableHeader() []string {
	return []string{"OPERATOR", "FAIL WHEN", "MESSAGE"}
}

// TableRows implements serializer.Tabular.
func (l OperatorList) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, o := range l {
		rows = append(rows, []string{o.Operator.String(), o.FailWhen.String(), o.Message})
	}
	return rows
}

func operatorsCmd() *cli.Command {
	return &cli.Command{
		Name:  "operators",
		Usage: "List supported comparison operators and their default messages",
		Flags: outputFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOutput(ctx, cmd, listOperators())
		},
	}
}

func listOperators() OperatorList {
	messages := comparator.DefaultMessages()
	list := make(OperatorList, 0, len(operator.SupportedOperators()))
	for _, op := range operator.SupportedOperators() {
		kind := comparator.KindFor(op)
		list = append(list, OperatorInfo{
			Operator: op,
			FailWhen: op.Negate(),
			Kind:     kind,
			Message:  messages.Template(kind),
		})
	}
	return list
}
