/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datecompare/pkg/header"
	"github.com/NVIDIA/datecompare/pkg/serializer"
	"github.com/NVIDIA/datecompare/pkg/validator"
)

var kubeconfigFlag = &cli.StringFlag{
	Name:    "kubeconfig",
	Aliases: []string{"k"},
	Usage:   "Path to kubeconfig used for cm:// locations (default: $KUBECONFIG, ~/.kube/config, in-cluster)",
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output destination: file path, '-' for stdout, or cm://namespace/name (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   string(serializer.FormatYAML),
			Usage:   "Output format (" + strings.Join(serializer.SupportedFormats(), ", ") + ")",
		},
	}
}

func ruleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "rules",
			Aliases:  []string{"r"},
			Required: true,
			Usage: `Path/URI of the rule set.
	Supports: file paths, HTTP/HTTPS URLs, '-' for stdin, or ConfigMap URIs (cm://namespace/name[/key]).`,
		},
		&cli.StringFlag{
			Name:     "model",
			Aliases:  []string{"m"},
			Required: true,
			Usage:    "Path/URI of the model document (same locations as --rules)",
		},
		&cli.StringSliceFlag{
			Name:  "only",
			Usage: "Restrict to attributes matching a pattern (prefix*, *suffix, *contains*, exact; can be repeated)",
		},
		kubeconfigFlag,
	}
}

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// writeOutput serializes v to the destination selected by --output.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w, err := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	if err != nil {
		return err
	}
	defer serializer.Close(w)

	return w.Serialize(ctx, v)
}

// loadInputs reads the rule set and model named by --rules and --model.
func loadInputs(ctx context.Context, cmd *cli.Command) (*validator.RuleSet, *validator.MapModel, error) {
	kubeconfig := cmd.String("kubeconfig")

	rs, err := serializer.FromFileWithKubeconfig[validator.RuleSet](ctx, cmd.String("rules"), kubeconfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rules: %w", err)
	}

	model, err := serializer.FromFileWithKubeconfig[validator.MapModel](ctx, cmd.String("model"), kubeconfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load model: %w", err)
	}
	if err := model.Check(header.KindModel); err != nil {
		return nil, nil, fmt.Errorf("invalid model: %w", err)
	}
	if model.Labels == nil {
		model.Labels = map[string]string{}
	}

	return rs, model, nil
}
