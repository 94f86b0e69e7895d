/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface of the datecompare tool.
//
// # Commands
//
// compare - Compare two date values with an operator:
//
//	datecompare compare --value 2024-05-03 --compare-value 2024-05-01 --operator '>' --format-date Y-m-d
//
// validate - Evaluate a rule set against a model document:
//
//	datecompare validate --rules rules.yaml --model booking.yaml [--only 'end_*'] [--fail-on-error]
//
// conditions - Print the client-side checks of a rule set:
//
//	datecompare conditions --rules rules.yaml --model booking.yaml --id-prefix Booking
//
// operators - List supported operators and their default messages:
//
//	datecompare operators --format table
//
// # Inputs and Outputs
//
// Rule sets and models are read from files, HTTP/HTTPS URLs, stdin ("-")
// or Kubernetes ConfigMaps (cm://namespace/name[/key]). Results are written
// as YAML (default), JSON or a table to stdout, a file, or a ConfigMap
// selected with --output.
//
// # Global Flags
//
//	--debug     Enable debug logging
//	--log-json  Write logs as JSON to stderr
//
// # Exit Codes
//
// The process exits with 1 on errors, including a failed comparison or
// validation when --fail-on-error is set, and with 2 when interrupted.
package cli
