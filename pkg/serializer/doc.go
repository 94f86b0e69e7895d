/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer reads and writes datecompare documents.
//
// Documents are encoded as JSON, YAML or a flat table. Locations are given as
// URIs:
//
//	path/to/file.yaml          local file, format taken from the extension
//	https://host/rules.yaml    remote file (read only)
//	cm://namespace/name[/key]  Kubernetes ConfigMap
//
// "-" reads stdin or writes stdout.
//
// Writers:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "cm://default/results")
//	if err != nil { ... }
//	defer w.Close()
//	err = w.Serialize(ctx, result)
//
// Readers:
//
//	rs, err := serializer.FromFile[validator.RuleSet](ctx, "rules.yaml")
package serializer
