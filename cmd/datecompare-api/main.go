/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"log/slog"
	"os"

	"github.com/NVIDIA/datecompare/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
