/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package main

import "github.com/NVIDIA/datecompare/pkg/cli"

func main() {
	cli.Execute()
}
