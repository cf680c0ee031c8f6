/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import "github.com/heatops/heatctl/cmd"

func main() {
	cmd.Execute()
}
