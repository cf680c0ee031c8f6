/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import "fmt"

// OutputFormat selects how command results are rendered
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// String implements pflag.Value
func (o *OutputFormat) String() string {
	return string(*o)
}

// Set implements pflag.Value
func (o *OutputFormat) Set(value string) error {
	switch OutputFormat(value) {
	case OutputText, OutputJSON, OutputYAML:
		*o = OutputFormat(value)
		return nil
	}
	return fmt.Errorf("unknown output format %q, expected text, json or yaml", value)
}

// Type implements pflag.Value
func (o *OutputFormat) Type() string {
	return "format"
}
