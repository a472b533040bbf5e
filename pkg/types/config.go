// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// OutputFormat selects how an extracted version triple is reported.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat maps a flag or config value onto an OutputFormat.
// An empty value selects OutputText.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML, "yml":
		return OutputYAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want text, json, or yaml)", s)
}

// ExtractorConfig holds the settings for one extraction run.
type ExtractorConfig struct {
	// Format selects the report format written to stdout (default text).
	Format OutputFormat `json:"format" yaml:"format"`

	// LogLevel is the minimum level of diagnostic logs written to stderr
	// (default warn).
	LogLevel string `json:"log_level" yaml:"log_level"`
}
