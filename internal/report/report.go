// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes an extracted version block to an output stream.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/soversion/internal/extract"
	"github.com/pdiddy/soversion/pkg/types"
)

// Write renders m to w in the given format.
//
// The text format prints the group count followed by each sub-capture
// wrapped in backticks:
//
//	MATCH COUNT = 4
//	`2`
//	`9`
//	`4`
func Write(w io.Writer, m extract.Match, format types.OutputFormat) error {
	switch format {
	case types.OutputText, "":
		return writeText(w, m)
	case types.OutputJSON:
		data, err := json.MarshalIndent(m.Triple(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case types.OutputYAML:
		data, err := yaml.Marshal(m.Triple())
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func writeText(w io.Writer, m extract.Match) error {
	if _, err := fmt.Fprintf(w, "MATCH COUNT = %d\n", m.Count()); err != nil {
		return err
	}
	for _, c := range m.Triple().Fields() {
		if _, err := fmt.Fprintf(w, "`%s`\n", c); err != nil {
			return err
		}
	}
	return nil
}
