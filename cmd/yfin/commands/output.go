package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Values accepted by the --output flag.
const (
	// OutputFormatTable renders a text table.
	OutputFormatTable = "table"

	// OutputFormatJSON renders indented JSON.
	OutputFormatJSON = "json"

	// OutputFormatYAML renders YAML.
	OutputFormatYAML = "yaml"
)

// render writes v in the configured output format, calling table for the
// table format.
func render(w io.Writer, v any, table func(io.Writer) error) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode as JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode as YAML: %w", err)
		}

		return encoder.Close()
	case OutputFormatTable, "":
		return table(w)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
