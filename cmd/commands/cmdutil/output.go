package cmdutil

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// FormatFlag is the persistent flag selecting the stdout encoding.
const FormatFlag = "format"

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// formatValue is a pflag.Value that only accepts the supported formats, so
// a bad --format fails while flags are parsed, before any request is sent.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Type() string { return "format" }

func (f *formatValue) Set(s string) error {
	switch s {
	case FormatJSON, FormatYAML:
		*f = formatValue(s)
		return nil
	default:
		return invalidInput(fmt.Errorf("unsupported output format %q (want json or yaml)", s))
	}
}

// AddFormatFlag registers --format on a command group. Flag errors under
// the group are classified as invalid input.
func AddFormatFlag(cmd *cobra.Command) {
	value := formatValue(FormatJSON)
	cmd.PersistentFlags().Var(&value, FormatFlag, "Output format: json or yaml")
	cmd.SetFlagErrorFunc(FlagError)
}

// Print writes v to stdout in the format selected by --format.
func Print(cmd *cobra.Command, v any) error {
	format := FormatJSON
	if f := cmd.Flag(FormatFlag); f != nil && f.Value.String() != "" {
		format = f.Value.String()
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch format {
	case FormatJSON:
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	case FormatYAML:
		// Round-trip through JSON so json tags and raw passthrough values
		// shape the YAML the same way they shape the JSON.
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	default:
		return invalidInput(fmt.Errorf("unsupported output format %q (want json or yaml)", format))
	}
}
