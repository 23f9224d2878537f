package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// render writes v as JSON or YAML if --output is set, otherwise human is called
func render(cmd *cobra.Command, v interface{}, human func(l *cmdlog.Logger)) error {
	format := viper.GetString("output")
	if format == "" {
		human(logger(cmd))
		return nil
	}
	return encodeOutput(cmd.OutOrStdout(), format, v)
}

func encodeOutput(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		// go through JSON to keep the API field names and order
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		node := yaml.Node{}
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return err
		}
		blockStyle(&node)

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q (use json or yaml)", format)
}

// blockStyle resets the JSON flow style of all nodes
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
