package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/internals/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &callRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "call <operation> [path arguments...]",
		Short: "Calls any API operation",
		Long: `Calls any API operation and prints the JSON result.
Path arguments are passed in order, the request body is passed with --data.`,
		Example: `
  webcraft call players.GetPlayerInfo Notch
  webcraft call players kick-player Notch --data '{"reason":"afk"}'
  webcraft call worlds.SetBlocks world --data @blocks.json`,
		Args: cobra.MinimumNArgs(1),
	}, runner)

	cmd.Flags().StringVarP(&runner.data, "data", "d", "", "JSON request body, or @file to read it from a file")

	rootCmd.AddCommand(cmd.Command)
}

type callRunner struct {
	data string
}

func (c *callRunner) RunE(cmd *cobra.Command, args []string) error {
	ep, pathArgs, err := resolveOperation(args)
	if err != nil {
		return err
	}

	params := ep.Params()
	if len(pathArgs) != len(params) {
		return &commands.CliError{
			Text: fmt.Sprintf("%s expects %d path arguments, got %d", ep.Operation, len(params), len(pathArgs)),
			Help: fmt.Sprintf("Usage: webcraft call %s %s", ep.Operation, placeholders(params)),
		}
	}

	var body json.RawMessage
	if c.data != "" {
		raw, err := utils.ReadArgOrFile(c.data)
		if err != nil {
			return err
		}
		if !json.Valid(raw) {
			return fmt.Errorf("--data is not valid JSON")
		}
		body = raw
	}

	client, err := root.Client()
	if err != nil {
		return err
	}
	result, err := client.Call(contextOf(cmd), ep.Operation, body, pathArgs...)
	if err != nil {
		return err
	}

	// there is no human format for generic results
	format := viper.GetString("output")
	if format == "" {
		format = "json"
	}
	return encodeOutput(cmd.OutOrStdout(), format, result)
}

func placeholders(params []string) string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = "<" + p + ">"
	}
	return strings.Join(out, " ")
}
