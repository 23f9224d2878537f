package config

import (
	"fmt"
	"strings"

	"github.com/minepkg/webcraft/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get <key>",
		Short: "Gets a global config value",
		Args:  cobra.ExactArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])

	if _, ok := config[key]; !ok {
		return unknownKey(key)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, viper.Get(key))
	return nil
}

func unknownKey(key string) error {
	return &commands.CliError{
		Text:        fmt.Sprintf("config key %q does not exist", key),
		Suggestions: []string{"Run `webcraft config show` to list all keys"},
	}
}
