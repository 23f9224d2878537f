package config

import (
	"fmt"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "show",
		Short: "Prints the effective config (file, environment and flags combined)",
		Args:  cobra.NoArgs,
	}, &showRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type showRunner struct{}

// effective returns all known keys that have a value
func effective() map[string]interface{} {
	values := map[string]interface{}{}
	for key := range config {
		if v := viper.Get(key); v != nil {
			values[key] = v
		}
	}
	return values
}

func (s *showRunner) RunE(cmd *cobra.Command, args []string) error {
	tree, err := toml.TreeFromMap(effective())
	if err != nil {
		return err
	}
	out, err := tree.ToTomlString()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, gchalk.Dim("# "+File))
	fmt.Fprint(w, out)

	fmt.Fprintln(w, gchalk.Dim("\n# available keys:"))
	keys := maps.Keys(config)
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintln(w, gchalk.Dim(fmt.Sprintf("#   %-10s %s", key, config[key].help)))
	}
	return nil
}
