package cmd

import (
	"fmt"
	"strconv"

	"github.com/jwalton/gchalk"
	"github.com/magiconair/properties"
	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "check-properties <server.properties>",
		Short: "Compares a local server.properties with the running server",
		Long: `Compares motd, max-players and server-port of a server.properties file with
the values the running server reports. Exits with 1 if they differ (for example
because the server was not restarted after editing the file).`,
		Args: cobra.ExactArgs(1),
	}, &checkPropertiesRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type checkPropertiesRunner struct{}

type propertyCheck struct {
	Key    string `json:"key"`
	Local  string `json:"local"`
	Remote string `json:"remote"`
	Match  bool   `json:"match"`
}

// compareProperties checks the server.properties entries the API exposes.
// Keys missing in the file are skipped.
func compareProperties(props *properties.Properties, server *webcraft.ServerDto) []propertyCheck {
	remote := []struct {
		key   string
		value string
	}{
		{"motd", server.Motd},
		{"max-players", strconv.Itoa(server.MaxPlayers)},
		{"server-port", strconv.Itoa(server.Port)},
	}

	checks := []propertyCheck{}
	for _, r := range remote {
		local, ok := props.Get(r.key)
		if !ok {
			continue
		}
		checks = append(checks, propertyCheck{
			Key:    r.key,
			Local:  local,
			Remote: r.value,
			Match:  local == r.value,
		})
	}
	return checks
}

func (c *checkPropertiesRunner) RunE(cmd *cobra.Command, args []string) error {
	props, err := properties.LoadFile(args[0], properties.UTF8)
	if err != nil {
		return err
	}

	client, err := root.Client()
	if err != nil {
		return err
	}
	server, err := client.Server.GetServerInfo(contextOf(cmd))
	if err != nil {
		return err
	}

	checks := compareProperties(props, server)
	drift := 0
	for _, check := range checks {
		if !check.Match {
			drift++
		}
	}

	err = render(cmd, checks, func(l *cmdlog.Logger) {
		for _, check := range checks {
			if check.Match {
				l.Info(gchalk.Green("✓ ") + check.Key + ": " + check.Local)
				continue
			}
			l.Info(gchalk.Red("✗ ") + fmt.Sprintf("%s: %q in file, %q on the server", check.Key, check.Local, check.Remote))
		}
	})
	if err != nil {
		return err
	}

	if drift > 0 {
		return &commands.CliError{
			Text:        fmt.Sprintf("%d of %d properties differ from the running server", drift, len(checks)),
			Suggestions: []string{"Restart the server to apply the changes of server.properties"},
		}
	}
	return nil
}
