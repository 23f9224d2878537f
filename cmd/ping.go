package cmd

import (
	"time"

	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "ping",
		Short: "Checks if the server is reachable",
		Args:  cobra.NoArgs,
	}, &pingRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type pingRunner struct{}

type pingResult struct {
	Response string        `json:"response"`
	Took     time.Duration `json:"tookNs"`
}

func (p *pingRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}

	var pong *webcraft.PingDto
	start := time.Now()
	err = root.spin("Pinging server", func() (err error) {
		pong, err = client.Ping.Ping(contextOf(cmd))
		return err
	})
	if err != nil {
		return err
	}
	took := time.Since(start)

	result := pingResult{Response: pong.Response, Took: took}
	return render(cmd, result, func(l *cmdlog.Logger) {
		l.Success("Server answered with " + pong.Response + " in " + took.Round(time.Millisecond).String())
	})
}
