package cmd

import (
	"context"
	"strings"

	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
)

func init() {
	runner := &sayRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "say <message>",
		Aliases: []string{"broadcast"},
		Short:   "Broadcasts a chat message",
		Args:    cobra.MinimumNArgs(1),
	}, runner)

	cmd.Flags().BoolVar(&runner.ops, "ops", false, "only send the message to operators")
	cmd.Flags().BoolVar(&runner.players, "players", false, "only send the message to players (not the console)")
	cmd.MarkFlagsMutuallyExclusive("ops", "players")

	rootCmd.AddCommand(cmd.Command)
}

type sayRunner struct {
	ops     bool
	players bool
}

func (s *sayRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}

	var broadcast func(ctx context.Context, message string) (*webcraft.SuccessResponse, error)
	switch {
	case s.ops:
		broadcast = client.Chat.BroadcastOps
	case s.players:
		broadcast = client.Chat.BroadcastPlayers
	default:
		broadcast = client.Chat.BroadcastAll
	}

	res, err := broadcast(contextOf(cmd), strings.Join(args, " "))
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success("Message sent")
	})
}
