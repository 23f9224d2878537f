package cmd

import (
	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/spf13/cobra"
)

func init() {
	whitelistCmd := commands.New(&cobra.Command{
		Use:   "whitelist",
		Short: "Shows the whitelist",
		Args:  cobra.NoArgs,
	}, &whitelistRunner{})

	whitelistCmd.AddCommand(
		commands.New(&cobra.Command{
			Use:   "add <player>",
			Short: "Adds a player to the whitelist",
			Args:  cobra.ExactArgs(1),
		}, &whitelistChangeRunner{add: true}).Command,
		commands.New(&cobra.Command{
			Use:     "remove <player>",
			Aliases: []string{"rm"},
			Short:   "Removes a player from the whitelist",
			Args:    cobra.ExactArgs(1),
		}, &whitelistChangeRunner{}).Command,
		commands.New(&cobra.Command{
			Use:   "check <player>",
			Short: "Checks if a player is whitelisted",
			Args:  cobra.ExactArgs(1),
		}, &whitelistCheckRunner{}).Command,
	)

	rootCmd.AddCommand(whitelistCmd.Command)
}

type whitelistRunner struct{}

func (w *whitelistRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	ctx := contextOf(cmd)

	info, err := client.Whitelist.GetWhitelistInfo(ctx)
	if err != nil {
		return err
	}
	players, err := client.Whitelist.GetWhitelistedPlayers(ctx)
	if err != nil {
		return err
	}

	out := struct {
		Enabled  bool     `json:"enabled"`
		Enforced bool     `json:"enforced"`
		Players  []string `json:"players"`
	}{Enabled: info.Enabled, Enforced: info.Enforced}
	for _, p := range players.WhitelistedPlayers {
		out.Players = append(out.Players, p.Name)
	}

	return render(cmd, out, func(l *cmdlog.Logger) {
		l.Fields(
			cmdlog.Field{Key: "Enabled", Value: yesNo(info.Enabled)},
			cmdlog.Field{Key: "Enforced", Value: yesNo(info.Enforced)},
		)
		if !info.Enabled {
			l.Warn("The whitelist is disabled, everyone can join")
		}
		l.List(out.Players)
	})
}

type whitelistChangeRunner struct {
	add bool
}

func (w *whitelistChangeRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}

	if w.add {
		res, err := client.Whitelist.WhitelistPlayer(contextOf(cmd), args[0])
		if err != nil {
			return err
		}
		return render(cmd, res, func(l *cmdlog.Logger) { l.Success("Whitelisted " + args[0]) })
	}

	res, err := client.Whitelist.UnwhitelistPlayer(contextOf(cmd), args[0])
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) { l.Success("Removed " + args[0] + " from the whitelist") })
}

type whitelistCheckRunner struct{}

func (w *whitelistCheckRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	res, err := client.Whitelist.IsPlayerWhitelisted(contextOf(cmd), args[0])
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		if res.Whitelisted {
			l.Success(args[0] + " is whitelisted")
			return
		}
		l.Info(args[0] + " is not whitelisted")
	})
}
