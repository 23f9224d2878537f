package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Tnze/go-mc/offline"
	"github.com/google/uuid"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/internals/utils"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
)

var playersCmd = commands.New(&cobra.Command{
	Use:     "players",
	Aliases: []string{"player", "p"},
	Short:   "Lists online players and manages single players",
	Args:    cobra.NoArgs,
}, &playersRunner{})

func init() {
	playersCmd.AddCommand(
		commands.New(&cobra.Command{
			Use:   "online",
			Short: "Lists the names of all online players",
			Args:  cobra.NoArgs,
		}, &playerNamesRunner{online: true}).Command,
		commands.New(&cobra.Command{
			Use:   "offline",
			Short: "Lists the names of all players that joined before but are offline",
			Args:  cobra.NoArgs,
		}, &playerNamesRunner{}).Command,
		commands.New(&cobra.Command{
			Use:   "info <player>",
			Short: "Shows details of a player",
			Args:  cobra.ExactArgs(1),
		}, &playerInfoRunner{}).Command,
		commands.New(&cobra.Command{
			Use:   "kick <player> [reason]",
			Short: "Kicks a player",
			Args:  cobra.MinimumNArgs(1),
		}, &playerKickRunner{}).Command,
		commands.New(&cobra.Command{
			Use:   "give <player> <item> [amount]",
			Short: "Gives items to a player",
			Args:  cobra.RangeArgs(2, 3),
		}, &playerGiveRunner{}).Command,
		commands.New(&cobra.Command{
			Use:     "teleport <player> <world> <x> <y> <z>",
			Aliases: []string{"tp"},
			Short:   "Teleports a player",
			Args:    cobra.ExactArgs(5),
		}, &playerTeleportRunner{}).Command,
		commands.New(&cobra.Command{
			Use:   "heal <player>",
			Short: "Restores the health of a player",
			Args:  cobra.ExactArgs(1),
		}, &playerActionRunner{action: "healed", call: func(c *webcraft.Client) playerAction { return c.Players.HealPlayer }}).Command,
		commands.New(&cobra.Command{
			Use:   "feed <player>",
			Short: "Restores the food level of a player",
			Args:  cobra.ExactArgs(1),
		}, &playerActionRunner{action: "fed", call: func(c *webcraft.Client) playerAction { return c.Players.FeedPlayer }}).Command,
	)

	rootCmd.AddCommand(playersCmd.Command)
}

type playersRunner struct{}

type playersOverview struct {
	Online  int      `json:"online"`
	Offline int      `json:"offline"`
	Players []string `json:"players"`
}

func (p *playersRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	ctx := contextOf(cmd)

	count, err := client.Players.GetCount(ctx)
	if err != nil {
		return err
	}
	online, err := client.Players.GetOnlinePlayers(ctx)
	if err != nil {
		return err
	}

	overview := playersOverview{Online: count.Online, Offline: count.Offline, Players: online.Players}
	return render(cmd, overview, func(l *cmdlog.Logger) {
		l.Headline(fmt.Sprintf(
			"%s online, %s offline",
			utils.HumanInteger(count.Online),
			utils.HumanInteger(count.Offline),
		))
		l.List(online.Players)
	})
}

type playerNamesRunner struct {
	online bool
}

func (p *playerNamesRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}

	var names *webcraft.PlayerNamesDto
	if p.online {
		names, err = client.Players.GetOnlinePlayers(contextOf(cmd))
	} else {
		names, err = client.Players.GetOfflinePlayers(contextOf(cmd))
	}
	if err != nil {
		return err
	}

	return render(cmd, names, func(l *cmdlog.Logger) {
		if len(names.Players) == 0 {
			l.Log("No players")
			return
		}
		for _, name := range names.Players {
			l.Info(name)
		}
	})
}

type playerInfoRunner struct{}

func (p *playerInfoRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}

	player, err := client.Players.GetPlayerInfo(contextOf(cmd), args[0])
	if err != nil {
		return err
	}

	return render(cmd, player, func(l *cmdlog.Logger) {
		status := gchalk.Dim("offline")
		if player.Online {
			status = gchalk.Green("online")
		}
		l.Headline(player.Name + " (" + status + ")")

		fields := []cmdlog.Field{
			{Key: "UUID", Value: player.UUID + " " + gchalk.Dim(accountKind(player.Name, player.UUID))},
			{Key: "First login", Value: utils.HumanTime(player.FirstLoginAt(), "never")},
			{Key: "Last login", Value: utils.HumanTime(player.LastLoginAt(), "never")},
			{Key: "Operator", Value: yesNo(player.Op)},
			{Key: "Whitelisted", Value: yesNo(player.Whitelisted)},
			{Key: "Banned", Value: yesNo(player.Banned)},
		}
		if player.Online {
			fields = append(fields,
				cmdlog.Field{Key: "World", Value: player.World},
				cmdlog.Field{Key: "Health", Value: strconv.FormatFloat(player.Health, 'f', 1, 64)},
				cmdlog.Field{Key: "Food", Value: player.FoodLevel},
				cmdlog.Field{Key: "Level", Value: player.Level},
				cmdlog.Field{Key: "Ping", Value: fmt.Sprintf("%d ms", player.Ping)},
				cmdlog.Field{Key: "IP", Value: player.IP},
			)
		}
		l.Fields(fields...)
	})
}

// accountKind tells if the uuid is the offline-mode uuid of the name. Servers running
// with online-mode=false generate those instead of using the Mojang account id.
func accountKind(name string, id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "(invalid uuid)"
	}
	if parsed == offline.NameToUUID(name) {
		return "(offline-mode account)"
	}
	return "(online-mode account)"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

type playerKickRunner struct{}

func (p *playerKickRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}

	reason := strings.Join(args[1:], " ")
	res, err := client.Players.KickPlayer(contextOf(cmd), args[0], reason)
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success("Kicked " + args[0])
	})
}

type playerGiveRunner struct{}

func (p *playerGiveRunner) RunE(cmd *cobra.Command, args []string) error {
	amount := 1
	if len(args) == 3 {
		var err error
		amount, err = strconv.Atoi(args[2])
		if err != nil || amount < 1 {
			return fmt.Errorf("amount has to be a positive number, got %q", args[2])
		}
	}

	client, err := root.Client()
	if err != nil {
		return err
	}
	res, err := client.Players.GiveItems(contextOf(cmd), args[0], args[1], amount)
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success(fmt.Sprintf("Gave %d × %s to %s", amount, args[1], args[0]))
	})
}

type playerTeleportRunner struct{}

func (p *playerTeleportRunner) RunE(cmd *cobra.Command, args []string) error {
	to := webcraft.Location{World: args[1]}
	for i, target := range []*float64{&to.X, &to.Y, &to.Z} {
		value, err := strconv.ParseFloat(args[2+i], 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q", args[2+i])
		}
		*target = value
	}

	client, err := root.Client()
	if err != nil {
		return err
	}
	res, err := client.Players.TeleportPlayer(contextOf(cmd), args[0], to)
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success(fmt.Sprintf("Teleported %s to %s %g %g %g", args[0], to.World, to.X, to.Y, to.Z))
	})
}

type playerAction func(ctx context.Context, player string) (*webcraft.SuccessResponse, error)

// playerActionRunner runs actions that only take the player name
type playerActionRunner struct {
	action string
	call   func(c *webcraft.Client) playerAction
}

func (p *playerActionRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	res, err := p.call(client)(contextOf(cmd), args[0])
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success(strings.ToUpper(p.action[:1]) + p.action[1:] + " " + args[0])
	})
}
