package cmd

import (
	"fmt"
	"net"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
)

func init() {
	bansCmd := commands.New(&cobra.Command{
		Use:       "bans [players|ips]",
		Aliases:   []string{"banlist"},
		Short:     "Lists banned players and IP addresses",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"players", "ips"},
	}, &bansRunner{})

	banRunner := &banRunner{}
	banCmd := commands.New(&cobra.Command{
		Use:   "ban <player or ip>",
		Short: "Bans a player (or an IP address with --ip)",
		Args:  cobra.ExactArgs(1),
		Example: `
  webcraft ban Griefer123 --reason "destroyed spawn"
  webcraft ban Griefer123 --expires 72h
  webcraft ban --ip 203.0.113.7`,
	}, banRunner)
	banCmd.Flags().BoolVar(&banRunner.ip, "ip", false, "ban an IP address instead of a player")
	banCmd.Flags().StringVar(&banRunner.reason, "reason", "", "reason shown to the player")
	banCmd.Flags().DurationVar(&banRunner.expires, "expires", 0, "ban duration (like 72h), permanent if not set")
	banCmd.Flags().StringVar(&banRunner.source, "source", "webcraft", "who issued the ban")
	banCmd.Flags().BoolVarP(&banRunner.yes, "yes", "y", false, "do not ask for confirmation")

	pardonRunner := &pardonRunner{}
	pardonCmd := commands.New(&cobra.Command{
		Use:     "pardon <player or ip>",
		Aliases: []string{"unban"},
		Short:   "Removes a ban",
		Args:    cobra.ExactArgs(1),
	}, pardonRunner)
	pardonCmd.Flags().BoolVar(&pardonRunner.ip, "ip", false, "pardon an IP address instead of a player")

	rootCmd.AddCommand(bansCmd.Command, banCmd.Command, pardonCmd.Command)
}

type bansRunner struct{}

type banList struct {
	Players []webcraft.BannedPlayerDto `json:"players,omitempty"`
	IPs     []webcraft.BannedIPDto     `json:"ips,omitempty"`
}

func (b *bansRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	ctx := contextOf(cmd)
	which := ""
	if len(args) == 1 {
		which = args[0]
	}

	list := banList{}
	if which == "" || which == "players" {
		players, err := client.Banlist.GetBannedPlayers(ctx)
		if err != nil {
			return err
		}
		list.Players = players.BannedPlayers
	}
	if which == "" || which == "ips" {
		ips, err := client.Banlist.GetBannedIPs(ctx)
		if err != nil {
			return err
		}
		list.IPs = ips.BannedIPs
	}

	return render(cmd, list, func(l *cmdlog.Logger) {
		if which != "ips" {
			l.Headline(fmt.Sprintf("%d banned players", len(list.Players)))
			for _, p := range list.Players {
				l.Indented().Info(banLine(p.Name, p.Reason, p.Source, p.Expires))
			}
		}
		if which != "players" {
			l.Headline(fmt.Sprintf("%d banned IPs", len(list.IPs)))
			for _, ip := range list.IPs {
				l.Indented().Info(banLine(ip.IP, ip.Reason, ip.Source, ip.Expires))
			}
		}
	})
}

func banLine(target, reason, source string, expires int64) string {
	line := target
	if reason != "" {
		line += ": " + reason
	}
	if source != "" {
		line += " (by " + source + ")"
	}
	if expires > 0 {
		line += ", expires " + humanize.Time(time.UnixMilli(expires))
	} else {
		line += ", permanent"
	}
	return line
}

type banRunner struct {
	ip      bool
	reason  string
	expires time.Duration
	source  string
	yes     bool
}

func (b *banRunner) expiration(now time.Time) string {
	if b.expires <= 0 {
		return ""
	}
	return now.Add(b.expires).UTC().Format(time.RFC3339)
}

func (b *banRunner) RunE(cmd *cobra.Command, args []string) error {
	target := args[0]
	if b.ip && net.ParseIP(target) == nil {
		return &commands.CliError{Text: fmt.Sprintf("%q is not an IP address", target)}
	}

	if !b.yes && isInteractive() {
		question := fmt.Sprintf("Ban %s?", target)
		if b.expires > 0 {
			question = fmt.Sprintf("Ban %s for %s?", target, b.expires)
		}
		ok, err := confirmation.New(question, confirmation.No).RunPrompt()
		if err != nil {
			return err
		}
		if !ok {
			logger(cmd).Info("Nothing changed")
			return nil
		}
	}

	client, err := root.Client()
	if err != nil {
		return err
	}

	var res *webcraft.SuccessResponse
	if b.ip {
		res, err = client.Banlist.BanIP(contextOf(cmd), webcraft.BanIPRequest{
			IP:         target,
			Reason:     b.reason,
			Expiration: b.expiration(time.Now()),
			Source:     b.source,
		})
	} else {
		res, err = client.Banlist.BanPlayer(contextOf(cmd), webcraft.BanPlayerRequest{
			Player:     target,
			Reason:     b.reason,
			Expiration: b.expiration(time.Now()),
			Source:     b.source,
		})
	}
	if err != nil {
		return err
	}

	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success("Banned " + target)
	})
}

type pardonRunner struct {
	ip bool
}

func (p *pardonRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}

	var res *webcraft.SuccessResponse
	if p.ip {
		res, err = client.Banlist.UnbanIP(contextOf(cmd), args[0])
	} else {
		res, err = client.Banlist.UnbanPlayer(contextOf(cmd), args[0])
	}
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success("Pardoned " + args[0])
	})
}
