package cmd

import (
	"context"
	"strings"

	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/internals/utils"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
)

func init() {
	runner := &infoRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "info",
		Short: "Shows information about the server and the API plugin",
		Args:  cobra.NoArgs,
		Example: `
  webcraft info
  webcraft info --require ">= 1.2"`,
	}, runner)

	cmd.Flags().StringVar(&runner.require, "require", "", "fail if the API version does not match this semver constraint")

	rootCmd.AddCommand(cmd.Command)
}

type infoRunner struct {
	require string
}

type serverInfo struct {
	Server *webcraft.ServerDto `json:"server"`
	API    *webcraft.APIDto    `json:"api"`
}

func (i *infoRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	ctx := contextOf(cmd)

	info := serverInfo{}
	err = root.spin("Fetching server info", func() error {
		return fetchInfo(ctx, client, &info)
	})
	if err != nil {
		return err
	}

	if i.require != "" {
		if _, err := client.CheckAPIVersion(ctx, i.require); err != nil {
			return err
		}
	}

	return render(cmd, info, func(l *cmdlog.Logger) {
		l.Headline(info.Server.Name)
		l.Fields(
			cmdlog.Field{Key: "Version", Value: info.Server.Version},
			cmdlog.Field{Key: "Bukkit", Value: info.Server.BukkitVersion},
			cmdlog.Field{Key: "Address", Value: info.Server.Address},
			cmdlog.Field{Key: "Port", Value: info.Server.Port},
			cmdlog.Field{Key: "Max players", Value: info.Server.MaxPlayers},
			cmdlog.Field{Key: "MOTD", Value: info.Server.Motd},
		)
		l.Info("")
		l.Headline(info.API.Name + " " + utils.PrettyVersion(info.API.Version))
		l.Fields(
			cmdlog.Field{Key: "Authors", Value: strings.Join(info.API.Authors, ", ")},
			cmdlog.Field{Key: "Website", Value: info.API.Website},
			cmdlog.Field{Key: "Docs", Value: info.API.Documentation},
		)
	})
}

func fetchInfo(ctx context.Context, client *webcraft.Client, info *serverInfo) (err error) {
	if info.Server, err = client.Server.GetServerInfo(ctx); err != nil {
		return err
	}
	info.API, err = client.API.GetAPIInfo(ctx)
	return err
}
