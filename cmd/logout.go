package cmd

import (
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:     "logout",
		Aliases: []string{"signout"},
		Short:   "Remove the saved token of the server",
		Args:    cobra.NoArgs,
	}, &logoutRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type logoutRunner struct{}

func (l *logoutRunner) RunE(cmd *cobra.Command, args []string) error {
	server, err := root.Server()
	if err != nil {
		return err
	}
	if err := root.Credentials().Delete(server); err != nil {
		return err
	}
	root.client = nil

	logger(cmd).Success("Removed the token of " + server)
	return nil
}
