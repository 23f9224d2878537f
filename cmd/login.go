package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/internals/credentials"
	"github.com/minepkg/webcraft/internals/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &loginRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "login",
		Aliases: []string{"signin"},
		Short:   "Sign in to the WebCraftAPI server and save the token",
		Long: `Sign in to the WebCraftAPI server. The token is saved in the system keyring
(or a file in the config directory if there is no keyring) and used by all other commands.`,
		Args: cobra.NoArgs,
	}, runner)

	cmd.Flags().StringVarP(&runner.username, "username", "u", "", "username (prompted if missing)")
	cmd.Flags().StringVarP(&runner.password, "password", "p", "", "password (prompted if missing)")

	rootCmd.AddCommand(cmd.Command)
}

type loginRunner struct {
	username string
	password string

	// interactive is overwritten in tests
	interactive func() bool
}

func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (l *loginRunner) RunE(cmd *cobra.Command, args []string) error {
	server, err := root.Server()
	if err != nil {
		return err
	}

	interactive := isInteractive
	if l.interactive != nil {
		interactive = l.interactive
	}

	username := l.username
	if username == "" {
		username = viper.GetString("username")
	}
	password := l.password

	if username == "" || password == "" {
		if !interactive() {
			return &commands.CliError{
				Text: "Username or password missing",
				Help: "This does not seem to be an interactive terminal, so there is no prompt.",
				Suggestions: []string{
					"Pass --username and --password",
					"Set WEBCRAFT_TOKEN to an existing token instead of logging in",
				},
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signing in to %s\n", server)
	}

	if username == "" {
		username, err = utils.StringPrompt(&promptui.Prompt{
			Label:    "Username",
			Validate: utils.NotEmpty,
		})
		if err != nil {
			return err
		}
	}
	if password == "" {
		password, err = utils.StringPrompt(&promptui.Prompt{
			Label:    "Password",
			Validate: utils.NotEmpty,
			Mask:     '■',
		})
		if err != nil {
			return err
		}
	}

	client, err := root.Client()
	if err != nil {
		return err
	}
	token, err := client.Authenticate(contextOf(cmd), username, password)
	if err != nil {
		return err
	}

	if err := root.Credentials().Set(server, credentials.NewToken(token)); err != nil {
		return err
	}

	log := logger(cmd)
	log.Success("Signed in to " + server)
	if root.Credentials().NoKeyRingMode {
		log.Log("No system keyring available, the token was saved in the config directory")
	}
	return nil
}
