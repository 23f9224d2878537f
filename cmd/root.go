package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/minepkg/webcraft/cmd/config"
	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/internals/credentials"
	"github.com/minepkg/webcraft/internals/globals"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// set by main
var (
	Version = "dev"
	Commit  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "webcraft",
	Short: "Control your Minecraft server through the WebCraftAPI plugin",
	Long: `Control your Minecraft server through the WebCraftAPI plugin.

The server URL is read from --server, the WEBCRAFT_SERVER environment variable
or the "server" config entry (in this order).`,

	Example: `
  webcraft login --server http://localhost:8080
  webcraft players online
  webcraft world weather world rain
  webcraft call players.GetPlayerInfo Notch`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("nocolor") || os.Getenv("NO_COLOR") != "" {
			cmdlog.DisableColor()
			commands.SetEmoji(false)
		}
	},
}

// Root holds the state shared by all commands
type Root struct {
	credStore *credentials.Store
	client    *webcraft.Client
}

var root = &Root{}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if Commit != "" {
		rootCmd.Version += " (" + Commit + ")"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("server", "s", "", "URL of the WebCraftAPI server (like http://localhost:8080)")
	flags.StringP("output", "o", "", "output format: json or yaml (default is human readable)")
	flags.Float64("rate-limit", 0, "maximum requests per second (0 = unlimited)")
	flags.BoolP("verbose", "v", false, "log every request to stderr")
	flags.Bool("no-color", false, "disable color output")

	viper.BindPFlag("server", flags.Lookup("server"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("ratelimit", flags.Lookup("rate-limit"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("nocolor", flags.Lookup("no-color"))

	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(globals.GlobalDir)
	config.File = filepath.Join(globals.GlobalDir, "config.toml")

	viper.SetEnvPrefix("webcraft")
	viper.AutomaticEnv()

	// a missing config file is fine
	viper.ReadInConfig()
}

// Server returns the configured server URL
func (r *Root) Server() (string, error) {
	server := viper.GetString("server")
	if server == "" {
		return "", &commands.CliError{
			Text: "No server configured",
			Suggestions: []string{
				"Pass the server with --server http://localhost:8080",
				"Save it with `webcraft config set server http://localhost:8080`",
				"Set the WEBCRAFT_SERVER environment variable",
			},
		}
	}

	parsed, err := url.Parse(server)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", &commands.CliError{
			Text: fmt.Sprintf("Invalid server URL %q", server),
			Help: "The server URL has to start with http:// or https://",
		}
	}
	return server, nil
}

// Credentials returns the token store
func (r *Root) Credentials() *credentials.Store {
	if r.credStore == nil {
		r.credStore = credentials.New(globals.GlobalDir)
	}
	return r.credStore
}

// Client returns the API client for the configured server. The token is taken from
// WEBCRAFT_TOKEN or the credential store.
func (r *Root) Client() (*webcraft.Client, error) {
	if r.client != nil {
		return r.client, nil
	}

	server, err := r.Server()
	if err != nil {
		return nil, err
	}

	opts := []webcraft.Option{
		webcraft.WithUserAgent("webcraft-cli/" + Version),
		webcraft.WithLogger(cmdlog.NewZerolog(os.Stderr, viper.GetBool("verbose"), viper.GetBool("nocolor"))),
	}
	if limit := viper.GetFloat64("ratelimit"); limit > 0 {
		opts = append(opts, webcraft.WithRateLimit(rate.Limit(limit), 1))
	}

	token := viper.GetString("token")
	if token == "" {
		stored, err := r.Credentials().Get(server)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			token = stored.AccessToken
		}
	}
	if token != "" {
		opts = append(opts, webcraft.WithToken(token))
	}

	r.client = webcraft.New(server, opts...)
	return r.client, nil
}

// spin shows a spinner on stderr while fn runs (only if stderr is a terminal)
func (r *Root) spin(msg string, fn func() error) error {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fn()
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	s.Start()
	defer s.Stop()
	return fn()
}

// contextOf returns the context of the command (commands run outside of Execute have none)
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// logger returns a console logger writing to the output of the command
func logger(cmd *cobra.Command) *cmdlog.Logger {
	l := cmdlog.New(cmd.OutOrStdout())
	l.SetEmojis(commands.Emoji("x") != "")
	return l
}
