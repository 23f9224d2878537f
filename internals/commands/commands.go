package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type Command struct {
	*cobra.Command
	runner Runner
}

type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// exit is replaced in tests
var exit = os.Exit

func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		err := run.RunE(cmd, args)
		if err != nil {
			PrintError(cmd.ErrOrStderr(), err)
			exit(1)
		}
	}

	return build
}

// PrintError renders err for the terminal. API errors get translated to a CliError first.
func PrintError(w io.Writer, err error) {
	err = FromAPIError(err)

	var asCliErr *CliError
	if errors.As(err, &asCliErr) {
		fmt.Fprintln(w, asCliErr.RichError()+"\n")
		return
	}
	fmt.Fprintln(w, ErrorBox(err.Error(), ""))
}
