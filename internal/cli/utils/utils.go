package utils

import (
	"fmt"
	"os"
	"prtrack/internal/configutils"
	"prtrack/internal/errcodes"
	"prtrack/internal/systemcodes"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runCommandError func(*cobra.Command, []string) error
type runCommandNoError func(*cobra.Command, []string)

var exit = os.Exit

// ExitCode maps a command error onto the process exit status.
func ExitCode(err error) int {
	switch {
	case errors.Is(err, errcodes.ErrInvalidConfig),
		errors.Is(err, errcodes.ErrMissingAPIURL),
		errors.Is(err, configutils.ErrHomeDirNotFound):
		return systemcodes.ErrorCodeConfig
	case errors.Is(err, errcodes.ErrTerminal):
		return systemcodes.ErrorCodeTUI
	default:
		return systemcodes.ErrorCodeGeneric
	}
}

func RunCommandWrapper(fn runCommandError) runCommandNoError {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			exit(ExitCode(err))
		}
	}
}
