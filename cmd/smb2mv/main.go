package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/macoscontainers/smb2mv/internal/filesystem"
	"github.com/macoscontainers/smb2mv/internal/logging"
	"github.com/macoscontainers/smb2mv/internal/move"
	"github.com/spf13/cobra"
)

// Signals that the command line was malformed and the usage line should be printed
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args, os.Stderr, filesystem.Kernel{}))
}

// Executes the command and returns the process exit code
func run(args []string, stderr io.Writer, fsys move.Filesystem) int {
	name := filepath.Base(args[0])

	cmd := newRootCmd(name, stderr, fsys)
	cmd.SetArgs(args[1:])

	// -h and --help print the usage line and fail
	helpRequested := false
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		helpRequested = true
	})

	err := cmd.Execute()
	if err == nil && helpRequested {
		err = errUsage
	}
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Usage: %s SRC DST\n", name)
		} else {
			report(stderr, err)
		}
		return 1
	}
	return 0
}

func newRootCmd(name string, stderr io.Writer, fsys move.Filesystem) *cobra.Command {
	var (
		verbose  bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   name + " SRC DST",
		Short: "Move a file on an SMB2/CIFS share using a server-side copy",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ResolveLevel(logLevel, verbose)
			if err != nil {
				return err
			}
			logger := logging.New(stderr, level)

			return move.New(fsys, move.WithLogger(logger)).Move(args[0], args[1])
		},
	}

	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(*cobra.Command, error) error {
		return errUsage
	})

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each step of the move")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error); overrides $"+logging.LevelEnv)

	return cmd
}

// Prints one diagnostic line per error
func report(w io.Writer, err error) {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.WrappedErrors() {
			fmt.Fprintln(w, e)
		}
		return
	}
	fmt.Fprintln(w, err)
}
