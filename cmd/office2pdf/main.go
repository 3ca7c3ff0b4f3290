package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args[1:], DefaultEnv()))
}

// realMain dispatches the command and returns the process exit code.
// Separated from main for testability.
func realMain(args []string, env *Environment) int {
	command := "convert"
	rest := args

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "convert", "doctor", "version", "help":
			command = args[0]
			rest = args[1:]
		default:
			// Bare input path: implicit convert
		}
	}

	switch command {
	case "help":
		runHelp(rest, env)
		return ExitSuccess

	case "version":
		fmt.Fprintf(env.Stdout, "office2pdf %s\n", Version)
		return ExitSuccess

	case "doctor":
		return runDoctorCmd(rest, env)

	default: // convert
		flags, positional, err := parseConvertFlags(rest)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitUsage
		}

		configureMaxprocs(flags.common.verbose, env)

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if err := runConvert(ctx, positional, flags, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}
}

// configureMaxprocs aligns GOMAXPROCS with container CPU quotas.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxprocs(verbose bool, env *Environment) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}
}
