package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/lox"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/modes"
)

func main() {
	args := cmds.Parse(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	scope := dscope.New(
		new(lox.Module),
		modes.ForProduction(),
	)
	code := run(ctx, scope, args, os.Stdin, isTerminal(os.Stdin), os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run dispatches positional args and returns the process exit code
func run(
	ctx context.Context,
	scope dscope.Scope,
	args []string,
	stdin io.Reader,
	interactive bool,
	stdout io.Writer,
	stderr io.Writer,
) (exitCode int) {
	if len(args) > 1 {
		fmt.Fprintln(stderr, "usage: lox [options] [script]")
		return lox.ExitUsage
	}

	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Check(); err != nil {
			fmt.Fprintln(stderr, err)
			exitCode = 1
		}
	})
	if exitCode != 0 {
		return
	}

	scope.Call(func(
		newDriver lox.NewDriver,
		logger logs.Logger,
		prompt loxconfigs.Prompt,
		historyFile loxconfigs.HistoryFile,
	) {
		driver := newDriver(stdout, stderr)

		if len(args) == 1 {
			if err := driver.RunFile(ctx, args[0]); err != nil {
				logger.DebugContext(ctx, "run file",
					"path", args[0],
					"error", err,
				)
				if code := driver.ExitCode(); code != 0 {
					exitCode = code
				} else {
					// unreadable script
					fmt.Fprintln(stderr, err)
					exitCode = 1
				}
			}
			return
		}

		if !interactive {
			source, err := io.ReadAll(stdin)
			if err != nil {
				fmt.Fprintln(stderr, wrap(err))
				exitCode = 1
				return
			}
			if err := driver.Run(ctx, string(source)); err != nil {
				logger.DebugContext(ctx, "run stdin",
					"error", err,
				)
				exitCode = driver.ExitCode()
			}
			return
		}

		if err := runREPL(ctx, driver, prompt, historyFile); err != nil {
			fmt.Fprintln(stderr, err)
			exitCode = 1
		}
	})

	return
}
