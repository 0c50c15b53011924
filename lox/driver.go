package lox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/loxlang"
	"github.com/reusee/lox/loxvm"
)

const (
	ExitUsage   = 64
	ExitSyntax  = 65
	ExitRuntime = 70
)

var ErrSyntax = errors.New("syntax error")

// Driver runs sources against one persistent interpreter and tracks reported errors
type Driver struct {
	interp *loxvm.Interpreter
	stdout io.Writer
	stderr io.Writer

	errorCount        int
	runtimeErrorCount int

	logger     logs.Logger
	newSpan    logs.NewSpan
	tap        debugs.Tap
	dumpTokens bool
	dumpAST    bool
	tapOnError bool
}

type NewDriver func(stdout, stderr io.Writer) *Driver

func (Module) NewDriver(
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	dumpTokens loxconfigs.DumpTokens,
	dumpAST loxconfigs.DumpAST,
	tapOnError loxconfigs.TapOnError,
) NewDriver {
	return func(stdout, stderr io.Writer) *Driver {
		if stdout == nil {
			stdout = os.Stdout
		}
		if stderr == nil {
			stderr = os.Stderr
		}
		return &Driver{
			interp:     loxvm.New(stdout),
			stdout:     stdout,
			stderr:     stderr,
			logger:     logger,
			newSpan:    newSpan,
			tap:        tap,
			dumpTokens: bool(dumpTokens),
			dumpAST:    bool(dumpAST),
			tapOnError: bool(tapOnError),
		}
	}
}

// ReportError writes a syntax error line to stderr
func (d *Driver) ReportError(line int, where string, message string) {
	d.errorCount++
	fmt.Fprintf(d.stderr, "[line %d] Error%s: %s\n", line, where, message)
}

func (d *Driver) reportSyntaxError(err *loxlang.Error) {
	d.ReportError(err.Line, err.Where, err.Message)
}

func (d *Driver) reportRuntimeError(err error) {
	d.runtimeErrorCount++
	var runtimeErr *loxvm.RuntimeError
	if errors.As(err, &runtimeErr) {
		fmt.Fprintf(d.stderr, "[line %d] Error: %s\n", runtimeErr.Line, runtimeErr.Message)
		return
	}
	fmt.Fprintf(d.stderr, "Error: %s\n", err)
}

// ResetErrors clears the error counters, keeping the environment
func (d *Driver) ResetErrors() {
	d.errorCount = 0
	d.runtimeErrorCount = 0
}

func (d *Driver) ExitCode() int {
	switch {
	case d.errorCount > 0:
		return ExitSyntax
	case d.runtimeErrorCount > 0:
		return ExitRuntime
	}
	return 0
}

// Run scans, parses and executes source. Nothing executes if any syntax error is reported.
func (d *Driver) Run(ctx context.Context, source string) (err error) {
	ctx, _ = d.newSpan(ctx, "")
	defer func() {
		err = logs.WrapSpan(ctx, err)
	}()
	d.logger.DebugContext(ctx, "run",
		"bytes", len(source),
	)

	scanner := loxlang.NewScanner(source, d.reportSyntaxError)
	tokens := scanner.ScanTokens()
	if d.dumpTokens {
		for _, tok := range tokens {
			fmt.Fprintln(d.stderr, tok.String())
		}
	}

	stmts, err := loxlang.Parse(tokens, d.reportSyntaxError)
	if err != nil {
		return err
	}
	if scanner.HadError() {
		return ErrSyntax
	}
	if d.dumpAST {
		fmt.Fprint(d.stderr, loxlang.FormatProgram(stmts))
	}
	d.logger.DebugContext(ctx, "parsed",
		"tokens", len(tokens),
		"statements", len(stmts),
	)

	if err := d.interp.Run(stmts); err != nil {
		d.reportRuntimeError(err)
		d.logger.DebugContext(ctx, "runtime error",
			"error", err,
		)
		if d.tapOnError {
			d.tap(ctx, "runtime error", d.tapGlobals(err))
		}
		return err
	}

	return nil
}

func (d *Driver) tapGlobals(err error) map[string]any {
	globals := debugs.EnvGlobals(d.interp.Env())
	globals["error"] = err.Error()
	globals["lox"] = d.eval
	return globals
}

// eval runs source in the current environment, returning reported errors as text
func (d *Driver) eval(source string) string {
	var errs []string
	onError := func(err *loxlang.Error) {
		errs = append(errs, err.Error())
	}
	stmts, err := loxlang.Parse(loxlang.Scan(source, onError), onError)
	if err != nil || len(errs) > 0 {
		return strings.Join(errs, "\n")
	}
	if err := d.interp.Run(stmts); err != nil {
		return err.Error()
	}
	return ""
}

func (d *Driver) RunFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script %s: %w", path, err)
	}
	return d.Run(ctx, string(content))
}
