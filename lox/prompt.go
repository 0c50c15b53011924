package lox

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

type LineReader interface {
	Readline() (string, error)
}

// RunPrompt runs each line read from r until end of input.
// Errors in one line are reported and do not end the loop.
func (d *Driver) RunPrompt(ctx context.Context, r LineReader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := r.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := d.Run(ctx, line); err != nil {
			d.logger.DebugContext(ctx, "line failed",
				"error", err,
			)
		}
		d.ResetErrors()
	}
}
