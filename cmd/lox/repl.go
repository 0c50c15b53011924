package main

import (
	"context"

	"github.com/chzyer/readline"
	"github.com/reusee/lox/lox"
	"github.com/reusee/lox/loxconfigs"
)

func runREPL(
	ctx context.Context,
	driver *lox.Driver,
	prompt loxconfigs.Prompt,
	historyFile loxconfigs.HistoryFile,
) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      string(prompt),
		HistoryFile: string(historyFile),
	})
	if err != nil {
		return wrap(err)
	}
	defer rl.Close()
	return driver.RunPrompt(ctx, rl)
}
