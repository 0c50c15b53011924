package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxvm"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL over globals on stdin
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

// Globals converts Go and Lox values to starlark bindings
func Globals(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

// EnvGlobals exposes the bindings visible in env
func EnvGlobals(env *loxvm.Env) map[string]any {
	visible := env.Visible()
	ret := make(map[string]any, len(visible))
	for name, value := range visible {
		ret[name] = value
	}
	return ret
}
