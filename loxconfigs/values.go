package loxconfigs

import (
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/vars"
)

type Prompt string

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		"> ",
	))
}

type HistoryFile string

var historyFlag = cmds.Var[string]("-history")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	return HistoryFile(vars.FirstNonZero(
		*historyFlag,
		configs.First[string](loader, "history_file"),
	))
}

type DumpTokens bool

var dumpTokensFlag = cmds.Switch("-tokens")

func (Module) DumpTokens(
	loader configs.Loader,
) DumpTokens {
	return DumpTokens(*dumpTokensFlag || configs.First[bool](loader, "dump_tokens"))
}

type DumpAST bool

var dumpASTFlag = cmds.Switch("-ast")

func (Module) DumpAST(
	loader configs.Loader,
) DumpAST {
	return DumpAST(*dumpASTFlag || configs.First[bool](loader, "dump_ast"))
}

type TapOnError bool

var tapFlag = cmds.Switch("-tap")

func (Module) TapOnError(
	loader configs.Loader,
) TapOnError {
	return TapOnError(*tapFlag || configs.First[bool](loader, "tap_on_error"))
}
