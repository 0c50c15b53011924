package lox

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs loxconfigs.Module
	Debugs  debugs.Module
}
