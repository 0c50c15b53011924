package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Parse runs leading options on the global executor and returns the positional arguments.
// It exits on error.
func Parse(args []string) []string {
	rest, err := GlobalExecutor.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return rest
}
