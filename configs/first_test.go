package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "lox.cue", `prompt: "bar"`),
	}, testSchema)

	str := First[string](loader, "prompt")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	if First[bool](loader, "dump_ast") {
		t.Fatal("should be zero")
	}
}
