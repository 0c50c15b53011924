package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
prompt?: string
dump_ast?: bool
list?: [...int]
`

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "lox.cue", `
prompt: "lox> "
list: [1, 2, 3]
`),
	}, testSchema)

	var str string
	err := loader.AssignFirst("prompt", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "lox> " {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("dump_ast", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPriority(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "a.cue", `prompt: "a"`),
		writeFile(t, "b.cue", `dump_ast: true`),
		writeFile(t, "c.cue", `prompt: "c"`),
	}, testSchema)

	// earlier files win
	if got := First[string](loader, "prompt"); got != "a" {
		t.Fatalf("got %q", got)
	}
	if !First[bool](loader, "dump_ast") {
		t.Fatal()
	}
	if len(loader.Paths()) != 3 {
		t.Fatalf("got %v", loader.Paths())
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "bad.cue", `unknown_field: 1`),
	}, testSchema)
	if err := loader.Check(); err == nil {
		t.Fatal("should error")
	}
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		filepath.Join(t.TempDir(), "nope.cue"),
	}, testSchema)
	if err := loader.Check(); err == nil {
		t.Fatal("should error")
	}
}

func TestZeroLoader(t *testing.T) {
	var loader Loader
	if err := loader.Check(); err != nil {
		t.Fatal(err)
	}
	if First[string](loader, "prompt") != "" {
		t.Fatal()
	}
	var str string
	if err := loader.AssignFirst("prompt", &str); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}
