package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/releaseorder/pkg/errors"
	"github.com/matzehuels/releaseorder/pkg/order"
	"github.com/matzehuels/releaseorder/pkg/server"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const orderedManifest = `items:
  - name: TOMEE-3
    requires: [TOMEE-2]
  - name: TOMEE-1
  - name: TOMEE-2
    requires: [TOMEE-1]
`

const cyclicManifest = `items:
  - name: a
    requires: [b]
  - name: b
    requires: [a]
  - name: c
`

func TestRootCommand_Subcommands(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()
	want := []string{"order", "graph", "notes", "serve", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestOrderCommand(t *testing.T) {
	path := writeFile(t, "release.yaml", orderedManifest)
	out, err := execute(t, "order", path)
	if err != nil {
		t.Fatalf("order error: %v", err)
	}
	i1, i2, i3 := strings.Index(out, "TOMEE-1"), strings.Index(out, "TOMEE-2"), strings.Index(out, "TOMEE-3")
	if i1 < 0 || i1 > i2 || i2 > i3 {
		t.Errorf("order output not in dependency order:\n%s", out)
	}
	if !strings.Contains(out, "2 references") {
		t.Errorf("order output missing stats:\n%s", out)
	}
}

func TestOrderCommand_JSON(t *testing.T) {
	path := writeFile(t, "release.yaml", orderedManifest)
	out, err := execute(t, "order", "--json", path)
	if err != nil {
		t.Fatalf("order --json error: %v", err)
	}
	if !strings.Contains(out, `"order": [`) || !strings.Contains(out, `"run_id"`) {
		t.Errorf("order --json output = %s", out)
	}

	empty := writeFile(t, "empty.yaml", "items: []\n")
	out, err = execute(t, "order", "--json", empty)
	if err != nil {
		t.Fatalf("order --json on empty manifest error: %v", err)
	}
	if !strings.Contains(out, `"order": []`) {
		t.Errorf("order --json on empty manifest = %s, want empty order", out)
	}
}

func TestOrderCommand_Cycles(t *testing.T) {
	path := writeFile(t, "release.yaml", cyclicManifest)
	out, err := execute(t, "order", path)

	var cycleErr *order.CycleError
	if !errors.As(err, &cycleErr) || len(cycleErr.Cycles) != 1 {
		t.Fatalf("order error = %v, want CycleError with 1 cycle", err)
	}
	if !strings.Contains(out, "a → b → a") {
		t.Errorf("order output missing cycle:\n%s", out)
	}

	out, err = execute(t, "order", "--json", path)
	if !errs.Is(err, errs.ErrCodeCycleDetected) {
		t.Errorf("order --json error = %v, want CYCLE_DETECTED", err)
	}
	if !strings.Contains(out, `"cycles": [`) {
		t.Errorf("order --json output missing cycles: %s", out)
	}
}

func TestOrderCommand_Errors(t *testing.T) {
	unknown := writeFile(t, "release.yaml", "items:\n  - name: a\n    requires: [ghost]\n")
	tests := []struct {
		name string
		args []string
		code errs.Code
	}{
		{"unknown reference", []string{"order", unknown}, errs.ErrCodeUnknownReference},
		{"missing file", []string{"order", filepath.Join(t.TempDir(), "none.yaml")}, errs.ErrCodeFileNotFound},
		{"bad format flag", []string{"order", "--format", "xml", unknown}, errs.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if got := errs.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %s, want %s (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestGraphCommand(t *testing.T) {
	path := writeFile(t, "release.yaml", cyclicManifest)
	out, err := execute(t, "graph", path)
	if err != nil {
		t.Fatalf("graph error: %v", err)
	}
	if !strings.HasPrefix(out, "digraph G {") || !strings.Contains(out, `"a" -> "b" [color=`) {
		t.Errorf("graph output:\n%s", out)
	}

	dst := filepath.Join(t.TempDir(), "release.dot")
	if _, err := execute(t, "graph", path, "-o", dst, "--rankdir", "LR"); err != nil {
		t.Fatalf("graph -o error: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "rankdir=LR;") {
		t.Errorf("graph file:\n%s", data)
	}

	if _, err := execute(t, "graph", "--format", "png", path); err == nil {
		t.Error("graph --format png expected error")
	}
}

func TestGraphCommand_SVG(t *testing.T) {
	path := writeFile(t, "release.yaml", orderedManifest)
	dst := filepath.Join(t.TempDir(), "release.svg")

	root := New(io.Discard, log.InfoLevel).RootCommand()
	var stderr bytes.Buffer
	root.SetOut(io.Discard)
	root.SetErr(&stderr)
	root.SetArgs([]string{"graph", "--format", "svg", "-o", dst, path})
	if err := root.Execute(); err != nil {
		t.Fatalf("graph --format svg error: %v", err)
	}

	if !strings.Contains(stderr.String(), "Rendered 3 items") {
		t.Errorf("stderr = %q, want render success", stderr.String())
	}
	data, err := os.ReadFile(dst)
	if err != nil || !strings.Contains(string(data), "<svg") {
		t.Errorf("svg file = %.80q, %v", data, err)
	}
}

func TestNotesCommand(t *testing.T) {
	path := writeFile(t, "issues.json", `{"issues":[
		{"key":"TOMEE-2","type":"Bug","summary":"Second","requires":["TOMEE-1"]},
		{"key":"TOMEE-1","type":"Bug","summary":"First"}
	]}`)
	out, err := execute(t, "notes", path, "--release", "9.0.0")
	if err != nil {
		t.Fatalf("notes error: %v", err)
	}
	if !strings.HasPrefix(out, "= Apache TomEE 9.0.0 Release Notes\n") {
		t.Errorf("notes header:\n%s", out)
	}
	if strings.Index(out, "[TOMEE-1]") > strings.Index(out, "[TOMEE-2]") {
		t.Errorf("notes not in dependency order:\n%s", out)
	}

	if _, err := execute(t, "notes", path); err == nil {
		t.Error("notes without --release expected error")
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "releaseorder") {
		t.Error("completion output should mention releaseorder")
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh expected error")
	}
}

func TestDefaultAddr(t *testing.T) {
	t.Setenv(envAddr, "")
	if got := defaultAddr(); got != server.DefaultAddr {
		t.Errorf("defaultAddr() = %q, want %q", got, server.DefaultAddr)
	}
	t.Setenv(envAddr, "127.0.0.1:9999")
	if got := defaultAddr(); got != "127.0.0.1:9999" {
		t.Errorf("defaultAddr() = %q, want 127.0.0.1:9999", got)
	}
}
