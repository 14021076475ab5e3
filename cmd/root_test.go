package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/ldx/internal/ui"
)

const sampleList = `name: groceries
sections:
  - title: Produce
    footer: 2 items
    items:
      - apples
      - kale
  - title: Dairy
    items:
      - milk
      - yogurt
`

// captureOutput runs fn while capturing stdout into a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	_ = w.Close()
	os.Stdout = orig
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("copy: %v", err)
	}
	_ = r.Close()
	return buf.String()
}

func resetRootCmdState() {
	themeName = ""
	configFile = ""
	noColor = false
	debug = false
	keyMode = ""
	renderSnapshot = false
	widthOverride = 0
	heightOverride = 0

	rootCmd.SetArgs(nil)
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
}

func runCLI(t *testing.T, args []string) string {
	t.Helper()
	resetRootCmdState()
	// Isolate from user config by pointing XDG_CONFIG_HOME to a temp dir.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	os.Args = args
	return captureOutput(t, func() {
		if err := Execute(); err != nil {
			t.Fatalf("Execute error: %v", err)
		}
	})
}

func writeSampleList(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "groceries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0o644))
	return path
}

func TestCLI_NoInputShowsHelp(t *testing.T) {
	origIsTerminal := isTerminal
	isTerminal = func(uintptr) bool { return true }
	t.Cleanup(func() { isTerminal = origIsTerminal })

	out := runCLI(t, []string{"ldx"})
	if !strings.Contains(out, "Usage:") || !strings.Contains(out, "ldx [file]") {
		t.Fatalf("expected help output, got %q", out)
	}
	if !strings.Contains(out, "Examples:") {
		t.Fatalf("expected Examples section in help, got %q", out)
	}
	if !strings.Contains(out, "Flags:") {
		t.Fatalf("expected Flags section in help, got %q", out)
	}
}

func TestCLI_SnapshotRendersDocument(t *testing.T) {
	path := writeSampleList(t)
	out := runCLI(t, []string{
		"ldx", path,
		"--snapshot", "--no-color",
		"--width", "60", "--height", "20",
	})
	for _, want := range []string{"groceries", "Produce", "Dairy", "apples", "milk", "2 items", "> apples"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected snapshot to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCLI_SnapshotNoColorHasNoANSI(t *testing.T) {
	path := writeSampleList(t)
	out := runCLI(t, []string{
		"ldx", path,
		"--snapshot", "--no-color",
		"--width", "40", "--height", "12",
	})
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes in snapshot output with --no-color, got:\n%s", out)
	}
}

func TestSnapshotWidthHeightRespectFlags(t *testing.T) {
	path := writeSampleList(t)
	out := runCLI(t, []string{
		"ldx", path,
		"--snapshot", "--no-color",
		"--width", "34", "--height", "10",
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Title bar plus body rows plus status bar.
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), out)
	}
	for i, line := range lines {
		if len([]rune(line)) > 34 {
			t.Fatalf("line %d exceeds width 34: %q", i, line)
		}
	}
}

func TestCLI_SnapshotFromStdin(t *testing.T) {
	resetRootCmdState()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(sampleList)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	origStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = origStdin; _ = r.Close() })

	os.Args = []string{"ldx", "--snapshot", "--no-color", "--width", "60", "--height", "20"}
	out := captureOutput(t, func() {
		require.NoError(t, Execute())
	})
	require.Contains(t, out, "groceries")
	require.Contains(t, out, "kale")
}

func TestCLI_MissingFileFails(t *testing.T) {
	resetRootCmdState()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	os.Args = []string{"ldx", filepath.Join(t.TempDir(), "absent.yaml"), "--snapshot"}
	require.Error(t, Execute())
}

func TestCLI_InteractiveRequiresTerminal(t *testing.T) {
	origIsTerminal := isTerminal
	isTerminal = func(fd uintptr) bool { return fd == os.Stdin.Fd() }
	t.Cleanup(func() { isTerminal = origIsTerminal })

	resetRootCmdState()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	os.Args = []string{"ldx", writeSampleList(t)}
	err := Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a terminal")
}

func TestCLI_InteractiveRunsProgram(t *testing.T) {
	origIsTerminal := isTerminal
	isTerminal = func(uintptr) bool { return true }
	t.Cleanup(func() { isTerminal = origIsTerminal })

	origRun := runProgram
	var got *ui.Model
	runProgram = func(m *ui.Model) error {
		got = m
		return nil
	}
	t.Cleanup(func() { runProgram = origRun })

	resetRootCmdState()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	os.Args = []string{"ldx", writeSampleList(t), "--width", "50", "--height", "15"}
	require.NoError(t, Execute())
	require.NotNil(t, got)
	require.Contains(t, got.Snapshot(), "apples")
}

func TestRootFlagsRegistered(t *testing.T) {
	for _, name := range []string{
		"theme", "config-file", "no-color", "debug",
		"keymap", "snapshot", "width", "height",
	} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Fatalf("flag %q not registered", name)
		}
	}
}
