// Command tabpaste converts tabular text into source code that rebuilds
// the same table: a pandas or polars DataFrame constructor, or plain
// Python list literals.
//
// Usage (clipboard, the default source):
//
//	tabpaste -format pandas
//
// Usage (file or piped stdin):
//
//	tabpaste -file data.csv -format polars
//	cat data.tsv | tabpaste -format vector
//
// Usage (compose the input in an editor, copy the result back):
//
//	tabpaste -editor -output clipboard
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"tabpaste/internal/clipboard"
)

// main is intentionally small: it wires real dependencies and exits with a code.
func main() {
	os.Exit(run(
		context.Background(),
		os.Args[1:],
		os.Stdin,
		os.Stdout,
		os.Stderr,
		deps{
			ReadClipboard:     clipboard.ReadText,
			ReadClipboardHTML: clipboard.ReadHTML,
			WriteClipboard:    clipboard.WriteText,
			OpenEditor:        openEditor,
			StdinIsPiped:      stdinIsPiped,
			Getenv:            os.Getenv,
		},
	))
}

// stdinIsPiped reports whether stdin is a pipe or redirected file rather
// than an interactive terminal.
func stdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// openEditor runs the editor command on a scratch file and returns what was
// saved. The command may carry arguments ("code -w").
func openEditor(ctx context.Context, editor string) (string, error) {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return "", fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "tabpaste-*.txt")
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	path := tmp.Name()
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close scratch file: %w", err)
	}
	defer os.Remove(path)

	cmd := exec.CommandContext(ctx, parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run editor %q: %w", editor, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read scratch file: %w", err)
	}
	return string(b), nil
}
