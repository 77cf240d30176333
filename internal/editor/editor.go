// Package editor launches an external text editor on a file.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbacks, tried in order when $EDITOR is unset.
var fallbacks = []string{"vim", "vi", "nano"}

// Resolve returns the editor command to use: $EDITOR when set, otherwise
// the first fallback found on PATH.
func Resolve() (string, error) {
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed, nil
	}
	for _, name := range fallbacks {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no editor found (tried $EDITOR, %s)", strings.Join(fallbacks, ", "))
}

// Open launches the editor attached to the terminal and blocks until it
// exits. A missing editor comes back as an error carrying the path so the
// caller can tell the user where to edit by hand.
func Open(path string) error {
	ed, err := Resolve()
	if err != nil {
		return fmt.Errorf("%w; file is at %s", err, path)
	}

	cmd := exec.Command(ed, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", ed, err)
	}
	return nil
}
