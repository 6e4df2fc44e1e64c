package completions

import (
	"path/filepath"
	"strings"
)

// Shell names a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells in display order.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell accepts a shell name or a path such as $SHELL.
func ParseShell(s string) (Shell, bool) {
	name := strings.ToLower(filepath.Base(strings.TrimSpace(s)))
	for _, sh := range Shells {
		if name == string(sh) {
			return sh, true
		}
	}
	return "", false
}
