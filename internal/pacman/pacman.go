// Package pacman wraps the system package manager for the handful of
// non-interactive calls the installer needs.
package pacman

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/apmgui/alpm-setup/internal/osutil"
)

const binary = "pacman"

var runPrivilegedFn = osutil.RunPrivileged

func Available() bool {
	return osutil.CommandExists(binary)
}

// Sync refreshes the package databases and installs the given packages
// without prompting. Success is pacman's exit status alone; its output is
// only surfaced inside the error.
func Sync(packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"-Syu", "--noconfirm", "--needed"}, packages...)
	out, err := runPrivilegedFn(binary, args...)
	if err != nil {
		return fmt.Errorf("pacman sync %s: %s: %w", strings.Join(packages, " "), strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Installed reports whether pkg is present in the local package database.
// Query only, no privileges needed.
func Installed(pkg string) bool {
	return exec.Command(binary, "-Qi", pkg).Run() == nil
}
