package osutil

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RunPrivileged runs name through sudo unless we already are root. sudo
// authenticates the caller interactively, so stdin stays attached to the
// terminal while output is captured for error reporting.
func RunPrivileged(name string, args ...string) ([]byte, error) {
	if RunningAsRoot() {
		return exec.Command(name, args...).CombinedOutput()
	}
	all := append([]string{name}, args...)
	cmd := exec.Command("sudo", all...)
	cmd.Stdin = os.Stdin
	return cmd.CombinedOutput()
}

func RunningAsRoot() bool {
	return os.Geteuid() == 0
}

func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

var runPrivilegedFn = RunPrivileged

// InstallFile copies src to dst with mode 0755 in a single privileged step.
func InstallFile(src, dst string) error {
	out, err := runPrivilegedFn("install", "-m", "0755", "--", src, dst)
	if err != nil {
		return fmt.Errorf("installing %s: %s: %w", dst, strings.TrimSpace(string(out)), err)
	}
	return nil
}

// RemoveFile removes a privileged path.
func RemoveFile(path string) error {
	out, err := runPrivilegedFn("rm", "--", path)
	if err != nil {
		return fmt.Errorf("removing %s: %s: %w", path, strings.TrimSpace(string(out)), err)
	}
	return nil
}
