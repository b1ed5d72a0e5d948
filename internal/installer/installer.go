// Package installer holds the two command sequences: install the alpm
// binary system-wide and remove it again. Each sequence is a list of
// ordered fallible steps; the first failure aborts the rest.
package installer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apmgui/alpm-setup/internal/config"
	"github.com/apmgui/alpm-setup/internal/download"
	"github.com/apmgui/alpm-setup/internal/osutil"
	"github.com/apmgui/alpm-setup/internal/pacman"
	"github.com/apmgui/alpm-setup/internal/term"
)

// ErrRoot is returned before any mutation when the caller is root. The
// sequences request sudo themselves; the prompt must belong to the calling
// user.
var ErrRoot = errors.New("refusing to run as root: invoke as a regular user, sudo is requested when needed")

var (
	rootFn        = osutil.RunningAsRoot
	syncFn        = pacman.Sync
	fetchFn       = download.Fetch
	verifyFn      = download.VerifyChecksum
	installFileFn = osutil.InstallFile
	removeFileFn  = osutil.RemoveFile
	removeLocalFn = os.Remove
	statFn        = os.Stat
	runStepsFn    = term.RunSteps
)

type Options struct {
	// KeepLocal preserves the local binary copy after a successful install.
	KeepLocal bool
	// SkipDeps skips the package-manager dependency sync.
	SkipDeps bool
}

// Install runs the installer sequence: sync dependencies, fetch the binary
// unless a local copy is staged, install it to the system path with mode
// 0755, and remove the local copy.
func Install(cfg *config.Config, opts Options) error {
	if rootFn() {
		return ErrRoot
	}

	steps := []term.Step{
		{
			Name:        "Installing dependencies (" + strings.Join(cfg.Packages, ", ") + ")",
			Interactive: true,
			Run: func() (string, error) {
				if opts.SkipDeps {
					return "skipped (--skip-deps)", nil
				}
				if err := syncFn(cfg.Packages...); err != nil {
					return "", err
				}
				return "done", nil
			},
		},
		{
			Name: "Fetching the " + cfg.BinaryName + " binary",
			Run: func() (string, error) {
				if _, err := statFn(cfg.LocalPath); err == nil {
					return "skipped (using local copy)", nil
				}
				if err := fetchFn(cfg.DownloadURL, cfg.LocalPath); err != nil {
					return "", fmt.Errorf("downloading %s: %w", cfg.DownloadURL, err)
				}
				if cfg.ChecksumURL != "" {
					if err := verifyFn(cfg.ChecksumURL, cfg.LocalPath, cfg.BinaryName); err != nil {
						return "", fmt.Errorf("verifying checksum: %w", err)
					}
				}
				return "done", nil
			},
		},
		{
			Name:        "Installing to " + cfg.InstallPath(),
			Interactive: true,
			Run: func() (string, error) {
				if err := installFileFn(cfg.LocalPath, cfg.InstallPath()); err != nil {
					return "", err
				}
				return "done", nil
			},
		},
		{
			Name: "Removing the local copy",
			Run: func() (string, error) {
				if opts.KeepLocal {
					return "skipped (--keep-local)", nil
				}
				if err := removeLocalFn(cfg.LocalPath); err != nil {
					return "", err
				}
				return "done", nil
			},
		},
	}

	return runStepsFn(steps)
}

// Uninstall removes the installed binary and verifies it is gone. It
// returns false when the binary was not installed to begin with, which is
// not an error.
func Uninstall(cfg *config.Config) (bool, error) {
	if rootFn() {
		return false, ErrRoot
	}

	target := cfg.InstallPath()
	if _, err := statFn(target); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", target, err)
	}

	steps := []term.Step{
		{
			Name:        "Removing " + target,
			Interactive: true,
			Run: func() (string, error) {
				if err := removeFileFn(target); err != nil {
					return "", err
				}
				return "done", nil
			},
		},
		{
			Name: "Verifying removal",
			Run: func() (string, error) {
				if _, err := statFn(target); err == nil {
					return "", fmt.Errorf("%s is still present after removal", target)
				}
				return "done", nil
			},
		},
	}

	if err := runStepsFn(steps); err != nil {
		return true, err
	}
	return true, nil
}
