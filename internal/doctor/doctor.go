// Package doctor runs read-only diagnostic checks against the environment
// the installer depends on.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apmgui/alpm-setup/internal/config"
	"github.com/apmgui/alpm-setup/internal/osutil"
	"github.com/apmgui/alpm-setup/internal/pacman"
)

type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

type CheckResult struct {
	Name    string
	Status  Status
	Message string
}

type Report struct {
	Results []CheckResult
}

func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

var (
	runningAsRootFn = osutil.RunningAsRoot
	commandExistsFn = osutil.CommandExists
	availableFn     = pacman.Available
	installedFn     = pacman.Installed
	statFn          = os.Stat
	pathEnvFn       = func() string { return os.Getenv("PATH") }
)

func Run(cfg *config.Config) Report {
	results := []CheckResult{
		checkPrivileges(),
		checkPacman(),
		checkCommand("sudo"),
	}
	for _, pkg := range cfg.Packages {
		results = append(results, checkPackage(pkg))
	}
	results = append(results,
		checkBinary(cfg.InstallPath()),
		checkPathDir(cfg.InstallDir),
	)
	return Report{Results: results}
}

func checkPrivileges() CheckResult {
	name := "Privileges"
	if runningAsRootFn() {
		return CheckResult{Name: name, Status: Fail, Message: "running as root; run as a regular user"}
	}
	return CheckResult{Name: name, Status: Pass, Message: "regular user"}
}

func checkPacman() CheckResult {
	name := "Command: pacman"
	if !availableFn() {
		return CheckResult{Name: name, Status: Fail, Message: "not found in PATH"}
	}
	return CheckResult{Name: name, Status: Pass, Message: "available"}
}

func checkCommand(cmd string) CheckResult {
	name := "Command: " + cmd
	if !commandExistsFn(cmd) {
		return CheckResult{Name: name, Status: Fail, Message: "not found in PATH"}
	}
	return CheckResult{Name: name, Status: Pass, Message: "available"}
}

func checkPackage(pkg string) CheckResult {
	name := "Package: " + pkg
	if !installedFn(pkg) {
		return CheckResult{Name: name, Status: Warn, Message: "not installed (install will sync it)"}
	}
	return CheckResult{Name: name, Status: Pass, Message: "installed"}
}

func checkBinary(path string) CheckResult {
	name := "Binary: " + path
	info, err := statFn(path)
	if err != nil {
		return CheckResult{Name: name, Status: Warn, Message: "not installed"}
	}
	if info.Mode().Perm()&0111 == 0 {
		return CheckResult{Name: name, Status: Fail, Message: "present but not executable"}
	}
	return CheckResult{Name: name, Status: Pass, Message: fmt.Sprintf("installed (mode %04o)", info.Mode().Perm())}
}

func checkPathDir(dir string) CheckResult {
	name := "PATH"
	for _, p := range filepath.SplitList(pathEnvFn()) {
		if p == dir {
			return CheckResult{Name: name, Status: Pass, Message: dir + " is on PATH"}
		}
	}
	return CheckResult{Name: name, Status: Warn, Message: dir + " is not on PATH"}
}
