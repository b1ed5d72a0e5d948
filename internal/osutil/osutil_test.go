package osutil

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestCommandExists(t *testing.T) {
	if !CommandExists("sh") {
		t.Error("expected sh to exist")
	}
	if CommandExists("definitely-not-a-real-command-xyz") {
		t.Error("expected bogus command to not exist")
	}
}

func TestRunningAsRootMatchesEUID(t *testing.T) {
	want := os.Geteuid() == 0
	if got := RunningAsRoot(); got != want {
		t.Errorf("RunningAsRoot() = %v, want %v", got, want)
	}
}

func captureRunPrivileged(t *testing.T) (*string, *[]string) {
	t.Helper()
	prev := runPrivilegedFn
	t.Cleanup(func() { runPrivilegedFn = prev })

	var name string
	var args []string
	runPrivilegedFn = func(n string, a ...string) ([]byte, error) {
		name = n
		args = a
		return nil, nil
	}
	return &name, &args
}

func assertArgs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInstallFileCopiesWithMode0755(t *testing.T) {
	name, args := captureRunPrivileged(t)

	if err := InstallFile("./alpm", "/usr/bin/alpm"); err != nil {
		t.Fatalf("InstallFile: %v", err)
	}
	if *name != "install" {
		t.Errorf("command = %q, want install", *name)
	}
	assertArgs(t, *args, []string{"-m", "0755", "--", "./alpm", "/usr/bin/alpm"})
}

func TestInstallFileFailureSurfacesOutput(t *testing.T) {
	prev := runPrivilegedFn
	t.Cleanup(func() { runPrivilegedFn = prev })
	runPrivilegedFn = func(n string, a ...string) ([]byte, error) {
		return []byte("install: cannot create regular file\n"), errors.New("exit status 1")
	}

	err := InstallFile("./alpm", "/usr/bin/alpm")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "cannot create regular file") {
		t.Errorf("error %q does not include install output", err)
	}
}

func TestRemoveFileUsesGuardedRm(t *testing.T) {
	name, args := captureRunPrivileged(t)

	if err := RemoveFile("/usr/bin/alpm"); err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}
	if *name != "rm" {
		t.Errorf("command = %q, want rm", *name)
	}
	assertArgs(t, *args, []string{"--", "/usr/bin/alpm"})
}

func TestRemoveFileFailureSurfacesOutput(t *testing.T) {
	prev := runPrivilegedFn
	t.Cleanup(func() { runPrivilegedFn = prev })
	runPrivilegedFn = func(n string, a ...string) ([]byte, error) {
		return []byte("rm: cannot remove\n"), errors.New("exit status 1")
	}

	err := RemoveFile("/usr/bin/alpm")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "cannot remove") {
		t.Errorf("error %q does not include rm output", err)
	}
}
