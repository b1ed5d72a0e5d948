package download

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetchWritesDestination(t *testing.T) {
	body := "fake-binary-bytes"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "alpm")
	if err := Fetch(srv.URL, dest); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != body {
		t.Errorf("content = %q, want %q", got, body)
	}

	// the temp file must not survive
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the destination in %s, got %d entries", dir, len(entries))
	}
}

func TestFetchNon200LeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "alpm")
	err := Fetch(srv.URL, dest)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("error %q does not mention status", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("expected no file at destination after failed download")
	}
}

func TestFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if err := Fetch(url, filepath.Join(t.TempDir(), "alpm")); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}

func checksumServer(t *testing.T, lines string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, lines)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifyChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alpm")
	content := []byte("binary payload")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	sum := sha256.Sum256(content)
	good := hex.EncodeToString(sum[:])

	srv := checksumServer(t, good+"  alpm\nffff  other\n")
	if err := VerifyChecksum(srv.URL, path, "alpm"); err != nil {
		t.Fatalf("VerifyChecksum: %v", err)
	}
}

func TestVerifyChecksumMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alpm")
	if err := os.WriteFile(path, []byte("binary payload"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	srv := checksumServer(t, strings.Repeat("0", 64)+"  alpm\n")
	err := VerifyChecksum(srv.URL, path, "alpm")
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if !strings.Contains(err.Error(), "expected") {
		t.Errorf("error %q does not describe the mismatch", err)
	}
}

func TestVerifyChecksumMissingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alpm")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	srv := checksumServer(t, "abcd  something-else\n")
	err := VerifyChecksum(srv.URL, path, "alpm")
	if err == nil {
		t.Fatal("expected missing-entry error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q does not mention missing entry", err)
	}
}
