package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  s3cr3t \n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	secret, err := Load(Source{Name: "gemini api key", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "s3cr3t" {
		t.Fatalf("expected trimmed secret, got %q", secret)
	}
}

func TestLoadInlineValue(t *testing.T) {
	secret, err := Load(Source{Name: "gemini api key", Value: " inline "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "inline" {
		t.Fatalf("expected trimmed inline secret, got %q", secret)
	}
}

func TestLoadFilePrecedesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	secret, err := Load(Source{File: path, Value: "from-config"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "from-file" {
		t.Fatalf("expected the file to win, got %q", secret)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "gemini api key"}); err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("expected not-configured error, got %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(Source{File: empty}); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected empty-file error, got %v", err)
	}

	// An unreadable file is an error even when an inline value is present.
	if _, err := Load(Source{File: filepath.Join(t.TempDir(), "missing"), Value: "inline"}); err == nil {
		t.Fatalf("expected read error for missing file")
	}
}
