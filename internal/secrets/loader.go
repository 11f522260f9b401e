package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret comes from. File takes precedence over
// Value, so a key file can override an inline configuration entry.
type Source struct {
	// Name appears in error messages.
	Name string
	// Value is an inline secret from configuration.
	Value string
	// File is a path to a file holding the secret.
	File string
}

// Load resolves the secret, trimming surrounding whitespace. It fails when
// the selected source does not yield a non-empty secret.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		if secret := strings.TrimSpace(string(data)); secret != "" {
			return secret, nil
		}
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	return "", fmt.Errorf("%s is not configured", name)
}
