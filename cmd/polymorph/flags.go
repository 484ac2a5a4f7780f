package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// parseAssignments splits repeated key=value flags into a map of raw values.
func parseAssignments(flag string, pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("--%s %q: expected key=value", flag, pair)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("--%s: key %q given more than once", flag, key)
		}
		out[key] = value
	}
	return out, nil
}
