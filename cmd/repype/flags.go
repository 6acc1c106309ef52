package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateRunOptions(opts runOptions) error {
	if len(opts.Paths) == 0 {
		return fmt.Errorf("at least one pipeline file is required")
	}

	if opts.Timeout < 0 {
		return fmt.Errorf("timeout must be positive, got %d", opts.Timeout)
	}
	if opts.Parallel < 0 {
		return fmt.Errorf("parallel must be positive, got %d", opts.Parallel)
	}

	for _, path := range opts.Paths {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("pipeline file is required")
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve pipeline path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("pipeline file does not exist: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("pipeline path %s is a directory", abs)
		}
	}

	return nil
}
