// Package validation checks paths handed to the shell by the UI layer.
package validation

import (
	"fmt"
	"strings"
)

// ValidateLocalPath rejects paths that no OS call could accept.
//
// Returns an error if the path:
//   - Is empty or only whitespace
//   - Contains null bytes
func ValidateLocalPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains null byte: %q", path)
	}
	return nil
}
