package util

import (
	"errors"
	"strings"
)

// SanitizeFileName rejects traversal patterns and flattens path
// separators so user-supplied names cannot escape their key prefix.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" || s == "." {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
