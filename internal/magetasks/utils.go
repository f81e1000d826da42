package magetasks

import (
	"errors"
	"os/exec"
	"strings"
)

// notFoundMarkers are the messages a missing tool produces once mage's sh
// helpers have flattened the exec error into text.
var notFoundMarkers = []string{
	"executable file not found",
	"no such file or directory",
}

// IsCommandNotFound reports whether err means the tool is not installed.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	for _, m := range notFoundMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
