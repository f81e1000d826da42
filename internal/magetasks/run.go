package magetasks

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Run executes a named step, streaming the tool's output.
func Run(name, cmd string, args ...string) error {
	PrintInfo(name)
	if err := sh.RunV(cmd, args...); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
