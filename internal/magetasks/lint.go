package magetasks

import (
	"errors"
	"fmt"
)

const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs all linters. Optional linters that are not installed are skipped.
func LintAll() error {
	PrintH2Header("Lint")

	var errs []error
	if err := LintFormat(); err != nil {
		errs = append(errs, err)
	}
	if err := LintVet(); err != nil {
		errs = append(errs, err)
	}
	if err := LintStaticcheck(); err != nil && !IsCommandNotFound(err) {
		errs = append(errs, err)
	}
	if err := LintGolangci(); err != nil && !IsCommandNotFound(err) {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat checks code formatting.
func LintFormat() error {
	return Run("Go Format", "gofmt", "-l", "-d", ".")
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return optional("Staticcheck", "honnef.co/go/tools/cmd/staticcheck@latest", "staticcheck", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return optional("Golangci-lint", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		"golangci-lint", "run", golangciDisabled, "--timeout=5m", "./...")
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return optional("Golangci-lint Fix", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		"golangci-lint", "run", "--fix", golangciDisabled, "--timeout=5m", "./...")
}

// optional runs a tool that may not be installed, warning with the install
// hint when it is missing.
func optional(name, install, cmd string, args ...string) error {
	err := Run(name, cmd, args...)
	if err == nil {
		return nil
	}
	if IsCommandNotFound(err) {
		PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", name, install))
		return err
	}
	return fmt.Errorf("%s failed: %w", name, err)
}
