package magetasks

import "fmt"

// QA runs linters, tests, the build and the sample render. Lint findings are
// reported but do not stop the run.
func QA() error {
	PrintH1Header("nreport Quality Assurance")

	if err := LintAll(); err != nil {
		PrintWarning("Linting issues found")
	}
	if err := TestAll(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := BuildAll(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	if err := Sample(); err != nil {
		return fmt.Errorf("sample failed: %w", err)
	}

	PrintSuccess("QA complete!")
	return nil
}
