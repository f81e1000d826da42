package magetasks

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// BuildAll builds the nreport binary with version metadata.
func BuildAll() error {
	PrintH2Header("Build")

	flags := ldflags(gitVersion(), gitCommit(), time.Now().UTC().Format(time.RFC3339))
	if err := Run("Go Build", "go", "build", "-ldflags", flags, "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Sample renders the bundled NUnit results into bin/sample.html with the
// built binary and prints a run summary.
func Sample() error {
	PrintH2Header("Sample Report")

	output := filepath.Join("bin", "sample.html")
	if err := Run("Render", BinPath,
		filepath.Join("pkg", "nunit", "testdata", "results.xml"), output,
		"--title", "Sample", "--summary", "terminal"); err != nil {
		PrintError("Sample render failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Wrote: %s", output))
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	if err := sh.Rm("./bin"); err != nil {
		return err
	}
	if err := sh.Rm("coverage.out"); err != nil {
		return err
	}

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func ldflags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, date)
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
