// Package magetasks provides the build, test and lint tasks used by the
// Magefile. Tasks print progress through lipgloss-styled headers and run
// tools through mage's sh helpers.
package magetasks
