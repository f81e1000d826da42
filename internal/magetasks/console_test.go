package magetasks

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := out
	out = &buf
	t.Cleanup(func() { out = orig })
	return &buf
}

func TestPrintHeaders(t *testing.T) {
	buf := captureOutput(t)

	PrintH1Header("Test Title")
	assert.Contains(t, buf.String(), "Test Title")
	assert.Contains(t, buf.String(), "========")

	buf.Reset()
	PrintH2Header("Test Section")
	assert.Contains(t, buf.String(), "=== Test Section ===")
}

func TestPrintMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func(string)
		icon  string
	}{
		{"success", PrintSuccess, "✅"},
		{"warning", PrintWarning, "⚠️"},
		{"error", PrintError, "❌"},
		{"info", PrintInfo, "ℹ️"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			tt.print("message text")
			assert.Contains(t, buf.String(), tt.icon)
			assert.Contains(t, buf.String(), "message text")
		})
	}
}

func TestPrintH1Header_LongTitle(t *testing.T) {
	buf := captureOutput(t)
	long := string(bytes.Repeat([]byte("x"), 100))
	assert.NotPanics(t, func() { PrintH1Header(long) })
	assert.Contains(t, buf.String(), long)
}
