package testutils

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/benoitkugler/floatlayout/logger"
	"github.com/google/go-cmp/cmp"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("mismatch (-expected +got):\n%s", diff)
	}
}

// CapturedLogs redirects the warning logger to an internal buffer,
// until one of its Assert methods is called.
type CapturedLogs struct {
	previous io.Writer
	buf      *bytes.Buffer
}

// CaptureLogs starts recording the emitted warnings.
func CaptureLogs() *CapturedLogs {
	c := CapturedLogs{previous: logger.WarningLogger.Writer(), buf: new(bytes.Buffer)}
	logger.WarningLogger.SetOutput(c.buf)
	return &c
}

// Logs stops the recording and returns the warnings emitted since the
// call to CaptureLogs, one per line.
func (c *CapturedLogs) Logs() []string {
	logger.WarningLogger.SetOutput(c.previous)
	lines := strings.Split(strings.TrimSuffix(c.buf.String(), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

// AssertNoLogs stops the recording and fails if any warning was emitted.
func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no logs, got (%d): \n %s", len(logs), strings.Join(logs, "\n"))
	}
}
