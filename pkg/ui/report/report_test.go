package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathological/pkg/errors"
	"github.com/arthur-debert/pathological/pkg/ui"
	"github.com/arthur-debert/pathological/pkg/ui/report"
)

func TestRenderSuccessText(t *testing.T) {
	var buf bytes.Buffer
	rep := report.Report{
		Dir:      "/work/app",
		Pathfile: "/work/Pathfile",
		Paths:    []string{"/work/lib", "/work"},
	}

	require.NoError(t, report.New(&buf, ui.FormatText).Render(rep))
	assert.True(t, rep.OK())

	out := buf.String()
	assert.Contains(t, out, "Pathfile check")
	assert.Contains(t, out, "/work/app")
	assert.Contains(t, out, "/work/Pathfile")
	assert.Contains(t, out, "+ /work/lib")
	assert.Contains(t, out, "+ /work\n")
	assert.Contains(t, out, "ok")
}

func TestRenderNoPathfile(t *testing.T) {
	var buf bytes.Buffer
	rep := report.Report{
		Dir: "/tmp",
		Err: errors.New(errors.ErrNoPathfile, "no Pathfile found in /tmp or any parent directory"),
	}

	require.NoError(t, report.New(&buf, ui.FormatText).Render(rep))
	assert.False(t, rep.OK())
	assert.Contains(t, buf.String(), "none found")
	assert.Contains(t, buf.String(), "[NO_PATHFILE]")
}

func TestRenderErrorDetails(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrInvalidPath, "path /work/nope does not exist").
		WithDetail("line", 3).
		WithDetail("entry", "nope")
	rep := report.Report{Dir: "/work", Pathfile: "/work/Pathfile", Err: err}

	require.NoError(t, report.New(&buf, ui.FormatText).Render(rep))

	out := buf.String()
	assert.Contains(t, out, "[INVALID_PATH] path /work/nope does not exist")
	assert.Contains(t, out, "entry: nope")
	assert.Contains(t, out, "line: 3")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("entry:")), bytes.Index(buf.Bytes(), []byte("line:")))
	assert.NotContains(t, out, "ok\n")
}
