package render_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/pathological/pkg/ui/render"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    render.Format
		wantErr bool
	}{
		{input: "", want: render.FormatLines},
		{input: "lines", want: render.FormatLines},
		{input: "LIST", want: render.FormatList},
		{input: "json", want: render.FormatJSON},
		{input: "yaml", want: render.FormatYAML},
		{input: "yml", want: render.FormatYAML},
		{input: " toml ", want: render.FormatTOML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := render.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "lines", render.FormatLines.String())
	assert.Equal(t, "toml", render.FormatTOML.String())
	assert.Equal(t, "unknown", render.Format(42).String())
	assert.Equal(t, []string{"lines", "list", "json", "yaml", "toml"}, render.Formats())
}

var sample = render.Result{
	Paths: []string{"/work/lib", "/work/project/src", "/work/project"},
}

func TestRenderLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, render.FormatLines, sample))
	assert.Equal(t, "/work/lib\n/work/project/src\n/work/project\n", buf.String())
}

func TestRenderLinesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, render.FormatLines, render.Result{}))
	assert.Empty(t, buf.String())
}

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, render.FormatList, sample))
	sep := string(os.PathListSeparator)
	assert.Equal(t, "/work/lib"+sep+"/work/project/src"+sep+"/work/project\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, render.FormatJSON, sample))

	var got render.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestRenderJSONEmptyPathsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, render.FormatJSON, render.Result{}))
	assert.JSONEq(t, `{"paths": []}`, buf.String())
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, render.FormatYAML, sample))
	assert.Contains(t, buf.String(), "paths:\n  - /work/lib\n")

	var got render.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample.Paths, got.Paths)
}

func TestRenderTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, render.FormatTOML, sample))

	var got render.Result
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample.Paths, got.Paths)
}

func TestRenderUnknownFormat(t *testing.T) {
	err := render.Render(&bytes.Buffer{}, render.Format(99), sample)
	assert.Error(t, err)
}
