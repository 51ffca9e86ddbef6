// cmd/pathological/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dirs), environment variables
// PURPOSE: Test the CLI commands end to end through cobra

package pathological

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathological/pkg/errors"
	"github.com/arthur-debert/pathological/pkg/paths"
	"github.com/arthur-debert/pathological/pkg/testutil"
)

// missingName is a Pathfile name that no parent of the temp dir carries
const missingName = "Pathfile-never-created-by-tests"

type result struct {
	stdout string
	stderr string
	err    error
}

// isolate keeps user config and logs out of the test
func isolate(t *testing.T) string {
	t.Helper()
	configDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv(paths.EnvStateDir, t.TempDir())
	for _, key := range []string{
		"PATHOLOGICAL_PATHFILE_NAME",
		"PATHOLOGICAL_OUTPUT_FORMAT",
		"PATHOLOGICAL_OUTPUT_UNIQUE",
		"PATHOLOGICAL_LOGGING_VERBOSITY",
		"PATHOLOGICAL_LOGGING_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return configDir
}

func run(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// project creates root/{lib,app/sub} with a Pathfile listing lib
func project(t *testing.T) (root, sub string) {
	t.Helper()
	root = testutil.TempDir(t)
	testutil.CreateDir(t, root, "lib")
	sub = testutil.CreateDir(t, root, filepath.Join("app", "sub"))
	testutil.CreatePathfile(t, root, "lib")
	return root, sub
}

func TestLocate(t *testing.T) {
	isolate(t)
	root, sub := project(t)

	res := run(t, "locate", sub)
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(root, "Pathfile")+"\n", res.stdout)
}

func TestLocate_WorkingDirectory(t *testing.T) {
	isolate(t)
	root, sub := project(t)
	testutil.Chdir(t, sub)

	res := run(t, "locate")
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(root, "Pathfile")+"\n", res.stdout)
}

func TestLocate_NotFound(t *testing.T) {
	isolate(t)
	_, sub := project(t)

	res := run(t, "locate", "--name", missingName, sub)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrNoPathfile))
	assert.Empty(t, res.stdout)
}

func TestPaths_ExplicitFirst(t *testing.T) {
	isolate(t)
	root, sub := project(t)

	res := run(t, "paths", "--dir", sub, "/explicit/one", "two")
	require.NoError(t, res.err)
	assert.Equal(t, strings.Join([]string{
		"/explicit/one",
		"two",
		filepath.Join(root, "lib"),
		root,
	}, "\n")+"\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestPaths_WorkingDirectory(t *testing.T) {
	isolate(t)
	root, sub := project(t)
	testutil.Chdir(t, sub)

	res := run(t, "paths")
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(root, "lib")+"\n"+root+"\n", res.stdout)
}

func TestPaths_NoPathfileWarns(t *testing.T) {
	isolate(t)
	_, sub := project(t)

	res := run(t, "paths", "--name", missingName, "--dir", sub, "/only")
	require.NoError(t, res.err)
	assert.Equal(t, "/only\n", res.stdout)
	assert.Contains(t, res.stderr, "Warning: no "+missingName+" found in "+sub)
}

func TestPaths_InvalidPath(t *testing.T) {
	isolate(t)
	root := testutil.TempDir(t)
	testutil.CreatePathfile(t, root, "lib", "gone")
	testutil.CreateDir(t, root, "lib")

	res := run(t, "paths", "--dir", root)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidPath))
	assert.Equal(t, 2, errors.GetErrorDetails(res.err)["line"])
	assert.Empty(t, res.stdout)
}

func TestPaths_HashLineIsAnEntry(t *testing.T) {
	isolate(t)
	root := testutil.TempDir(t)
	testutil.CreatePathfile(t, root, "# notes")

	res := run(t, "paths", "--dir", root)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidPath))
	assert.Contains(t, res.err.Error(), filepath.Join(root, "# notes"))

	notes := testutil.CreateDir(t, root, "# notes")
	res = run(t, "paths", "--dir", root)
	require.NoError(t, res.err)
	assert.Equal(t, notes+"\n"+root+"\n", res.stdout)
}

func TestPaths_Formats(t *testing.T) {
	isolate(t)
	root, _ := project(t)
	lib := filepath.Join(root, "lib")

	t.Run("list", func(t *testing.T) {
		res := run(t, "paths", "--dir", root, "--format", "list")
		require.NoError(t, res.err)
		assert.Equal(t, lib+string(os.PathListSeparator)+root+"\n", res.stdout)
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, "paths", "--dir", root, "-f", "json")
		require.NoError(t, res.err)

		var doc struct {
			Paths []string `json:"paths"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc))
		assert.Equal(t, []string{lib, root}, doc.Paths)
	})

	t.Run("yaml", func(t *testing.T) {
		res := run(t, "paths", "--dir", root, "-f", "yaml")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "paths:")
		assert.Contains(t, res.stdout, "- "+lib)
	})

	t.Run("toml", func(t *testing.T) {
		res := run(t, "paths", "--dir", root, "-f", "toml")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "paths = [")
	})

	t.Run("unknown", func(t *testing.T) {
		res := run(t, "paths", "--dir", root, "-f", "xml")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "failed to load configuration")
	})
}

func TestPaths_Unique(t *testing.T) {
	isolate(t)
	root, _ := project(t)
	lib := filepath.Join(root, "lib")

	res := run(t, "paths", "--dir", root, "--unique", lib, lib)
	require.NoError(t, res.err)
	assert.Equal(t, lib+"\n"+root+"\n", res.stdout)
}

func TestPaths_UserConfig(t *testing.T) {
	configDir := isolate(t)
	root, _ := project(t)
	testutil.CreateFile(t, configDir, "config.toml", "[output]\nformat = \"list\"\n")

	t.Run("config file applies", func(t *testing.T) {
		res := run(t, "paths", "--dir", root)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, string(os.PathListSeparator))
	})

	t.Run("flag beats config file", func(t *testing.T) {
		res := run(t, "paths", "--dir", root, "--format", "lines")
		require.NoError(t, res.err)
		assert.Equal(t, filepath.Join(root, "lib")+"\n"+root+"\n", res.stdout)
	})

	t.Run("env beats config file", func(t *testing.T) {
		t.Setenv("PATHOLOGICAL_OUTPUT_FORMAT", "json")
		res := run(t, "paths", "--dir", root)
		require.NoError(t, res.err)
		assert.True(t, strings.HasPrefix(res.stdout, "{"))
	})
}

func TestPaths_ExplicitConfigFlag(t *testing.T) {
	isolate(t)
	root := testutil.TempDir(t)
	testutil.CreateDir(t, root, "src")
	testutil.CreateFile(t, root, "LoadPaths", "src\n> exclude-root\n")
	cfg := testutil.CreateFile(t, testutil.TempDir(t), "alt.yaml", "pathfile:\n  name: LoadPaths\n")

	res := run(t, "paths", "--config", cfg, "--dir", root)
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(root, "src")+"\n", res.stdout)
}

func TestCheck(t *testing.T) {
	isolate(t)
	root, sub := project(t)

	res := run(t, "check", "--style", "text", sub)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Pathfile check")
	assert.Contains(t, res.stdout, filepath.Join(root, "Pathfile"))
	assert.Contains(t, res.stdout, "+ "+filepath.Join(root, "lib"))
}

func TestCheck_Failure(t *testing.T) {
	isolate(t)
	root := testutil.TempDir(t)
	testutil.CreatePathfile(t, root, "> no-such-directive")

	res := run(t, "check", root)
	require.ErrorIs(t, res.err, ErrSilent)
	assert.Contains(t, res.stdout, "[MALFORMED_PATHFILE]")
	assert.Contains(t, res.stdout, "line: 1")
}

func TestCheck_BadStyle(t *testing.T) {
	isolate(t)
	root, _ := project(t)

	res := run(t, "check", "--style", "neon", root)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
}

func TestVersion(t *testing.T) {
	isolate(t)

	res := run(t, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "pathological version dev")
	assert.Contains(t, res.stdout, "commit:")
}

func TestCompletion(t *testing.T) {
	isolate(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := run(t, "completion", shell)
			require.NoError(t, res.err)
			assert.Contains(t, res.stdout, "pathological")
		})
	}

	t.Run("unknown shell", func(t *testing.T) {
		res := run(t, "completion", "tcsh")
		assert.Error(t, res.err)
	})
}

func TestGenCompletionUnknownShell(t *testing.T) {
	err := GenCompletion(NewRootCmd(), "tcsh", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shell")
}

func TestMan(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "man1")

	res := run(t, "man", dir)
	require.NoError(t, res.err)
	assert.FileExists(t, filepath.Join(dir, "pathological.1"))
	assert.FileExists(t, filepath.Join(dir, "pathological-paths.1"))
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	t.Run("list", func(t *testing.T) {
		res := run(t, "help", "topics")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "directives")
		assert.Contains(t, res.stdout, "configuration")
		assert.Contains(t, res.stdout, "--format")
	})

	t.Run("topic", func(t *testing.T) {
		res := run(t, "help", "directives")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "no-exceptions")
		assert.Contains(t, res.stdout, "exclude-root")
	})

	t.Run("pathfile has no comment syntax", func(t *testing.T) {
		res := run(t, "help", "pathfile")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "comments")
		assert.NotContains(t, res.stdout, "hash")
	})
}

func TestNoCommand(t *testing.T) {
	isolate(t)

	res := run(t)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "no command specified")
}

func TestEnv(t *testing.T) {
	isolate(t)
	root, sub := project(t)
	value := filepath.Join(root, "lib") + string(os.PathListSeparator) + root

	t.Run("bash", func(t *testing.T) {
		res := run(t, "env", "--shell", "bash", "--dir", sub)
		require.NoError(t, res.err)
		assert.Equal(t, "export RUBYLIB='"+value+"'\n", res.stdout)
	})

	t.Run("fish with another variable", func(t *testing.T) {
		res := run(t, "env", "--shell", "fish", "--var", "PYTHONPATH", "--dir", sub)
		require.NoError(t, res.err)
		assert.Equal(t, "set -gx PYTHONPATH '"+value+"'\n", res.stdout)
	})

	t.Run("invalid variable", func(t *testing.T) {
		res := run(t, "env", "--shell", "bash", "--var", "NOT-OK", "--dir", sub)
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigValid))
	})

	t.Run("no pathfile and no explicit paths unsets", func(t *testing.T) {
		res := run(t, "env", "--shell", "zsh", "--name", missingName, "--dir", sub)
		require.NoError(t, res.err)
		assert.Equal(t, "unset RUBYLIB\n", res.stdout)
		assert.Contains(t, res.stderr, "Warning:")
	})
}
