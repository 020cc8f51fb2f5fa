package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `{
  "private": true,
  "workspaces": ["packages/*"],
  "devDependencies": {
    "@babel/runtime": "7.22.15",
    "core-js-pure": "^3.36.1"
  }
}`

// setupProject creates a workspace root in a temp dir and makes it the working directory
func setupProject(t *testing.T) string {
	t.Helper()
	color.NoColor = true
	t.Setenv("NODE_ENV", "")
	t.Setenv("XFORM_ENV", "")

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(testManifest), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "packages", "web", "src"), 0755))
	t.Chdir(root)
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSkipsAppInit(t *testing.T) {
	tests := []struct {
		name     string
		cmdName  string
		expected bool
	}{
		{name: "version", cmdName: "version", expected: true},
		{name: "help", cmdName: "help", expected: true},
		{name: "completion", cmdName: "completion", expected: true},
		{name: "resolve", cmdName: "resolve", expected: false},
		{name: "config", cmdName: "config", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, skipsAppInit(&cobra.Command{Use: tt.cmdName}))
		})
	}
}

func TestIsConfigCommand(t *testing.T) {
	root := NewRootCmd()

	for _, tc := range []struct {
		args     []string
		expected bool
	}{
		{args: []string{"config"}, expected: true},
		{args: []string{"config", "set"}, expected: true},
		{args: []string{"config", "remove"}, expected: true},
		{args: []string{"resolve"}, expected: false},
		{args: []string{"overrides"}, expected: false},
	} {
		cmd, _, err := root.Find(tc.args)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, isConfigCommand(cmd), tc.args)
	}
}

func TestValidateEnvFlag(t *testing.T) {
	newCmd := func(value string) *cobra.Command {
		cmd := &cobra.Command{Use: "resolve"}
		cmd.Flags().String("env", "", "")
		if value != "" {
			require.NoError(t, cmd.Flags().Set("env", value))
		}
		return cmd
	}

	assert.NoError(t, validateEnvFlag(newCmd("")))
	assert.NoError(t, validateEnvFlag(newCmd("TEST")))

	err := validateEnvFlag(newCmd("developmnt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "development"?`)
}

func TestResolveCommand(t *testing.T) {
	setupProject(t)

	t.Run("json contract for a web file in production", func(t *testing.T) {
		out, err := execute(t, "resolve", "packages/web/src/index.ts", "--env", "production", "--json")
		require.NoError(t, err)

		var resolved map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &resolved))
		assert.Equal(t, map[string]any{
			"browsers": []any{"defaults", "not IE 11", "not IE_Mob 11"},
		}, resolved["targets"])
		assert.Equal(t, []any{
			`/\.test\.(js|ts)/`, "**/__tests__", "**/__mocks__", "**/__snapshots__",
		}, resolved["ignore"])
	})

	t.Run("test env ignores nothing", func(t *testing.T) {
		out, err := execute(t, "resolve", "packages/api/src/index.ts", "--env", "test", "--json")
		require.NoError(t, err)

		var resolved map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &resolved))
		assert.Equal(t, map[string]any{"node": "14.20"}, resolved["targets"])
		assert.Equal(t, []any{}, resolved["ignore"])
	})

	t.Run("walking a directory always prints a list", func(t *testing.T) {
		root, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(root, "packages", "web", "src", "index.ts"), nil, 0644))

		out, err := execute(t, "resolve", "packages/web", "--all", "--json")
		require.NoError(t, err)

		var entries []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "packages/web/src/index.ts", entries[0]["path"])
		assert.Equal(t, false, entries[0]["ignored"])
	})

	t.Run("NODE_ENV is honoured", func(t *testing.T) {
		t.Setenv("NODE_ENV", "test")
		out, err := execute(t, "ignored", "packages/web/src/__tests__/a.test.js", "--json")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"path": "packages/web/src/__tests__/a.test.js", "ignored": false}]`, out)
	})

	t.Run("NODE_ENV outside the known modes", func(t *testing.T) {
		t.Setenv("NODE_ENV", "staging")
		out, err := execute(t, "ignored", "packages/web/src/__tests__/a.test.js", "--json")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"path": "packages/web/src/__tests__/a.test.js", "ignored": true, "ignoredBy": "/\\.test\\.(js|ts)/"}]`, out)
	})

	t.Run("unknown env", func(t *testing.T) {
		_, err := execute(t, "resolve", "a.ts", "--env", "prod")
		assert.ErrorContains(t, err, `did you mean "production"?`)
	})
}

func TestIgnoredCheck(t *testing.T) {
	setupProject(t)

	out, err := execute(t, "ignored", "--check", "packages/web/src/__mocks__/api.ts", "packages/web/src/api.ts")
	assert.ErrorContains(t, err, "1 of 2 paths are ignored")
	assert.Contains(t, out, "packages/web/src/__mocks__/api.ts (**/__mocks__)")
}

func TestConfigCommandWithBrokenTransformConfig(t *testing.T) {
	root := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "transform.toml"), []byte("[base\n"), 0644))

	// Resolution fails on the broken file
	_, err := execute(t, "overrides")
	require.Error(t, err)

	// Local config still works
	out, err := execute(t, "config", "set", "env", "development")
	require.NoError(t, err)
	assert.Contains(t, out, "Set env to: development")

	data, err := os.ReadFile(filepath.Join(root, ".xform", "config.local.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"env": "development"}`, string(data))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xform version dev")
}

func TestProjectPaths(t *testing.T) {
	root := setupProject(t)
	t.Chdir(filepath.Join(root, "packages", "web"))

	paths, err := projectPaths(root, []string{"src/index.ts", ".", "../../package.json", "../../../outside.ts"})
	require.NoError(t, err)

	assert.Equal(t, "packages/web/src/index.ts", paths[0])
	assert.Equal(t, "packages/web", paths[1])
	assert.Equal(t, "package.json", paths[2])
	assert.Equal(t, filepath.ToSlash(filepath.Join(filepath.Dir(root), "outside.ts")), paths[3])
}

func TestResolveFromSubdirectory(t *testing.T) {
	root := setupProject(t)
	t.Chdir(filepath.Join(root, "packages", "web"))

	out, err := execute(t, "explain", "src/index.ts", "--json")
	require.NoError(t, err)

	var explained map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &explained))
	assert.Equal(t, "packages/web/src/index.ts", explained["path"])
	assert.Equal(t, "other", explained["env"])
	overrides := explained["overrides"].([]any)
	require.Len(t, overrides, 1)
	assert.Equal(t, "web", overrides[0].(map[string]any)["label"])
}
