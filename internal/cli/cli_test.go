package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"json-mapper/rules"
)

func isolateConfig(t *testing.T) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

var wantArticle = map[string]any{
	"title":      "hello world",
	"slug":       "hello-world",
	"tags":       []any{"go"},
	"imageCount": "many",
}

func TestEval_JSON(t *testing.T) {
	isolateConfig(t)

	out, _, err := run(t, "", "eval", "-r", testdata("article.yaml"), "-s", testdata("article.json"))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, wantArticle, got)
	assert.Contains(t, out, "\n  \"")
}

func TestEval_Formats(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{"yaml", yaml.Unmarshal},
		{"toml", toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := run(t, "", "eval", "-r", testdata("article.yaml"), "-s", testdata("article.json"), "-f", tt.format)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, tt.unmarshal([]byte(out), &got))
			assert.Equal(t, wantArticle, got)
		})
	}

	_, _, err := run(t, "", "eval", "-r", testdata("article.yaml"), "-s", testdata("article.json"), "-f", "xml")
	require.ErrorIs(t, err, rules.ErrUnsupportedFormat)
}

func TestEval_StdinAndExt(t *testing.T) {
	isolateConfig(t)

	source, err := os.ReadFile(testdata("article.json"))
	require.NoError(t, err)

	out, _, err := run(t, string(source), "eval", "-r", testdata("article.yaml"), "-e", testdata("ext.yaml"))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "overridden", got["title"])
	assert.Equal(t, "cli", got["source"])
	assert.Equal(t, "hello-world", got["slug"])
}

func TestEval_Dump(t *testing.T) {
	isolateConfig(t)

	_, stderr, err := run(t, "", "eval", "-r", testdata("article.yaml"), "-s", testdata("article.json"), "--dump")
	require.NoError(t, err)
	assert.Contains(t, stderr, "map[string]interface {}")
	assert.Contains(t, stderr, `"hello-world"`)
}

func TestEval_Seed(t *testing.T) {
	isolateConfig(t)

	args := []string{"eval", "-r", testdata("random.toml"), "-s", testdata("article.json"), "--seed", "7"}

	first, _, err := run(t, "", args...)
	require.NoError(t, err)

	second, _, err := run(t, "", args...)
	require.NoError(t, err)

	var a, b map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	assert.Equal(t, a["score"], b["score"])
	assert.Regexp(t, `^\d+-[0-9a-v]{6}$`, a["id"])
}

func TestEval_ConfigDefaults(t *testing.T) {
	isolateConfig(t)

	rulesPath, err := filepath.Abs(testdata("article.yaml"))
	require.NoError(t, err)

	config := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(config, []byte("rules = '"+rulesPath+"'\nindent = 0\n"), 0o600))

	out, _, err := run(t, "", "--config", config, "eval", "-s", testdata("article.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, wantArticle, got)

	t.Setenv("JSON_MAPPER_FORMAT", "yaml")

	out, _, err = run(t, "", "--config", config, "eval", "-s", testdata("article.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "slug: hello-world")
}

func TestEval_Errors(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing rules file", []string{"eval", "-r", testdata("nope.yaml"), "-s", testdata("article.json")}},
		{"missing source", []string{"eval", "-r", testdata("article.yaml"), "-s", testdata("nope.json")}},
		{"missing ext", []string{"eval", "-r", testdata("article.yaml"), "-s", testdata("article.json"), "-e", testdata("ext.json")}},
		{"missing config", []string{"--config", testdata("nope.toml"), "ops"}},
		{"unexpected argument", []string{"ops", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			assert.Error(t, err)
		})
	}

	_, _, err := run(t, "[1, 2]", "eval", "-r", testdata("article.yaml"), "-s", testdata("article.json"), "-e", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected an object")
}

func TestExplain(t *testing.T) {
	isolateConfig(t)

	out, _, err := run(t, "", "explain", "-r", testdata("article.yaml"), "-s", testdata("article.json"))
	require.NoError(t, err)

	assert.Contains(t, out, "Target")
	assert.Contains(t, out, `"slug": "hello-world"`)
	assert.Contains(t, out, "Diagnostics")
	assert.Contains(t, out, `kind: [unknown_operator] unknown operator type "swtich" (did you mean switch?)`)
	assert.Contains(t, out, "missing: [unresolved_path]")
}

func TestOps(t *testing.T) {
	isolateConfig(t)

	out, _, err := run(t, "", "ops")
	require.NoError(t, err)

	tags := strings.Fields(out)
	assert.Len(t, tags, 16)
	assert.Contains(t, tags, "inject-arr-and-template-render")
	assert.IsIncreasing(t, tags)
}
