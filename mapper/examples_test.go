package mapper_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"json-mapper/mapper"
	"json-mapper/rules"
)

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	return doc
}

func TestExamples(t *testing.T) {
	t.Parallel()

	dirs, err := filepath.Glob(filepath.Join("..", "examples", "*", "source.json"))
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	m := mapper.New(rules.Ruleset{})

	for _, sourcePath := range dirs {
		dir := filepath.Dir(sourcePath)

		t.Run(filepath.Base(dir), func(t *testing.T) {
			t.Parallel()

			rulesPaths, err := filepath.Glob(filepath.Join(dir, "rules.*"))
			require.NoError(t, err)
			require.Len(t, rulesPaths, 1)

			rs, err := rules.LoadFile(rulesPaths[0])
			require.NoError(t, err)

			var ext map[string]any
			if data, err := os.ReadFile(filepath.Join(dir, "ext.yaml")); err == nil {
				require.NoError(t, yaml.Unmarshal(data, &ext))
			}

			got := m.Conversion(readJSON(t, sourcePath), ext, rs)

			// Compare through JSON so integer and float numbers agree.
			encoded, err := json.Marshal(got)
			require.NoError(t, err)

			var normalized map[string]any
			require.NoError(t, json.Unmarshal(encoded, &normalized))

			assert.Equal(t, readJSON(t, filepath.Join(dir, "expected.json")), normalized)
		})
	}
}
