package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"json-mapper/rules"
)

func errNotObject(path string) error {
	return fmt.Errorf("%s: expected an object", path)
}

// readDocument reads a JSON, YAML or TOML document from path, or from stdin
// when path is "-". Stdin is read as YAML, which also accepts JSON.
func readDocument(path string, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	format := rules.InferFormat(path)
	if format == "" {
		format = rules.FormatYAML
	}

	var doc any

	switch format {
	case rules.FormatJSON:
		err = json.Unmarshal(data, &doc)
	case rules.FormatTOML:
		var m map[string]any

		err = toml.Unmarshal(data, &m)
		doc = m
	default:
		err = yaml.Unmarshal(data, &doc)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return rules.Normalize(doc), nil
}

// writeDocument writes v in the given format.
func writeDocument(w io.Writer, v any, format string, indent int) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(format) {
	case rules.FormatJSON, "":
		if indent > 0 {
			data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
		} else {
			data, err = json.Marshal(v)
		}

		data = append(data, '\n')
	case rules.FormatYAML, "yml":
		data, err = yaml.Marshal(v)
	case rules.FormatTOML:
		data, err = toml.Marshal(v)
	default:
		return fmt.Errorf("%w: %q", rules.ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", format, err)
	}

	_, err = w.Write(data)

	return err
}
