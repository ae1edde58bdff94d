package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// UnmarshalJSON implements custom JSON unmarshaling for Ruleset, keeping the
// authored field order.
func (rs *Ruleset) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		*rs = Ruleset{}
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("expected a JSON object of target fields")
	}

	var parsed Ruleset

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}

		target, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected target field name, got %v", tok)
		}

		var raw any

		err = dec.Decode(&raw)
		if err != nil {
			return fmt.Errorf("invalid rule for %q: %w", target, err)
		}

		parsed.Set(target, FromValue(raw))
	}

	_, err = dec.Token()
	if err != nil {
		return err
	}

	*rs = parsed

	return nil
}

// MarshalJSON implements custom JSON marshaling for Ruleset, keeping field
// order.
func (rs Ruleset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range rs.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Target)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(ToValue(f.Rule))
		if err != nil {
			return nil, fmt.Errorf("encode rule for %q: %w", f.Target, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
