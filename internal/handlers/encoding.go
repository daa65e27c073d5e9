package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// encode marshals without HTML escaping so caller-supplied text is kept
// verbatim, then spaces the separators.
func encode(payload interface{}) (string, error) {
	compact, err := marshal(payload)
	if err != nil {
		return "", err
	}
	return string(spaceSeparators(compact)), nil
}

func marshal(payload interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// spaceSeparators adds a space after every ',' and ':' outside string
// literals. Input must be compact JSON.
func spaceSeparators(compact []byte) []byte {
	out := make([]byte, 0, len(compact)+len(compact)/8)
	inString, escaped := false, false

	for _, b := range compact {
		out = append(out, b)
		switch {
		case escaped:
			escaped = false
		case inString && b == '\\':
			escaped = true
		case b == '"':
			inString = !inString
		case !inString && (b == ',' || b == ':'):
			out = append(out, ' ')
		}
	}

	return out
}

// canonicalize re-serializes one JSON value from dec in compact form. Object
// keys keep the position of their first occurrence and the value of their
// last; numbers keep their original text.
func canonicalize(dec *json.Decoder) ([]byte, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return canonicalObject(dec)
		case '[':
			return canonicalArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case json.Number:
		return []byte(v.String()), nil
	case nil:
		return []byte("null"), nil
	default:
		return marshal(v)
	}
}

func canonicalObject(dec *json.Decoder) ([]byte, error) {
	var keys []string
	values := make(map[string][]byte)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		value, err := canonicalize(dec)
		if err != nil {
			return nil, err
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(values[key])
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func canonicalArray(dec *json.Decoder) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; dec.More(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		element, err := canonicalize(dec)
		if err != nil {
			return nil, err
		}
		buf.Write(element)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}
