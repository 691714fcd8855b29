package mep

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DeclarationRecord is the per-MEP envelope used in the declarations file.
type DeclarationRecord struct {
	Declaration Declaration `json:"declaration"`
}

// Declaration is an MEP's self-reported statement of interests.
// Every category is optional and independent of the others.
type Declaration struct {
	OccupationMembership Entries `json:"occupation_membership"`
	RemuneratedActivity  Entries `json:"remunerated_activity"`
	Membership           Entries `json:"membership"`
	Holdings             Entries `json:"holdings"`

	AdditionalSupport     Text `json:"additional_support"`
	PrivateInterests      Text `json:"private_interests"`
	AdditionalInformation Text `json:"additional_information"`
}

// Field is one key/value cell of a declaration entry.
type Field struct {
	Key   string
	Value string
}

// Entry is one row of a tabular declaration category.
// Object entries keep their key order; a plain string entry is a single
// field with an empty key.
type Entry struct {
	Fields []Field
}

// Get returns the value stored under key.
func (e Entry) Get(key string) (string, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// UnmarshalJSON accepts a JSON object, a string, or any scalar.
func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		e.Fields = []Field{{Value: scalarText(data)}}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected entry key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding entry field %q: %w", key, err)
		}
		fields = append(fields, Field{Key: key, Value: scalarText(raw)})
	}
	e.Fields = fields
	return nil
}

// MarshalJSON writes object entries with their original key order.
func (e Entry) MarshalJSON() ([]byte, error) {
	if len(e.Fields) == 1 && e.Fields[0].Key == "" {
		return json.Marshal(e.Fields[0].Value)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Entries is a tabular declaration category.
type Entries []Entry

// UnmarshalJSON accepts an array of entries, null, an empty string, or a
// single object or string (treated as one entry).
func (es *Entries) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*es = nil
		return nil
	case data[0] == '[':
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		*es = entries
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*es = nil
			return nil
		}
		*es = Entries{{Fields: []Field{{Value: s}}}}
		return nil
	default:
		var entry Entry
		if err := entry.UnmarshalJSON(data); err != nil {
			return err
		}
		*es = Entries{entry}
		return nil
	}
}

// Text is a free-text declaration category.
type Text string

// UnmarshalJSON accepts a string, null, or an array of strings (joined by newlines).
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var parts []json.RawMessage
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		lines := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := scalarText(p); s != "" {
				lines = append(lines, s)
			}
		}
		*t = Text(strings.Join(lines, "\n"))
		return nil
	}
	*t = Text(scalarText(data))
	return nil
}

// IsEmpty reports whether the text holds anything besides whitespace.
func (t Text) IsEmpty() bool {
	return strings.TrimSpace(string(t)) == ""
}

// scalarText renders a raw JSON value as display text.
// Strings are unquoted, null becomes empty, everything else is kept verbatim.
func scalarText(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
