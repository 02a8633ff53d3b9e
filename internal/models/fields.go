package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Catalog documents are produced by hand-maintained scripts that keep adding
// keys (tags, contraindications, scrape dates...). Records decode their known
// keys into struct fields and carry everything else through Extra so that a
// pipeline run never drops data it does not understand.

var knownFieldCache sync.Map // reflect.Type -> map[string]struct{}

func knownFields(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFieldCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = struct{}{}
	}

	knownFieldCache.Store(t, fields)
	return fields
}

// extraFields returns the keys of the JSON object in data that do not map to
// a tagged field of t.
func extraFields(data []byte, t reflect.Type) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	known := knownFields(t)
	var extra map[string]json.RawMessage
	for key, value := range raw {
		if _, ok := known[key]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[key] = value
	}
	return extra, nil
}

// encodeJSON marshals v without HTML escaping and without the trailing newline
// json.Encoder appends.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// marshalWithExtra encodes v (a struct) and appends the extra keys after the
// struct fields in sorted key order.
func marshalWithExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	body, err := encodeJSON(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return body, nil
	}

	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(body[:len(body)-1])
	needComma := len(bytes.TrimSpace(body)) > 2
	for _, key := range keys {
		if needComma {
			buf.WriteByte(',')
		}
		needComma = true

		quoted, err := encodeJSON(key)
		if err != nil {
			return nil, err
		}
		buf.Write(quoted)
		buf.WriteByte(':')
		buf.Write(extra[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func cloneExtra(extra map[string]json.RawMessage) map[string]json.RawMessage {
	if extra == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(extra))
	for key, value := range extra {
		out[key] = append(json.RawMessage(nil), value...)
	}
	return out
}
