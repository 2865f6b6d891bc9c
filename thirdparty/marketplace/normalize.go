package marketplace

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// envelopeKeys are the wrapper keys the backend puts lists and objects under.
var envelopeKeys = []string{"data", "items", "$values", "result", "value", "records"}

// decode maps a backend payload onto out. Envelopes are unwrapped, key casing is
// ignored, alias tags are resolved and scalar values are coerced to the field kind.
func decode(body []byte, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	t := reflect.TypeOf(out)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	raw = canonicalize(unwrap(raw, t), t)

	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func unwrap(raw interface{}, t reflect.Type) interface{} {
	t = indirect(t)
	m, ok := raw.(map[string]interface{})
	if !ok {
		return raw
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		for _, key := range envelopeKeys {
			if v, ok := lookupFold(m, key); ok {
				return unwrap(v, t)
			}
		}
	case reflect.Struct:
		if v, ok := lookupFold(m, "data"); ok {
			if _, isObj := v.(map[string]interface{}); isObj {
				return unwrap(v, t)
			}
		}
	}
	return raw
}

func canonicalize(v interface{}, t reflect.Type) interface{} {
	t = indirect(t)
	if v == nil {
		return nil
	}

	if t == rawMessageType {
		return v
	}

	switch t.Kind() {
	case reflect.Struct:
		m, ok := v.(map[string]interface{})
		if !ok {
			return v
		}
		out := make(map[string]interface{}, len(m))
		for _, f := range fieldsOf(t) {
			val, found := lookupFold(m, f.name)
			for i := 0; !found && i < len(f.aliases); i++ {
				val, found = lookupFold(m, f.aliases[i])
			}
			if found {
				out[f.name] = canonicalize(val, f.typ)
			}
		}
		return out
	case reflect.Slice, reflect.Array:
		arr, ok := v.([]interface{})
		if !ok {
			return nil
		}
		scalar := isScalar(indirect(t.Elem()))
		res := make([]interface{}, 0, len(arr))
		for _, el := range arr {
			c := canonicalize(el, t.Elem())
			if c == nil && scalar {
				continue
			}
			res = append(res, c)
		}
		return res
	case reflect.Map, reflect.Interface:
		return v
	default:
		return coerce(v, t)
	}
}

// coerce converts scalars sent with the wrong JSON type, e.g. "price": "1200000".
func coerce(v interface{}, t reflect.Type) interface{} {
	switch t.Kind() {
	case reflect.String:
		switch x := v.(type) {
		case string:
			return x
		case json.Number:
			return x.String()
		case bool:
			return strconv.FormatBool(x)
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch x := v.(type) {
		case json.Number:
			if _, err := x.Int64(); err == nil {
				return x
			}
			if f, err := x.Float64(); err == nil {
				return int64(f)
			}
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
				return n
			}
		}
		return nil
	case reflect.Float32, reflect.Float64:
		switch x := v.(type) {
		case json.Number:
			return x
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
				return f
			}
		}
		return nil
	case reflect.Bool:
		switch x := v.(type) {
		case bool:
			return x
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(x)); err == nil {
				return b
			}
		case json.Number:
			return x.String() != "0"
		}
		return nil
	}
	return v
}

type fieldInfo struct {
	name    string
	aliases []string
	typ     reflect.Type
}

var (
	fieldCache     sync.Map
	rawMessageType = reflect.TypeOf(json.RawMessage{})
)

func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && indirect(sf.Type).Kind() == reflect.Struct && sf.Tag.Get("json") == "" {
			fields = append(fields, fieldsOf(indirect(sf.Type))...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		name := strings.Split(sf.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		var aliases []string
		if a := sf.Tag.Get("alias"); a != "" {
			aliases = strings.Split(a, ",")
		}
		fields = append(fields, fieldInfo{name: name, aliases: aliases, typ: sf.Type})
	}

	fieldCache.Store(t, fields)
	return fields
}

// lookupFold prefers an exact key and falls back to a case-insensitive match.
func lookupFold(m map[string]interface{}, key string) (interface{}, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map, reflect.Interface:
		return false
	}
	return true
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
