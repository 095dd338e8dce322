package arr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/shamaton/msgpack/v2"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
//
// Lists encode as JSON arrays and every other array as a JSON object whose
// members follow the array order, matching PHP's json_encode.
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON implements [json.Marshaler]. An array that contains itself
// cannot be encoded and yields an error wrapping [ErrUnsupportedValue].
func (a *Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	if err := a.encodeJSON(&buf, make(map[*Array]bool)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *Array) encodeJSON(buf *bytes.Buffer, onPath map[*Array]bool) error {
	if onPath[a] {
		return errRecursion
	}
	onPath[a] = true
	defer delete(onPath, a)

	list := a.IsList()
	if list {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}
	for i, e := range a.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if !list {
			k, err := json.Marshal(e.Key.String())
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
		}
		if nested, ok := e.Value.(*Array); ok && nested != nil {
			if err := nested.encodeJSON(buf, onPath); err != nil {
				return err
			}
			continue
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return fmt.Errorf("arr: encoding key %v: %w", e.Key, err)
		}
		buf.Write(v)
	}
	if list {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}
	return nil
}

var errRecursion = fmt.Errorf("%w: array contains itself", ErrUnsupportedValue)

// UnmarshalJSON implements [json.Unmarshaler]. The input must be a JSON array
// or object; object members keep their order. Integral numbers decode as int,
// other numbers as float64.
func (a *Array) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON value", ErrUnsupportedValue)
	}
	decoded, ok := v.(*Array)
	if !ok {
		return fmt.Errorf("%w: JSON %T is not an array or object", ErrUnsupportedValue, v)
	}
	*a = *decoded
	return nil
}

// FromJSON decodes a JSON array or object into an Array.
func FromJSON(b []byte) (*Array, error) {
	a := Make(0)
	if err := a.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		out := Make(0)
		switch t {
		case '[':
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				out.push(v)
			}
		case '{':
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				name, _ := kt.(string)
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				out.put(StringKey(name), v)
			}
		}
		// Closing delimiter.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return out, nil
	case json.Number:
		if n, err := t.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
		return t.Float64()
	}
	return tok, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// MarshalYAML implements goccy/go-yaml's InterfaceMarshaler. Lists become
// sequences and other arrays ordered mappings with string keys. An array
// that contains itself yields an error wrapping [ErrUnsupportedValue].
func (a *Array) MarshalYAML() (any, error) {
	return a.yamlValue(make(map[*Array]bool))
}

func (a *Array) yamlValue(onPath map[*Array]bool) (any, error) {
	if onPath[a] {
		return nil, errRecursion
	}
	onPath[a] = true
	defer delete(onPath, a)

	conv := func(v any) (any, error) {
		if nested, ok := v.(*Array); ok && nested != nil {
			return nested.yamlValue(onPath)
		}
		return v, nil
	}
	if a.IsList() {
		out := make([]any, len(a.entries))
		for i, e := range a.entries {
			v, err := conv(e.Value)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	out := make(yaml.MapSlice, 0, len(a.entries))
	for _, e := range a.entries {
		v, err := conv(e.Value)
		if err != nil {
			return nil, err
		}
		// Mapping keys must be strings; FromYAML turns "5" back into 5.
		out = append(out, yaml.MapItem{Key: e.Key.String(), Value: v})
	}
	return out, nil
}

// ToYAML encodes a as YAML.
func ToYAML(a *Array) ([]byte, error) {
	return yaml.Marshal(a)
}

// FromYAML decodes a YAML sequence or mapping into an Array, keeping the
// mapping order.
func FromYAML(b []byte) (*Array, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(b, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return decodedArray(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// MessagePack
//
// The binary form is built from [Array.Native]: lists become msgpack arrays
// and other arrays msgpack maps. Maps carry no order, so decoding sorts the
// keys (integers first); use JSON or YAML when the order of a hash matters.
// ─────────────────────────────────────────────────────────────────────────────

// ToMsgpack encodes a as MessagePack.
func ToMsgpack(a *Array) ([]byte, error) {
	return msgpack.Marshal(a.Native())
}

// FromMsgpack decodes a MessagePack array or map into an Array.
func FromMsgpack(b []byte) (*Array, error) {
	var v any
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return decodedArray(v)
}

func decodedArray(v any) (*Array, error) {
	conv, err := fromDecoded(v)
	if err != nil {
		return nil, err
	}
	a, ok := conv.(*Array)
	if !ok {
		return nil, fmt.Errorf("%w: decoded %T is not an array or map", ErrUnsupportedValue, v)
	}
	return a, nil
}

// fromDecoded turns the generic output of a decoder into arrays and plain
// scalars. Integer kinds that fit become int.
func fromDecoded(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, float64, []byte:
		return v, nil
	case yaml.MapSlice:
		out := Make(len(t))
		for _, item := range t {
			k, err := KeyOf(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromDecoded(item.Value)
			if err != nil {
				return nil, err
			}
			out.put(k, val)
		}
		return out, nil
	case float32:
		return float64(t), nil
	}
	if n, ok := asNumber(v); ok {
		if !n.isFloat && n.i >= math.MinInt && n.i <= math.MaxInt {
			return int(n.i), nil
		}
		return n.float(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := Make(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			val, err := fromDecoded(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out.push(val)
		}
		return out, nil
	case reflect.Map:
		entries := make([]Entry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k, err := KeyOf(it.Key().Interface())
			if err != nil {
				return nil, err
			}
			val, err := fromDecoded(it.Value().Interface())
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: k, Value: val})
		}
		slices.SortFunc(entries, func(a, b Entry) int { return compareKeys(a.Key, b.Key) })
		out := Make(len(entries))
		for _, e := range entries {
			out.put(e.Key, e.Value)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}
