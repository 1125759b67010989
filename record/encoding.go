package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Records and values marshal to JSON and YAML, keeping field order.
// Floats with an integral value are written with a trailing ".0", so they
// survive a round trip as floats.

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if f == math.Trunc(f) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// --- JSON ------------------------------------------------------------------

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case FloatKind:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("float %v: %w", v.f, ErrUnsupportedType)
		}
		return []byte(formatFloat(v.f)), nil
	case ArrayKind:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.a {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x interface{}
	if err := dec.Decode(&x); err != nil {
		return err
	}
	val, err := ValueOf(x)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// MarshalJSON implements json.Marshaler. Fields are written in record order.
func (rec *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range rec.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		v, _ := rec.Get(k)
		vb, err := v.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Field order of the JSON object
// is preserved.
func (rec *Record) UnmarshalJSON(data []byte) error {
	*rec = Record{fields: make(map[string]Value)}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // JSON null
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record must be a JSON object, is %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected field name, have %v", tok)
		}
		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return err
		}
		var v Value
		if err = v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		rec.Set(name, v)
	}
	_, err = dec.Token() // closing '}'
	return err
}

// --- YAML ------------------------------------------------------------------

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case NullKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case BoolKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case IntKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.i, 10)}
	case FloatKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v.f)}
	case StringKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, e := range v.a {
		seq.Content = append(seq.Content, e.yamlNode())
	}
	return seq
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.yamlNode(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var x interface{}
	if err := node.Decode(&x); err != nil {
		return err
	}
	val, err := ValueOf(x)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = val
	return nil
}

// MarshalYAML implements yaml.Marshaler. Fields are written in record order.
func (rec *Record) MarshalYAML() (interface{}, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range rec.Keys() {
		v, _ := rec.Get(k)
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			v.yamlNode())
	}
	return m, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, preserving field order.
func (rec *Record) UnmarshalYAML(node *yaml.Node) error {
	*rec = Record{fields: make(map[string]Value)}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: record must be a YAML mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var v Value
		if err := v.UnmarshalYAML(node.Content[i+1]); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		rec.Set(name, v)
	}
	return nil
}
