package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// object is a JSON object that marshals its keys in insertion order.
// encoding/json sorts map keys alphabetically, which would break the
// declaration-order contract for env and bindings, so the document tree is
// built from these instead of maps.
type object struct {
	keys []string
	vals map[string]any
}

func newObject() *object {
	return &object{vals: make(map[string]any)}
}

// set appends the key, or overwrites the value in place if already present.
func (o *object) set(key string, value any) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
}

// get returns the value for key, nil if absent.
func (o *object) get(key string) any {
	return o.vals[key]
}

// len returns the number of keys.
func (o *object) len() int {
	return len(o.keys)
}

// MarshalJSON emits the object with keys in insertion order.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshaling key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, fmt.Errorf("marshaling value of %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encode renders the document tree as indented JSON with a trailing newline.
// Output is byte-for-byte stable for identical trees.
func encode(root *object) ([]byte, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(data, '\n'), nil
}
