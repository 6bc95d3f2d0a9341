package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'inliner.style'
func tracer() tracing.Trace {
	return tracing.Select("inliner.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Values are never validated or
// normalized; they are carried around exactly as the author wrote them
// (minus surrounding whitespace).
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ":" + kv.Value.String()
}

// --- Declarations -----------------------------------------------------

// Declarations is an order-preserving map of CSS property names to raw values,
// i.e. the body of a CSS rule or the content of an inline style attribute.
// Property names are always lower case.
//
// nil is a legal (empty) declaration block for reading.
type Declarations struct {
	keys   []string
	values map[string]Property
}

// NewDeclarations returns a new empty declaration block.
func NewDeclarations() *Declarations {
	return &Declarations{values: make(map[string]Property)}
}

// DeclarationsFrom creates a declaration block from a list of key-value pairs.
// Later pairs override earlier ones with the same key.
func DeclarationsFrom(kvs ...KeyValue) *Declarations {
	d := NewDeclarations()
	for _, kv := range kvs {
		d.Set(kv.Key, kv.Value)
	}
	return d
}

// Len returns the number of distinct properties.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Get a property's value.
func (d *Declarations) Get(key string) (Property, bool) {
	if d == nil || d.values == nil {
		return NullStyle, false
	}
	p, ok := d.values[strings.ToLower(key)]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present. An
// overwritten property keeps its original position.
func (d *Declarations) Set(key string, p Property) {
	key = strings.ToLower(key)
	if d.values == nil {
		d.values = make(map[string]Property)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = p
}

// Remove deletes a property, if present.
func (d *Declarations) Remove(key string) {
	if d == nil || d.values == nil {
		return
	}
	key = strings.ToLower(key)
	if _, exists := d.values[key]; !exists {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the property names in insertion order.
func (d *Declarations) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Properties returns all properties in insertion order.
func (d *Declarations) Properties() []KeyValue {
	if d == nil {
		return nil
	}
	r := make([]KeyValue, len(d.keys))
	for i, k := range d.keys {
		r[i] = KeyValue{k, d.values[k]}
	}
	return r
}

// Overlay copies every property of other into d. Values from other win on
// shared keys.
func (d *Declarations) Overlay(other *Declarations) *Declarations {
	if d == nil {
		d = NewDeclarations()
	}
	for _, kv := range other.Properties() {
		d.Set(kv.Key, kv.Value)
	}
	return d
}

// Stringer for declaration blocks; used for debugging.
func (d *Declarations) String() string {
	if d.Len() == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for _, kv := range d.Properties() {
		fmt.Fprintf(&b, "%s: %s; ", kv.Key, kv.Value)
	}
	b.WriteString("}")
	return b.String()
}
