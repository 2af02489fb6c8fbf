package encode

import (
	"fmt"
	"reflect"
	"sort"
)

// iterEntry is one step of a generic container's traversal: either a bare
// value (hasKey false, for a sequence/tuple) or a key/value pair (for a
// mapping or a struct's exported fields).
type iterEntry struct {
	key    string
	hasKey bool
	value  any
}

// iterDriver yields the entries of a Go value that dispatch has decided to
// treat as a generic container rather than one of the table/scalar types it
// special-cases. Each concrete driver below corresponds to one of the
// generic-value branches of the dispatch cascade.
type iterDriver interface {
	Len() int
	Entry(i int) iterEntry
}

// sequenceDriver walks a slice or array by position.
type sequenceDriver struct{ v reflect.Value }

func (d sequenceDriver) Len() int { return d.v.Len() }
func (d sequenceDriver) Entry(i int) iterEntry {
	return iterEntry{value: d.v.Index(i).Interface()}
}

// mappingDriver walks a map, sorted by its string-formatted key so output
// is deterministic across runs, matching encoding/json's own map handling.
type mappingDriver struct {
	v    reflect.Value
	keys []reflect.Value
}

func newMappingDriver(v reflect.Value) *mappingDriver {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return mapKeyString(keys[i]) < mapKeyString(keys[j])
	})

	return &mappingDriver{v: v, keys: keys}
}

func (d *mappingDriver) Len() int { return len(d.keys) }
func (d *mappingDriver) Entry(i int) iterEntry {
	k := d.keys[i]

	return iterEntry{key: mapKeyString(k), hasKey: true, value: d.v.MapIndex(k).Interface()}
}

// setDriver walks a map whose element type is the zero-size struct{},
// Go's idiomatic set representation, yielding its keys sorted and
// unkeyed so it encodes as a bare JSON array of members rather than an
// object mapping each member to an empty value.
type setDriver struct {
	v    reflect.Value
	keys []reflect.Value
}

func newSetDriver(v reflect.Value) *setDriver {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return mapKeyString(keys[i]) < mapKeyString(keys[j])
	})

	return &setDriver{v: v, keys: keys}
}

func (d *setDriver) Len() int { return len(d.keys) }
func (d *setDriver) Entry(i int) iterEntry {
	return iterEntry{value: d.keys[i].Interface()}
}

// isSetType reports whether t is a map with a zero-size element type.
// struct{} is the idiomatic case; any other zero-size struct type
// qualifies the same way.
func isSetType(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem().Size() == 0
}

func mapKeyString(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}

	return fmt.Sprintf("%v", v.Interface())
}

// attrDriver walks a struct's exported, non-func fields in declaration order, the
// "attribute directory" shape the dispatch cascade falls back to for any
// struct value with no more specific handling.
type attrDriver struct {
	v      reflect.Value
	fields []int
}

func newAttrDriver(v reflect.Value) *attrDriver {
	t := v.Type()

	fields := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() && f.Type.Kind() != reflect.Func {
			fields = append(fields, i)
		}
	}

	return &attrDriver{v: v, fields: fields}
}

func (d *attrDriver) Len() int { return len(d.fields) }
func (d *attrDriver) Entry(i int) iterEntry {
	idx := d.fields[i]
	name := fieldName(d.v.Type().Field(idx))

	return iterEntry{key: name, hasKey: true, value: d.v.Field(idx).Interface()}
}

func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := splitTag(tag); name != "" {
			return name
		}
	}

	return f.Name
}

func splitTag(tag string) (name, rest string, ok bool) {
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i], tag[i+1:], true
		}
	}

	return tag, "", tag != ""
}
