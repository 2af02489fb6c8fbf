package encode

import (
	"fmt"
	"math/big"
	"reflect"
	"time"
	"unsafe"

	"github.com/tabjson/tabjson/internal/visited"
	"github.com/tabjson/tabjson/internal/writer"
	"github.com/tabjson/tabjson/table"
)

// dispatchState threads the pieces every recursive dispatch step needs:
// the output sink, the resolved configuration, the cycle tracker, and the
// current recursion depth.
type dispatchState struct {
	sink    *writer.Sink
	cfg     *Config
	visited *visited.Tracker
	depth   int
}

// encodeValue is the type dispatcher: it classifies v and writes its JSON
// representation to st.sink, in the fixed order below. Earlier cases take
// priority over later, more generic ones, so a type satisfying more than
// one case (for example a table.Table that also happens to be a pointer)
// is handled by the first matching case.
//
//  1. nil
//  2. bool
//  3. signed integers
//  4. unsigned integers
//  5. floating point
//  6. string
//  7. []byte
//  8. time.Time, *time.Time
//  9. time.Duration
//  10. *big.Float, *big.Rat
//  11. table.DictConvertible
//  12. table.Table
//  13. table.Vector
//  14. table.Index
//  15. table.Array
//  16. pointer (dereferenced, with a nil check)
//  17. generic slice, array, map, or struct via reflection, else the
//      configured default handler, else KindType
func encodeValue(st *dispatchState, v any) error {
	if st.depth > st.cfg.maxDepth {
		return errResource("max depth %d exceeded", st.cfg.maxDepth)
	}

	restore := resolveOrientation(st.cfg, v)
	defer restore()

	switch x := v.(type) {
	case nil:
		st.sink.WriteNull()
		return nil
	case bool:
		writeBool(st.sink, x)
		return nil
	case int:
		writeInt64(st.sink, int64(x))
		return nil
	case int8:
		writeInt64(st.sink, int64(x))
		return nil
	case int16:
		writeInt64(st.sink, int64(x))
		return nil
	case int32:
		writeInt64(st.sink, int64(x))
		return nil
	case int64:
		writeInt64(st.sink, x)
		return nil
	case uint:
		return writeUint64(st.sink, uint64(x))
	case uint8:
		writeInt64(st.sink, int64(x))
		return nil
	case uint16:
		writeInt64(st.sink, int64(x))
		return nil
	case uint32:
		writeInt64(st.sink, int64(x))
		return nil
	case uint64:
		return writeUint64(st.sink, x)
	case float32:
		writeFloat64(st.sink, float64(x))
		return nil
	case float64:
		writeFloat64(st.sink, x)
		return nil
	case string:
		writeString(st.sink, x)
		return nil
	case []byte:
		writeBytes(st.sink, x)
		return nil
	case time.Time:
		return writeTime(st.sink, st.cfg, x)
	case *time.Time:
		if x == nil {
			st.sink.WriteNull()
			return nil
		}

		return writeTime(st.sink, st.cfg, *x)
	case time.Duration:
		return writeDuration(st.sink, x, st.cfg.dateUnit)
	case *big.Float:
		writeBigFloat(st.sink, x)
		return nil
	case *big.Rat:
		writeBigRat(st.sink, x)
		return nil
	case table.DictConvertible:
		d, err := x.ToDict()
		if err != nil {
			st.sink.WriteNull()
			return nil
		}

		return encodeValue(st, d)
	case table.Table:
		return encodeTable(st, x)
	case table.Vector:
		return encodeVector(st, x)
	case table.Index:
		return encodeIndex(st, x)
	case table.Array:
		return encodeNDArray(st.sink, st.cfg, x, nil)
	}

	return encodeReflect(st, v)
}

// dispatchLeaf classifies a scalar pulled out of a table.Array by the
// strider. An element of a DateTime-typed array may be a time.Time or an
// epoch-nanosecond int64 (a numeric backing store need not box a struct per
// element); both are rendered through the date handler.
func dispatchLeaf(sink *writer.Sink, cfg *Config, v any, dtype table.DType) error {
	if dtype == table.DateTime {
		switch x := v.(type) {
		case int64:
			return writeTime(sink, cfg, time.Unix(0, x).UTC())
		case time.Time:
			return writeTime(sink, cfg, x)
		}
	}

	st := &dispatchState{sink: sink, cfg: cfg}

	return encodeValue(st, v)
}

func encodeReflect(st *dispatchState, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		st.sink.WriteNull()
		return nil
	}

	var lastPtr uintptr

	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			st.sink.WriteNull()
			return nil
		}

		if rv.Kind() == reflect.Ptr {
			lastPtr = rv.Pointer()
		}

		rv = rv.Elem()
	}

	ptr := identityPointer(rv, lastPtr)

	if ptr != 0 {
		if err := enterCycle(st, ptr); err != nil {
			return err
		}
		defer leaveCycle(st, ptr)
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return encodeContainer(st, sequenceDriver{v: rv})
	case reflect.Map:
		if isSetType(rv.Type()) {
			return encodeContainer(st, newSetDriver(rv))
		}

		return encodeContainer(st, newMappingDriver(rv))
	case reflect.Struct:
		return encodeContainer(st, newAttrDriver(rv))
	}

	if st.cfg.defaultHandler != nil {
		out, err := st.cfg.defaultHandler(v)
		if err != nil {
			return errHandler("%v", err)
		}

		return encodeValue(st, out)
	}

	return errType("unsupported type %T", v)
}

// identityPointer picks the pointer value whose repeated appearance up the
// recursion stack means a cycle: a slice or map's own backing-array
// identity, or, for a struct reached through one or more pointer
// indirections, the last pointer dereferenced to reach it. A struct or
// array value reached with no pointer indirection at all cannot
// participate in a reference cycle, since Go copies it by value.
func identityPointer(rv reflect.Value, lastPtr uintptr) uintptr {
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Pointer()
	case reflect.Struct, reflect.Array:
		return lastPtr
	default:
		return 0
	}
}

func enterCycle(st *dispatchState, ptr uintptr) error {
	if st.visited == nil {
		return nil
	}

	if err := st.visited.Enter(unsafe.Pointer(ptr)); err != nil { //nolint:govet
		return errResource("%v", err)
	}

	return nil
}

func leaveCycle(st *dispatchState, ptr uintptr) {
	if st.visited == nil {
		return
	}

	st.visited.Leave(unsafe.Pointer(ptr)) //nolint:govet
}

func encodeContainer(st *dispatchState, d iterDriver) error {
	n := d.Len()

	var keyed bool
	switch d.(type) {
	case *mappingDriver, *attrDriver:
		keyed = true
	}

	if keyed {
		st.sink.BeginObject()
	} else {
		st.sink.BeginArray()
	}

	for i := 0; i < n; i++ {
		e := d.Entry(i)

		if e.hasKey {
			st.sink.WriteRawKey(e.key)
		}

		child := &dispatchState{sink: st.sink, cfg: st.cfg, visited: st.visited, depth: st.depth + 1}

		if err := encodeValue(child, e.value); err != nil {
			if e.hasKey {
				return WithPath(err, fmt.Sprintf(".%s", e.key))
			}

			return WithPath(err, fmt.Sprintf("[%d]", i))
		}
	}

	if keyed {
		st.sink.EndObject()
	} else {
		st.sink.EndArray()
	}

	return nil
}
