package encode

import (
	"fmt"

	"github.com/tabjson/tabjson/internal/writer"
	"github.com/tabjson/tabjson/table"
)

// encodeIndex writes a bare table.Index. Under Split orientation it takes
// the object form {"name": ..., "data": [...]}; every other orientation
// just emits the labels as a JSON array. (The "index" member of a Split
// table or vector is written as a plain array, not in this object form.)
func encodeIndex(st *dispatchState, idx table.Index) error {
	if st.cfg.orientation == OrientSplit {
		st.sink.BeginObject()
		st.sink.WriteRawKey("name")
		writeString(st.sink, idx.Name())
		st.sink.WriteRawKey("data")

		if err := encodeNDArray(st.sink, st.cfg, idx.Values(), nil); err != nil {
			return err
		}

		st.sink.EndObject()

		return nil
	}

	return encodeNDArray(st.sink, st.cfg, idx.Values(), nil)
}

// encodeVector writes a table.Vector per the configured orientation. Split
// gives {"name", "index", "data"}; Index and Columns both give an object
// keyed by the vector's index labels; Records and Values give a bare array.
func encodeVector(st *dispatchState, vec table.Vector) error {
	index, err := encodeLabels(vec.Index().Values(), st.cfg)
	if err != nil {
		return WithPath(err, ".index")
	}

	if err := checkLabelShape(index, vec.Values().Len(), "index"); err != nil {
		return err
	}

	switch st.cfg.orientation {
	case OrientSplit:
		st.sink.BeginObject()
		st.sink.WriteRawKey("name")
		writeString(st.sink, vec.Name())
		st.sink.WriteRawKey("index")
		// The index attribute is re-dispatched through the ordinary array
		// path rather than the label-string cache, so its own dtype (an
		// int64 range index, a datetime index, ...) survives instead of
		// being stringified the way an object key must be.
		if err := encodeNDArray(st.sink, st.cfg, vec.Index().Values(), nil); err != nil {
			return err
		}
		st.sink.WriteRawKey("data")
		if err := encodeNDArray(st.sink, st.cfg, vec.Values(), nil); err != nil {
			return err
		}
		st.sink.EndObject()

		return nil
	case OrientRecords, OrientValues:
		return encodeNDArray(st.sink, st.cfg, vec.Values(), nil)
	default: // OrientIndex, OrientColumns
		return encodeNDArray(st.sink, st.cfg, vec.Values(), map[int][]string{0: index})
	}
}

// encodeTable writes a table.Table per the configured orientation:
//
//   - Split:   {"columns": [...], "index": [...], "data": [[row]...]}
//   - Records: [{"col": val, ...}, ...], one object per row
//   - Index:   {indexLabel: {"col": val, ...}, ...}
//   - Columns: {"col": {indexLabel: val, ...}, ...}
//   - Values:  [[row]...], no labels at all
//
// While a Split table's cells are written the orientation is switched to
// Values, and while a Records table's cells are written it is switched to
// Index; the previous orientation is restored on return.
func encodeTable(st *dispatchState, t table.Table) error {
	columns := t.Columns()

	rowLabels, err := encodeLabels(t.Index().Values(), st.cfg)
	if err != nil {
		return WithPath(err, ".index")
	}

	if err := checkLabelShape(rowLabels, t.NumRows(), "index"); err != nil {
		return err
	}

	switch st.cfg.orientation {
	case OrientSplit:
		defer pushOrientation(st.cfg, OrientValues)()
		return encodeTableSplit(st, t, columns)
	case OrientRecords:
		defer pushOrientation(st.cfg, OrientIndex)()
		return encodeTableRecords(st, t, columns, rowLabels)
	case OrientIndex:
		return encodeTableByRow(st, t, columns, rowLabels)
	case OrientColumns:
		return encodeTableByColumn(st, t, columns, rowLabels)
	default: // OrientValues
		return encodeTableValues(st, t, columns)
	}
}

func encodeTableSplit(st *dispatchState, t table.Table, columns []string) error {
	if t.Index().Values().Len() != t.NumRows() {
		return errShape("index label count %d does not match data axis size %d", t.Index().Values().Len(), t.NumRows())
	}

	st.sink.BeginObject()

	st.sink.WriteRawKey("columns")
	if err := writeStringArray(st.sink, columns); err != nil {
		return err
	}

	st.sink.WriteRawKey("index")
	// Re-dispatched through the ordinary array path, not the label-string
	// cache, so an int64 range index encodes as [0,1,...], not ["0","1",...].
	if err := encodeNDArray(st.sink, st.cfg, t.Index().Values(), nil); err != nil {
		return err
	}

	st.sink.WriteRawKey("data")
	st.sink.BeginArray()

	for i := 0; i < t.NumRows(); i++ {
		if err := encodeRowAsArray(st, t, i, columns); err != nil {
			return WithPath(err, fmt.Sprintf("[%d]", i))
		}
	}

	st.sink.EndArray()
	st.sink.EndObject()

	return nil
}

func encodeTableRecords(st *dispatchState, t table.Table, columns, rowLabels []string) error {
	st.sink.BeginArray()

	for i := 0; i < t.NumRows(); i++ {
		if err := encodeRowAsObject(st, t, i, columns); err != nil {
			return WithPath(err, fmt.Sprintf("[%d]", i))
		}
	}

	st.sink.EndArray()

	return nil
}

func encodeTableByRow(st *dispatchState, t table.Table, columns, rowLabels []string) error {
	st.sink.BeginObject()

	for i := 0; i < t.NumRows(); i++ {
		st.sink.WriteRawKey(rowLabels[i])

		if err := encodeRowAsObject(st, t, i, columns); err != nil {
			return WithPath(err, fmt.Sprintf(".%s", rowLabels[i]))
		}
	}

	st.sink.EndObject()

	return nil
}

func encodeTableByColumn(st *dispatchState, t table.Table, columns, rowLabels []string) error {
	st.sink.BeginObject()

	for _, name := range columns {
		st.sink.WriteRawKey(name)

		col := t.Column(name)
		if err := encodeNDArray(st.sink, st.cfg, col.Values(), map[int][]string{0: rowLabels}); err != nil {
			return WithPath(err, fmt.Sprintf(".%s", name))
		}
	}

	st.sink.EndObject()

	return nil
}

func encodeTableValues(st *dispatchState, t table.Table, columns []string) error {
	st.sink.BeginArray()

	for i := 0; i < t.NumRows(); i++ {
		if err := encodeRowAsArray(st, t, i, columns); err != nil {
			return WithPath(err, fmt.Sprintf("[%d]", i))
		}
	}

	st.sink.EndArray()

	return nil
}

func encodeRowAsArray(st *dispatchState, t table.Table, row int, columns []string) error {
	st.sink.BeginArray()

	for _, name := range columns {
		v := t.Column(name).Values().At(row)

		child := &dispatchState{sink: st.sink, cfg: st.cfg, visited: st.visited, depth: st.depth + 1}
		if err := encodeValue(child, v); err != nil {
			return WithPath(err, fmt.Sprintf(".%s", name))
		}
	}

	st.sink.EndArray()

	return nil
}

func encodeRowAsObject(st *dispatchState, t table.Table, row int, columns []string) error {
	st.sink.BeginObject()

	for _, name := range columns {
		st.sink.WriteRawKey(name)

		v := t.Column(name).Values().At(row)

		child := &dispatchState{sink: st.sink, cfg: st.cfg, visited: st.visited, depth: st.depth + 1}
		if err := encodeValue(child, v); err != nil {
			return WithPath(err, fmt.Sprintf(".%s", name))
		}
	}

	st.sink.EndObject()

	return nil
}

func writeStringArray(sink *writer.Sink, vals []string) error {
	sink.BeginArray()

	for _, s := range vals {
		sink.WriteString(s)
	}

	sink.EndArray()

	return nil
}
