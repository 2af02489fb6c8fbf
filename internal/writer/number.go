package writer

import (
	"math"
	"strconv"
)

// WriteInt64 appends v in base-10 decimal form.
func (b *Buffer) WriteInt64(v int64) {
	b.grow(20)
	b.B = strconv.AppendInt(b.B, v, 10)
}

// WriteUint64 appends v in base-10 decimal form.
func (b *Buffer) WriteUint64(v uint64) {
	b.grow(20)
	b.B = strconv.AppendUint(b.B, v, 10)
}

// WriteFloat64 appends v in %g form rounded to precision significant
// digits, with trailing zeros dropped. NaN and Inf are not valid JSON
// numbers, so for those it appends null instead.
func (b *Buffer) WriteFloat64(v float64, precision int) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		b.WriteString("null")
		return
	}

	b.grow(32)
	b.B = strconv.AppendFloat(b.B, v, 'g', precision, 64)
}

// WriteBool appends "true" or "false".
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.WriteString("true")
		return
	}

	b.WriteString("false")
}

// WriteNull appends the literal "null".
func (b *Buffer) WriteNull() { b.WriteString("null") }
