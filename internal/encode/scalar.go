package encode

import (
	"math"
	"math/big"

	"github.com/tabjson/tabjson/internal/writer"
)

// writeBool emits a boolean value.
func writeBool(sink *writer.Sink, v bool) {
	sink.WriteBool(v)
}

// writeInt64 emits a signed integer value.
func writeInt64(sink *writer.Sink, v int64) {
	sink.WriteInt64(v)
}

// writeUint64 emits an unsigned integer value, failing with KindOverflow
// if it cannot be represented as a signed 64-bit JSON number.
func writeUint64(sink *writer.Sink, v uint64) error {
	if v > math.MaxInt64 {
		return errOverflow("uint64 value %d overflows int64 JSON number range", v)
	}

	sink.WriteUint64(v)

	return nil
}

// writeFloat64 emits a floating point value; NaN and Inf become null, the
// same substitution pandas' own encoder performs since JSON has no
// representation for either.
func writeFloat64(sink *writer.Sink, v float64) {
	sink.WriteFloat64(v)
}

// writeBigFloat emits a *big.Float as a float64, a deliberate, documented
// loss of precision: JSON numbers have no arbitrary-precision decimal
// representation to spend this module's complexity budget on.
func writeBigFloat(sink *writer.Sink, v *big.Float) {
	f, _ := v.Float64()
	sink.WriteFloat64(f)
}

// writeBigRat emits a *big.Rat as a float64, same rationale as writeBigFloat.
func writeBigRat(sink *writer.Sink, v *big.Rat) {
	f, _ := new(big.Float).SetRat(v).Float64()
	sink.WriteFloat64(f)
}

// writeString emits an escaped, quoted string.
func writeString(sink *writer.Sink, v string) {
	sink.WriteString(v)
}

// writeBytes emits raw bytes as a UTF-8 string, per the documented
// assumption that []byte values handed to this encoder already hold
// text, not arbitrary binary payloads (base64 encoding is explicitly out
// of scope).
func writeBytes(sink *writer.Sink, v []byte) {
	sink.WriteString(string(v))
}
