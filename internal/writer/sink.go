package writer

// Sink is the fixed callback surface the encoder core writes JSON tokens
// through. It owns comma placement between siblings so that callers never
// have to track "is this the first element" themselves.
type Sink struct {
	buf        *Buffer
	ForceASCII bool
	HTMLEscape bool
	Precision  int

	depth    []bool // one entry per open container: has it emitted a child yet
	mark     []int  // buffer offsets at BeginObject/BeginArray, for rollback
}

// NewSink wraps buf as a token writer.
func NewSink(buf *Buffer) *Sink {
	return &Sink{buf: buf, Precision: 10}
}

// Bytes returns the underlying buffer's contents.
func (s *Sink) Bytes() []byte { return s.buf.Bytes() }

func (s *Sink) beforeValue() {
	if len(s.depth) == 0 {
		return
	}

	top := len(s.depth) - 1
	if s.depth[top] {
		s.buf.WriteByte(',')
	}

	s.depth[top] = true
}

// BeginObject opens a '{'.
func (s *Sink) BeginObject() {
	s.beforeValue()
	s.mark = append(s.mark, s.buf.Len())
	s.buf.WriteByte('{')
	s.depth = append(s.depth, false)
}

// EndObject closes a '}'.
func (s *Sink) EndObject() {
	s.buf.WriteByte('}')
	s.depth = s.depth[:len(s.depth)-1]
	s.mark = s.mark[:len(s.mark)-1]
}

// BeginArray opens a '['.
func (s *Sink) BeginArray() {
	s.beforeValue()
	s.mark = append(s.mark, s.buf.Len())
	s.buf.WriteByte('[')
	s.depth = append(s.depth, false)
}

// EndArray closes a ']'.
func (s *Sink) EndArray() {
	s.buf.WriteByte(']')
	s.depth = s.depth[:len(s.depth)-1]
	s.mark = s.mark[:len(s.mark)-1]
}

// WriteKey emits an already-escaped object key, quoted verbatim, followed
// by a colon, handling comma placement itself.
func (s *Sink) WriteKey(escaped string) {
	s.beforeValue()
	s.buf.WriteByte('"')
	s.buf.WriteString(escaped)
	s.buf.WriteString(`":`)
	// A key write is always immediately followed by its value; undo the
	// comma bookkeeping bump so the value itself does not emit a comma.
	s.depth[len(s.depth)-1] = false
}

// WriteRawKey escapes name and writes it as an object key followed by a
// colon.
func (s *Sink) WriteRawKey(name string) {
	s.beforeValue()
	s.buf.WriteEscapedString(name, s.ForceASCII, s.HTMLEscape)
	s.buf.WriteByte(':')
	s.depth[len(s.depth)-1] = false
}

// WriteString emits an escaped, quoted JSON string value.
func (s *Sink) WriteString(v string) {
	s.beforeValue()
	s.buf.WriteEscapedString(v, s.ForceASCII, s.HTMLEscape)
}

// WriteInt64 emits an integer value.
func (s *Sink) WriteInt64(v int64) {
	s.beforeValue()
	s.buf.WriteInt64(v)
}

// WriteUint64 emits an unsigned integer value.
func (s *Sink) WriteUint64(v uint64) {
	s.beforeValue()
	s.buf.WriteUint64(v)
}

// WriteFloat64 emits a floating point value, or null for NaN/Inf.
func (s *Sink) WriteFloat64(v float64) {
	s.beforeValue()
	s.buf.WriteFloat64(v, s.Precision)
}

// WriteBool emits a boolean value.
func (s *Sink) WriteBool(v bool) {
	s.beforeValue()
	s.buf.WriteBool(v)
}

// WriteNull emits the null literal.
func (s *Sink) WriteNull() {
	s.beforeValue()
	s.buf.WriteNull()
}

// WriteRawValue emits bytes verbatim, e.g. a precomputed ISO-8601 date
// string that the caller has already quoted.
func (s *Sink) WriteRawValue(raw string) {
	s.beforeValue()
	s.buf.WriteString(raw)
}

// Mark returns the current write offset, for rolling back a value whose
// encoding failed partway through.
func (s *Sink) Mark() int { return s.buf.Len() }

// Rollback truncates the buffer back to a previously captured Mark and
// restores container bookkeeping to match.
func (s *Sink) Rollback(mark int) {
	s.buf.Truncate(mark)

	for len(s.mark) > 0 && s.mark[len(s.mark)-1] >= mark {
		s.mark = s.mark[:len(s.mark)-1]
		s.depth = s.depth[:len(s.depth)-1]
	}
}
