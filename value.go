package lindng

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Value is the decoded content of an IFD entry. It is one of Uints, Ints,
// Rationals, Text or Floats.
type Value interface {
	// Len is the number of elements, which equals the entry count for every
	// kind except Text, where a trailing NUL is not counted.
	Len() int
	isValue()
}

// Uints holds BYTE, SHORT, LONG and UNDEFINED values.
type Uints []uint64

// Ints holds SBYTE, SSHORT and SLONG values.
type Ints []int64

// Rat is a numerator/denominator pair. A zero denominator is kept as read.
type Rat struct {
	Num, Den int64
}

// Float returns Num/Den. A zero denominator yields an infinity or NaN.
func (r Rat) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Rationals holds RATIONAL and SRATIONAL values.
type Rationals []Rat

// Text holds the bytes of an ASCII value without its final NUL. Interior
// NULs separate multiple strings.
type Text []byte

// Floats holds FLOAT and DOUBLE values.
type Floats []float64

func (v Uints) Len() int     { return len(v) }
func (v Ints) Len() int      { return len(v) }
func (v Rationals) Len() int { return len(v) }
func (v Text) Len() int      { return len(v) }
func (v Floats) Len() int    { return len(v) }

func (Uints) isValue()     {}
func (Ints) isValue()      {}
func (Rationals) isValue() {}
func (Text) isValue()      {}
func (Floats) isValue()    {}

// Strings splits t on NUL and returns each run as UTF-8. Runs that are not
// valid UTF-8 are read as ISO 8859-1.
func (t Text) Strings() []string {
	runs := bytes.Split(t, []byte{0})
	ss := make([]string, 0, len(runs))
	dec := charmap.ISO8859_1.NewDecoder()
	for _, r := range runs {
		if utf8.Valid(r) {
			ss = append(ss, string(r))
			continue
		}
		u, err := dec.Bytes(r)
		if err != nil {
			u = bytes.ToValidUTF8(r, []byte("�"))
		}
		ss = append(ss, string(u))
	}
	return ss
}

// String returns the first string of t.
func (t Text) String() string {
	return t.Strings()[0]
}

// AsUint returns element i of v as an unsigned integer. It fails for
// non-integral kinds, negative values and out of range indices.
func AsUint(v Value, i int) (uint64, bool) {
	switch v := v.(type) {
	case Uints:
		if i < len(v) {
			return v[i], true
		}
	case Ints:
		if i < len(v) && v[i] >= 0 {
			return uint64(v[i]), true
		}
	case Rationals, Text, Floats:
	}
	return 0, false
}

// AsFloat returns element i of any numeric v as a float64.
func AsFloat(v Value, i int) (float64, bool) {
	switch v := v.(type) {
	case Uints:
		if i < len(v) {
			return float64(v[i]), true
		}
	case Ints:
		if i < len(v) {
			return float64(v[i]), true
		}
	case Rationals:
		if i < len(v) {
			return v[i].Float(), true
		}
	case Floats:
		if i < len(v) {
			return v[i], true
		}
	case Text:
	}
	return 0, false
}

// decodeValue decodes an entry's value. slot is the 4-byte value/offset
// field; when count values of typ do not fit in it, slot holds the file
// offset of the data, which is returned along with inline == false.
func decodeValue(c cursor, tag TagID, typ Type, count uint32, slot []byte) (v Value, off uint64, inline bool, err error) {
	if !typ.Valid() {
		return nil, 0, false, UnsupportedTypeError{Tag: tag, Type: typ}
	}
	n := uint64(count) * uint64(typ.Size())
	var raw []byte
	if n <= slotLen {
		raw = slot[:n]
		inline = true
	} else {
		off = uint64(c.order.binary().Uint32(slot))
		if raw, err = c.bytes(off, n); err != nil {
			return nil, off, false, err
		}
	}
	return decodeRaw(c.order.binary(), typ, int(count), raw), off, inline, nil
}

// decodeRaw converts count values of typ from raw, which holds exactly
// count*typ.Size() bytes.
func decodeRaw(bo binary.ByteOrder, typ Type, count int, raw []byte) Value {
	switch typ {
	case Byte, Undefined:
		u := make(Uints, count)
		for i := range u {
			u[i] = uint64(raw[i])
		}
		return u
	case Short:
		u := make(Uints, count)
		for i := range u {
			u[i] = uint64(bo.Uint16(raw[2*i:]))
		}
		return u
	case Long:
		u := make(Uints, count)
		for i := range u {
			u[i] = uint64(bo.Uint32(raw[4*i:]))
		}
		return u
	case SByte:
		s := make(Ints, count)
		for i := range s {
			s[i] = int64(int8(raw[i]))
		}
		return s
	case SShort:
		s := make(Ints, count)
		for i := range s {
			s[i] = int64(int16(bo.Uint16(raw[2*i:])))
		}
		return s
	case SLong:
		s := make(Ints, count)
		for i := range s {
			s[i] = int64(int32(bo.Uint32(raw[4*i:])))
		}
		return s
	case Rational:
		r := make(Rationals, count)
		for i := range r {
			r[i] = Rat{int64(bo.Uint32(raw[8*i:])), int64(bo.Uint32(raw[8*i+4:]))}
		}
		return r
	case SRational:
		r := make(Rationals, count)
		for i := range r {
			r[i] = Rat{int64(int32(bo.Uint32(raw[8*i:]))), int64(int32(bo.Uint32(raw[8*i+4:])))}
		}
		return r
	case ASCII:
		// Omit the terminating NUL if present but retain any other NULs.
		if count > 0 && raw[count-1] == 0 {
			raw = raw[:count-1]
		}
		return Text(append([]byte(nil), raw...))
	case Float:
		f := make(Floats, count)
		for i := range f {
			f[i] = float64(math.Float32frombits(bo.Uint32(raw[4*i:])))
		}
		return f
	case Double:
		f := make(Floats, count)
		for i := range f {
			f[i] = math.Float64frombits(bo.Uint64(raw[8*i:]))
		}
		return f
	}
	panic("lindng: decodeRaw called with invalid type")
}
