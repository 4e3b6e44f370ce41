package lindng

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// testOrder is a byte order that can also append.
type testOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func appendOrder(o ByteOrder) testOrder {
	return o.binary().(testOrder)
}

// encodeValue is the inverse of decodeRaw. Text gets its NUL terminator
// back.
func encodeValue(bo testOrder, typ Type, v Value) []byte {
	var p []byte
	switch v := v.(type) {
	case Uints:
		for _, u := range v {
			switch typ.Size() {
			case 1:
				p = append(p, byte(u))
			case 2:
				p = bo.AppendUint16(p, uint16(u))
			case 4:
				p = bo.AppendUint32(p, uint32(u))
			}
		}
	case Ints:
		for _, s := range v {
			switch typ.Size() {
			case 1:
				p = append(p, byte(int8(s)))
			case 2:
				p = bo.AppendUint16(p, uint16(int16(s)))
			case 4:
				p = bo.AppendUint32(p, uint32(int32(s)))
			}
		}
	case Rationals:
		for _, r := range v {
			p = bo.AppendUint32(p, uint32(r.Num))
			p = bo.AppendUint32(p, uint32(r.Den))
		}
	case Text:
		p = append(append(p, v...), 0)
	case Floats:
		for _, f := range v {
			if typ == Float {
				p = bo.AppendUint32(p, math.Float32bits(float32(f)))
			} else {
				p = bo.AppendUint64(p, math.Float64bits(f))
			}
		}
	}
	return p
}

type testEntry struct {
	tag   TagID
	typ   Type
	count uint32
	data  []byte
}

// tiffBuilder lays out a TIFF file in memory.
type tiffBuilder struct {
	order ByteOrder
	bo    testOrder
	buf   []byte
}

func newBuilder(order ByteOrder) *tiffBuilder {
	b := &tiffBuilder{order: order, bo: appendOrder(order)}
	b.buf = append(b.buf, order.String()...)
	b.buf = b.bo.AppendUint16(b.buf, tiffMagic)
	b.buf = b.bo.AppendUint32(b.buf, 0)
	return b
}

func (b *tiffBuilder) align() {
	if len(b.buf)%2 == 1 {
		b.buf = append(b.buf, 0)
	}
}

// data appends p at a word boundary and returns its offset.
func (b *tiffBuilder) data(p []byte) uint32 {
	b.align()
	off := uint32(len(b.buf))
	b.buf = append(b.buf, p...)
	return off
}

// ifd writes the out-of-line values of entries followed by the IFD itself
// and returns the IFD offset.
func (b *tiffBuilder) ifd(next uint32, entries ...testEntry) uint32 {
	slots := make([][]byte, len(entries))
	for i, e := range entries {
		slot := make([]byte, slotLen)
		if len(e.data) > slotLen {
			b.bo.PutUint32(slot, b.data(e.data))
		} else {
			copy(slot, e.data)
		}
		slots[i] = slot
	}
	b.align()
	off := uint32(len(b.buf))
	b.buf = b.bo.AppendUint16(b.buf, uint16(len(entries)))
	for i, e := range entries {
		b.buf = b.bo.AppendUint16(b.buf, uint16(e.tag))
		b.buf = b.bo.AppendUint16(b.buf, uint16(e.typ))
		b.buf = b.bo.AppendUint32(b.buf, e.count)
		b.buf = append(b.buf, slots[i]...)
	}
	b.buf = b.bo.AppendUint32(b.buf, next)
	return off
}

func (b *tiffBuilder) setRoot(off uint32) {
	b.bo.PutUint32(b.buf[4:], off)
}

// setNext rewrites the next pointer of the IFD at off.
func (b *tiffBuilder) setNext(off, next uint32) {
	n := b.bo.Uint16(b.buf[off:])
	b.bo.PutUint32(b.buf[off+ifdCountSz+uint32(n)*ifdLen:], next)
}

func (b *tiffBuilder) bytes() []byte {
	return b.buf
}

func (b *tiffBuilder) reader() (*bytes.Reader, int64) {
	return bytes.NewReader(b.buf), int64(len(b.buf))
}

func (b *tiffBuilder) shorts(tag TagID, vs ...uint16) testEntry {
	u := make(Uints, len(vs))
	for i, v := range vs {
		u[i] = uint64(v)
	}
	return testEntry{tag, Short, uint32(len(vs)), encodeValue(b.bo, Short, u)}
}

func (b *tiffBuilder) longs(tag TagID, vs ...uint32) testEntry {
	u := make(Uints, len(vs))
	for i, v := range vs {
		u[i] = uint64(v)
	}
	return testEntry{tag, Long, uint32(len(vs)), encodeValue(b.bo, Long, u)}
}

func (b *tiffBuilder) ascii(tag TagID, s string) testEntry {
	return testEntry{tag, ASCII, uint32(len(s) + 1), encodeValue(b.bo, ASCII, Text(s))}
}

func (b *tiffBuilder) value(tag TagID, typ Type, v Value) testEntry {
	p := encodeValue(b.bo, typ, v)
	return testEntry{tag, typ, uint32(len(p)) / typ.Size(), p}
}

// parseBuilt parses the file built by b and fails the test on error.
func parseBuilt(t *testing.T, b *tiffBuilder, opts ...Option) *Tree {
	t.Helper()
	r, n := b.reader()
	tree, err := Parse(r, n, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

type rawDesc struct {
	width, height uint32
	spp           uint16
	bps           uint16
	photometric   Photometric
	compression   uint16
	rowsPerStrip  uint32
	planar        uint16
	strips        [][]byte
	extra         []testEntry

	// Overrides of the values derived from the fields above.
	bpsList         []uint16
	offsets, counts []uint32
}

// rawIFD writes the strips of s and an IFD describing them.
func (b *tiffBuilder) rawIFD(s rawDesc, next uint32) uint32 {
	offs := make([]uint32, len(s.strips))
	counts := make([]uint32, len(s.strips))
	for i, p := range s.strips {
		offs[i] = b.data(p)
		counts[i] = uint32(len(p))
	}
	if s.offsets != nil {
		offs = s.offsets
	}
	if s.counts != nil {
		counts = s.counts
	}
	bps := s.bpsList
	if bps == nil {
		bps = make([]uint16, s.spp)
		for i := range bps {
			bps[i] = s.bps
		}
	}
	compression := s.compression
	if compression == 0 {
		compression = cNone
	}
	planar := s.planar
	if planar == 0 {
		planar = pcChunky
	}
	rps := s.rowsPerStrip
	if rps == 0 {
		rps = s.height
	}
	entries := []testEntry{
		b.longs(NewSubfileType, 0),
		b.longs(ImageWidth, s.width),
		b.longs(ImageLength, s.height),
		b.shorts(BitsPerSample, bps...),
		b.shorts(Compression, compression),
		b.shorts(PhotometricInterpretation, uint16(s.photometric)),
		b.longs(StripOffsets, offs...),
		b.shorts(SamplesPerPixel, s.spp),
		b.longs(RowsPerStrip, rps),
		b.longs(StripByteCounts, counts...),
		b.shorts(PlanarConfiguration, planar),
	}
	return b.ifd(next, append(entries, s.extra...)...)
}

// linearDNG builds a DNG with a thumbnail IFD0, the raw image in a SubIFD
// and an Exif IFD.
func linearDNG(order ByteOrder, s rawDesc) *tiffBuilder {
	b := newBuilder(order)
	raw := b.rawIFD(s, 0)
	exif := b.ifd(0,
		b.value(0x829A, Rational, Rationals{{1, 125}}),
		b.value(0x9204, SRational, Rationals{{-1, 3}}),
	)
	thumb := b.data([]byte{0x80, 0x80, 0x80})
	root := b.ifd(0,
		b.longs(NewSubfileType, 1),
		b.longs(ImageWidth, 1),
		b.longs(ImageLength, 1),
		b.shorts(BitsPerSample, 8, 8, 8),
		b.shorts(Compression, cNone),
		b.shorts(PhotometricInterpretation, uint16(RGB)),
		b.ascii(Make, "Acme"),
		b.ascii(Model, "Linear 1"),
		b.longs(StripOffsets, thumb),
		b.shorts(SamplesPerPixel, 3),
		b.longs(RowsPerStrip, 1),
		b.longs(StripByteCounts, 3),
		b.longs(SubIFDs, raw),
		b.longs(ExifIFD, exif),
		testEntry{DNGVersion, Byte, 4, []byte{1, 4, 0, 0}},
		b.ascii(UniqueCameraModel, "Acme Linear 1"),
	)
	b.setRoot(root)
	return b
}
