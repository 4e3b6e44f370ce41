package lindng

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Extract decodes the main image of t. The main image is the first
// directory in parse order that describes an image and is not a reduced
// resolution copy (NewSubfileType 0 or absent); DNG files usually store it
// in a SubIFD behind a thumbnail IFD0.
func Extract(t *Tree) (*RawImage, error) {
	d, err := imageIFD(t)
	if err != nil {
		return nil, err
	}
	return extract(t, d)
}

// ExtractIFD decodes the image described by the IFD at off.
func ExtractIFD(t *Tree, off uint64) (*RawImage, error) {
	d, ok := t.IFD(off)
	if !ok {
		return nil, FormatError(fmt.Sprintf("no IFD at offset %d", off))
	}
	return extract(t, d)
}

func imageIFD(t *Tree) (*IFD, error) {
	var first *IFD
	for _, d := range t.IFDs() {
		if d.Space != TIFFSpace || !d.Has(ImageWidth) || !d.Has(ImageLength) || !d.Has(BitsPerSample) {
			continue
		}
		if first == nil {
			first = d
		}
		if firstVal(d, NewSubfileType, 0) == 0 {
			return d, nil
		}
	}
	if first == nil {
		return nil, MissingTagError{Tag: ImageWidth}
	}
	return first, nil
}

// firstVal returns the first unsigned value of tag in d, or def if the tag
// does not exist or is not an unsigned integer.
func firstVal(d *IFD, tag TagID, def uint64) uint64 {
	e, ok := d.Entry(tag)
	if !ok {
		return def
	}
	v, ok := AsUint(e.Value, 0)
	if !ok {
		return def
	}
	return v
}

// uints returns the values of a required unsigned integer tag.
func uints(d *IFD, tag TagID) (Uints, error) {
	e, ok := d.Entry(tag)
	if !ok {
		return nil, MissingTagError{Tag: tag}
	}
	u, ok := e.Value.(Uints)
	if !ok || len(u) == 0 {
		return nil, FormatError(fmt.Sprintf("%v is not an unsigned integer", tag))
	}
	return u, nil
}

func listFormat(es []error) string {
	s := make([]string, len(es))
	for i, err := range es {
		s[i] = err.Error()
	}
	return strings.Join(s, "; ")
}

// maxSamples bounds the number of samples of an extracted image. Packed
// samples expand up to 32 times when unpacked into Pix.
const maxSamples = 1 << 28

// layout is the validated geometry of a strip-based image.
type layout struct {
	width, height uint64
	spp           uint64
	bps           uint
	rowsPerStrip  uint64
	rowBytes      uint64
	offsets       Uints
	counts        Uints

	// sampleBytes is the width of one byte-aligned sample, or 0 when
	// samples are bit-packed.
	sampleBytes uint64
}

func checkLayout(t *Tree, d *IFD) (*layout, []uint16, Photometric, error) {
	if d.Has(TileOffsets) || d.Has(TileByteCounts) || d.Has(TileWidth) || d.Has(TileLength) {
		return nil, nil, 0, UnsupportedLayoutError("tiled image")
	}
	if e, ok := d.Entry(Compression); ok {
		if v, _ := AsUint(e.Value, 0); v != cNone {
			return nil, nil, 0, UnsupportedCompressionError{Value: v}
		}
	}

	var merr *multierror.Error
	req := func(tag TagID) Uints {
		u, err := uints(d, tag)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		return u
	}
	width := req(ImageWidth)
	height := req(ImageLength)
	bpsv := req(BitsPerSample)
	sppv := req(SamplesPerPixel)
	photo := req(PhotometricInterpretation)
	req(Compression)
	offsets := req(StripOffsets)
	counts := req(StripByteCounts)
	if merr != nil {
		merr.ErrorFormat = listFormat
		return nil, nil, 0, merr
	}

	l := &layout{
		width:   width[0],
		height:  height[0],
		spp:     sppv[0],
		offsets: offsets,
		counts:  counts,
	}
	pi := Photometric(photo[0])
	if pi == CFA {
		return nil, nil, 0, UnsupportedLayoutError("color filter array (mosaiced) data")
	}
	switch pc := firstVal(d, PlanarConfiguration, pcChunky); pc {
	case pcChunky:
	case pcPlanar:
		return nil, nil, 0, UnsupportedLayoutError("planar configuration")
	default:
		return nil, nil, 0, FormatError(fmt.Sprintf("bad PlanarConfiguration %d", pc))
	}
	if e, ok := d.Entry(SampleFormat); ok {
		for i := 0; i < e.Value.Len(); i++ {
			if v, _ := AsUint(e.Value, i); v != sfUint {
				return nil, nil, 0, UnsupportedLayoutError("sample format")
			}
		}
	}
	if l.width == 0 || l.height == 0 {
		return nil, nil, 0, FormatError("zero image dimension")
	}
	if l.spp == 0 || l.spp > math.MaxUint16 {
		return nil, nil, 0, FormatError("bad SamplesPerPixel")
	}

	bps := make([]uint16, l.spp)
	switch uint64(len(bpsv)) {
	case l.spp:
	case 1:
		// A single value applies to every sample.
	default:
		return nil, nil, 0, FormatError(fmt.Sprintf("%d BitsPerSample values for %d samples", len(bpsv), l.spp))
	}
	for i := range bps {
		v := bpsv[0]
		if len(bpsv) > 1 {
			v = bpsv[i]
		}
		if v != bpsv[0] {
			return nil, nil, 0, UnsupportedLayoutError("mixed BitsPerSample")
		}
		if v == 0 || v > 32 {
			return nil, nil, 0, UnsupportedLayoutError(fmt.Sprintf("%d bits per sample", v))
		}
		bps[i] = uint16(v)
	}
	l.bps = uint(bps[0])

	l.rowsPerStrip = firstVal(d, RowsPerStrip, l.height)
	if l.rowsPerStrip == 0 || l.rowsPerStrip > l.height {
		l.rowsPerStrip = l.height
	}
	if l.width > math.MaxUint32 || l.height > math.MaxUint32 || l.width*l.spp > math.MaxUint32 {
		return nil, nil, 0, FormatError("image too large")
	}
	if l.width*l.spp*l.height > maxSamples {
		return nil, nil, 0, FormatError("image too large")
	}
	if len(offsets) != len(counts) {
		return nil, nil, 0, FormatError("StripOffsets and StripByteCounts differ in length")
	}
	var got uint64
	for _, n := range counts {
		got += n
	}

	// Samples narrower than a byte are packed. All others occupy whole
	// bytes, so 12 bits take 2.
	if l.bps < 8 {
		l.rowBytes = (l.width*l.spp*uint64(l.bps) + 7) / 8
	} else {
		l.sampleBytes = (uint64(l.bps) + 7) / 8
		l.rowBytes = l.width * l.spp * l.sampleBytes
	}
	want := l.rowBytes * l.height
	if got < want {
		return nil, nil, 0, &StripSizeMismatchError{Strip: -1, Want: want, Got: got}
	}
	if want > uint64(t.c.size) {
		return nil, nil, 0, &OutOfBoundsError{Length: want, Size: t.c.size}
	}
	return l, bps, pi, nil
}

func extract(t *Tree, d *IFD) (*RawImage, error) {
	l, bps, pi, err := checkLayout(t, d)
	if err != nil {
		return nil, err
	}
	t.log.Debug().Uint64("ifd", d.Offset).Uint64("width", l.width).Uint64("height", l.height).
		Uint64("spp", l.spp).Uint("bps", l.bps).Bool("packed", l.sampleBytes == 0).
		Stringer("photometric", pi).Msg("extracting image")
	if d.Has(LinearizationTable) {
		// Samples are returned as stored.
		t.log.Debug().Uint64("ifd", d.Offset).Msg("LinearizationTable not applied")
	}

	rowSamples := int(l.width * l.spp)
	m := &RawImage{
		Width:           uint32(l.width),
		Height:          uint32(l.height),
		BitsPerSample:   bps,
		SamplesPerPixel: uint16(l.spp),
		Photometric:     pi,
		Pix:             make([]uint32, rowSamples*int(l.height)),
		IFD:             d.Offset,
	}

	nStrips := (l.height + l.rowsPerStrip - 1) / l.rowsPerStrip
	if uint64(len(l.offsets)) > nStrips {
		t.log.Debug().Int("strips", len(l.offsets)).Uint64("used", nStrips).Msg("ignoring extra strips")
	}
	bo := t.c.order.binary()
	for i := uint64(0); i < nStrips; i++ {
		y := i * l.rowsPerStrip
		rows := l.rowsPerStrip
		if y+rows > l.height {
			rows = l.height - y
		}
		need := rows * l.rowBytes
		if i >= uint64(len(l.offsets)) {
			return nil, &StripSizeMismatchError{Strip: int(i), Want: need}
		}
		if l.counts[i] < need {
			return nil, &StripSizeMismatchError{Strip: int(i), Want: need, Got: l.counts[i]}
		}
		// Bytes past the rows the strip holds are padding.
		p, err := t.c.bytes(l.offsets[i], need)
		if err != nil {
			return nil, err
		}
		dst := m.Pix[int(y)*rowSamples : int(y+rows)*rowSamples]
		unpack(dst, p, int(rows), rowSamples, int(l.rowBytes), l.bps, int(l.sampleBytes), bo)
	}
	return m, nil
}

// unpack converts rows of samples from src into dst. Rows start on byte
// boundaries. Byte-aligned samples (size > 0) are stored in the file's byte
// order; bit-packed ones (size 0) most significant bit first.
func unpack(dst []uint32, src []byte, rows, rowSamples, rowBytes int, bps uint, size int, bo binary.ByteOrder) {
	for y := 0; y < rows; y++ {
		row := src[y*rowBytes : (y+1)*rowBytes]
		out := dst[y*rowSamples : (y+1)*rowSamples]
		switch size {
		case 1:
			for x := range out {
				out[x] = uint32(row[x])
			}
		case 2:
			for x := range out {
				out[x] = uint32(bo.Uint16(row[2*x:]))
			}
		case 3:
			for x := range out {
				b := row[3*x : 3*x+3]
				if bo == binary.BigEndian {
					out[x] = uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
				} else {
					out[x] = uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
				}
			}
		case 4:
			for x := range out {
				out[x] = bo.Uint32(row[4*x:])
			}
		default:
			br := bitReader{buf: row}
			for x := range out {
				out[x] = br.readBits(bps)
			}
		}
	}
}

// bitReader reads MSB-first bit fields of up to 32 bits.
type bitReader struct {
	buf   []byte
	off   int
	v     uint64
	nbits uint
}

func (b *bitReader) readBits(n uint) uint32 {
	for b.nbits < n {
		b.v <<= 8
		b.v |= uint64(b.buf[b.off])
		b.off++
		b.nbits += 8
	}
	b.nbits -= n
	rv := b.v >> b.nbits
	b.v &^= rv << b.nbits
	return uint32(rv)
}
