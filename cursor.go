// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lindng

import (
	"encoding/binary"
	"io"
)

const maxChunkSize = 10 << 20 // 10M

// ByteOrder is the byte order of a TIFF file, fixed by its first two bytes.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota // "II"
	BigEndian                     // "MM"
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "MM"
	}
	return "II"
}

func (o ByteOrder) binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// safeReadAt reads data from r using a length provided by untrusted data,
// without allocating the entire slice ahead of time if it is large
// (>maxChunkSize).
func safeReadAt(r io.ReaderAt, n uint64, off int64) ([]byte, error) {
	if int64(n) < 0 || n != uint64(int(n)) {
		return nil, io.ErrUnexpectedEOF
	}

	if n < maxChunkSize {
		buf := make([]byte, n)
		_, err := r.ReadAt(buf, off)
		if err != nil {
			// io.SectionReader can return EOF for n == 0,
			// but for our purposes that is a success.
			if err != io.EOF || n > 0 {
				return nil, err
			}
		}
		return buf, nil
	}

	var buf []byte
	buf1 := make([]byte, maxChunkSize)
	for n > 0 {
		next := n
		if next > maxChunkSize {
			next = maxChunkSize
		}
		_, err := r.ReadAt(buf1[:next], off)
		if err != nil {
			return nil, err
		}
		buf = append(buf, buf1[:next]...)
		n -= next
		off += int64(next)
	}
	return buf, nil
}

// cursor performs positional reads against a sized byte source. It holds
// no stream position.
type cursor struct {
	r     io.ReaderAt
	size  int64
	order ByteOrder
}

// check fails when [off, off+n) is not inside the source.
func (c cursor) check(off, n uint64) error {
	end := off + n
	if end < off || end > uint64(c.size) {
		return &OutOfBoundsError{Offset: off, Length: n, Size: c.size}
	}
	return nil
}

func (c cursor) bytes(off, n uint64) ([]byte, error) {
	if err := c.check(off, n); err != nil {
		return nil, err
	}
	p, err := safeReadAt(c.r, n, int64(off))
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, &OutOfBoundsError{Offset: off, Length: n, Size: c.size}
	}
	return p, err
}

func (c cursor) u8(off uint64) (uint8, error) {
	p, err := c.bytes(off, 1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (c cursor) u16(off uint64) (uint16, error) {
	p, err := c.bytes(off, 2)
	if err != nil {
		return 0, err
	}
	return c.order.binary().Uint16(p), nil
}

func (c cursor) u32(off uint64) (uint32, error) {
	p, err := c.bytes(off, 4)
	if err != nil {
		return 0, err
	}
	return c.order.binary().Uint32(p), nil
}

func (c cursor) u64(off uint64) (uint64, error) {
	p, err := c.bytes(off, 8)
	if err != nil {
		return 0, err
	}
	return c.order.binary().Uint64(p), nil
}

// readHeader detects the byte order and returns a cursor over r together
// with the offset of the first IFD.
func readHeader(r io.ReaderAt, size int64) (cursor, uint64, error) {
	c := cursor{r: r, size: size}
	p, err := c.bytes(0, headerLen)
	if err != nil {
		return c, 0, FormatError("short header")
	}
	switch string(p[0:2]) {
	case "II":
		c.order = LittleEndian
	case "MM":
		c.order = BigEndian
	default:
		return c, 0, FormatError("byte order marker must be II or MM")
	}
	bo := c.order.binary()
	if bo.Uint16(p[2:4]) != tiffMagic {
		return c, 0, FormatError("version is not 42")
	}
	off := uint64(bo.Uint32(p[4:8]))
	if off < headerLen {
		// Also catches a file without any IFD.
		return c, 0, FormatError("first IFD offset is smaller than header size")
	}
	return c, off, nil
}
