package lindng

import (
	"fmt"
	"strconv"
)

// A FormatError reports that the input is not a valid TIFF file.
type FormatError string

func (e FormatError) Error() string {
	return "tiff: invalid format: " + string(e)
}

// OutOfBoundsError reports a read of Length bytes at Offset that does not fit
// in a source of Size bytes.
type OutOfBoundsError struct {
	Offset uint64
	Length uint64
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("tiff: read of %d bytes at %#x past end of input (size %d)", e.Length, e.Offset, e.Size)
}

// MalformedDirectoryError reports an IFD that could not be read. Err holds
// the underlying cause.
type MalformedDirectoryError struct {
	Offset uint64
	Err    error
}

func (e *MalformedDirectoryError) Error() string {
	return "tiff: malformed IFD at " + strconv.FormatUint(e.Offset, 10) + ": " + e.Err.Error()
}

func (e *MalformedDirectoryError) Unwrap() error { return e.Err }

// UnsupportedTypeError reports a field type code outside the TIFF 6.0 set.
type UnsupportedTypeError struct {
	Tag  TagID
	Type Type
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("tiff: unsupported field type %d for %v", uint16(e.Type), e.Tag)
}

// MissingTagError reports a tag required for image extraction.
type MissingTagError struct {
	Tag TagID
}

func (e MissingTagError) Error() string {
	return "dng: missing required tag " + e.Tag.String()
}

// UnsupportedCompressionError reports a Compression value other than 1.
type UnsupportedCompressionError struct {
	Value uint64
}

func (e UnsupportedCompressionError) Error() string {
	s := "dng: unsupported compression " + strconv.FormatUint(e.Value, 10)
	if name, ok := compressionNames[e.Value]; ok {
		s += " (" + name + ")"
	}
	return s
}

// UnsupportedLayoutError reports sample storage that is not chunky,
// strip-based integer data.
type UnsupportedLayoutError string

func (e UnsupportedLayoutError) Error() string {
	return "dng: unsupported layout: " + string(e)
}

// StripSizeMismatchError reports strip byte counts that do not cover the
// image geometry.
type StripSizeMismatchError struct {
	Strip int // -1 when the whole set of strips is at fault
	Want  uint64
	Got   uint64
}

func (e *StripSizeMismatchError) Error() string {
	if e.Strip < 0 {
		return fmt.Sprintf("dng: strip size mismatch: want %d, got %d", e.Want, e.Got)
	}
	return fmt.Sprintf("dng: strip %d size mismatch: want %d bytes, got %d", e.Strip, e.Want, e.Got)
}
