// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lindng

import "strconv"

// A tiff file contains one or more images. The metadata
// of each image is contained in an Image File Directory (IFD),
// which contains entries of 12 bytes each and is described
// on page 14-16 of the TIFF 6.0 document. An IFD entry consists of
//
//   - a tag, which describes the signification of the entry,
//   - the data type and length of the entry,
//   - the data itself or a pointer to it if it is more than 4 bytes.
//
// The presence of a length means that each IFD is effectively an array.

const (
	headerLen = 8  // Length of the file header in bytes.
	tiffMagic = 42 // Classic TIFF version number.

	ifdLen     = 12 // Length of an IFD entry in bytes.
	slotLen    = 4  // Length of the value/offset slot of an entry.
	ifdCountSz = 2  // Entry count preceding the entries.
	ifdNextSz  = 4  // Next IFD offset following the entries.
)

// Type is the field type of an IFD entry (p. 15-16).
type Type uint16

const (
	Byte      Type = 1
	ASCII     Type = 2
	Short     Type = 3
	Long      Type = 4
	Rational  Type = 5
	SByte     Type = 6
	Undefined Type = 7
	SShort    Type = 8
	SLong     Type = 9
	SRational Type = 10
	Float     Type = 11
	Double    Type = 12
)

// The length of one instance of each data type in bytes.
var lengths = [...]uint32{0, 1, 1, 2, 4, 8, 1, 1, 2, 4, 8, 4, 8}

var typeNames = [...]string{"", "BYTE", "ASCII", "SHORT", "LONG", "RATIONAL",
	"SBYTE", "UNDEFINED", "SSHORT", "SLONG", "SRATIONAL", "FLOAT", "DOUBLE"}

// Valid reports whether t is one of the twelve TIFF 6.0 types.
func (t Type) Valid() bool {
	return t > 0 && int(t) < len(lengths)
}

// Size returns the byte width of one value of type t, or 0 for unknown types.
func (t Type) Size() uint32 {
	if !t.Valid() {
		return 0
	}
	return lengths[t]
}

func (t Type) String() string {
	if !t.Valid() {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Compression schemes (p. 30). Only cNone is decoded.
const (
	cNone       = 1
	cCCITT      = 2
	cG3         = 3 // Group 3 Fax.
	cG4         = 4 // Group 4 Fax.
	cLZW        = 5
	cJPEGOld    = 6 // Superseded by cJPEG.
	cJPEG       = 7
	cDeflate    = 8 // zlib compression.
	cPackBits   = 32773
	cDeflateOld = 32946 // Superseded by cDeflate.
)

var compressionNames = map[uint64]string{
	cNone:       "uncompressed",
	cCCITT:      "CCITT 1D",
	cG3:         "CCITT Group 3",
	cG4:         "CCITT Group 4",
	cLZW:        "LZW",
	cJPEGOld:    "JPEG (old-style)",
	cJPEG:       "JPEG",
	cDeflate:    "Deflate",
	cPackBits:   "PackBits",
	cDeflateOld: "Deflate (old)",
}

// Photometric is the PhotometricInterpretation of an image.
type Photometric uint16

const (
	WhiteIsZero      Photometric = 0
	BlackIsZero      Photometric = 1
	RGB              Photometric = 2
	Paletted         Photometric = 3
	TransparencyMask Photometric = 4
	CMYK             Photometric = 5
	YCbCr            Photometric = 6
	CIELab           Photometric = 8
	CFA              Photometric = 32803 // TIFF/EP color filter array
	LinearRaw        Photometric = 34892 // DNG
)

func (p Photometric) String() string {
	switch p {
	case WhiteIsZero:
		return "WhiteIsZero"
	case BlackIsZero:
		return "BlackIsZero"
	case RGB:
		return "RGB"
	case Paletted:
		return "Paletted"
	case TransparencyMask:
		return "TransparencyMask"
	case CMYK:
		return "CMYK"
	case YCbCr:
		return "YCbCr"
	case CIELab:
		return "CIELab"
	case CFA:
		return "CFA"
	case LinearRaw:
		return "LinearRaw"
	}
	return "Photometric(" + strconv.Itoa(int(p)) + ")"
}

// Values of PlanarConfiguration and SampleFormat that are decoded.
const (
	pcChunky = 1
	pcPlanar = 2

	sfUint = 1
)
