// Package lindng reads TIFF files and the uncompressed, strip-based linear
// DNG images stored in them.
//
// Parse walks every Image File Directory reachable from the header,
// including SubIFDs, Exif, GPS and Interoperability directories, and
// returns them as a Tree. Extract assembles the samples of the main image
// of a Tree. Open does both; a Tree is returned even when its image cannot
// be decoded, so metadata stays available.
//
// The TIFF specification is at
// http://partners.adobe.com/public/developer/en/tiff/TIFF6.pdf and the DNG
// specification at https://helpx.adobe.com/camera-raw/digital-negative.html.
package lindng

import (
	"bytes"
	"io"

	"github.com/rs/zerolog"
)

const defaultMaxIFDs = 4096

type config struct {
	log     zerolog.Logger
	maxIFDs int
}

// Option configures Open, Parse and Decode.
type Option func(*config)

// WithLogger sets the logger that receives debug traces of the walk and of
// image extraction. Nothing is logged by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithMaxIFDs bounds the number of directories one file may contain.
func WithMaxIFDs(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic("max IFDs must be positive")
		}
		c.maxIFDs = n
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		log:     zerolog.Nop(),
		maxIFDs: defaultMaxIFDs,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse reads the header of the size-byte TIFF file in r and every IFD
// reachable from it.
func Parse(r io.ReaderAt, size int64, opts ...Option) (*Tree, error) {
	cfg := newConfig(opts)
	c, off, err := readHeader(r, size)
	if err != nil {
		return nil, err
	}
	cfg.log.Debug().Stringer("order", c.order).Uint64("ifd0", off).Int64("size", size).Msg("read header")
	return newWalker(c, cfg).walkChain(off)
}

// Open parses r like Parse and extracts the main image. When the directory
// tree is valid but the image cannot be decoded, the tree is returned with
// a nil image and the extraction error.
func Open(r io.ReaderAt, size int64, opts ...Option) (*Tree, *RawImage, error) {
	t, err := Parse(r, size, opts...)
	if err != nil {
		return nil, nil, err
	}
	img, err := Extract(t)
	if err != nil {
		t.log.Debug().Err(err).Msg("image not extracted")
		return t, nil, err
	}
	return t, img, nil
}

// Decode reads all of r into memory and opens it.
func Decode(r io.Reader, opts ...Option) (*Tree, *RawImage, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return Open(bytes.NewReader(b), int64(len(b)), opts...)
}
