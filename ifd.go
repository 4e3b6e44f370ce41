package lindng

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Space is the tag namespace of an IFD.
type Space uint8

const (
	TIFFSpace Space = iota
	ExifSpace
	GPSSpace
	InteropSpace
)

func (s Space) String() string {
	switch s {
	case TIFFSpace:
		return "TIFF"
	case ExifSpace:
		return "Exif"
	case GPSSpace:
		return "GPS"
	case InteropSpace:
		return "Interop"
	}
	return fmt.Sprintf("Space(%d)", uint8(s))
}

// subIFDTags maps the tags that point at sub-IFDs to the namespace of the
// IFDs they point at.
var subIFDTags = map[TagID]Space{
	SubIFDs:    TIFFSpace,
	ExifIFD:    ExifSpace,
	GPSIFD:     GPSSpace,
	InteropIFD: InteropSpace,
}

// Entry is one decoded IFD entry.
type Entry struct {
	Tag   TagID
	Type  Type
	Count uint32
	Value Value

	// Offset is the file position of the 12-byte entry itself.
	Offset uint64
	// Inline reports whether the value was stored in the entry. When it is
	// false ValueOffset is where the value was read from.
	Inline      bool
	ValueOffset uint64
}

// IFD is a parsed Image File Directory.
type IFD struct {
	Offset  uint64
	Space   Space
	Entries []Entry // in file order
	// Next is the offset of the following IFD in the chain, or 0. A link to
	// an IFD that was already parsed is recorded as 0.
	Next uint64
	// SubIFDs lists the offsets of IFDs reached through this IFD's
	// SubIFDs, ExifIFD, GPSIFD and InteropIFD entries, in entry order.
	SubIFDs []uint64
	// Parent is the offset of the IFD whose entry points here, or 0 for
	// IFDs of the main chain.
	Parent uint64
}

// Entry returns the first entry with the given tag.
func (d *IFD) Entry(tag TagID) (*Entry, bool) {
	for i := range d.Entries {
		if d.Entries[i].Tag == tag {
			return &d.Entries[i], true
		}
	}
	return nil, false
}

// Has reports whether d carries tag.
func (d *IFD) Has(tag TagID) bool {
	_, ok := d.Entry(tag)
	return ok
}

// Tree holds every IFD reachable from a file's header. Each offset appears
// at most once.
type Tree struct {
	Order ByteOrder
	// Root is the offset of IFD0.
	Root uint64
	// Chain holds the offsets of IFD0, IFD1 ... linked by next pointers.
	Chain []uint64

	dirs map[uint64]*IFD
	walk []uint64
	c    cursor
	log  zerolog.Logger
}

// IFD returns the directory parsed at off.
func (t *Tree) IFD(off uint64) (*IFD, bool) {
	if t == nil {
		return nil, false
	}
	d, ok := t.dirs[off]
	return d, ok
}

// IFDs returns all directories in the order they were parsed.
func (t *Tree) IFDs() []*IFD {
	if t == nil {
		return nil
	}
	ds := make([]*IFD, len(t.walk))
	for i, off := range t.walk {
		ds[i] = t.dirs[off]
	}
	return ds
}

// Lookup returns the first entry carrying tag, searching directories in
// parse order.
func (t *Tree) Lookup(tag TagID) (*Entry, *IFD, bool) {
	for _, d := range t.IFDs() {
		if e, ok := d.Entry(tag); ok {
			return e, d, true
		}
	}
	return nil, nil, false
}

// walker parses the IFDs of one file. visited is owned by a single walk.
type walker struct {
	c       cursor
	visited map[uint64]bool
	tree    *Tree
	maxIFDs int
	log     zerolog.Logger
}

func newWalker(c cursor, cfg *config) *walker {
	return &walker{
		c:       c,
		visited: make(map[uint64]bool),
		tree: &Tree{
			Order: c.order,
			dirs:  make(map[uint64]*IFD),
			c:     c,
			log:   cfg.log,
		},
		maxIFDs: cfg.maxIFDs,
		log:     cfg.log,
	}
}

// walkChain parses the main IFD chain starting at off, together with all
// sub-IFDs.
func (w *walker) walkChain(off uint64) (*Tree, error) {
	w.tree.Root = off
	for off != 0 {
		d, err := w.parse(off, TIFFSpace, 0)
		if err != nil {
			return nil, err
		}
		w.tree.Chain = append(w.tree.Chain, off)
		off = d.Next
	}
	return w.tree, nil
}

// parse reads the IFD at off and, recursively, every sub-IFD it names. The
// returned IFD's Next has already been checked against visited but is not
// followed here.
func (w *walker) parse(off uint64, space Space, parent uint64) (*IFD, error) {
	if len(w.visited) >= w.maxIFDs {
		return nil, &MalformedDirectoryError{Offset: off, Err: FormatError(fmt.Sprintf("more than %d IFDs", w.maxIFDs))}
	}
	w.visited[off] = true

	malformed := func(err error) (*IFD, error) {
		return nil, &MalformedDirectoryError{Offset: off, Err: err}
	}

	n, err := w.c.u16(off)
	if err != nil {
		return malformed(err)
	}
	if n == 0 {
		return malformed(FormatError("IFD has no entries"))
	}
	// All IFD entries are read in one chunk, together with the next pointer.
	p, err := w.c.bytes(off+ifdCountSz, uint64(n)*ifdLen+ifdNextSz)
	if err != nil {
		return malformed(err)
	}

	bo := w.c.order.binary()
	d := &IFD{
		Offset:  off,
		Space:   space,
		Entries: make([]Entry, 0, n),
		Parent:  parent,
	}
	w.tree.dirs[off] = d
	w.tree.walk = append(w.tree.walk, off)

	for i := 0; i < int(n); i++ {
		q := p[i*ifdLen : (i+1)*ifdLen]
		e := Entry{
			Tag:    TagID(bo.Uint16(q[0:2])),
			Type:   Type(bo.Uint16(q[2:4])),
			Count:  bo.Uint32(q[4:8]),
			Offset: off + ifdCountSz + uint64(i*ifdLen),
		}
		e.Value, e.ValueOffset, e.Inline, err = decodeValue(w.c, e.Tag, e.Type, e.Count, q[8:12])
		if err != nil {
			return malformed(err)
		}
		if e.Count == 0 {
			return malformed(FormatError(fmt.Sprintf("%v has no values", e.Tag)))
		}
		d.Entries = append(d.Entries, e)
	}
	d.Next = uint64(bo.Uint32(p[int(n)*ifdLen:]))

	for _, e := range d.Entries {
		subSpace, ok := subIFDTags[e.Tag]
		if !ok {
			continue
		}
		offs, ok := e.Value.(Uints)
		if !ok {
			return malformed(FormatError(fmt.Sprintf("%v has non-integral type %v", e.Tag, e.Type)))
		}
		for _, sub := range offs {
			// Sub-IFDs of the TIFF namespace may chain further images.
			for sub != 0 {
				if w.visited[sub] {
					w.log.Debug().Uint64("ifd", off).Uint64("sub", sub).Stringer("tag", e.Tag).Msg("sub-IFD already parsed, not following")
					break
				}
				sd, err := w.parse(sub, subSpace, off)
				if err != nil {
					return nil, err
				}
				d.SubIFDs = append(d.SubIFDs, sub)
				sub = sd.Next
			}
		}
	}

	if d.Next != 0 && w.visited[d.Next] {
		w.log.Debug().Uint64("ifd", off).Uint64("next", d.Next).Msg("next IFD already parsed, ending chain")
		d.Next = 0
	}
	if d.Next != 0 && space != TIFFSpace {
		// Only the main chain is followed; Exif, GPS and Interop IFDs are
		// not expected to have successors.
		w.log.Debug().Uint64("ifd", off).Uint64("next", d.Next).Stringer("space", space).Msg("ignoring next pointer")
		d.Next = 0
	}
	w.log.Debug().Uint64("ifd", off).Stringer("space", space).Int("entries", len(d.Entries)).Uint64("next", d.Next).Msg("parsed IFD")
	return d, nil
}
