package lindng

import (
	"fmt"
	"strconv"
	"strings"
)

// Key names a tag within the directory it was read from.
type Key struct {
	IFD uint64
	Tag TagID
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%v", k.IFD, k.Tag)
}

// Metadata flattens every directory of t into one map. Tags are keyed by
// the offset of their IFD so that the same tag in IFD0 and in a SubIFD are
// both kept. When a tag repeats within one IFD the first entry wins. A nil
// tree gives an empty map.
func Metadata(t *Tree) map[Key]Value {
	m := make(map[Key]Value)
	for _, d := range t.IFDs() {
		for _, e := range d.Entries {
			k := Key{IFD: d.Offset, Tag: e.Tag}
			if _, dup := m[k]; !dup {
				m[k] = e.Value
			}
		}
	}
	return m
}

// FormatValue renders up to limit elements of v (all when limit <= 0).
func FormatValue(v Value, limit int) string {
	var b strings.Builder
	n := v.Len()
	if limit > 0 && n > limit {
		n = limit
	}
	switch v := v.(type) {
	case Text:
		ss := v.Strings()
		for i, s := range ss {
			if i > 0 {
				b.WriteByte(' ')
			}
			if limit > 0 && len(s) > limit {
				s = s[:limit] + "..."
			}
			b.WriteString(strconv.Quote(s))
		}
		return b.String()
	case Uints:
		for i := 0; i < n; i++ {
			sep(&b, i)
			b.WriteString(strconv.FormatUint(v[i], 10))
		}
	case Ints:
		for i := 0; i < n; i++ {
			sep(&b, i)
			b.WriteString(strconv.FormatInt(v[i], 10))
		}
	case Rationals:
		for i := 0; i < n; i++ {
			sep(&b, i)
			b.WriteString(strconv.FormatInt(v[i].Num, 10))
			b.WriteByte('/')
			b.WriteString(strconv.FormatInt(v[i].Den, 10))
		}
	case Floats:
		for i := 0; i < n; i++ {
			sep(&b, i)
			b.WriteString(strconv.FormatFloat(v[i], 'g', -1, 64))
		}
	}
	if n < v.Len() {
		b.WriteString(" ...")
	}
	return b.String()
}

func sep(b *strings.Builder, i int) {
	if i > 0 {
		b.WriteByte(' ')
	}
}
