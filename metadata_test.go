package lindng

import (
	"reflect"
	"testing"
)

func TestMetadata(t *testing.T) {
	b := linearDNG(LittleEndian, rawDesc{
		width: 2, height: 1, spp: 1, bps: 16,
		photometric: LinearRaw,
		strips:      [][]byte{{1, 0, 2, 0}},
	})
	tree := parseBuilt(t, b)
	md := Metadata(tree)

	d0, _ := tree.IFD(tree.Root)
	raw := d0.SubIFDs[0]
	exif := d0.SubIFDs[1]
	n := 0
	for _, d := range tree.IFDs() {
		n += len(d.Entries)
	}
	if len(md) != n {
		t.Fatal(len(md), n)
	}

	// ImageWidth exists in both IFD0 and the raw SubIFD.
	if v := md[Key{tree.Root, ImageWidth}]; !reflect.DeepEqual(v, Uints{1}) {
		t.Fatal(v)
	}
	if v := md[Key{raw, ImageWidth}]; !reflect.DeepEqual(v, Uints{2}) {
		t.Fatal(v)
	}
	if v := md[Key{tree.Root, UniqueCameraModel}]; v.(Text).String() != "Acme Linear 1" {
		t.Fatal(v)
	}
	if v := md[Key{tree.Root, DNGVersion}]; !reflect.DeepEqual(v, Uints{1, 4, 0, 0}) {
		t.Fatal(v)
	}
	if v := md[Key{exif, 0x9204}]; !reflect.DeepEqual(v, Rationals{{-1, 3}}) {
		t.Fatal(v)
	}
}

func TestMetadataFirstWins(t *testing.T) {
	b := newBuilder(BigEndian)
	b.setRoot(b.ifd(0, b.ascii(Make, "first"), b.ascii(Make, "second")))
	tree := parseBuilt(t, b)
	md := Metadata(tree)
	if len(md) != 1 || md[Key{tree.Root, Make}].(Text).String() != "first" {
		t.Fatal(md)
	}
}

func TestMetadataNil(t *testing.T) {
	md := Metadata(nil)
	if md == nil || len(md) != 0 {
		t.Fatal(md)
	}
}

func TestFormatValue(t *testing.T) {
	for _, tc := range []struct {
		v     Value
		limit int
		want  string
	}{
		{Uints{1, 2, 3}, 0, "1 2 3"},
		{Uints{1, 2, 3}, 2, "1 2 ..."},
		{Ints{-1, 5}, 0, "-1 5"},
		{Rationals{{1, 125}, {-3, 2}}, 0, "1/125 -3/2"},
		{Floats{0.5, 2}, 1, "0.5 ..."},
		{Text("Acme"), 0, `"Acme"`},
		{Text("one\x00two"), 0, `"one" "two"`},
		{Text("abcdef"), 3, `"abc..."`},
		{Uints{}, 0, ""},
	} {
		if got := FormatValue(tc.v, tc.limit); got != tc.want {
			t.Fatalf("FormatValue(%v, %d) = %q, want %q", tc.v, tc.limit, got, tc.want)
		}
	}
}

func TestTagNames(t *testing.T) {
	if ImageWidth.String() != "ImageWidth" || DNGVersion.String() != "DNGVersion" {
		t.Fatal(ImageWidth, DNGVersion)
	}
	if s := TagID(0xC7FF).String(); s != "Tag(0xc7ff)" {
		t.Fatal(s)
	}
	if _, ok := TagID(0xC7FF).Name(); ok {
		t.Fatal("unknown tag has a name")
	}
	for _, tc := range []struct {
		s    string
		want TagID
	}{
		{"ExifIFD", ExifIFD},
		{"LinearizationTable", LinearizationTable},
		{"256", ImageWidth},
		{"0x14a", SubIFDs},
	} {
		if got, ok := ParseTagID(tc.s); !ok || got != tc.want {
			t.Fatal(tc.s, got, ok)
		}
	}
	if _, ok := ParseTagID("NoSuchTag"); ok {
		t.Fatal("parsed unknown name")
	}
	if s := (Key{8, Make}).String(); s != "8/Make" {
		t.Fatal(s)
	}
}
