// Command dngdump prints the IFDs of a TIFF or DNG file and a summary of
// its main image.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/fumiama/lindng"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Dump the directories of a TIFF/DNG file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	verbose := flag.Bool("v", false, "Debug logging")
	tagName := flag.String("tag", "", "Only print this tag (name or number)")
	limit := flag.Int("limit", 16, "Values printed per entry, 0 for all")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	only := lindng.TagID(0)
	filter := *tagName != ""
	if filter {
		t, ok := lindng.ParseTagID(*tagName)
		if !ok {
			log.Fatal().Str("tag", *tagName).Msg("unknown tag")
		}
		only = t
	}

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Msg("open")
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		log.Fatal().Err(err).Msg("stat")
	}

	tree, img, err := lindng.Open(f, st.Size(), lindng.WithLogger(log))
	if tree == nil {
		log.Error().Err(err).Str("file", path).Msg("not a TIFF file")
		os.Exit(1)
	}
	dump(os.Stdout, tree, filter, only, *limit)
	if err != nil {
		log.Warn().Err(err).Msg("image not decoded")
		return
	}
	fmt.Printf("Image: IFD %d, %dx%d, %d samples of %v bits, %v\n",
		img.IFD, img.Width, img.Height, img.SamplesPerPixel, img.BitsPerSample, img.Photometric)
}

func dump(w io.Writer, tree *lindng.Tree, filter bool, only lindng.TagID, limit int) {
	fmt.Fprintf(w, "Byte order: %v\n", tree.Order)
	for _, d := range tree.IFDs() {
		fmt.Fprintf(w, "%s IFD at %d (parent %d, next %d, %d entries)\n",
			d.Space, d.Offset, d.Parent, d.Next, len(d.Entries))
		for _, e := range d.Entries {
			if filter && e.Tag != only {
				continue
			}
			fmt.Fprintf(w, "  %v %v(%d): %s\n", e.Tag, e.Type, e.Count, lindng.FormatValue(e.Value, limit))
		}
	}
}
