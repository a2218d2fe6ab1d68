// Command locobench exercises the loco codec from raw flat pixel files.
//
// Usage:
//
//	locobench gen -width W -height H -depth {8,12} -pattern {zero,max,noise} -out FILE
//	locobench roundtrip -in FILE -width W -height H -depth {8,12} -segs N
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/locoimg/goloco/loco"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "gen":
		err = runGen(os.Args[2:])
	case "roundtrip":
		err = runRoundtrip(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "locobench: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "locobench: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  locobench gen -width W -height H -depth {8,12} -pattern {zero,max,noise} -out FILE
  locobench roundtrip -in FILE -width W -height H -depth {8,12} -segs N

Run "locobench <command> -h" for command-specific options.
`)
}

// --- gen ---

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	width := fs.Int("width", 256, "image width")
	height := fs.Int("height", 256, "image height")
	depth := fs.Int("depth", 8, "bit depth (8 or 12)")
	pattern := fs.String("pattern", "noise", "pixel pattern: zero, max, noise")
	out := fs.String("out", "", "output file (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("gen: -out is required")
	}

	pmax := int16((1 << uint(*depth)) - 1)
	data := make([]int16, *width**height)

	switch *pattern {
	case "zero":
		// data is already all zero
	case "max":
		for i := range data {
			data[i] = pmax
		}
	case "noise":
		g := uint32(0x2545F491)
		for i := range data {
			g = g*1664525 + 1013904223
			data[i] = int16(g % uint32(pmax+1))
		}
	default:
		return fmt.Errorf("gen: unknown pattern %q (use zero/max/noise)", *pattern)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 2*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("gen: writing %s: %w", *out, err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d, %d-bit, pattern=%s, %d bytes)\n",
		*out, *width, *height, *depth, *pattern, len(buf))
	return nil
}

// --- roundtrip ---

func runRoundtrip(args []string) error {
	fs := flag.NewFlagSet("roundtrip", flag.ContinueOnError)
	in := fs.String("in", "", "input raw pixel file (required)")
	width := fs.Int("width", 256, "image width")
	height := fs.Int("height", 256, "image height")
	depth := fs.Int("depth", 8, "bit depth (8 or 12)")
	segs := fs.Int("segs", 1, "number of segments")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("roundtrip: -in is required")
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("roundtrip: reading %s: %w", *in, err)
	}
	npix := *width * *height
	if len(raw) < 2*npix {
		return fmt.Errorf("roundtrip: %s has %d bytes, want at least %d for %dx%d", *in, len(raw), 2*npix, *width, *height)
	}

	data := make([]int16, npix)
	for i := range data {
		data[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}

	img := &loco.Image{
		Width:      *width,
		Height:     *height,
		SpaceWidth: *width,
		BitDepth:   *depth,
		NSegs:      *segs,
		Data:       data,
	}

	if flags := loco.CheckImage(img); flags != 0 {
		return fmt.Errorf("roundtrip: CheckImage failed: flags=%#x", flags)
	}

	compressed := &loco.CompressedImage{Data: make([]byte, npix*3+4096)}
	cFlags, err := loco.Compress(loco.NewCompressState(), img, compressed)
	if err != nil {
		return fmt.Errorf("roundtrip: Compress: %w", err)
	}
	if cFlags&loco.StatusAbort != 0 {
		return fmt.Errorf("roundtrip: Compress aborted: flags=%#x", cFlags)
	}

	imgOut := &loco.Image{Data: make([]int16, npix)}
	segData := make([]loco.SegmentData, compressed.Segments.NSegs)
	dFlags, err := loco.Decompress(loco.NewDecompressState(), &compressed.Segments, imgOut, segData)
	if err != nil {
		return fmt.Errorf("roundtrip: Decompress: %w", err)
	}

	ratio := float64(2*npix) / float64(compressed.CompressedSizeBytes)
	fmt.Printf("Compressed size:    %d bytes\n", compressed.CompressedSizeBytes)
	fmt.Printf("Compression ratio:  %.3f\n", ratio)
	fmt.Printf("Encoder flags:      %#x\n", cFlags)
	fmt.Printf("Decoder flags:      %#x\n", dFlags)

	anyBad := false
	for i, sd := range segData {
		if sd.Status != 0 {
			anyBad = true
			fmt.Printf("  segment %d: status=%#x n_missing_pixels=%d\n", i, sd.Status, sd.NMissingPixels)
		}
	}
	if !anyBad {
		fmt.Println("All segments decoded cleanly.")
	}
	return nil
}
