package loco

import "testing"

func makeImage(width, height, bitDepth, nSegs int, fill func(x, y int) int16) *Image {
	return &Image{
		Width:      width,
		Height:     height,
		SpaceWidth: width,
		BitDepth:   bitDepth,
		NSegs:      nSegs,
		Data:       makeTestPixels(width, height, fill),
	}
}

func makeTestPixels(width, height int, fill func(x, y int) int16) []int16 {
	data := make([]int16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data[y*width+x] = fill(x, y)
		}
	}
	return data
}

func TestCheckImageAcceptsValidImage(t *testing.T) {
	img := makeImage(100, 100, 8, 4, func(x, y int) int16 { return 0 })
	if flags := CheckImage(img); flags != 0 {
		t.Fatalf("CheckImage = %#x, want 0", flags)
	}
}

func TestCheckImageRejectsBadBitDepth(t *testing.T) {
	img := makeImage(100, 100, 10, 4, func(x, y int) int16 { return 0 })
	flags := CheckImage(img)
	if flags&StatusBadBitDepth == 0 {
		t.Fatalf("CheckImage = %#x, want StatusBadBitDepth set", flags)
	}
	if flags&StatusAbort == 0 {
		t.Fatalf("CheckImage = %#x, want StatusAbort set alongside a fault", flags)
	}
}

func TestCheckImageRejectsTooManySegments(t *testing.T) {
	img := makeImage(1000, 1000, 8, MaxSegs+1, func(x, y int) int16 { return 0 })
	if flags := CheckImage(img); flags&StatusBadNSegs == 0 {
		t.Fatalf("CheckImage = %#x, want StatusBadNSegs set", flags)
	}
}

func TestCheckImageRejectsTooSmallImageForSegCount(t *testing.T) {
	img := makeImage(10, 10, 8, 10, func(x, y int) int16 { return 0 })
	if flags := CheckImage(img); flags&StatusSmallImage == 0 {
		t.Fatalf("CheckImage = %#x, want StatusSmallImage set (100 px < 10*200)", flags)
	}
}

func TestCompressRejectsInvalidImage(t *testing.T) {
	img := makeImage(1, 1, 8, 1, func(x, y int) int16 { return 0 })
	out := &CompressedImage{Data: make([]byte, 1024)}
	flags, err := Compress(NewCompressState(), img, out)
	if err != nil {
		t.Fatalf("Compress returned unexpected error: %v", err)
	}
	if flags&StatusAbort == 0 {
		t.Fatalf("Compress flags = %#x, want StatusAbort for a too-small image", flags)
	}
}

func TestCompressNilArgumentsReturnErrors(t *testing.T) {
	img := makeImage(100, 100, 8, 1, func(x, y int) int16 { return 0 })
	out := &CompressedImage{Data: make([]byte, 1024)}

	if _, err := Compress(nil, img, out); err != ErrNilState {
		t.Fatalf("Compress(nil state) error = %v, want ErrNilState", err)
	}
	if _, err := Compress(NewCompressState(), nil, out); err != ErrNilImage {
		t.Fatalf("Compress(nil image) error = %v, want ErrNilImage", err)
	}
	noData := &Image{Width: 100, Height: 100, SpaceWidth: 100, BitDepth: 8, NSegs: 1}
	if _, err := Compress(NewCompressState(), noData, out); err != ErrNilData {
		t.Fatalf("Compress(nil data) error = %v, want ErrNilData", err)
	}
}

func TestCompressProducesByteAlignedSegments(t *testing.T) {
	img := makeImage(64, 64, 8, 4, func(x, y int) int16 { return int16((x + y) % 256) })
	out := &CompressedImage{Data: make([]byte, 64*64*2)}
	flags, err := Compress(NewCompressState(), img, out)
	if err != nil {
		t.Fatalf("Compress error: %v", err)
	}
	if flags != StatusOK {
		t.Fatalf("Compress flags = %#x, want 0", flags)
	}
	if out.Segments.NSegs != 4 {
		t.Fatalf("NSegs = %d, want 4", out.Segments.NSegs)
	}
	for i := 0; i < out.Segments.NSegs; i++ {
		if out.Segments.Start[i+1] < out.Segments.Start[i] {
			t.Fatalf("segment %d start offsets not monotonic: %v", i, out.Segments.Start)
		}
		if out.Segments.NBits[i]%8 != 0 {
			t.Fatalf("segment %d length %d bits is not byte-aligned", i, out.Segments.NBits[i])
		}
	}
}
