package loco

// Size and count limits fixed by the bitstream format (see Profile constants
// for the per-bit-depth values that also bound these).
const (
	MaxImageWidth    = 4096
	MaxImageHeight   = 4096
	MinImageWidth    = 4
	MinImageHeight   = 4
	MinSegmentPixels = 200
	MaxSegs          = 32
	NContexts        = 1024
)

// Encoder status flags. ABORT is set, and is the sign bit, exactly when a
// parameter fault prevented compression from producing any output.
const (
	StatusOK            = 0x00000000
	StatusBigWidth      = 0x00000002
	StatusBigHeight     = 0x00000004
	StatusBadSpaceWidth = 0x00000008
	StatusSmallWidth    = 0x00000020
	StatusSmallHeight   = 0x00000040
	StatusSmallImage    = 0x00000080
	StatusBadNSegs      = 0x00000100
	StatusBadBitDepth   = 0x00000200
	StatusSmallBuffer   = 0x00000400
	StatusBufferFilled  = 0x00002000
	StatusAbort         = -0x80000000 // high bit of a signed 32-bit word
)

// Decoder top-level status flags.
const (
	StatusBadNumDataSeg  = 0x01
	StatusNoGoodSegments = 0x02
	StatusBufTooSmall    = 0x04
)

// Per-segment decode status flags.
const (
	SegStatusShortData        = 0x0001
	SegStatusInconsistentData = 0x0002
	SegStatusDuplicate        = 0x0004
	SegStatusBadData          = 0x0020
	SegStatusBadHeaderCode    = 0x0040
	SegStatusMissingData      = 0x0080
)

// header_code values on the wire.
const (
	headerCode8Bit  = 0
	headerCode12Bit = 1
)

// Image is a raster of pixel values, caller-owned, of logical size
// Width x Height with a row stride SpaceWidth >= Width. Pixel values must lie
// in [0, 2^BitDepth - 1]. BitDepth must be 8 or 12.
//
// Data holds Height rows of SpaceWidth pixels each; row y occupies
// Data[y*SpaceWidth : y*SpaceWidth+Width].
type Image struct {
	Width      int
	Height     int
	SpaceWidth int
	BitDepth   int
	NSegs      int
	Data       []int16
}

// Rect is a half-open rectangle [XStart, XEnd) x [YStart, YEnd).
type Rect struct {
	XStart, XEnd int
	YStart, YEnd int
}

// CompressedSegments describes the segment framing of a compressed buffer:
// for segment i, Data[Start[i]:Start[i+1]] (at bit granularity, NBits[i]
// bits) holds that segment's bitstream. Start holds NSegs+1 offsets, the
// last marking end-of-stream. This is also Decompress's input type, so it
// carries its own Data rather than relying on the CompressedImage that
// produced it — a segment buffer may travel (or be corrupted, or arrive
// partially) independently of the struct that built it.
type CompressedSegments struct {
	NSegs int
	Start []int  // len NSegs+1, byte offsets into Data
	NBits []int  // len NSegs
	Data  []byte
}

// CompressedImage is the output of Compress: the segment framing plus the
// byte buffer backing it. Segments.Data aliases Data.
type CompressedImage struct {
	Segments            CompressedSegments
	CompressedSizeBytes int
	Data                []byte
}

// SegmentData describes one segment as seen by Decompress.
type SegmentData struct {
	RealNum          int
	Status           int
	BoundFirstLine   int
	BoundFirstSample int
	BoundNLines      int
	BoundNSamples    int
	NMissingPixels   int
}

// row returns a slice over row y of the image using SpaceWidth as the stride.
func (img *Image) row(y int) []int16 {
	base := y * img.SpaceWidth
	return img.Data[base : base+img.Width]
}

func (img *Image) at(x, y int) int16 {
	return img.Data[y*img.SpaceWidth+x]
}

func (img *Image) set(x, y int, v int16) {
	img.Data[y*img.SpaceWidth+x] = v
}
