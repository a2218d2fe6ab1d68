package loco

import "fmt"

// CompressState is the encoder's scratch state. It has no fields and holds
// no data across calls: Compress allocates its per-segment statistics tables
// and its bit buffer afresh on every call.
type CompressState struct{}

// NewCompressState returns a ready-to-use encoder scratch state.
func NewCompressState() *CompressState {
	return &CompressState{}
}

// CheckImage validates an image's metadata against the codec's parameter
// constraints and returns a status bitmask (zero means the image is
// acceptable). It has no side effects and does not read img.Data.
func CheckImage(img *Image) int {
	if img == nil {
		return StatusAbort
	}

	flags := 0
	if img.Width > MaxImageWidth {
		flags |= StatusBigWidth
	}
	if img.Height > MaxImageHeight {
		flags |= StatusBigHeight
	}
	if img.SpaceWidth < img.Width {
		flags |= StatusBadSpaceWidth
	}
	if img.Width < MinImageWidth {
		flags |= StatusSmallWidth
	}
	if img.Height < MinImageHeight {
		flags |= StatusSmallHeight
	}
	if img.NSegs < 1 || img.NSegs > MaxSegs {
		flags |= StatusBadNSegs
	}
	if _, ok := profileFor(img.BitDepth); !ok {
		flags |= StatusBadBitDepth
	}
	if img.Width*img.Height < img.NSegs*MinSegmentPixels {
		flags |= StatusSmallImage
	}
	if flags != 0 {
		flags |= StatusAbort
	}
	return flags
}

// Compress encodes img into out, which must have out.Data sized to the
// caller's chosen output buffer capacity (len(out.Data) bounds how many
// bytes Compress may write). It returns a status bitmask: nonzero with the
// ABORT bit set means img failed CheckImage, or out.Data is empty
// (SMALL_BUFFER), and nothing was written;
// BUFFER_FILLED means the output buffer ran out mid-image and the trailing
// segments were truncated to zero length.
func Compress(state *CompressState, img *Image, out *CompressedImage) (int, error) {
	if state == nil {
		return StatusAbort, ErrNilState
	}
	if img == nil {
		return StatusAbort, ErrNilImage
	}
	if img.Data == nil {
		return StatusAbort, ErrNilData
	}
	if out == nil {
		return StatusAbort, fmt.Errorf("loco: Compress: %w: out", ErrNilSegments)
	}

	flags := CheckImage(img)
	if flags&StatusAbort != 0 {
		return flags, nil
	}

	if len(out.Data) == 0 {
		return StatusAbort | StatusSmallBuffer, nil
	}

	p, _ := profileFor(img.BitDepth)
	headerCode := p.HeaderCode
	rects := segment(img.Width, img.Height, img.NSegs)

	maxBits := len(out.Data) * 8
	starts := make([]int, img.NSegs+1)
	nbits := make([]int, img.NSegs)

	bw := newBitWriter(maxBits)
	filled := false

	for s := 0; s < img.NSegs; s++ {
		startBit := bw.len()
		starts[s] = startBit / 8

		if filled {
			nbits[s] = 0
			continue
		}

		r := rects[s]
		bw.writeInt(headerCode, 2)
		bw.writeInt(img.Width-1, 12)
		bw.writeInt(img.Height-1, 12)
		bw.writeInt(img.NSegs-1, 5)
		bw.writeInt(s, 5)

		encodeSegment(bw, img, p, r)

		if bw.filled {
			filled = true
		}

		// Pad to a byte boundary so the next segment starts byte-aligned.
		for bw.len()%8 != 0 {
			bw.writeBit(0)
		}
		nbits[s] = bw.len() - startBit
	}
	starts[img.NSegs] = bw.len() / 8

	copy(out.Data, bw.bytes())
	out.CompressedSizeBytes = len(bw.bytes())
	out.Segments = CompressedSegments{NSegs: img.NSegs, Start: starts, NBits: nbits, Data: out.Data}

	if filled {
		return StatusBufferFilled, nil
	}
	return StatusOK, nil
}

// encodeSegment writes one segment's pixel payload (not its header): the
// first two raw pixels, then the remaining pixels of the rectangle in raster
// order, context-coded and statistics-updated exactly as the decoder will
// reverse them.
func encodeSegment(bw *bitWriter, img *Image, p *Profile, rect Rect) {
	st := newStatsTable(p)

	bw.writeInt(int(img.at(rect.XStart, rect.YStart)), p.BitDepth)
	bw.writeInt(int(img.at(rect.XStart+1, rect.YStart)), p.BitDepth)

	for y := rect.YStart; y < rect.YEnd; y++ {
		xStart := rect.XStart
		if y == rect.YStart {
			xStart += 2
		}
		for x := xStart; x < rect.XEnd; x++ {
			ctx, invert := findContext(img, p, x, y, rect.XStart, rect.XEnd, rect.YStart)
			s := &st.ctx[ctx]

			var est int
			if invert {
				est = predict(img, x, y, rect.XStart, rect.YStart) - s.bias
			} else {
				est = predict(img, x, y, rect.XStart, rect.YStart) + s.bias
			}
			est = clipEstimate(est, p.PMax)

			actual := int(img.at(x, y))
			r := actual - est
			if r < p.RMin {
				r += p.PRange
			} else if r > p.RMax {
				r -= p.PRange
			}
			if invert {
				r = -r
			}

			k := golombK(s.count, s.magSum&msumMask)
			v := mapResidual(r)
			encodeValue(bw, v, k)

			st.update(ctx, r, p.MaxN)
		}
	}
}
