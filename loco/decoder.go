package loco

// DecompressState is the decoder's scratch state. Like CompressState, it
// holds nothing across calls; Decompress initializes it fresh each time.
type DecompressState struct{}

// NewDecompressState returns a ready-to-use decoder scratch state.
func NewDecompressState() *DecompressState {
	return &DecompressState{}
}

// Decompress reconstructs an image from a set of (possibly incomplete or
// corrupted) compressed segments. segData must have at least
// segments.NSegs entries; Decompress fills in segData[i] for every
// input segment i with that segment's outcome.
//
// It never aborts on malformed segment data: a bad segment is marked in
// segData and skipped, and decoding continues with the remaining segments.
// The only fatal outcomes are a segment count outside [1, MaxSegs]
// (BAD_NUM_DATA_SEG, returned immediately), no segment ever establishing
// valid image parameters (NO_GOOD_SEGMENTS), and an output image buffer too
// small to hold the decoded dimensions (BUF_TOO_SMALL, checked once
// parameters are known and before any pixel is written).
func Decompress(state *DecompressState, segments *CompressedSegments, imgOut *Image, segData []SegmentData) (int, error) {
	if state == nil {
		return StatusNoGoodSegments, ErrNilState
	}
	if segments == nil {
		return StatusNoGoodSegments, ErrNilSegments
	}
	if imgOut == nil {
		return StatusNoGoodSegments, ErrNilImage
	}
	if imgOut.Data == nil {
		return StatusNoGoodSegments, ErrNilData
	}

	if segments.NSegs < 1 || segments.NSegs > MaxSegs {
		return StatusBadNumDataSeg, nil
	}

	status := 0
	haveParameters := false
	var p *Profile
	var nSegs int
	var decoded []bool

	for i := 0; i < segments.NSegs; i++ {
		segData[i] = SegmentData{}

		start := segments.Start[i]
		end := segments.Start[i+1]
		segBytes := segments.Data[start:end]
		segBits := segments.NBits[i]

		r := newBitReader(segBytes, segBits)

		headerCode, ok1 := r.readInt(2)
		width, ok2 := r.readInt(12)
		height, ok3 := r.readInt(12)
		curNSegs, ok4 := r.readInt(5)
		seg, ok5 := r.readInt(5)
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			segData[i].Status |= SegStatusShortData
			continue
		}
		width++
		height++
		curNSegs++

		segData[i].RealNum = seg

		if haveParameters {
			if headerCode != p.HeaderCode || width != imgOut.Width ||
				height != imgOut.Height || curNSegs != nSegs {
				segData[i].Status |= SegStatusInconsistentData
				continue
			}
			if seg < 0 || seg >= nSegs {
				segData[i].Status |= SegStatusBadData
				continue
			}
			if decoded[seg] {
				segData[i].Status |= SegStatusDuplicate
				continue
			}
		} else {
			prof, ok := profileForHeaderCode(headerCode)
			if !ok {
				segData[i].Status |= SegStatusBadHeaderCode
				continue
			}
			if width < MinImageWidth || width > MaxImageWidth ||
				height < MinImageHeight || height > MaxImageHeight ||
				curNSegs < 1 || curNSegs > MaxSegs ||
				width*height < curNSegs*MinSegmentPixels {
				segData[i].Status |= SegStatusBadData
				continue
			}

			if seg < 0 || seg >= curNSegs {
				segData[i].Status |= SegStatusBadData
				continue
			}

			haveParameters = true
			p = prof
			nSegs = curNSegs

			imgOut.BitDepth = p.BitDepth
			imgOut.Width = width
			imgOut.SpaceWidth = width
			imgOut.Height = height
			imgOut.NSegs = curNSegs

			if len(imgOut.Data) < width*height {
				return StatusBufTooSmall, nil
			}

			decoded = make([]bool, curNSegs)
			for idx := range imgOut.Data[:width*height] {
				imgOut.Data[idx] = 0
			}
		}

		rect := segmentRect(imgOut.Width, imgOut.Height, nSegs, seg)
		segData[i].BoundFirstLine = rect.YStart
		segData[i].BoundFirstSample = rect.XStart
		segData[i].BoundNLines = rect.YEnd - rect.YStart
		segData[i].BoundNSamples = rect.XEnd - rect.XStart

		nMissing := decodeSegment(r, imgOut, p, rect)
		segData[i].NMissingPixels = nMissing
		if nMissing > 0 {
			segData[i].Status |= SegStatusMissingData
		}
		decoded[seg] = true
	}

	if !haveParameters {
		status |= StatusNoGoodSegments
	}
	return status, nil
}

// segmentRect recomputes the single rectangle for segment index seg; it is
// a thin wrapper over segment so the decoder doesn't need to store all
// n_segs rectangles up front when it only needs one at a time, but the
// result is identical to segment(...)[seg] since the partitioning is
// deterministic.
func segmentRect(width, height, nSegs, seg int) Rect {
	return segment(width, height, nSegs)[seg]
}

// decodeSegment reads one segment's pixel payload (the header having
// already been consumed) and writes decoded pixels into img within rect. It
// returns the number of trailing pixels left at zero because the bitstream
// ran out first.
func decodeSegment(r *bitReader, img *Image, p *Profile, rect Rect) int {
	st := newStatsTable(p)
	nMissing := 0

	v0, ok0 := r.readInt(p.BitDepth)
	v1, ok1 := r.readInt(p.BitDepth)
	img.set(rect.XStart, rect.YStart, int16(v0))
	img.set(rect.XStart+1, rect.YStart, int16(v1))
	if !ok0 {
		nMissing++
	}
	if !ok1 {
		nMissing++
	}

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

			k := golombK(s.count, s.magSum&msumMask)
			v := decodeValue(r, k)
			residual := unmapValue(v)

			st.update(ctx, residual, p.MaxN)

			if invert {
				residual = -residual
			}
			value := est + residual
			if value < 0 {
				value += p.PRange
			} else if value > p.PMax {
				value -= p.PRange
			}

			if !r.outOfBits {
				img.set(x, y, int16(value))
			} else {
				nMissing++
			}
		}
	}
	return nMissing
}
