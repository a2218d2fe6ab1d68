package loco

// Profile bundles the constants and lookup tables that are pure functions of
// bit depth: the per-context statistics seed, the residual folding range, and
// the gradient-quantization tables used by the context engine.
//
// There are exactly two profiles, one per supported bit depth, and neither
// the set of profiles nor any profile's fields change after package
// initialization — unlike a plugin codec registry, there is nothing here a
// caller ever registers, so the lookup is a plain read-only map rather than a
// mutex-guarded one.
type Profile struct {
	HeaderCode int
	BitDepth   int

	MaxN    int // stats halve once a context's sample count reaches this
	PMax    int // maximum pixel value, 2^BitDepth - 1
	PRange  int // PMax + 1
	RMin    int // -PRange / 2
	RMax    int // PRange/2 - 1
	InitCC  int // initial per-context count
	InitCMS int // initial per-context magnitude sum

	g     *[]uint8 // 3-bit gradient quantizer, indexed by d&0x1FF or (d>>3)&0x3FF
	gfour *[]uint8 // 2-bit gradient quantizer, same indexing
}

var profiles map[int]*Profile

func init() {
	g8s := g8[:]
	gfour8s := gfour8[:]
	g12s := g12[:]
	gfour12s := gfour12[:]

	profiles = map[int]*Profile{
		headerCode8Bit: {
			HeaderCode: headerCode8Bit,
			BitDepth:   8,
			MaxN:       128,
			PMax:       255,
			PRange:     256,
			RMin:       -128,
			RMax:       127,
			InitCC:     2,
			InitCMS:    12,
			g:          &g8s,
			gfour:      &gfour8s,
		},
		headerCode12Bit: {
			HeaderCode: headerCode12Bit,
			BitDepth:   12,
			MaxN:       64,
			PMax:       4095,
			PRange:     4096,
			RMin:       -2048,
			RMax:       2047,
			InitCC:     1,
			InitCMS:    24,
			g:          &g12s,
			gfour:      &gfour12s,
		},
	}
}

// profileFor returns the Profile for a bit depth (8 or 12), and false if the
// bit depth is not supported.
func profileFor(bitDepth int) (*Profile, bool) {
	code := headerCode8Bit
	switch bitDepth {
	case 8:
		code = headerCode8Bit
	case 12:
		code = headerCode12Bit
	default:
		return nil, false
	}
	return profiles[code], true
}

// profileForHeaderCode returns the Profile for a decoded header_code value
// (0 or 1), and false if the code is not one of the two recognized values.
func profileForHeaderCode(headerCode int) (*Profile, bool) {
	p, ok := profiles[headerCode]
	return p, ok
}

// gToCtx quantizes a gradient into a 3-bit context bucket.
func (p *Profile) gToCtx(d int) int {
	if p.BitDepth == 8 {
		return int((*p.g)[d&0x1FF])
	}
	return int((*p.g)[(d>>3)&0x3FF])
}

// gfourToCtx quantizes a gradient into a 2-bit context bucket.
func (p *Profile) gfourToCtx(d int) int {
	if p.BitDepth == 8 {
		return int((*p.gfour)[d&0x1FF])
	}
	return int((*p.gfour)[(d>>3)&0x3FF])
}
