package emath

import(
	"errors"
	"fmt"
)

var ErrArenaTooSmall = errors.New("scratch arena too small")

// An Arena is one flat buffer carved into `n` equal plane-sized regions,
// plus two row-scratch vectors. It is sized once for a geometry and then
// reused; nothing in it survives from one use to the next.
type Arena struct {
	regionW   int
	regionH   int
	stride    int
	regionLen int
	regions   []float32
	tmpLo     []float32
	tmpHi     []float32
}

// NewArena allocates `n` regions of w x h samples (aligned stride) and two
// row vectors of `rowLen` samples (aligned).
func NewArena(n, w, h, rowLen int) *Arena {
	stride := AlignedStride(w)
	rowStride := AlignedStride(rowLen)
	a, _ := NewArenaFromBuffers(
		make([]float32, n*stride*h),
		make([]float32, rowStride),
		make([]float32, rowStride),
		n, w, h, rowLen)
	return a
}

// NewArenaFromBuffers builds an arena over caller-supplied storage,
// checking that it can hold `n` w x h regions and two rows of `rowLen`.
func NewArenaFromBuffers(buf, tmpLo, tmpHi []float32, n, w, h, rowLen int) (*Arena, error) {
	if n <= 0 || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %d regions of %dx%d", ErrBadPlane, n, w, h)
	}
	stride := AlignedStride(w)
	regionLen := stride * h

	if len(buf) < n*regionLen {
		return nil, fmt.Errorf("%w: %d samples, need %d regions x %d", ErrArenaTooSmall, len(buf), n, regionLen)
	} else if len(tmpLo) < rowLen || len(tmpHi) < rowLen {
		return nil, fmt.Errorf("%w: row scratch %d/%d samples, need %d", ErrArenaTooSmall, len(tmpLo), len(tmpHi), rowLen)
	}

	return &Arena{
		regionW:   w,
		regionH:   h,
		stride:    stride,
		regionLen: regionLen,
		regions:   buf[:n*regionLen],
		tmpLo:     tmpLo,
		tmpHi:     tmpHi,
	}, nil
}

func (a *Arena)NumRegions() int   { return len(a.regions) / a.regionLen }
func (a *Arena)Stride() int       { return a.stride }
func (a *Arena)RowLo() []float32  { return a.tmpLo }
func (a *Arena)RowHi() []float32  { return a.tmpHi }

// Fits reports whether regions of w x h, and rows of rowLen, fit.
func (a *Arena)Fits(w, h, rowLen int) error {
	if w > a.regionW || h > a.regionH {
		return fmt.Errorf("%w: regions are %dx%d, need %dx%d", ErrArenaTooSmall, a.regionW, a.regionH, w, h)
	} else if rowLen > len(a.tmpLo) || rowLen > len(a.tmpHi) {
		return fmt.Errorf("%w: rows are %d samples, need %d", ErrArenaTooSmall, min(len(a.tmpLo), len(a.tmpHi)), rowLen)
	}
	return nil
}

// Region returns region i as a full-size plane. The slice is capped, so
// writes through it can't spill into the neighbouring region.
func (a *Arena)Region(i int) Plane {
	if i < 0 || i >= a.NumRegions() {
		panic(fmt.Sprintf("emath: arena region %d out of range [0,%d)", i, a.NumRegions()))
	}
	start := i * a.regionLen
	return Plane{
		width:  a.regionW,
		height: a.regionH,
		stride: a.stride,
		values: a.regions[start : start+a.regionLen : start+a.regionLen],
	}
}
