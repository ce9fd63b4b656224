// Package adm computes the ADM detail-loss score between a reference and a
// distorted luma plane.
//
// Both planes go through a four level db2 wavelet pyramid. At each level
// the distorted detail is split into what the reference explains
// (restored) and what it doesn't (impairment); both are weighted by a
// contrast sensitivity model, the impairment masks the restored detail,
// and cube-norm pooling turns the surviving detail into a numerator. The
// weighted reference detail, pooled the same way, is the denominator.
package adm

import(
	"errors"
	"fmt"

	"github.com/abworrall/adm/pkg/emath"
)

var ErrDimensionMismatch = errors.New("reference and distorted dimensions differ")

// A BandObserver sees the intermediate bands of each level as they're
// produced; it's for debugging and must not hold on to the planes.
type BandObserver func(scale int, name string, b Bands)

type Options struct {
	Divider  emath.Divider // nil means emath.DefaultDivider()
	Observer BandObserver
}

// NewArena allocates the scratch space Compute needs for w x h planes.
func NewArena(w, h int) *emath.Arena {
	return emath.NewArena(ArenaRegions, (w+1)/2, (h+1)/2, w)
}

// CheckArena returns an error if arena can't serve w x h planes.
func CheckArena(arena *emath.Arena, w, h int) error {
	if arena == nil {
		return fmt.Errorf("%w: no arena", emath.ErrArenaTooSmall)
	} else if arena.NumRegions() < ArenaRegions {
		return fmt.Errorf("%w: %d regions, need %d", emath.ErrArenaTooSmall, arena.NumRegions(), ArenaRegions)
	}
	return arena.Fits((w+1)/2, (h+1)/2, w)
}

// layout is the arena carved into named planes, at full half-res size.
type layout struct {
	refScale, disScale emath.Plane
	ref, dis           Bands
	restored, impaired Bands
	csfRef, csfRes     Bands
	csfImp             Bands
	thresh             emath.Plane
	detected           Bands
}

func newLayout(a *emath.Arena) layout {
	next := 0
	plane := func() emath.Plane {
		p := a.Region(next)
		next++
		return p
	}
	bands := func() Bands {
		return Bands{A: plane(), H: plane(), V: plane(), D: plane()}
	}

	l := layout{}
	l.refScale, l.disScale = plane(), plane()
	l.ref, l.dis = bands(), bands()
	l.restored, l.impaired = bands(), bands()
	l.csfRef, l.csfRes, l.csfImp = bands(), bands(), bands()
	l.thresh = plane()
	l.detected = bands()
	return l
}

// level is the input to one pass of the pyramid.
type level struct {
	scale    int
	w, h     int
	ref, dis emath.Plane
}

// Compute scores dis against ref using arena as scratch. It allocates
// nothing; the arena must have come from NewArena with at least these
// dimensions (or pass CheckArena).
func Compute(ref, dis emath.Plane, arena *emath.Arena, opts Options) (Result, error) {
	w, h := ref.Dx(), ref.Dy()
	if w <= 0 || h <= 0 {
		return Result{}, fmt.Errorf("%w: %dx%d", emath.ErrBadPlane, w, h)
	} else if dis.Dx() != w || dis.Dy() != h {
		return Result{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, w, h, dis.Dx(), dis.Dy())
	} else if err := CheckArena(arena, w, h); err != nil {
		return Result{}, err
	}

	div := opts.Divider
	if div == nil { div = emath.DefaultDivider() }

	res := Result{}
	l := newLayout(arena)
	lv := level{scale: 0, w: w, h: h, ref: ref, dis: dis}

	for lv.scale < NumScales {
		num, den := lv.run(l, arena.RowLo(), arena.RowHi(), div, opts.Observer)

		res.Scales[2*lv.scale+0] = float64(num)
		res.Scales[2*lv.scale+1] = float64(den)
		res.RawNum += float64(num)
		res.RawDen += float64(den)

		lv = lv.next(l)
	}

	res.Num, res.Den = applyNoiseFloor(res.RawNum, res.RawDen, w, h)
	if res.Den == 0.0 {
		res.Score = 1.0
	} else {
		res.Score = res.Num / res.Den
	}

	return res, nil
}

// run does one pyramid level, returning its pooled numerator and
// denominator.
func (lv level)run(l layout, tmpLo, tmpHi []float32, div emath.Divider, obs BandObserver) (float32, float32) {
	cw, ch := (lv.w+1)/2, (lv.h+1)/2

	ref, dis := l.ref.View(cw, ch), l.dis.View(cw, ch)
	DB2.dwt2(lv.ref, ref, tmpLo, tmpHi)
	DB2.dwt2(lv.dis, dis, tmpLo, tmpHi)

	restored, impaired := l.restored.View(cw, ch), l.impaired.View(cw, ch)
	decouple(ref, dis, restored, impaired, div)

	csfRef, csfRes, csfImp := l.csfRef.View(cw, ch), l.csfRes.View(cw, ch), l.csfImp.View(cw, ch)
	csf(ref, csfRef, lv.scale)
	csf(restored, csfRes, lv.scale)
	csf(impaired, csfImp, lv.scale)

	thresh, detected := l.thresh.View(cw, ch), l.detected.View(cw, ch)
	cmThreshold(csfImp, thresh)
	cm(csfRes, detected, thresh)

	if obs != nil {
		obs(lv.scale, "ref", ref)
		obs(lv.scale, "dis", dis)
		obs(lv.scale, "restored", restored)
		obs(lv.scale, "impairment", impaired)
		obs(lv.scale, "detected", detected)
	}

	num := sumCubeBands(detected, BorderFactor)
	den := sumCubeBands(csfRef, BorderFactor)
	return num, den
}

// next copies this level's approximation bands out into the next level's
// input planes, so the bands can be overwritten by the next pass.
func (lv level)next(l layout) level {
	cw, ch := (lv.w+1)/2, (lv.h+1)/2
	refScale, disScale := l.refScale.View(cw, ch), l.disScale.View(cw, ch)
	refScale.CopyFrom(l.ref.A.View(cw, ch))
	disScale.CopyFrom(l.dis.A.View(cw, ch))

	return level{scale: lv.scale + 1, w: cw, h: ch, ref: refScale, dis: disScale}
}

// applyNoiseFloor zeroes totals too small to mean anything at this image
// area; the floor is 1e-2 at 1920x1080.
func applyNoiseFloor(num, den float64, w, h int) (float64, float64) {
	limit := 1e-2 * float64(w*h) / (1920.0 * 1080.0)
	if num < limit { num = 0 }
	if den < limit { den = 0 }
	return num, den
}
