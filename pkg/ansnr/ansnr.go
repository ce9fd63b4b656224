// Package ansnr computes the anti-noise SNR of a distorted luma plane: the
// reference is lightly smoothed, the distorted plane smoothed harder, and
// the difference between them taken as noise. Small, high frequency
// differences are mostly filtered out, so the score tracks visible noise
// more than raw PSNR does.
package ansnr

import(
	"errors"
	"fmt"
	"math"

	"github.com/abworrall/adm/pkg/emath"
)

var ErrDimensionMismatch = errors.New("reference and distorted dimensions differ")

const(
	rangeOffset = -128.0
	noiseEpsilon = 1e-10
)

var(
	refKernel = kernel{width: 3, taps: []float32{
		1.0 / 16.0, 2.0 / 16.0, 1.0 / 16.0,
		2.0 / 16.0, 4.0 / 16.0, 2.0 / 16.0,
		1.0 / 16.0, 2.0 / 16.0, 1.0 / 16.0,
	}}

	disKernel = kernel{width: 5, taps: []float32{
		2.0 / 571.0,  7.0 / 571.0,  12.0 / 571.0,  7.0 / 571.0, 2.0 / 571.0,
		7.0 / 571.0,  31.0 / 571.0, 52.0 / 571.0,  31.0 / 571.0, 7.0 / 571.0,
		12.0 / 571.0, 52.0 / 571.0, 127.0 / 571.0, 52.0 / 571.0, 12.0 / 571.0,
		7.0 / 571.0,  31.0 / 571.0, 52.0 / 571.0,  31.0 / 571.0, 7.0 / 571.0,
		2.0 / 571.0,  7.0 / 571.0,  12.0 / 571.0,  7.0 / 571.0, 2.0 / 571.0,
	}}
)

// A Range says how to read samples of a given bit depth. Ten bit samples
// are brought down to the eight bit scale, so both depths share the same
// offset and (near enough) the same peak.
type Range struct {
	BitDepth int
	Scale    float32 // applied to each sample before the offset
	Peak     float64
	MaxPSNR  float64
}

func RangeForBitDepth(bits int) (Range, error) {
	switch bits {
	case 8:  return Range{BitDepth: 8, Scale: 1.0, Peak: 255.0, MaxPSNR: 60.0}, nil
	case 10: return Range{BitDepth: 10, Scale: 0.25, Peak: 255.75, MaxPSNR: 72.0}, nil
	default:
		return Range{}, fmt.Errorf("no ansnr range for %d bit samples", bits)
	}
}

type Result struct {
	ANSNR  float64
	ANPSNR float64
	Signal float64
	Noise  float64
}

func (r Result)String() string {
	return fmt.Sprintf("ansnr %.3f, anpsnr %.3f", r.ANSNR, r.ANPSNR)
}

// NewArena allocates the two filtered planes Compute needs.
func NewArena(w, h int) *emath.Arena {
	return emath.NewArena(2, w, h, 0)
}

// Compute scores dis against ref, using arena for the filtered planes.
func Compute(ref, dis emath.Plane, rng Range, arena *emath.Arena) (Result, error) {
	w, h := ref.Dx(), ref.Dy()
	if w <= 0 || h <= 0 {
		return Result{}, fmt.Errorf("%w: %dx%d", emath.ErrBadPlane, w, h)
	} else if dis.Dx() != w || dis.Dy() != h {
		return Result{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, w, h, dis.Dx(), dis.Dy())
	} else if arena == nil || arena.NumRegions() < 2 {
		return Result{}, fmt.Errorf("%w: need 2 regions", emath.ErrArenaTooSmall)
	} else if err := arena.Fits(w, h, 0); err != nil {
		return Result{}, err
	}

	refFiltered := arena.Region(0).View(w, h)
	disFiltered := arena.Region(1).View(w, h)

	refKernel.apply(ref, refFiltered, rng.Scale)
	disKernel.apply(dis, disFiltered, rng.Scale)

	signal, noise := mse(refFiltered, disFiltered)

	res := Result{Signal: float64(signal), Noise: float64(noise)}
	if noise == 0 {
		res.ANSNR = rng.MaxPSNR
	} else {
		res.ANSNR = 10.0 * math.Log10(res.Signal / res.Noise)
	}
	res.ANPSNR = math.Min(10.0 * math.Log10(rng.Peak * rng.Peak * float64(w*h) / math.Max(res.Noise, noiseEpsilon)), rng.MaxPSNR)

	return res, nil
}

// mse returns the sum of squared reference samples, and the sum of squared
// differences.
func mse(ref, dis emath.Plane) (signal, noise float32) {
	for i:=0; i<ref.Dy(); i++ {
		r, d := ref.Row(i), dis.Row(i)
		for j := range r {
			signal += r[j] * r[j]
			noise += (r[j] - d[j]) * (r[j] - d[j])
		}
	}
	return
}
