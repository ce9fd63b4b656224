package ansnr

import(
	"fmt"

	"github.com/abworrall/adm/pkg/emath"
)

// A Scorer holds the scratch planes for one stream geometry. Not safe for
// concurrent use.
type Scorer struct {
	Range

	width  int
	height int
	arena  *emath.Arena
}

func NewScorer(w, h, bitDepth int) (*Scorer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", emath.ErrBadPlane, w, h)
	}
	rng, err := RangeForBitDepth(bitDepth)
	if err != nil {
		return nil, err
	}
	return &Scorer{Range: rng, width: w, height: h, arena: NewArena(w, h)}, nil
}

func (s *Scorer)Score(ref, dis emath.Plane) (Result, error) {
	if ref.Dx() != s.width || ref.Dy() != s.height {
		return Result{}, fmt.Errorf("%w: scorer is %dx%d, reference is %dx%d",
			ErrDimensionMismatch, s.width, s.height, ref.Dx(), ref.Dy())
	}
	return Compute(ref, dis, s.Range, s.arena)
}
