package adm

import(
	"fmt"

	"github.com/abworrall/adm/pkg/emath"
)

// A Scorer is set up once for a stream geometry, and then scores any
// number of frame pairs of that size. It owns its scratch arena, so it
// must not be used from more than one goroutine at a time; give each
// concurrent caller its own Scorer.
type Scorer struct {
	Options

	width  int
	height int
	arena  *emath.Arena
}

func NewScorer(w, h int, opts Options) (*Scorer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", emath.ErrBadPlane, w, h)
	}
	if opts.Divider == nil {
		opts.Divider = emath.DefaultDivider()
	}
	return &Scorer{
		Options: opts,
		width:   w,
		height:  h,
		arena:   NewArena(w, h),
	}, nil
}

func (s *Scorer)Width() int  { return s.width }
func (s *Scorer)Height() int { return s.height }

func (s *Scorer)String() string {
	return fmt.Sprintf("adm.Scorer[%dx%d, %d scratch regions]", s.width, s.height, s.arena.NumRegions())
}

// Score computes ADM for one pair; both planes must match the geometry
// the Scorer was built for.
func (s *Scorer)Score(ref, dis emath.Plane) (Result, error) {
	if ref.Dx() != s.width || ref.Dy() != s.height {
		return Result{}, fmt.Errorf("%w: scorer is %dx%d, reference is %dx%d",
			ErrDimensionMismatch, s.width, s.height, ref.Dx(), ref.Dy())
	}
	return Compute(ref, dis, s.arena, s.Options)
}
