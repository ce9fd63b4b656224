package session

import(
	"fmt"
	"math"

	"github.com/codahale/hdrhistogram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Summary describes how one score was distributed over a sequence.
type Summary struct {
	Metric  string
	Count   int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	P50     float64
	P95     float64
}

func (s Summary)String() string {
	if s.Count == 0 {
		return fmt.Sprintf("%s: no frames", s.Metric)
	}
	return fmt.Sprintf("%s: %d frames, mean %.4f (sd %.4f), range [%.4f, %.4f], p50 %.4f, p95 %.4f",
		s.Metric, s.Count, s.Mean, s.StdDev, s.Min, s.Max, s.P50, s.P95)
}

// scoreTracker collects one metric's per-frame scores. The histogram holds
// fixed point values over [lo, hi]; anything outside is clamped for the
// quantiles, but the mean and range use the exact scores.
type scoreTracker struct {
	metric  string
	lo, hi  float64
	scale   float64
	scores  []float64
	hist    *hdrhistogram.Histogram
}

func newScoreTracker(metric string, lo, hi float64, places int) *scoreTracker {
	scale := math.Pow(10, float64(places))
	return &scoreTracker{
		metric: metric,
		lo:     lo,
		hi:     hi,
		scale:  scale,
		hist:   hdrhistogram.New(1, int64((hi-lo)*scale), 3),
	}
}

func (st *scoreTracker)add(v float64) {
	st.scores = append(st.scores, v)

	// Once clamped the value is always in range, so this can't fail
	clamped := math.Max(st.lo, math.Min(st.hi, v))
	st.hist.RecordValue(int64(math.Round((clamped - st.lo) * st.scale)))
}

func (st *scoreTracker)fromFixed(v int64) float64 {
	return float64(v) / st.scale + st.lo
}

func (st *scoreTracker)summary() Summary {
	s := Summary{Metric: st.metric, Count: len(st.scores)}
	if s.Count == 0 {
		return s
	}

	s.Mean, s.StdDev = stat.MeanStdDev(st.scores, nil)
	if s.Count == 1 { s.StdDev = 0 }
	s.Min = floats.Min(st.scores)
	s.Max = floats.Max(st.scores)
	s.P50 = st.fromFixed(st.hist.ValueAtQuantile(50))
	s.P95 = st.fromFixed(st.hist.ValueAtQuantile(95))

	return s
}
