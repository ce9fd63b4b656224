package session

import(
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTrackerSummary(t *testing.T) {
	st := newScoreTracker("adm", 0, 2, 4)
	for i:=1; i<=100; i++ {
		st.add(float64(i) / 100.0)
	}
	s := st.summary()

	assert.Equal(t, 100, s.Count)
	assert.InDelta(t, 0.505, s.Mean, 1e-12)
	assert.InDelta(t, 0.2901, s.StdDev, 1e-4)
	assert.Equal(t, 0.01, s.Min)
	assert.Equal(t, 1.0, s.Max)
	assert.InDelta(t, 0.50, s.P50, 0.002)
	assert.InDelta(t, 0.95, s.P95, 0.002)
	assert.Contains(t, s.String(), "100 frames")
}

func TestScoreTrackerClampsOutliers(t *testing.T) {
	st := newScoreTracker("ansnr", -100, 100, 3)
	st.add(250)
	st.add(-300)
	st.add(10)
	s := st.summary()

	// The quantiles clamp, the range doesn't
	assert.Equal(t, 250.0, s.Max)
	assert.Equal(t, -300.0, s.Min)
	assert.InDelta(t, 10, s.P50, 0.2)
}

func TestScoreTrackerSingleFrame(t *testing.T) {
	st := newScoreTracker("adm", 0, 2, 4)
	st.add(0.75)
	s := st.summary()
	assert.Equal(t, 0.0, s.StdDev)
	assert.InDelta(t, 0.75, s.P95, 0.001)
}
