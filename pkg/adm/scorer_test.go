package adm

import(
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/adm/pkg/emath"
)

func TestScorerReuse(t *testing.T) {
	s, err := NewScorer(20, 12, Options{Divider: emath.ExactDiv})
	require.NoError(t, err)
	assert.Equal(t, 20, s.Width())
	assert.Equal(t, 12, s.Height())

	ref := sawtooth(20, 12)
	blurred := gaussianBlur(ref)

	a, err := s.Score(ref, blurred)
	require.NoError(t, err)
	same, err := s.Score(ref, ref)
	require.NoError(t, err)
	again, err := s.Score(ref, blurred)
	require.NoError(t, err)

	assert.Equal(t, 1.0, same.Score)
	assert.Equal(t, a, again)

	want, err := Compute(ref, blurred, NewArena(20, 12), Options{Divider: emath.ExactDiv})
	require.NoError(t, err)
	assert.Equal(t, want, a)
}

func TestScorerErrors(t *testing.T) {
	_, err := NewScorer(0, 10, Options{})
	assert.ErrorIs(t, err, emath.ErrBadPlane)

	s, err := NewScorer(8, 8, Options{})
	require.NoError(t, err)
	assert.NotNil(t, s.Divider)

	_, err = s.Score(sawtooth(4, 4), sawtooth(4, 4))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestResultScaleScore(t *testing.T) {
	r := Result{Scales: [2*NumScales]float64{1, 2, 0, 0, 3, 3, 0, 5}}
	assert.Equal(t, 0.5, r.ScaleScore(0))
	assert.Equal(t, 1.0, r.ScaleScore(1))
	assert.Equal(t, 1.0, r.ScaleScore(2))
	assert.Equal(t, 0.0, r.ScaleScore(3))
	assert.Contains(t, r.String(), "[s3 0.0000/5.0000]")
}
