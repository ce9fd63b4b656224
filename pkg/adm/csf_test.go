package adm

import(
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDWTQuantStep(t *testing.T) {
	tests := []struct{
		lambda, theta int
		want          float64
	}{
		{0, 1, 57.53232},
		{0, 2, 169.75950},
		{1, 1, 31.26484},
		{1, 2, 69.93463},
	}
	for _, test := range tests {
		got := dwtQuantStep(dwt79YThreshold, test.lambda, test.theta)
		assert.InEpsilon(t, test.want, got, 1e-6, "Q(%d,%d)", test.lambda, test.theta)
	}
}

func TestCSFWeights(t *testing.T) {
	assert.InEpsilon(t, 0.017381534, CSFWeights(0)[0], 1e-5)
	assert.InEpsilon(t, 0.005890687, CSFWeights(0)[2], 1e-5)

	for s:=0; s<NumScales; s++ {
		w := CSFWeights(s)
		assert.Equal(t, w[0], w[1], "H and V share a weight at scale %d", s)
		assert.Less(t, w[2], w[0], "diagonal is less visible at scale %d", s)
		if s > 0 {
			assert.Greater(t, w[0], CSFWeights(s-1)[0], "coarser levels weigh more")
		}
	}
}

func TestCSFScalesBands(t *testing.T) {
	src, dst := newBands(3, 2), newBands(3, 2)
	fillBands(src, 1, -2, 4)
	src.A.Fill(99)
	csf(src, dst, 1)

	w := CSFWeights(1)
	assert.InDelta(t, w[0], dst.H.Get(2, 1), 1e-9)
	assert.InDelta(t, -2*w[1], dst.V.Get(0, 0), 1e-9)
	assert.InDelta(t, 4*w[2], dst.D.Get(1, 1), 1e-9)
	assert.Equal(t, float32(0), dst.A.Get(0, 0), "approximation is not weighted")
}
