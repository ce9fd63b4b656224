package adm

import(
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abworrall/adm/pkg/emath"
)

// The kernel sums to 1/3, so three bands of constant magnitude c give a
// threshold of c everywhere, edges included.
func TestCMThresholdOfConstant(t *testing.T) {
	imp := newBands(5, 4)
	fillBands(imp, 2, -2, 2)
	thresh := emath.NewPlane(5, 4)
	thresh.Fill(123)
	cmThreshold(imp, thresh)

	for y:=0; y<4; y++ {
		for x:=0; x<5; x++ {
			assert.InDelta(t, 2.0, thresh.Get(x, y), 1e-5, "(%d,%d)", x, y)
		}
	}
}

func TestCM(t *testing.T) {
	src, dst := newBands(2, 2), newBands(2, 2)
	fillBands(src, 3, -0.5, -5)
	thresh := emath.NewPlane(2, 2)
	thresh.Fill(1)
	cm(src, dst, thresh)

	assert.Equal(t, []float32{2, 2}, dst.H.Row(1))
	assert.Equal(t, []float32{0, 0}, dst.V.Row(1))
	assert.Equal(t, []float32{4, 4}, dst.D.Row(0))
}

func TestCMWithNoImpairmentKeepsMagnitudes(t *testing.T) {
	imp := newBands(4, 4)
	thresh := emath.NewPlane(4, 4)
	cmThreshold(imp, thresh)

	src, dst := newBands(4, 4), newBands(4, 4)
	fillBands(src, -1.5, 2.5, 0)
	cm(src, dst, thresh)

	assert.Equal(t, float32(1.5), dst.H.Get(3, 3))
	assert.Equal(t, float32(2.5), dst.V.Get(0, 2))
}
