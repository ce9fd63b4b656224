package adm

import(
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abworrall/adm/pkg/emath"
)

func TestDWTOfConstantPlane(t *testing.T) {
	src := constant(7, 5, 10)
	dst := newBands(4, 3)
	row := make([]float32, emath.AlignedStride(7))
	DB2.dwt2(src, dst, row, make([]float32, len(row)))

	for i:=0; i<3; i++ {
		for j:=0; j<4; j++ {
			assert.InDelta(t, 20.0, dst.A.Get(j, i), 1e-4, "A(%d,%d)", j, i)
			assert.InDelta(t, 0.0, dst.H.Get(j, i), 1e-4, "H(%d,%d)", j, i)
			assert.InDelta(t, 0.0, dst.V.Get(j, i), 1e-4, "V(%d,%d)", j, i)
			assert.InDelta(t, 0.0, dst.D.Get(j, i), 1e-4, "D(%d,%d)", j, i)
		}
	}
}

func TestDWTOrientation(t *testing.T) {
	// Vertical stripes vary along x, so they land in V and not in H
	src := emath.NewPlane(8, 8)
	for y:=0; y<8; y++ {
		for x:=0; x<8; x++ {
			src.Set(x, y, float32((x%2) * 100))
		}
	}
	dst := newBands(4, 4)
	DB2.dwt2(src, dst, make([]float32, 8), make([]float32, 8))

	hMin, hMax := dst.H.MinMax()
	dMin, dMax := dst.D.MinMax()
	_, vMax := dst.V.MinMax()
	assert.InDelta(t, 0.0, hMin, 1e-3)
	assert.InDelta(t, 0.0, hMax, 1e-3)
	assert.InDelta(t, 0.0, dMin, 1e-3)
	assert.InDelta(t, 0.0, dMax, 1e-3)
	assert.InDelta(t, 100.0, vMax, 0.1)
}

func TestBandsView(t *testing.T) {
	b := newBands(5, 5).View(2, 3)
	assert.Equal(t, 2, b.Dx())
	assert.Equal(t, 3, b.Dy())
	for _, p := range b.details() {
		assert.Equal(t, 2, p.Dx())
		assert.Equal(t, 3, p.Dy())
	}
}
