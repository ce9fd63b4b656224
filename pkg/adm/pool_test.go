package adm

import(
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBorders(t *testing.T) {
	tests := []struct{
		w, h                     int
		left, top, right, bottom int
	}{
		{1, 1, 0, 0, 1, 1},
		{10, 10, 0, 0, 10, 10},
		{20, 16, 1, 1, 19, 15},
		{960, 540, 95, 53, 865, 487},
	}
	for _, test := range tests {
		l, tp, r, b := borders(test.w, test.h, BorderFactor)
		assert.Equal(t, [4]int{test.left, test.top, test.right, test.bottom}, [4]int{l, tp, r, b}, "%dx%d", test.w, test.h)
	}
}

func TestSumCubeStabilizer(t *testing.T) {
	// A zero band pools to cbrt(count/32), never to zero
	p := constant(10, 10, 0)
	assert.InDelta(t, 1.462009, sumCube(p, BorderFactor), 1e-5)

	q := constant(20, 20, -1)
	assert.InDelta(t, 9.031660, sumCube(q, BorderFactor), 1e-4)
}

func TestSumCubeIgnoresBorder(t *testing.T) {
	p := constant(20, 20, 0)
	for i:=0; i<20; i++ {
		p.Set(0, i, 1000)
		p.Set(i, 19, 1000)
	}
	assert.Equal(t, sumCube(constant(20, 20, 0), BorderFactor), sumCube(p, BorderFactor))
}

func TestSumCubeBands(t *testing.T) {
	b := newBands(10, 10)
	fillBands(b, 0, 0, 0)
	b.A.Fill(50)
	assert.InDelta(t, 3*1.462009, sumCubeBands(b, BorderFactor), 1e-4)
}
