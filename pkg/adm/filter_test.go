package adm

import(
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/adm/pkg/emath"
)

// Mirrored taps for a length 4 input are [1,0,1,2] for the first output
// and [1,2,3,3] for the second.
func TestAnalyzeRowMirrorsEdges(t *testing.T) {
	x := []float32{1, 2, 3, 4}
	lo, hi := make([]float32, 2), make([]float32, 2)
	DB2.analyzeRow(x, lo, hi)

	taps := [2][4]float32{
		{x[1], x[0], x[1], x[2]},
		{x[1], x[2], x[3], x[3]},
	}
	for j:=0; j<2; j++ {
		var wantLo, wantHi float32
		for k:=0; k<4; k++ {
			wantLo += db2Lo[k] * taps[j][k]
			wantHi += db2Hi[k] * taps[j][k]
		}
		assert.InDelta(t, wantLo, lo[j], 1e-6, "lo[%d]", j)
		assert.InDelta(t, wantHi, hi[j], 1e-6, "hi[%d]", j)
	}
}

func TestAnalyzeRowOddAndTiny(t *testing.T) {
	lo, hi := make([]float32, 3), make([]float32, 3)
	DB2.analyzeRow([]float32{5, 5, 5, 5, 5}, lo, hi)
	for j:=0; j<3; j++ {
		assert.InDelta(t, 5*1.41421356, lo[j], 1e-4)
		assert.InDelta(t, 0, hi[j], 1e-5)
	}

	// One sample: every tap mirrors back onto it
	DB2.analyzeRow([]float32{2}, lo[:1], hi[:1])
	assert.InDelta(t, 2*1.41421356, lo[0], 1e-5)
}

func TestAnalyzeColumnsMatchesRows(t *testing.T) {
	col := []float32{3, -1, 4, 1, -5, 9}
	p := emath.NewPlane(1, len(col))
	for y, v := range col {
		p.Set(0, y, v)
	}

	wantLo, wantHi := make([]float32, 3), make([]float32, 3)
	DB2.analyzeRow(col, wantLo, wantHi)

	lo, hi := make([]float32, 1), make([]float32, 1)
	for i:=0; i<3; i++ {
		DB2.analyzeColumns(p, i, lo, hi)
		assert.InDelta(t, wantLo[i], lo[0], 1e-6, "row %d", i)
		assert.InDelta(t, wantHi[i], hi[0], 1e-6, "row %d", i)
	}
}

func TestMaskKernelSumsToOneThird(t *testing.T) {
	var sum float32
	for _, row := range maskKernel {
		for _, v := range row {
			sum += v
		}
	}
	assert.InDelta(t, 1.0/3.0, sum, 1e-6)
}

func TestAbsBlurAt(t *testing.T) {
	p := emath.NewPlane(3, 3)
	p.Set(1, 1, -15)
	require.InDelta(t, 1.0, absBlurAt(p, 1, 1), 1e-6)
	assert.InDelta(t, 1.0, absBlurAt(p, 0, 1), 1e-6)

	// At the corner, (0,0) reflects to (1,1) in both directions, so the
	// centre value is seen through four taps.
	q := emath.NewPlane(3, 3)
	q.Set(1, 1, 30)
	assert.InDelta(t, 4.0, absBlurAt(q, 0, 0), 1e-5)
}
