package adm

import(
	"github.com/abworrall/adm/pkg/emath"
)

// A FilterPair is a low/high analysis pair applied with 2x decimation.
// Output sample i reads input taps 2*i-1 .. 2*i+2, mirrored at the edges.
type FilterPair struct {
	Lo [4]float32
	Hi [4]float32
}

var DB2 = FilterPair{Lo: db2Lo, Hi: db2Hi}

// analyzeRow filters and decimates src (all of it), writing (len(src)+1)/2
// samples into each of lo and hi.
func (f FilterPair)analyzeRow(src, lo, hi []float32) {
	n := len(src)
	for j:=0; j<(n+1)/2; j++ {
		var sumLo, sumHi float32
		for k:=0; k<len(f.Lo); k++ {
			v := src[emath.Mirror(2*j-1+k, n)]
			sumLo += f.Lo[k] * v
			sumHi += f.Hi[k] * v
		}
		lo[j] = sumLo
		hi[j] = sumHi
	}
}

// analyzeColumns produces output row i of the vertical pass, for every
// column of src.
func (f FilterPair)analyzeColumns(src emath.Plane, i int, lo, hi []float32) {
	h := src.Dy()
	var rows [4][]float32
	for k := range rows {
		rows[k] = src.Row(emath.Mirror(2*i-1+k, h))
	}

	for j:=0; j<src.Dx(); j++ {
		var sumLo, sumHi float32
		for k:=0; k<len(f.Lo); k++ {
			v := rows[k][j]
			sumLo += f.Lo[k] * v
			sumHi += f.Hi[k] * v
		}
		lo[j] = sumLo
		hi[j] = sumHi
	}
}

// maskKernel is the 3x3 near-uniform average used for the masking
// threshold; it is applied without decimation.
var maskKernel = [3][3]float32{
	{1.0 / 30.0, 1.0 / 30.0, 1.0 / 30.0},
	{1.0 / 30.0, 1.0 / 15.0, 1.0 / 30.0},
	{1.0 / 30.0, 1.0 / 30.0, 1.0 / 30.0},
}

// absBlurAt returns the maskKernel-weighted sum of |p| around (j, i).
func absBlurAt(p emath.Plane, i, j int) float32 {
	w, h := p.Dx(), p.Dy()
	var sum float32
	for fi:=0; fi<3; fi++ {
		row := p.Row(emath.Mirror(i-1+fi, h))
		for fj:=0; fj<3; fj++ {
			sum += maskKernel[fi][fj] * emath.Abs32(row[emath.Mirror(j-1+fj, w)])
		}
	}
	return sum
}
