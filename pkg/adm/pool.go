package adm

import(
	"github.com/abworrall/adm/pkg/emath"
)

// borders returns the interior of a w x h band once a margin of roughly
// borderFactor is dropped from each side.
func borders(w, h int, borderFactor float64) (left, top, right, bottom int) {
	left   = int(float64(w) * borderFactor - 0.5)
	top    = int(float64(h) * borderFactor - 0.5)
	right  = w - left
	bottom = h - top
	return
}

// sumCube is the cube-norm of the band interior, plus a stabilizing term
// of cbrt(interior pixels / 32) so flat or tiny bands don't pool to ~0.
func sumCube(p emath.Plane, borderFactor float64) float32 {
	left, top, right, bottom := borders(p.Dx(), p.Dy(), borderFactor)

	var sum float32
	for i:=top; i<bottom; i++ {
		row := p.Row(i)
		for j:=left; j<right; j++ {
			v := emath.Abs32(row[j])
			sum += v * v * v
		}
	}

	count := float32((bottom - top) * (right - left))
	return emath.Cbrt32(sum) + emath.Cbrt32(count / 32.0)
}

// sumCubeBands pools the three detail bands into one number.
func sumCubeBands(b Bands, borderFactor float64) float32 {
	var total float32
	for _, p := range b.details() {
		total += sumCube(p, borderFactor)
	}
	return total
}
