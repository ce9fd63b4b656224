package adm

import(
	"github.com/abworrall/adm/pkg/emath"
)

// Bands is one level of the decomposition: the approximation, and the
// horizontal, vertical and diagonal detail. All four share dimensions and
// stride.
type Bands struct {
	A, H, V, D emath.Plane
}

// View shrinks all four bands to w x h.
func (b Bands)View(w, h int) Bands {
	return Bands{A: b.A.View(w, h), H: b.H.View(w, h), V: b.V.View(w, h), D: b.D.View(w, h)}
}

func (b Bands)Dx() int { return b.A.Dx() }
func (b Bands)Dy() int { return b.A.Dy() }

// details returns the detail bands in the order H, V, D.
func (b Bands)details() [3]emath.Plane { return [3]emath.Plane{b.H, b.V, b.D} }

// dwt2 runs one level of the forward transform over src, writing
// ceil(w/2) x ceil(h/2) bands into dst (which must already be that size).
// tmpLo and tmpHi need room for one full-width row.
func (f FilterPair)dwt2(src emath.Plane, dst Bands, tmpLo, tmpHi []float32) {
	w := src.Dx()
	tmpLo, tmpHi = tmpLo[:w], tmpHi[:w]

	for i:=0; i<dst.Dy(); i++ {
		f.analyzeColumns(src, i, tmpLo, tmpHi)

		// low-low -> approximation, low-high -> vertical detail
		f.analyzeRow(tmpLo, dst.A.Row(i), dst.V.Row(i))

		// high-low -> horizontal detail, high-high -> diagonal
		f.analyzeRow(tmpHi, dst.H.Row(i), dst.D.Row(i))
	}
}
