package ansnr

import(
	"github.com/abworrall/adm/pkg/emath"
)

// A kernel is a square, odd-width 2-D filter, applied without decimation.
type kernel struct {
	width int
	taps  []float32
}

// apply filters src into dst (same dimensions), reading each sample as
// v*scale + rangeOffset and mirroring at the edges.
func (k kernel)apply(src, dst emath.Plane, scale float32) {
	w, h := src.Dx(), src.Dy()
	half := k.width / 2

	for i:=0; i<h; i++ {
		out := dst.Row(i)
		for j:=0; j<w; j++ {
			var accum float32
			for fi:=0; fi<k.width; fi++ {
				row := src.Row(emath.Mirror(i-half+fi, h))
				var inner float32
				for fj:=0; fj<k.width; fj++ {
					v := row[emath.Mirror(j-half+fj, w)] * scale + rangeOffset
					inner += k.taps[fi*k.width + fj] * v
				}
				accum += inner
			}
			out[j] = accum
		}
	}
}
