package adm

import(
	"github.com/abworrall/adm/pkg/emath"
)

// cmThreshold fills thresh with the local masking level: the 3x3
// weighted average of |band|, summed over the three detail bands of src.
func cmThreshold(src Bands, thresh emath.Plane) {
	bands := src.details()
	for i:=0; i<src.Dy(); i++ {
		row := thresh.Row(i)
		for j := range row {
			row[j] = 0
		}
		for theta:=0; theta<3; theta++ {
			for j := range row {
				row[j] += absBlurAt(bands[theta], i, j)
			}
		}
	}
}

// cm writes max(0, |x| - threshold) for each detail band of src into dst.
func cm(src, dst Bands, thresh emath.Plane) {
	srcs := src.details()
	dsts := dst.details()
	for i:=0; i<src.Dy(); i++ {
		thr := thresh.Row(i)
		for theta:=0; theta<3; theta++ {
			s, d := srcs[theta].Row(i), dsts[theta].Row(i)
			for j := range s {
				x := emath.Abs32(s[j]) - thr[j]
				if x < 0 { x = 0 }
				d[j] = x
			}
		}
	}
}
