package adm

import(
	"github.com/abworrall/adm/pkg/emath"
)

// sawtooth returns a w x h plane with plenty of detail at every level.
func sawtooth(w, h int) emath.Plane {
	p := emath.NewPlane(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			p.Set(x, y, float32((x*37 + y*11) % 256))
		}
	}
	return p
}

// ramp is a smooth gradient, x*8+y*4, with no wraparound for w,h <= 16.
func ramp(w, h int) emath.Plane {
	p := emath.NewPlane(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			p.Set(x, y, float32(x*8 + y*4))
		}
	}
	return p
}

func constant(w, h int, v float32) emath.Plane {
	p := emath.NewPlane(w, h)
	p.Fill(v)
	return p
}

// gaussianBlur applies a separable 5-tap [1 4 6 4 1]/16 blur, clamping at
// the edges.
func gaussianBlur(src emath.Plane) emath.Plane {
	k := [5]float32{1.0/16, 4.0/16, 6.0/16, 4.0/16, 1.0/16}
	w, h := src.Dx(), src.Dy()
	clamp := func(i, n int) int {
		if i < 0 { return 0 }
		if i >= n { return n-1 }
		return i
	}

	tmp := emath.NewPlane(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			var sum float32
			for i:=0; i<5; i++ {
				sum += k[i] * src.Get(clamp(x+i-2, w), y)
			}
			tmp.Set(x, y, sum)
		}
	}

	dst := emath.NewPlane(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			var sum float32
			for i:=0; i<5; i++ {
				sum += k[i] * tmp.Get(x, clamp(y+i-2, h))
			}
			dst.Set(x, y, sum)
		}
	}
	return dst
}

// newBands carves a quartet of w x h planes, as the arena would.
func newBands(w, h int) Bands {
	return Bands{A: emath.NewPlane(w, h), H: emath.NewPlane(w, h), V: emath.NewPlane(w, h), D: emath.NewPlane(w, h)}
}

func fillBands(b Bands, h, v, d float32) {
	b.H.Fill(h)
	b.V.Fill(v)
	b.D.Fill(d)
}
