package adm

import(
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abworrall/adm/pkg/emath"
)

type decoupleCase struct {
	name             string
	ref, dis         [3]float32 // h, v, d
	wantRestored     [3]float32
}

func TestDecouple(t *testing.T) {
	tests := []decoupleCase{
		{"identical", [3]float32{3, -4, 2}, [3]float32{3, -4, 2}, [3]float32{3, -4, 2}},
		{"attenuated, same direction", [3]float32{4, 2, 8}, [3]float32{2, 1, 1}, [3]float32{2, 1, 1}},
		{"orthogonal", [3]float32{1, 0, 2}, [3]float32{0, 1, 1}, [3]float32{0, 0, 1}},
		{"opposite", [3]float32{1, 0, 1}, [3]float32{-1, 0, 3}, [3]float32{0, 0, 1}},
		{"zero reference", [3]float32{0, 0, 0}, [3]float32{1, 1, 1}, [3]float32{0, 0, 0}},
		{"both zero", [3]float32{0, 0, 0}, [3]float32{0, 0, 5}, [3]float32{0, 0, 5}},
		{"amplified, 45 degrees off", [3]float32{1, 0, 1}, [3]float32{2, 2, 2}, [3]float32{1, 0, 1}},
	}

	for _, div := range []emath.Divider{emath.ExactDiv, emath.FastDiv} {
		for _, test := range tests {
			ref, dis := newBands(2, 1), newBands(2, 1)
			r, a := newBands(2, 1), newBands(2, 1)
			fillBands(ref, test.ref[0], test.ref[1], test.ref[2])
			fillBands(dis, test.dis[0], test.dis[1], test.dis[2])

			decouple(ref, dis, r, a, div)

			got := [3]emath.Plane{r.H, r.V, r.D}
			imp := [3]emath.Plane{a.H, a.V, a.D}
			for o:=0; o<3; o++ {
				for j:=0; j<2; j++ {
					assert.InDelta(t, test.wantRestored[o], got[o].Get(j, 0), 1e-5, "%s: restored[%d]", test.name, o)
					assert.InDelta(t, test.dis[o] - test.wantRestored[o], imp[o].Get(j, 0), 1e-5, "%s: impairment[%d]", test.name, o)
				}
			}
		}
	}
}

func TestDecoupleIsExactOnIdentity(t *testing.T) {
	ref := newBands(3, 3)
	for i, p := range ref.details() {
		for y:=0; y<3; y++ {
			for x:=0; x<3; x++ {
				p.Set(x, y, float32((x*7 + y*3 + i*5) % 11) - 5)
			}
		}
	}
	r, a := newBands(3, 3), newBands(3, 3)
	decouple(ref, ref, r, a, emath.FastDiv)

	for o, p := range r.details() {
		for y:=0; y<3; y++ {
			assert.Equal(t, ref.details()[o].Row(y), p.Row(y))
			assert.Equal(t, []float32{0, 0, 0}, a.details()[o].Row(y))
		}
	}
}

func TestClampGain(t *testing.T) {
	assert.Equal(t, float32(0), clampGain(-3))
	assert.Equal(t, float32(0.25), clampGain(0.25))
	assert.Equal(t, float32(1), clampGain(1e30))
}
