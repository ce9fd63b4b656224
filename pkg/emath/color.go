package emath

// 3x3 matrices, used for color transforms into luma

import(
	"fmt"
	"golang.org/x/image/math/f64"  // Will be "image/math/f64" at some point, hopefully make this file redundant
)

type Vec3 f64.Vec3
type Mat3 f64.Mat3

var(
	// Non-linear R'G'B' to Y'CbCr, full range. Only row 0 (luma) matters
	// to the metrics, but the whole transform is kept so planes can be
	// checked against other tools.
	RGBToYCbCr_BT601 = Mat3{
		 0.299,     0.587,     0.114,
		-0.168736, -0.331264,  0.5,
		 0.5,      -0.418688, -0.081312,
	}

	RGBToYCbCr_BT709 = Mat3{
		 0.2126,    0.7152,    0.0722,
		-0.114572, -0.385428,  0.5,
		 0.5,      -0.454153, -0.045847,
	}
)

// Luma is just row 0 of the transform.
func (m Mat3)Luma(v Vec3) float64 {
	return m[0]*v[0] + m[1]*v[1] + m[2]*v[2]
}

func (m Mat3)String() string {
	str := fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*0+0], m[3*0+1], m[3*0+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*1+0], m[3*1+1], m[3*1+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*2+0], m[3*2+1], m[3*2+2])
	return str
}

func (v *Vec3)FloorAt(min float64) {
	if v[0] < min { v[0] = min }
	if v[1] < min { v[1] = min }
	if v[2] < min { v[2] = min }
}

func (v *Vec3)CeilingAt(max float64) {
	if v[0] > max { v[0] = max }
	if v[1] > max { v[1] = max }
	if v[2] > max { v[2] = max }
}
