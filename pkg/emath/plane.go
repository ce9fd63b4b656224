package emath

import(
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg" // Move to https://pkg.go.dev/golang.org/x/image/font#Drawer sometime
)

// MaxAlign is the byte alignment of every plane row.
const MaxAlign = 32

var ErrBadPlane = errors.New("bad plane geometry")

// A Plane is a grid of float32 samples, row-major, where each row
// occupies `stride` samples (stride >= width). It is a value type; copies
// share the same backing storage.
type Plane struct {
	width  int
	height int
	stride int
	values []float32
}

// AlignedStride returns the number of float32 samples in a row of `w`
// samples, rounded up so the row is a multiple of MaxAlign bytes.
func AlignedStride(w int) int {
	b := w * 4
	if r := b % MaxAlign; r != 0 {
		b += MaxAlign - r
	}
	return b / 4
}

func NewPlane(w, h int) Plane {
	stride := AlignedStride(w)
	return Plane{
		width:  w,
		height: h,
		stride: stride,
		values: make([]float32, stride*h),
	}
}

// NewPlaneFrom wraps caller-owned samples. The last row only needs
// `w` samples, not a full stride.
func NewPlaneFrom(values []float32, w, h, stride int) (Plane, error) {
	if w <= 0 || h <= 0 {
		return Plane{}, fmt.Errorf("%w: %dx%d", ErrBadPlane, w, h)
	} else if stride < w {
		return Plane{}, fmt.Errorf("%w: stride %d < width %d", ErrBadPlane, stride, w)
	} else if need := (h-1)*stride + w; len(values) < need {
		return Plane{}, fmt.Errorf("%w: %d samples, need %d", ErrBadPlane, len(values), need)
	}
	return Plane{width: w, height: h, stride: stride, values: values}, nil
}

func (p Plane)Dx() int                 { return p.width }
func (p Plane)Dy() int                 { return p.height }
func (p Plane)Stride() int             { return p.stride }
func (p Plane)Get(x, y int) float32    { return p.values[p.stride*y + x] }
func (p Plane)Set(x, y int, v float32) { p.values[p.stride*y + x] = v }
func (p Plane)IsEmpty() bool           { return p.width == 0 || p.height == 0 }

// Row returns the `width` samples of row y; writes go to the plane.
func (p Plane)Row(y int) []float32 {
	start := p.stride * y
	return p.values[start : start+p.width]
}

// View returns a w x h plane over the same storage and stride. It panics
// if the view doesn't fit, as slicing would.
func (p Plane)View(w, h int) Plane {
	if w > p.stride || (h > 0 && (h-1)*p.stride+w > len(p.values)) {
		panic(fmt.Sprintf("emath: view %dx%d does not fit plane %dx%d/%d", w, h, p.width, p.height, p.stride))
	}
	return Plane{width: w, height: h, stride: p.stride, values: p.values}
}

// CopyFrom copies src, row by row, into the top-left of p.
func (p Plane)CopyFrom(src Plane) {
	for y:=0; y<src.height; y++ {
		copy(p.values[p.stride*y:p.stride*y+src.width], src.Row(y))
	}
}

func (p Plane)Fill(v float32) {
	for y:=0; y<p.height; y++ {
		row := p.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// Clone returns a copy of p with its own aligned storage.
func (p Plane)Clone() Plane {
	c := NewPlane(p.width, p.height)
	c.CopyFrom(p)
	return c
}

func (p Plane)MinMax() (float32, float32) {
	min := float32(math.MaxFloat32)
	max := -1.0 * min
	for y:=0; y<p.height; y++ {
		for _, v := range p.Row(y) {
			if v > max { max = v }
			if v < min { min = v }
		}
	}
	return min, max
}

func (p Plane)String() string {
	min, max := p.MinMax()
	return fmt.Sprintf("plane[%dx%d/%d, vals{%f,%f}]", p.width, p.height, p.stride, min, max)
}

// ToImg saves a simple grayscale, based on the range of values in the
// plane, and gamma scaling the gray to look normal for human vision.
func (p Plane)ToImg(title, filename string) error {
	min, max := p.MinMax()
	span := float64(max - min)
	if span == 0 { span = 1 }

	img := image.NewRGBA64(image.Rectangle{Max:image.Point{p.width, p.height}})
	for x:=0; x<p.width; x++ {
		for y:=0; y<p.height; y++ {
			gray := GammaExpand_F64(float64(p.Get(x, y) - min) / span)
			img.Set(x, y, color.RGBA64{uint16(gray * 65535.0), uint16(gray * 65535.0), uint16(gray * 65535.0), 0xFFFF})
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1,0,0)
	dc.DrawString(title, 2, 12)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save '%s': %v", filename, err)
	}
	return nil
}
