package frames

import(
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr"

	"github.com/abworrall/adm/pkg/emath"
)

// LumaPlane converts img to a plane of 8 bit luma code values (as float,
// so 16 bit sources keep their precision). Gray and Y'CbCr images are
// read directly; everything else goes through gamma encoded RGB and the
// `luma` matrix. HDR images are treated as linear light, clamped to [0,1]
// and sRGB encoded first.
func LumaPlane(img image.Image, luma emath.Mat3) emath.Plane {
	b := img.Bounds()
	p := emath.NewPlane(b.Dx(), b.Dy())

	switch src := img.(type) {

	case *image.Gray:
		for y:=0; y<b.Dy(); y++ {
			row := p.Row(y)
			for x := range row {
				row[x] = float32(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			}
		}

	case *image.Gray16:
		for y:=0; y<b.Dy(); y++ {
			row := p.Row(y)
			for x := range row {
				row[x] = float32(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y) / 257.0
			}
		}

	case *image.YCbCr:
		for y:=0; y<b.Dy(); y++ {
			row := p.Row(y)
			for x := range row {
				row[x] = float32(src.Y[src.YOffset(b.Min.X+x, b.Min.Y+y)])
			}
		}

	case hdr.Image:
		for y:=0; y<b.Dy(); y++ {
			row := p.Row(y)
			for x := range row {
				r, g, bl, _ := src.HDRAt(b.Min.X+x, b.Min.Y+y).HDRRGBA()
				row[x] = gammaLuma(colorful.LinearRgb(r, g, bl), luma)
			}
		}

	default:
		for y:=0; y<b.Dy(); y++ {
			row := p.Row(y)
			for x := range row {
				// Fully transparent pixels come back !ok, and count as black
				if c, ok := colorful.MakeColor(img.At(b.Min.X+x, b.Min.Y+y)); ok {
					row[x] = gammaLuma(c, luma)
				}
			}
		}
	}

	return p
}

// gammaLuma weighs gamma encoded RGB into an 8 bit luma code value.
// Out of gamut channels (from HDR sources) are clamped to [0,1] first.
func gammaLuma(c colorful.Color, luma emath.Mat3) float32 {
	v := emath.Vec3{c.R, c.G, c.B}
	v.FloorAt(0.0)
	v.CeilingAt(1.0)
	return float32(255.0 * luma.Luma(v))
}

// ToGray16 renders a luma plane back out as an image, for eyeballing what
// was extracted.
func (f Frame)ToGray16() *image.Gray16 {
	max := float32(255.0)
	if f.BitDepth == 10 { max = 1023.0 }

	img := image.NewGray16(image.Rect(0, 0, f.Dx(), f.Dy()))
	for y:=0; y<f.Dy(); y++ {
		for x, v := range f.Row(y) {
			v = v / max
			if v < 0 { v = 0 }
			if v > 1 { v = 1 }
			img.Pix[y*img.Stride + 2*x + 0] = uint8(uint16(v * 65535) >> 8)
			img.Pix[y*img.Stride + 2*x + 1] = uint8(uint16(v * 65535))
		}
	}
	return img
}
