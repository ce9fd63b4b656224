package frames

// A few helper routines for golang's image libraries

import(
	"fmt"
	"image"
	"image/png"
	"os"
)

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}

// WriteLumaPNG saves the frame's luma as a 16 bit grayscale PNG.
func (f Frame)WriteLumaPNG(filename string) error {
	return WritePNG(f.ToGray16(), filename)
}
