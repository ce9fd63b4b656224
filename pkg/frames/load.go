package frames

import(
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/abworrall/adm/pkg/emath"
)

var(
	ErrUnknownFormat = errors.New("unknown input format")
	ErrGeometry      = errors.New("input width and height must be the same")
)

// IsImageFile reports whether LoadImage knows the file's extension.
func IsImageFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp", ".webp", ".hdr":
		return true
	}
	return false
}

// LoadFilesAndDirs loads every image file named, recursing into
// directories (in name order). Files it doesn't recognize are skipped.
func LoadFilesAndDirs(luma emath.Mat3, args ...string) ([]Frame, error) {
	frames := []Frame{}
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return nil, fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			contents, err := os.ReadDir(arg)
			if err != nil {
				return nil, fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				more, err := LoadFilesAndDirs(luma, filepath.Join(arg, content.Name()))
				if err != nil {
					return nil, fmt.Errorf("load %s: %v", arg, err)
				}
				frames = append(frames, more...)
			}

		case IsImageFile(arg):
			f, err := LoadImage(arg, luma)
			if err != nil {
				return nil, fmt.Errorf("loadfile %s: %v", arg, err)
			}
			frames = append(frames, f)
		}
	}

	for i := range frames {
		frames[i].Index = i
	}
	return frames, nil
}

// LoadImage decodes an image file and converts it to an 8 bit luma
// plane, using `luma` to weigh the (gamma encoded) RGB channels.
func LoadImage(filename string, luma emath.Mat3) (Frame, error) {
	f := Frame{LoadFilename: filename, BitDepth: 8}

	var decode func(io.Reader) (image.Image, error)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		decode = func(r io.Reader) (image.Image, error) {
			img, _, err := image.Decode(r)
			return img, err
		}
	case ".tif", ".tiff": decode = tiff.Decode
	case ".bmp":          decode = bmp.Decode
	case ".webp":         decode = webp.Decode
	case ".hdr":          decode = rgbe.Decode
	default:
		return f, fmt.Errorf("%w: '%s'", ErrUnknownFormat, filename)
	}

	if reader, err := os.Open(filename); err != nil {
		return f, fmt.Errorf("open+r img '%s': %v", filename, err)
	} else {
		defer reader.Close()
		img, err := decode(reader)
		if err != nil {
			return f, fmt.Errorf("decoding '%s': %v", filename, err)
		}
		f.Plane = LumaPlane(img, luma)
	}

	f.Provenance = loadProvenance(filename)

	return f, nil
}

// loadProvenance pulls the camera and timestamp out of the EXIF, if there
// is any. Most inputs won't have it, so failures are just ignored.
func loadProvenance(filename string) string {
	reader, err := os.Open(filename)
	if err != nil {
		return ""
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return ""
	}

	parts := []string{}
	for _, field := range []exif.FieldName{exif.Make, exif.Model} {
		if tag, err := ex.Get(field); err == nil {
			if val, err := tag.StringVal(); err == nil && val != "" {
				parts = append(parts, strings.TrimSpace(val))
			}
		}
	}
	if tm, err := ex.DateTime(); err == nil {
		parts = append(parts, tm.Format("2006-01-02 15:04:05"))
	}

	return strings.Join(parts, ", ")
}
