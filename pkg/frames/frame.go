package frames

import(
	"fmt"
	"path/filepath"

	"github.com/abworrall/adm/pkg/emath"
)

// A Frame is one luma plane pulled out of an input, with enough about
// where it came from to report on it.
type Frame struct {
	LoadFilename  string
	Index         int      // Position within its stream, from zero
	BitDepth      int      // 8 or 10; samples are code values at this depth
	Provenance    string   // Camera and capture time, if the file had EXIF

	emath.Plane            // The luma samples
}

func (f Frame)String() string {
	str := fmt.Sprintf("%s#%d: %dbit %s", f.Filename(), f.Index, f.BitDepth, f.Plane)
	if f.Provenance != "" {
		str += fmt.Sprintf(" (%s)", f.Provenance)
	}
	return str
}

func (f Frame)Filename() string {
	return filepath.Base(f.LoadFilename)
}

// SameGeometry is an error if the two frames can't be compared.
func SameGeometry(ref, dis Frame) error {
	if ref.Dx() != dis.Dx() || ref.Dy() != dis.Dy() {
		return fmt.Errorf("%w: %s is %dx%d, %s is %dx%d", ErrGeometry,
			ref.Filename(), ref.Dx(), ref.Dy(), dis.Filename(), dis.Dx(), dis.Dy())
	} else if ref.BitDepth != dis.BitDepth {
		return fmt.Errorf("%w: %s is %d bit, %s is %d bit", ErrGeometry,
			ref.Filename(), ref.BitDepth, dis.Filename(), dis.BitDepth)
	}
	return nil
}
