package session

import(
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/abworrall/adm/pkg/adm"
	"github.com/abworrall/adm/pkg/emath"
	"github.com/abworrall/adm/pkg/frames"
)

// bandDumper writes every detail band ADM produces for one frame pair out
// as a PNG, so odd scores can be looked at.
type bandDumper struct {
	dir      string
	frame    int
	written  int
	err      error
}

func newBandDumper(dir string, frame int) (*bandDumper, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("mkdir '%s': %v", dir, err)
	}
	return &bandDumper{dir: dir, frame: frame}, nil
}

func (bd *bandDumper)filename(scale int, name, orientation string) string {
	return filepath.Join(bd.dir, fmt.Sprintf("f%04d-s%d-%s-%s.png", bd.frame, scale, name, orientation))
}

// observe is an adm.BandObserver. The first error sticks, and stops any
// further writes.
func (bd *bandDumper)observe(scale int, name string, b adm.Bands) {
	if bd.err != nil {
		return
	}
	for _, o := range []struct{ name string; emath.Plane }{{"h", b.H}, {"v", b.V}, {"d", b.D}} {
		title := fmt.Sprintf("frame %d, scale %d, %s %s", bd.frame, scale, name, o.name)
		if err := o.ToImg(title, bd.filename(scale, name, o.name)); err != nil {
			bd.err = err
			return
		}
		bd.written++
	}
}

func (bd *bandDumper)dumpLuma(ref, dis frames.Frame) {
	if bd.err != nil {
		return
	}
	for _, f := range []struct{ name string; frames.Frame }{{"ref", ref}, {"dis", dis}} {
		filename := filepath.Join(bd.dir, fmt.Sprintf("f%04d-luma-%s.png", bd.frame, f.name))
		if err := f.WriteLumaPNG(filename); err != nil {
			bd.err = err
			return
		}
		bd.written++
	}
}

func (bd *bandDumper)finish(verbosity int) error {
	if bd.err != nil {
		return fmt.Errorf("dumping frame %d: %v", bd.frame, bd.err)
	}
	if verbosity > 0 {
		log.Printf("frame %d: wrote %d images into %s\n", bd.frame, bd.written, bd.dir)
	}
	return nil
}
