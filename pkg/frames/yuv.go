package frames

import(
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/abworrall/adm/pkg/emath"
)

// A PixelFormat describes a planar Y'CbCr layout: only the luma plane is
// used, but the chroma planes have to be stepped over.
type PixelFormat struct {
	Name       string
	BitDepth   int
	ChromaLogW int // log2 of the horizontal chroma subsampling
	ChromaLogH int
}

var pixelFormats = map[string]PixelFormat{
	"yuv420p":     {"yuv420p",      8, 1, 1},
	"yuv422p":     {"yuv422p",      8, 1, 0},
	"yuv444p":     {"yuv444p",      8, 0, 0},
	"yuv420p10le": {"yuv420p10le", 10, 1, 1},
	"yuv422p10le": {"yuv422p10le", 10, 1, 0},
	"yuv444p10le": {"yuv444p10le", 10, 0, 0},
}

func LookupPixelFormat(name string) (PixelFormat, error) {
	if pf, exists := pixelFormats[name]; exists {
		return pf, nil
	}
	names := []string{}
	for k := range pixelFormats {
		names = append(names, k)
	}
	sort.Strings(names)
	return PixelFormat{}, fmt.Errorf("%w: pixel format '%s' (want one of %s)", ErrUnknownFormat, name, strings.Join(names, ", "))
}

func (pf PixelFormat)BytesPerSample() int {
	if pf.BitDepth > 8 { return 2 }
	return 1
}

func (pf PixelFormat)LumaBytes(w, h int) int {
	return w * h * pf.BytesPerSample()
}

// FrameBytes is the size of one whole frame, chroma included.
func (pf PixelFormat)FrameBytes(w, h int) int {
	cw := (w + (1<<pf.ChromaLogW) - 1) >> pf.ChromaLogW
	ch := (h + (1<<pf.ChromaLogH) - 1) >> pf.ChromaLogH
	return pf.LumaBytes(w, h) + 2 * cw * ch * pf.BytesPerSample()
}

// A YUVReader pulls luma planes out of a stream of raw planar frames.
type YUVReader struct {
	Filename     string
	Width        int
	Height       int
	PixelFormat

	r            io.Reader
	closers      []io.Closer
	buf          []byte
	index        int
}

// OpenYUV opens a raw .yuv file; if the name ends in .zst it's
// decompressed on the fly.
func OpenYUV(filename string, w, h int, pixfmt string) (*YUVReader, error) {
	pf, err := LookupPixelFormat(pixfmt)
	if err != nil {
		return nil, err
	} else if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: '%s' given as %dx%d", emath.ErrBadPlane, filename, w, h)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r yuv '%s': %v", filename, err)
	}

	yr := NewYUVReader(bufio.NewReader(file), w, h, pf)
	yr.Filename = filename
	yr.closers = append(yr.closers, file)

	if strings.ToLower(filepath.Ext(filename)) == ".zst" {
		dec, err := zstd.NewReader(yr.r)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("zstd '%s': %v", filename, err)
		}
		yr.r = dec
		yr.closers = append(yr.closers, zstdCloser{dec})
	}

	return yr, nil
}

// NewYUVReader reads frames of w x h from r.
func NewYUVReader(r io.Reader, w, h int, pf PixelFormat) *YUVReader {
	return &YUVReader{
		Width:       w,
		Height:      h,
		PixelFormat: pf,
		r:           r,
		buf:         make([]byte, pf.FrameBytes(w, h)),
	}
}

func (yr *YUVReader)String() string {
	return fmt.Sprintf("%s[%dx%d %s, %d frames read]", filepath.Base(yr.Filename), yr.Width, yr.Height, yr.Name, yr.index)
}

// ReadFrame returns the next frame's luma. At a clean end of stream it
// returns io.EOF; a truncated last frame is an error.
func (yr *YUVReader)ReadFrame() (Frame, error) {
	if _, err := io.ReadFull(yr.r, yr.buf); err == io.EOF {
		return Frame{}, io.EOF
	} else if errors.Is(err, io.ErrUnexpectedEOF) {
		return Frame{}, fmt.Errorf("'%s' frame %d: truncated: %w", yr.Filename, yr.index, err)
	} else if err != nil {
		return Frame{}, fmt.Errorf("'%s' frame %d: %v", yr.Filename, yr.index, err)
	}

	f := Frame{
		LoadFilename: yr.Filename,
		Index:        yr.index,
		BitDepth:     yr.BitDepth,
		Plane:        emath.NewPlane(yr.Width, yr.Height),
	}
	yr.index++

	for y:=0; y<yr.Height; y++ {
		row := f.Row(y)
		if yr.BitDepth > 8 {
			src := yr.buf[2*y*yr.Width:]
			for x := range row {
				row[x] = float32(uint16(src[2*x]) | uint16(src[2*x+1])<<8)
			}
		} else {
			src := yr.buf[y*yr.Width:]
			for x := range row {
				row[x] = float32(src[x])
			}
		}
	}

	return f, nil
}

func (yr *YUVReader)Close() error {
	var first error
	for i:=len(yr.closers)-1; i>=0; i-- {
		if err := yr.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	yr.closers = nil
	return first
}

// zstd.Decoder.Close doesn't return an error.
type zstdCloser struct{ *zstd.Decoder }

func (z zstdCloser)Close() error {
	z.Decoder.Close()
	return nil
}
