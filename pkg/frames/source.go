package frames

import "io"

// A Source hands out frames in order, returning io.EOF once it's empty.
// YUVReader is one; SliceSource wraps frames already loaded from image
// files.
type Source interface {
	ReadFrame() (Frame, error)
}

type SliceSource struct {
	Frames []Frame
	next   int
}

func NewSliceSource(frames []Frame) *SliceSource {
	return &SliceSource{Frames: frames}
}

func (ss *SliceSource)ReadFrame() (Frame, error) {
	if ss.next >= len(ss.Frames) {
		return Frame{}, io.EOF
	}
	f := ss.Frames[ss.next]
	ss.next++
	return f, nil
}
