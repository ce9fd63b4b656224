package session

import(
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/abworrall/adm/pkg/adm"
	"github.com/abworrall/adm/pkg/ansnr"
	"github.com/abworrall/adm/pkg/frames"
)

// Metadata keys, one per score, attached to every scored frame.
const(
	KeyADM    = "lavfi.adm.score"
	KeyANSNR  = "lavfi.ansnr.score"
	KeyANPSNR = "lavfi.anpsnr.score"
)

// FrameResult is what was measured for one reference/distorted pair.
type FrameResult struct {
	Index   int
	Ref     string
	Dis     string

	ADM     *adm.Result   // nil unless the metric is enabled
	ANSNR   *ansnr.Result
}

// Metadata renders the scores the way they're attached to frames.
func (fr FrameResult)Metadata() map[string]string {
	m := map[string]string{}
	if fr.ADM != nil {
		m[KeyADM] = fmt.Sprintf("%0.2f", fr.ADM.Score)
	}
	if fr.ANSNR != nil {
		m[KeyANSNR] = fmt.Sprintf("%0.2f", fr.ANSNR.ANSNR)
		m[KeyANPSNR] = fmt.Sprintf("%0.2f", fr.ANSNR.ANPSNR)
	}
	return m
}

func (fr FrameResult)String() string {
	str := fmt.Sprintf("frame %d (%s vs %s):", fr.Index, fr.Ref, fr.Dis)
	if fr.ADM != nil   { str += fmt.Sprintf(" adm %.6f", fr.ADM.Score) }
	if fr.ANSNR != nil { str += " " + fr.ANSNR.String() }
	return str
}

// A Session scores a sequence of frame pairs. The scorers are built from
// the first pair's geometry; every later pair must match it.
type Session struct {
	Config

	width      int
	height     int
	bitDepth   int
	admScorer  *adm.Scorer
	snrScorer  *ansnr.Scorer

	admScores  *scoreTracker
	snrScores  *scoreTracker
	psnrScores *scoreTracker
}

func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &Session{
		Config:     cfg,
		admScores:  newScoreTracker("adm", 0, 2, 4),
		snrScores:  newScoreTracker("ansnr", -100, 100, 3),
		psnrScores: newScoreTracker("anpsnr", -100, 100, 3),
	}, nil
}

func (s *Session)String() string {
	return fmt.Sprintf("Session[%dx%d %dbit, metrics %v, %d frames]", s.width, s.height, s.bitDepth, s.Metrics, s.NumFrames())
}

func (s *Session)NumFrames() int {
	if s.HasMetric("adm") { return len(s.admScores.scores) }
	return len(s.snrScores.scores)
}

// configure sets up the scorers for the stream's geometry.
func (s *Session)configure(ref frames.Frame) error {
	s.width, s.height, s.bitDepth = ref.Dx(), ref.Dy(), ref.BitDepth

	if s.HasMetric("adm") {
		sc, err := adm.NewScorer(s.width, s.height, adm.Options{Divider: s.GetDivider()})
		if err != nil {
			return fmt.Errorf("adm setup: %v", err)
		}
		s.admScorer = sc
	}
	if s.HasMetric("ansnr") {
		sc, err := ansnr.NewScorer(s.width, s.height, s.bitDepth)
		if err != nil {
			return fmt.Errorf("ansnr setup: %v", err)
		}
		s.snrScorer = sc
	}

	if s.Verbosity > 0 {
		log.Printf("configured for %dx%d, %d bit: %v\n", s.width, s.height, s.bitDepth, s.Metrics)
		log.Printf("luma matrix (%s):\n%s", s.LumaMatrix, s.GetLumaMatrix())
	}
	return nil
}

// ScorePair scores one pair of frames.
func (s *Session)ScorePair(ref, dis frames.Frame) (FrameResult, error) {
	if err := frames.SameGeometry(ref, dis); err != nil {
		return FrameResult{}, err
	}
	if s.width == 0 {
		if err := s.configure(ref); err != nil {
			return FrameResult{}, err
		}
	} else if ref.Dx() != s.width || ref.Dy() != s.height || ref.BitDepth != s.bitDepth {
		return FrameResult{}, fmt.Errorf("%w: %s is %dx%d %dbit, stream is %dx%d %dbit", frames.ErrGeometry,
			ref.Filename(), ref.Dx(), ref.Dy(), ref.BitDepth, s.width, s.height, s.bitDepth)
	}

	fr := FrameResult{Index: ref.Index, Ref: ref.Filename(), Dis: dis.Filename()}

	if s.admScorer != nil {
		var dumper *bandDumper
		if s.ShouldDump(ref.Index) {
			d, err := newBandDumper(s.DumpDir, ref.Index)
			if err != nil {
				return fr, err
			}
			dumper = d
			dumper.dumpLuma(ref, dis)
			s.admScorer.Observer = dumper.observe
		}

		res, err := s.admScorer.Score(ref.Plane, dis.Plane)
		s.admScorer.Observer = nil
		if err != nil {
			return fr, fmt.Errorf("frame %d: %v", ref.Index, err)
		}
		if dumper != nil {
			if err := dumper.finish(s.Verbosity); err != nil {
				return fr, err
			}
		}

		fr.ADM = &res
		s.admScores.add(res.Score)
		if s.Verbosity > 1 {
			log.Printf("frame %d: %s\n", ref.Index, res)
		}
	}

	if s.snrScorer != nil {
		res, err := s.snrScorer.Score(ref.Plane, dis.Plane)
		if err != nil {
			return fr, fmt.Errorf("frame %d: %v", ref.Index, err)
		}
		fr.ANSNR = &res
		s.snrScores.add(res.ANSNR)
		s.psnrScores.add(res.ANPSNR)
	}

	if s.Verbosity > 0 {
		log.Printf("%s\n", fr)
	}

	return fr, nil
}

// Run scores pairs from the two sources until either runs dry; if one is
// longer, its extra frames are ignored. Each result is passed to `each`,
// if given.
func (s *Session)Run(refs, diss frames.Source, each func(FrameResult)) error {
	for n:=0; ; n++ {
		ref, refErr := refs.ReadFrame()
		dis, disErr := diss.ReadFrame()

		refEOF, disEOF := errors.Is(refErr, io.EOF), errors.Is(disErr, io.EOF)

		if refErr != nil && !refEOF {
			return fmt.Errorf("reading reference: %w", refErr)
		} else if disErr != nil && !disEOF {
			return fmt.Errorf("reading distorted: %w", disErr)
		} else if refEOF || disEOF {
			if refEOF != disEOF {
				log.Printf("inputs have different lengths; stopping after %d frames\n", n)
			}
			return nil
		}

		fr, err := s.ScorePair(ref, dis)
		if err != nil {
			return err
		}
		if each != nil {
			each(fr)
		}
	}
}

// Close logs the average score(s) over every frame seen, and returns the
// distribution summaries.
func (s *Session)Close() []Summary {
	summaries := []Summary{}

	if s.HasMetric("adm") {
		sum := s.admScores.summary()
		if sum.Count > 0 {
			log.Printf("ADM AVG: %.3f\n", sum.Mean)
		}
		summaries = append(summaries, sum)
	}
	if s.HasMetric("ansnr") {
		snr, psnr := s.snrScores.summary(), s.psnrScores.summary()
		if snr.Count > 0 {
			log.Printf("ANSNR AVG: %.3f\n", snr.Mean)
		}
		summaries = append(summaries, snr, psnr)
	}

	if s.Verbosity > 0 {
		for _, sum := range summaries {
			log.Printf("%s\n", sum)
		}
	}

	s.admScorer, s.snrScorer = nil, nil
	return summaries
}
