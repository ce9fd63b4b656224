package main

// adm [flags] [config.yaml] REFERENCE DISTORTED
//
// REFERENCE and DISTORTED are each an image file, a directory of image
// files (taken in name order), or a raw planar .yuv stream (optionally
// .zst compressed), whose size and pixel format come from -size and
// -pixfmt. Per-frame scores are printed as metadata lines on stdout.

import(
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/abworrall/adm/pkg/frames"
	"github.com/abworrall/adm/pkg/session"
)

var(
	fVerbosity int
	fMetrics string
	fDivider string
	fLumaMatrix string
	fPixelFormat string
	fSize string
	fDumpDir string
	fDumpFrames string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fMetrics, "metrics", "", "comma separated scores to compute: adm, ansnr")
	flag.StringVar(&fDivider, "divider", "", "how ADM divides: fast, exact, auto")
	flag.StringVar(&fLumaMatrix, "luma", "", "luma weights for RGB image inputs: bt601, bt709")
	flag.StringVar(&fPixelFormat, "pixfmt", "", "pixel format of raw .yuv inputs, e.g. yuv420p10le")
	flag.StringVar(&fSize, "size", "", "frame size of raw .yuv inputs, as WxH")
	flag.StringVar(&fDumpDir, "dump", "", "write per-level ADM bands as PNGs into this dir")
	flag.StringVar(&fDumpFrames, "dumpframes", "", "comma separated frame numbers to dump (default 0)")
	flag.Parse()

	log.Printf("adm starting\n")
}

func main() {
	cfg := session.NewConfig()
	inputs := []string{}

	for _, arg := range flag.Args() {
		if strings.ToLower(filepath.Ext(arg)) == ".yaml" {
			c, err := session.LoadConfig(arg)
			if err != nil {
				log.Fatal(err)
			}
			cfg = c
			log.Printf("Loaded base configuration from %s\n", arg)
		} else {
			inputs = append(inputs, arg)
		}
	}
	if len(inputs) != 2 {
		log.Fatalf("need a reference and a distorted input, got %d args: %v", len(inputs), inputs)
	}

	// Override the config file with command line args, if relevant
	if fVerbosity > 0 { cfg.Verbosity = fVerbosity }
	if fMetrics != "" { cfg.Metrics = strings.Split(fMetrics, ",") }
	if fDivider != "" { cfg.Divider = fDivider }
	if fLumaMatrix != "" { cfg.LumaMatrix = fLumaMatrix }
	if fPixelFormat != "" { cfg.PixelFormat = fPixelFormat }
	if fDumpDir != "" { cfg.DumpDir = fDumpDir }
	if fSize != "" {
		if _, err := fmt.Sscanf(fSize, "%dx%d", &cfg.Width, &cfg.Height); err != nil {
			log.Fatalf("bad -size '%s': %v", fSize, err)
		}
	}
	if fDumpFrames != "" {
		cfg.DumpFrames = []int{}
		for _, s := range strings.Split(fDumpFrames, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				log.Fatalf("bad -dumpframes '%s': %v", fDumpFrames, err)
			}
			cfg.DumpFrames = append(cfg.DumpFrames, i)
		}
	}

	if err := cfg.Finalize(); err != nil {
		log.Fatal(err)
	}
	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	refs, closeRefs := openSource(cfg, inputs[0])
	defer closeRefs()
	diss, closeDiss := openSource(cfg, inputs[1])
	defer closeDiss()

	s, err := session.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = s.Run(refs, diss, func(fr session.FrameResult) {
		md := fr.Metadata()
		keys := []string{}
		for k := range md {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("frame:%d %s=%s\n", fr.Index, k, md[k])
		}
	})
	if err != nil {
		log.Fatal(err)
	}

	s.Close()
}

func isRawYUV(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yuv", ".zst": return true
	}
	return false
}

func openSource(cfg session.Config, arg string) (frames.Source, func()) {
	if isRawYUV(arg) {
		yr, err := frames.OpenYUV(arg, cfg.Width, cfg.Height, cfg.PixelFormat)
		if err != nil {
			log.Fatal(err)
		}
		if cfg.Verbosity > 0 {
			log.Printf("reading %s\n", yr)
		}
		return yr, func() { yr.Close() }
	}

	loaded, err := frames.LoadFilesAndDirs(cfg.GetLumaMatrix(), arg)
	if err != nil {
		log.Fatal(err)
	} else if len(loaded) == 0 {
		log.Fatalf("no image files found in '%s'", arg)
	}
	if cfg.Verbosity > 0 {
		for _, f := range loaded {
			log.Printf("loaded %s\n", f)
		}
	}
	return frames.NewSliceSource(loaded), func() {}
}
