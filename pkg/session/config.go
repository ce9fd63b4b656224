package session

import(
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/adm/pkg/emath"
)

type Config struct {
	Verbosity    int

	Metrics      []string // Which scores to compute: "adm", "ansnr"
	Divider      string   // How ADM divides: "fast", "exact", "auto"
	LumaMatrix   string   // For RGB image inputs: "bt601", "bt709"

	// Raw YUV inputs carry no header, so these have to be given
	PixelFormat  string
	Width        int
	Height       int

	// If set, per-level bands (and the luma planes) of the frames listed
	// in DumpFrames are written as PNGs into this dir.
	DumpDir      string
	DumpFrames   []int

	// Filled in by Finalize
	divider      emath.Divider
	luma         emath.Mat3
}

func NewConfig() Config {
	return Config{
		Metrics:     []string{"adm"},
		Divider:     "auto",
		LumaMatrix:  "bt709",
		PixelFormat: "yuv420p",
		DumpFrames:  []int{0},
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func LoadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	return newConfigFromYaml(contents)
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Printf("Can't marshal config yaml: %v\n", err)
		return ""
	}
	return string(b)
}

// Finalize checks the strategy names, and resolves them.
func (c *Config)Finalize() error {
	div, err := emath.DividerByName(c.Divider)
	if err != nil {
		return fmt.Errorf("config: %v", err)
	}
	c.divider = div

	switch strings.ToLower(c.LumaMatrix) {
	case "bt601", "601": c.luma = emath.RGBToYCbCr_BT601
	case "bt709", "709": c.luma = emath.RGBToYCbCr_BT709
	default:
		return fmt.Errorf("config: no luma matrix named '%s'", c.LumaMatrix)
	}

	if len(c.Metrics) == 0 {
		return fmt.Errorf("config: no metrics selected")
	}
	for _, m := range c.Metrics {
		if m != "adm" && m != "ansnr" {
			return fmt.Errorf("config: no metric named '%s'", m)
		}
	}

	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: bad raw frame size %dx%d", c.Width, c.Height)
	}

	return nil
}

func (c Config)GetDivider() emath.Divider {
	if c.divider == nil { return emath.DefaultDivider() }
	return c.divider
}

func (c Config)GetLumaMatrix() emath.Mat3 {
	if c.luma == (emath.Mat3{}) { return emath.RGBToYCbCr_BT709 }
	return c.luma
}

func (c Config)HasMetric(name string) bool {
	for _, m := range c.Metrics {
		if m == name { return true }
	}
	return false
}

func (c Config)ShouldDump(frameIndex int) bool {
	if c.DumpDir == "" { return false }
	for _, i := range c.DumpFrames {
		if i == frameIndex { return true }
	}
	return false
}
