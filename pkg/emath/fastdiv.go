package emath

import(
	"fmt"
	"math"

	"golang.org/x/sys/cpu"
)

// A Divider computes n/d in single precision.
type Divider func(n, d float32) float32

// MaxReciprocalError bounds the relative error of Reciprocal (and so of
// FastDiv, give or take one rounding of the final product).
const MaxReciprocalError = 1e-6

func ExactDiv(n, d float32) float32 { return n / d }

// FastDiv multiplies by an approximate reciprocal, the way SIMD code
// divides with rcpps/frecpe plus refinement.
func FastDiv(n, d float32) float32 { return n * Reciprocal(d) }

// Reciprocal approximates 1/d from a bit-level initial estimate (within
// +15% of the true value) refined by three Newton-Raphson steps. Zero,
// subnormal, very large, infinite and NaN inputs are divided exactly.
func Reciprocal(d float32) float32 {
	bits := math.Float32bits(d)
	exp := (bits >> 23) & 0xFF
	if exp < 2 || exp > 252 {
		return 1 / d
	}

	sign := bits & 0x80000000
	abs := bits &^ 0x80000000
	a := math.Float32frombits(abs)

	x := math.Float32frombits(0x7EF311C7 - abs)
	x = x * (2 - a*x)
	x = x * (2 - a*x)
	x = x * (2 - a*x)

	return math.Float32frombits(math.Float32bits(x) | sign)
}

// DefaultDivider picks FastDiv on CPUs that have a reciprocal estimate
// instruction (so results line up with vectorized hosts), ExactDiv
// elsewhere.
func DefaultDivider() Divider {
	if cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD {
		return FastDiv
	}
	return ExactDiv
}

func DividerByName(name string) (Divider, error) {
	switch name {
	case "fast":         return FastDiv, nil
	case "exact":        return ExactDiv, nil
	case "auto", "":     return DefaultDivider(), nil
	default:
		return nil, fmt.Errorf("no divider named '%s'", name)
	}
}
