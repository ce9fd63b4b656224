package adm

import "math"

const(
	NumScales    = 4
	BorderFactor = 0.1

	// ArenaRegions is how many half-resolution planes one pass needs:
	// two next-level inputs, seven quartets (ref, dis, restored,
	// impairment, and the three weighted sets), the masking threshold,
	// and the detected quartet.
	ArenaRegions = 2 + 7*4 + 1 + 4

	viewDist         = 3.0  // in units of display height
	refDisplayHeight = 1080 // pixels

	gainEpsilon = 1e-30
)

var(
	cos1DegSq = float32(math.Cos(1.0 * math.Pi / 180.0) * math.Cos(1.0 * math.Pi / 180.0))
)

// Daubechies 2 (4-tap) analysis pair.
var(
	db2Lo = [4]float32{ 0.482962913144690,  0.836516303737469, 0.224143868041857, -0.129409522550921}
	db2Hi = [4]float32{-0.129409522550921, -0.224143868041857, 0.836516303737469, -0.482962913144690}
)

// The Watson et al. visibility model for 9/7 DWT quantization noise,
// "Visibility of wavelet quantization noise", IEEE TIP 1997. Only the Y
// row is used.
type dwtModelParams struct {
	a  float64
	k  float64
	f0 float64
	g  [4]float64
}

var(
	dwt79YThreshold = dwtModelParams{a: 0.495, k: 0.466, f0: 0.401, g: [4]float64{1.501, 1.0, 0.534, 1.0}}

	// Basis function amplitudes, indexed [lambda][theta]
	// lambda = 0 (finest) .. 5; theta = 0 (ll), 1 (lh), 2 (hh), 3 (hl)
	dwt79BasisAmplitudes = [6][4]float64{
		{ 0.62171,  0.67234,  0.72709,  0.67234  },
		{ 0.34537,  0.41317,  0.49428,  0.41317  },
		{ 0.18004,  0.22727,  0.28688,  0.22727  },
		{ 0.091401, 0.11792,  0.15214,  0.11792  },
		{ 0.045943, 0.059758, 0.077727, 0.059758 },
		{ 0.023013, 0.030018, 0.039156, 0.030018 },
	}
)
