package adm

import "math"

// dwtQuantStep is formula (9) of Watson et al.: the visibility threshold
// for a DWT coefficient at level lambda and orientation theta.
func dwtQuantStep(p dwtModelParams, lambda, theta int) float64 {
	// Formula (1): display visual resolution, in pixels per degree of
	// visual angle (56.55 for 1080 lines viewed at 3H)
	r := viewDist * refDisplayHeight * math.Pi / 180.0

	temp := math.Log10(math.Pow(2.0, float64(lambda+1)) * p.f0 * p.g[theta] / r)
	return 2.0 * p.a * math.Pow(10.0, p.k * temp * temp) / dwt79BasisAmplitudes[lambda][theta]
}

// csfWeights holds, per level, the multipliers for H, V and D. H and V
// share theta=1 (lh); D uses theta=2 (hh).
var csfWeights = func() (w [NumScales][3]float32) {
	for s:=0; s<NumScales; s++ {
		f1 := float32(dwtQuantStep(dwt79YThreshold, s, 1))
		f2 := float32(dwtQuantStep(dwt79YThreshold, s, 2))
		w[s] = [3]float32{1.0 / f1, 1.0 / f1, 1.0 / f2}
	}
	return
}()

// CSFWeights returns the contrast sensitivity multipliers for a level, in
// H, V, D order.
func CSFWeights(scale int) [3]float32 { return csfWeights[scale] }

// csf writes the weighted detail bands of src into dst.
func csf(src, dst Bands, scale int) {
	weights := csfWeights[scale]
	srcs := src.details()
	dsts := dst.details()

	for theta:=0; theta<3; theta++ {
		f := weights[theta]
		for i:=0; i<src.Dy(); i++ {
			s, d := srcs[theta].Row(i), dsts[theta].Row(i)
			for j := range s {
				d[j] = f * s[j]
			}
		}
	}
}
