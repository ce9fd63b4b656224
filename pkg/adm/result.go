package adm

import "fmt"

// Result is the outcome of scoring one frame pair.
type Result struct {
	Score    float64 // Num/Den, or exactly 1.0 when Den is zero

	Num      float64 // Totals after the noise floor
	Den      float64

	RawNum   float64 // Totals before the noise floor; these are the sums of Scales
	RawDen   float64

	Scales   [2*NumScales]float64 // num, den per level, finest first
}

func (r Result)ScaleNum(scale int) float64 { return r.Scales[2*scale+0] }
func (r Result)ScaleDen(scale int) float64 { return r.Scales[2*scale+1] }

// ScaleScore is the per-level ratio, with the same zero fallback as Score.
func (r Result)ScaleScore(scale int) float64 {
	if r.ScaleDen(scale) == 0.0 {
		return 1.0
	}
	return r.ScaleNum(scale) / r.ScaleDen(scale)
}

func (r Result)String() string {
	str := fmt.Sprintf("adm %.6f (num %.4f, den %.4f)", r.Score, r.Num, r.Den)
	for s:=0; s<NumScales; s++ {
		str += fmt.Sprintf(" [s%d %.4f/%.4f]", s, r.ScaleNum(s), r.ScaleDen(s))
	}
	return str
}
