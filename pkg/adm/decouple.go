package adm

import(
	"github.com/abworrall/adm/pkg/emath"
)

// decouple splits the distorted detail bands into the part explained by
// the reference (restored, written to r) and the rest (impairment,
// written to a). Approximation bands are left alone.
//
// Per orientation the restored value is the reference scaled by the
// distorted/reference gain, clamped to [0,1]. If the (H,V) detail vectors
// point the same way to within one degree, the distorted values are taken
// as restored outright. A zero-length reference vector has no direction,
// so it only takes that shortcut when the distorted vector is zero too.
func decouple(ref, dis, r, a Bands, div emath.Divider) {
	for i:=0; i<ref.Dy(); i++ {
		oH, oV, oD := ref.H.Row(i), ref.V.Row(i), ref.D.Row(i)
		tH, tV, tD := dis.H.Row(i), dis.V.Row(i), dis.D.Row(i)
		rH, rV, rD := r.H.Row(i), r.V.Row(i), r.D.Row(i)
		aH, aV, aD := a.H.Row(i), a.V.Row(i), a.D.Row(i)

		for j := range oH {
			oh, ov, od := oH[j], oV[j], oD[j]
			th, tv, td := tH[j], tV[j], tD[j]

			resH := clampGain(div(th, oh + gainEpsilon)) * oh
			resV := clampGain(div(tv, ov + gainEpsilon)) * ov
			resD := clampGain(div(td, od + gainEpsilon)) * od

			otDot := oh*th + ov*tv
			oMagSq := oh*oh + ov*ov
			tMagSq := th*th + tv*tv

			if (oMagSq > 0 || tMagSq == 0) && otDot >= 0 && otDot*otDot >= cos1DegSq*oMagSq*tMagSq {
				resH, resV, resD = th, tv, td
			}

			rH[j], rV[j], rD[j] = resH, resV, resD
			aH[j], aV[j], aD[j] = th-resH, tv-resV, td-resD
		}
	}
}

func clampGain(k float32) float32 {
	if k < 0 { return 0 }
	if k > 1 { return 1 }
	return k
}
