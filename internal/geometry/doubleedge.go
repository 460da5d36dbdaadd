package geometry

import (
	"math"

	"github.com/san-kum/cracklab/internal/fracture"
)

// DoubleEdgeCrack models symmetric edge cracks in a strip under tension
// with the Tada fit, calibrated for a/W < 0.7:
//
//	Y = (1.122 − 0.561λ − 0.205λ² + 0.471λ³ − 0.190λ⁴) / sqrt(1 − λ)
type DoubleEdgeCrack struct{}

func (*DoubleEdgeCrack) Type() fracture.CrackType { return fracture.DoubleEdge }

func (*DoubleEdgeCrack) Window() fracture.DomainWindow {
	return fracture.DomainFor(fracture.DoubleEdge)
}

func (*DoubleEdgeCrack) Factor(spec *fracture.CrackSpecification) (float64, error) {
	l := spec.RatioAW()
	num := 1.122 + l*(-0.561+l*(-0.205+l*(0.471+l*-0.190)))
	return checkFactor(num / math.Sqrt(1.0-l))
}
