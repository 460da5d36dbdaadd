package geometry

import "github.com/san-kum/cracklab/internal/fracture"

// EdgeCrack models a single edge crack under remote tension with the
// Gross–Brown quartic polynomial, calibrated for a/W < 0.6:
//
//	Y = 1.12 − 0.231λ + 10.55λ² − 21.72λ³ + 30.39λ⁴,  λ = a/W
type EdgeCrack struct{}

func (*EdgeCrack) Type() fracture.CrackType { return fracture.Edge }

func (*EdgeCrack) Window() fracture.DomainWindow {
	return fracture.DomainFor(fracture.Edge)
}

func (*EdgeCrack) Factor(spec *fracture.CrackSpecification) (float64, error) {
	l := spec.RatioAW()
	y := 1.12 + l*(-0.231+l*(10.55+l*(-21.72+l*30.39)))
	return checkFactor(y)
}
