package geometry

import (
	"fmt"
	"math"

	"github.com/san-kum/cracklab/internal/fracture"
)

// Model evaluates the geometry correction factor for one crack type.
// Factor must either return a finite, strictly positive Y or an error;
// it never propagates a non-physical value.
type Model interface {
	Type() fracture.CrackType
	Factor(spec *fracture.CrackSpecification) (float64, error)
	Window() fracture.DomainWindow
}

var models = map[fracture.CrackType]Model{
	fracture.Edge:              &EdgeCrack{},
	fracture.DoubleEdge:        &DoubleEdgeCrack{},
	fracture.Through:           &ThroughCrack{},
	fracture.EllipticalSurface: &EllipticalSurfaceCrack{},
	fracture.Corner:            &CornerCrack{},
}

// ModelFor returns the correction model registered for a crack type.
func ModelFor(t fracture.CrackType) (Model, error) {
	m, ok := models[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fracture.ErrUnknownCrackType, t)
	}
	return m, nil
}

// StressIntensity computes K_I in MPa·√m from a geometry factor, an
// applied stress in MPa, and a crack size in mm.
func StressIntensity(y, stressMPa, aMM float64) float64 {
	return y * stressMPa * math.Sqrt(math.Pi*aMM/1000.0)
}

// checkFactor enforces the finite, positive contract on a computed Y.
func checkFactor(y float64) (float64, error) {
	if math.IsNaN(y) || math.IsInf(y, 0) || y <= 0 {
		return 0, &fracture.ModelResultError{Quantity: "Y", Value: y}
	}
	return y, nil
}

// shapeFactorQ is the Newman–Raju elliptical shape factor for a/c <= 1.
func shapeFactorQ(aspect float64) float64 {
	return 1.0 + 1.464*math.Pow(aspect, 1.65)
}
