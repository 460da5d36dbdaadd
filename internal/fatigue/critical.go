package fatigue

import (
	"math"

	"github.com/san-kum/cracklab/internal/fracture"
	"github.com/san-kum/cracklab/internal/geometry"
)

const (
	bisectMaxIter = 200
	bisectRelTol  = 1e-10
)

// CriticalSize solves K_I(a) = K_IC for the crack size a_c by bisection
// between the current crack size and the ceiling of the model's
// calibrated window. found is false when K_I stays below K_IC over the
// whole interval; in that case no a_c exists within the modeled
// ligament and the returned size is meaningless.
//
// When K_I at the current size already meets or exceeds K_IC the
// current size is returned: the crack is at or beyond critical.
func CriticalSize(model geometry.Model, spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec) (aCrit float64, found bool, err error) {
	lo := spec.A()
	hi := model.Window().Ceiling(spec.W())

	kLo, err := stressIntensityAt(model, spec, mat, lo)
	if err != nil {
		return 0, false, err
	}
	if kLo >= mat.FractureToughness {
		return lo, true, nil
	}
	if hi <= lo {
		return 0, false, nil
	}

	kHi, err := stressIntensityAt(model, spec, mat, hi)
	if err != nil {
		return 0, false, err
	}
	if kHi < mat.FractureToughness {
		return 0, false, nil
	}

	for i := 0; i < bisectMaxIter; i++ {
		mid := 0.5 * (lo + hi)
		kMid, err := stressIntensityAt(model, spec, mat, mid)
		if err != nil {
			return 0, false, err
		}
		if kMid < mat.FractureToughness {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < bisectRelTol*hi {
			return hi, true, nil
		}
	}
	return 0, false, &fracture.ComputationError{Stage: "critical-size bisection", Steps: bisectMaxIter}
}

func stressIntensityAt(model geometry.Model, spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec, a float64) (float64, error) {
	y, err := model.Factor(spec.WithCrackSize(a))
	if err != nil {
		return 0, err
	}
	k := geometry.StressIntensity(y, mat.AppliedStress, a)
	if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
		return 0, &fracture.ModelResultError{Quantity: "K_I", Value: k}
	}
	return k, nil
}
