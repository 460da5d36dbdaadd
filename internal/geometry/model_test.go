package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/cracklab/internal/fracture"
)

func mustSpec(t *testing.T, ct fracture.CrackType, a, w, c float64) *fracture.CrackSpecification {
	t.Helper()
	spec, err := fracture.NewCrackSpecification(ct, fracture.Axial, a, w, c, 0)
	if err != nil {
		t.Fatalf("spec construction failed: %v", err)
	}
	return spec
}

func TestModelFor_AllTypes(t *testing.T) {
	for _, ct := range fracture.CrackTypes() {
		model, err := ModelFor(ct)
		if err != nil {
			t.Fatalf("no model for %s: %v", ct, err)
		}
		if model.Type() != ct {
			t.Errorf("model type mismatch: %v vs %v", model.Type(), ct)
		}
	}

	if _, err := ModelFor(fracture.CrackType(99)); !errors.Is(err, fracture.ErrUnknownCrackType) {
		t.Errorf("expected ErrUnknownCrackType, got %v", err)
	}
}

func TestFactor_FiniteAndPositive(t *testing.T) {
	tests := []struct {
		name string
		ct   fracture.CrackType
		a, w float64
		c    float64
	}{
		{"edge shallow", fracture.Edge, 0.5, 10, 0},
		{"edge near window edge", fracture.Edge, 5.9, 10, 0},
		{"double edge", fracture.DoubleEdge, 6.5, 10, 0},
		{"through shallow", fracture.Through, 2, 20, 0},
		{"through deep", fracture.Through, 19, 20, 0},
		{"elliptical", fracture.EllipticalSurface, 3, 40, 6},
		{"corner", fracture.Corner, 1, 12, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := mustSpec(t, tt.ct, tt.a, tt.w, tt.c)
			model, err := ModelFor(tt.ct)
			if err != nil {
				t.Fatal(err)
			}
			y, err := model.Factor(spec)
			if err != nil {
				t.Fatalf("Factor: %v", err)
			}
			if y <= 0 || math.IsNaN(y) || math.IsInf(y, 0) {
				t.Errorf("Y = %v, want finite positive", y)
			}
		})
	}
}

func TestThroughCrack_SecantValues(t *testing.T) {
	// Y -> 1 as a/W -> 0, and the secant correction at a/W = 0.5 is
	// sqrt(sec(pi/4)) = sqrt(sqrt(2)).
	model := &ThroughCrack{}

	shallow := mustSpec(t, fracture.Through, 0.01, 100, 0)
	y, err := model.Factor(shallow)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(y-1.0) > 1e-4 {
		t.Errorf("shallow through Y = %v, want ~1", y)
	}

	half := mustSpec(t, fracture.Through, 10, 20, 0)
	y, err = model.Factor(half)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(math.Sqrt2)
	if math.Abs(y-want) > 1e-9 {
		t.Errorf("a/W=0.5 through Y = %v, want %v", y, want)
	}
}

func TestEdgeCrack_ShallowLimit(t *testing.T) {
	// The free-surface factor 1.12 dominates for shallow edge cracks.
	model := &EdgeCrack{}
	spec := mustSpec(t, fracture.Edge, 0.01, 100, 0)
	y, err := model.Factor(spec)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(y-1.12) > 1e-3 {
		t.Errorf("shallow edge Y = %v, want ~1.12", y)
	}
}

func TestFactor_MonotoneInDepth(t *testing.T) {
	// For edge, double-edge, and through cracks Y grows with a/W over
	// the calibrated window.
	tests := []struct {
		ct fracture.CrackType
		w  float64
		as []float64
	}{
		{fracture.Edge, 10, []float64{0.5, 2, 4, 5.5}},
		{fracture.DoubleEdge, 10, []float64{0.5, 2, 4, 6.5}},
		{fracture.Through, 20, []float64{2, 8, 14, 19}},
	}

	for _, tt := range tests {
		model, err := ModelFor(tt.ct)
		if err != nil {
			t.Fatal(err)
		}
		prev := 0.0
		for _, a := range tt.as {
			spec := mustSpec(t, tt.ct, a, tt.w, 0)
			y, err := model.Factor(spec)
			if err != nil {
				t.Fatalf("%s a=%v: %v", tt.ct, a, err)
			}
			if y < prev {
				t.Errorf("%s: Y decreased from %v to %v at a=%v", tt.ct, prev, y, a)
			}
			prev = y
		}
	}
}

func TestStressIntensity(t *testing.T) {
	// K_I = Y * sigma * sqrt(pi * a), a in meters.
	k := StressIntensity(1.0, 150, 2.0)
	want := 150 * math.Sqrt(math.Pi*0.002)
	if math.Abs(k-want) > 1e-9 {
		t.Errorf("StressIntensity = %v, want %v", k, want)
	}

	if StressIntensity(1.0, 0, 2.0) != 0 {
		t.Error("zero stress should give zero K_I")
	}
}

func TestShapeFactorQ(t *testing.T) {
	// Circular front: a/c = 1 gives Q = 2.464.
	if q := shapeFactorQ(1.0); math.Abs(q-2.464) > 1e-9 {
		t.Errorf("Q(1) = %v, want 2.464", q)
	}
}
