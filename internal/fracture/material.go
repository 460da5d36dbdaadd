package fracture

// MaterialAndLoadSpec carries material properties, loading, and the
// acceptance targets for one assessment.
type MaterialAndLoadSpec struct {
	FractureToughness  float64 // K_IC, MPa·√m
	YieldStrength      float64 // MPa
	AppliedStress      float64 // MPa
	ParisC             float64 // m/cycle per (MPa·√m)^m
	ParisM             float64 // Paris exponent
	DesignLifeCycles   float64
	RequiredFractureSF float64
}

// Validate checks every field before any numeric work. Zero applied
// stress is rejected here; the assessment has nothing to say about an
// unloaded section.
func (m *MaterialAndLoadSpec) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"fracture_toughness", m.FractureToughness},
		{"yield_strength", m.YieldStrength},
		{"applied_stress", m.AppliedStress},
		{"paris_law_C", m.ParisC},
		{"paris_law_m", m.ParisM},
		{"design_life_cycles", m.DesignLifeCycles},
		{"required_fracture_sf", m.RequiredFractureSF},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return &InputError{Field: c.field, Value: c.value, Reason: "must be positive"}
		}
	}
	return nil
}
