package config

import "sort"

// Materials holds fracture and crack-growth properties for common
// structural alloys. Toughness and yield are room-temperature plane-
// strain values; Paris constants assume ΔK in MPa·√m and da/dN in
// m/cycle at R ≈ 0.
var Materials = map[string]MaterialConfig{
	"ferritic_steel": {
		Name:              "ferritic structural steel",
		FractureToughness: 140.0,
		YieldStrength:     355.0,
		ParisC:            6.9e-12,
		ParisM:            3.0,
	},
	"a533b": {
		Name:              "A533B pressure-vessel steel",
		FractureToughness: 153.0,
		YieldStrength:     480.0,
		ParisC:            6.9e-12,
		ParisM:            3.0,
	},
	"aisi4340": {
		Name:              "AISI 4340, tempered 425C",
		FractureToughness: 87.4,
		YieldStrength:     1420.0,
		ParisC:            1.36e-10,
		ParisM:            2.25,
	},
	"al7075": {
		Name:              "7075-T651 aluminum",
		FractureToughness: 29.0,
		YieldStrength:     505.0,
		ParisC:            4.0e-11,
		ParisM:            3.21,
	},
	"al2024": {
		Name:              "2024-T351 aluminum",
		FractureToughness: 34.0,
		YieldStrength:     325.0,
		ParisC:            1.6e-11,
		ParisM:            3.59,
	},
	"ti6al4v": {
		Name:              "Ti-6Al-4V, mill annealed",
		FractureToughness: 55.0,
		YieldStrength:     910.0,
		ParisC:            1.0e-11,
		ParisM:            3.2,
	},
}

// Scenarios are ready-made assessment configurations.
var Scenarios = map[string]*Config{
	"plate_edge": {
		Name: "plate_edge",
		Crack: CrackConfig{
			Type: "edge", Orientation: "axial",
			A: 1.5, W: 25.0,
		},
		Material: Materials["ferritic_steel"],
		Assessment: AssessmentConfig{
			AppliedStress: 120.0, DesignLifeCycles: 2e5,
			RequiredFractureSF: 2.0,
		},
	},
	"strip_double_edge": {
		Name: "strip_double_edge",
		Crack: CrackConfig{
			Type: "double_edge", Orientation: "axial",
			A: 2.0, W: 30.0,
		},
		Material: Materials["a533b"],
		Assessment: AssessmentConfig{
			AppliedStress: 180.0, DesignLifeCycles: 1e5,
			RequiredFractureSF: 2.5,
		},
	},
	"panel_through": {
		Name: "panel_through",
		Crack: CrackConfig{
			Type: "through", Orientation: "axial",
			A: 2.0, W: 20.0,
		},
		Material: Materials["ferritic_steel"],
		Assessment: AssessmentConfig{
			AppliedStress: 150.0, DesignLifeCycles: 1e5,
			RequiredFractureSF: 2.0,
		},
	},
	"vessel_surface": {
		Name: "vessel_surface",
		Crack: CrackConfig{
			Type: "elliptical_surface", Orientation: "circumferential",
			A: 3.0, W: 40.0, C: 6.0,
		},
		Material: Materials["a533b"],
		Assessment: AssessmentConfig{
			AppliedStress: 200.0, DesignLifeCycles: 5e4,
			RequiredFractureSF: 3.0,
		},
	},
	"lug_corner": {
		Name: "lug_corner",
		Crack: CrackConfig{
			Type: "corner", Orientation: "axial",
			A: 1.0, W: 12.0, C: 1.5,
		},
		Material: Materials["al7075"],
		Assessment: AssessmentConfig{
			AppliedStress: 90.0, DesignLifeCycles: 4e4,
			RequiredFractureSF: 2.0,
		},
	},
	"rotor_bore": {
		Name: "rotor_bore",
		Crack: CrackConfig{
			Type: "through", Orientation: "radial",
			A: 1.0, W: 50.0, LocationRadius: 120.0,
		},
		Material: Materials["aisi4340"],
		Assessment: AssessmentConfig{
			AppliedStress: 300.0, DesignLifeCycles: 1e4,
			RequiredFractureSF: 2.5,
		},
	},
}

// GetMaterial returns a material preset, or false when unknown.
func GetMaterial(name string) (MaterialConfig, bool) {
	m, ok := Materials[name]
	return m, ok
}

// GetScenario returns a copy of a scenario preset with assessment
// defaults filled in, or nil when unknown.
func GetScenario(name string) *Config {
	base, ok := Scenarios[name]
	if !ok {
		return nil
	}
	cfg := *base
	if cfg.Assessment.InspectionDivisor == 0 {
		cfg.Assessment.InspectionDivisor = DefaultConfig().Assessment.InspectionDivisor
	}
	if cfg.Assessment.MarginalSFRatio == 0 {
		cfg.Assessment.MarginalSFRatio = DefaultConfig().Assessment.MarginalSFRatio
	}
	if cfg.Assessment.MarginalLifeFraction == 0 {
		cfg.Assessment.MarginalLifeFraction = DefaultConfig().Assessment.MarginalLifeFraction
	}
	return &cfg
}

// ListMaterials returns preset keys in sorted order.
func ListMaterials() []string {
	names := make([]string, 0, len(Materials))
	for name := range Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenarios returns scenario keys in sorted order.
func ListScenarios() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
