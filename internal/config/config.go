package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/fatigue"
	"github.com/san-kum/cracklab/internal/fracture"
)

const (
	DefaultCrackDepth   = 2.0  // mm
	DefaultSectionWidth = 20.0 // mm
	DefaultStress       = 150.0
	DefaultDesignLife   = 1e5
	DefaultRequiredSF   = 2.0
)

type Config struct {
	Name       string           `yaml:"name"`
	Crack      CrackConfig      `yaml:"crack"`
	Material   MaterialConfig   `yaml:"material"`
	Assessment AssessmentConfig `yaml:"assessment"`
}

type CrackConfig struct {
	Type           string  `yaml:"type"`
	Orientation    string  `yaml:"orientation"`
	A              float64 `yaml:"a_mm"`
	W              float64 `yaml:"w_mm"`
	C              float64 `yaml:"c_mm"`
	LocationRadius float64 `yaml:"location_radius_mm"`
}

type MaterialConfig struct {
	Name              string  `yaml:"name,omitempty"`
	FractureToughness float64 `yaml:"fracture_toughness"` // MPa·√m
	YieldStrength     float64 `yaml:"yield_strength"`     // MPa
	ParisC            float64 `yaml:"paris_c"`            // m/cycle per (MPa·√m)^m
	ParisM            float64 `yaml:"paris_m"`
}

type AssessmentConfig struct {
	AppliedStress        float64 `yaml:"applied_stress"` // MPa
	DesignLifeCycles     float64 `yaml:"design_life_cycles"`
	RequiredFractureSF   float64 `yaml:"required_fracture_sf"`
	InspectionDivisor    float64 `yaml:"inspection_divisor"`
	MarginalSFRatio      float64 `yaml:"marginal_sf_ratio"`
	MarginalLifeFraction float64 `yaml:"marginal_life_fraction"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: "assessment",
		Crack: CrackConfig{
			Type:        "through",
			Orientation: "axial",
			A:           DefaultCrackDepth,
			W:           DefaultSectionWidth,
		},
		Material: Materials["ferritic_steel"],
		Assessment: AssessmentConfig{
			AppliedStress:        DefaultStress,
			DesignLifeCycles:     DefaultDesignLife,
			RequiredFractureSF:   DefaultRequiredSF,
			InspectionDivisor:    fatigue.DefaultInspectionDivisor,
			MarginalSFRatio:      assess.DefaultMarginalSFRatio,
			MarginalLifeFraction: assess.DefaultMarginalLifeFraction,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildSpec constructs the validated crack specification. Geometry
// outside the calibrated window surfaces here, before any evaluation.
func (c *Config) BuildSpec() (*fracture.CrackSpecification, error) {
	ct, err := fracture.ParseCrackType(c.Crack.Type)
	if err != nil {
		return nil, err
	}
	o, err := fracture.ParseOrientation(c.Crack.Orientation)
	if err != nil {
		return nil, err
	}
	return fracture.NewCrackSpecification(ct, o, c.Crack.A, c.Crack.W, c.Crack.C, c.Crack.LocationRadius)
}

func (c *Config) BuildMaterial() *fracture.MaterialAndLoadSpec {
	return &fracture.MaterialAndLoadSpec{
		FractureToughness:  c.Material.FractureToughness,
		YieldStrength:      c.Material.YieldStrength,
		AppliedStress:      c.Assessment.AppliedStress,
		ParisC:             c.Material.ParisC,
		ParisM:             c.Material.ParisM,
		DesignLifeCycles:   c.Assessment.DesignLifeCycles,
		RequiredFractureSF: c.Assessment.RequiredFractureSF,
	}
}

func (c *Config) BuildEvaluator() *assess.Evaluator {
	e := assess.NewEvaluator()
	if c.Assessment.InspectionDivisor > 0 {
		e.Integrator.InspectionDivisor = c.Assessment.InspectionDivisor
	}
	if c.Assessment.MarginalSFRatio > 0 {
		e.MarginalSFRatio = c.Assessment.MarginalSFRatio
	}
	if c.Assessment.MarginalLifeFraction > 0 {
		e.MarginalLifeFraction = c.Assessment.MarginalLifeFraction
	}
	return e
}
