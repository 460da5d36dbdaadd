package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/fatigue"
	"github.com/san-kum/cracklab/internal/fracture"
)

func sampleAssessment(t *testing.T) (*fracture.CrackSpecification, *fracture.MaterialAndLoadSpec, *assess.SafetyAssessment) {
	t.Helper()
	spec, err := fracture.NewCrackSpecification(fracture.Through, fracture.Axial, 2, 20, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	mat := &fracture.MaterialAndLoadSpec{
		FractureToughness:  50,
		YieldStrength:      355,
		AppliedStress:      150,
		ParisC:             6.9e-12,
		ParisM:             3.0,
		DesignLifeCycles:   1e5,
		RequiredFractureSF: 2.0,
	}
	result, err := assess.Evaluate(spec, mat)
	if err != nil {
		t.Fatal(err)
	}
	return spec, mat, result
}

func TestRender(t *testing.T) {
	spec, mat, result := sampleAssessment(t)

	var buf bytes.Buffer
	if err := Render(&buf, spec, mat, result); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"crack assessment",
		"geometry factor Y",
		"stress intensity K_I",
		"fracture safety factor",
		"critical crack size",
		"cycles to failure",
		"inspection interval",
		"status:",
		result.Explanation,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRender_NoCrossing(t *testing.T) {
	spec, err := fracture.NewCrackSpecification(fracture.Edge, fracture.Axial, 1, 10, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	mat := &fracture.MaterialAndLoadSpec{
		FractureToughness:  80,
		YieldStrength:      355,
		AppliedStress:      30,
		ParisC:             6.9e-12,
		ParisM:             3.0,
		DesignLifeCycles:   1e5,
		RequiredFractureSF: 2.0,
	}
	result, err := assess.Evaluate(spec, mat)
	if err != nil {
		t.Fatal(err)
	}
	if result.Fatigue.CriticalCrackReached {
		t.Fatal("expected a no-crossing scenario")
	}

	var buf bytes.Buffer
	if err := Render(&buf, spec, mat, result); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), fracture.NoCrossingLabel) {
		t.Error("report should carry the no-crossing label")
	}
}

func TestRender_Warnings(t *testing.T) {
	spec, err := fracture.NewCrackSpecification(fracture.Through, fracture.Radial, 1, 50, 0, 120)
	if err != nil {
		t.Fatal(err)
	}
	mat := &fracture.MaterialAndLoadSpec{
		FractureToughness:  87.4,
		YieldStrength:      1420,
		AppliedStress:      300,
		ParisC:             1.36e-10,
		ParisM:             2.25,
		DesignLifeCycles:   1e4,
		RequiredFractureSF: 2.5,
	}
	result, err := assess.Evaluate(spec, mat)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a ligament warning")
	}

	var buf bytes.Buffer
	if err := Render(&buf, spec, mat, result); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "warning:") {
		t.Error("report should print warnings")
	}
}

func TestGrowthPlot(t *testing.T) {
	_, _, result := sampleAssessment(t)

	plot := GrowthPlot(result.Fatigue.History, 60)
	if !strings.Contains(plot, "crack size (mm)") {
		t.Error("plot missing caption")
	}
	if len(strings.Split(plot, "\n")) < plotHeight {
		t.Errorf("plot shorter than %d rows", plotHeight)
	}
}

func TestGrowthPlot_TooFewSamples(t *testing.T) {
	plot := GrowthPlot([]fatigue.GrowthSample{{Cycles: 0, A: 2, K: 10}}, 60)
	if !strings.Contains(plot, "not enough") {
		t.Errorf("plot = %q", plot)
	}
}

func TestIntensityPlot(t *testing.T) {
	_, _, result := sampleAssessment(t)

	plot := IntensityPlot(result.Fatigue.History, 60)
	if plot == "" {
		t.Error("empty intensity plot")
	}
}
