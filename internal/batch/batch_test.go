package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/fracture"
)

const testDeck = `cases:
  - name: ok_through
    material_preset: ferritic_steel
    crack:
      type: through
      orientation: axial
      a_mm: 2
      w_mm: 20
    assessment:
      applied_stress: 150
      design_life_cycles: 1e5
      required_fracture_sf: 2.0
  - name: bad_geometry
    material_preset: ferritic_steel
    crack:
      type: edge
      orientation: axial
      a_mm: 7
      w_mm: 10
    assessment:
      applied_stress: 150
      design_life_cycles: 1e5
      required_fracture_sf: 2.0
  - name: overloaded
    material_preset: al7075
    crack:
      type: edge
      orientation: axial
      a_mm: 4
      w_mm: 20
    assessment:
      applied_stress: 200
      design_life_cycles: 1e6
      required_fracture_sf: 2.0
`

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDeck(t *testing.T) {
	deck, err := LoadDeck(writeDeck(t, testDeck))
	if err != nil {
		t.Fatal(err)
	}
	if len(deck.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(deck.Cases))
	}
	if deck.Cases[0].Name() != "ok_through" {
		t.Errorf("name = %s", deck.Cases[0].Name())
	}

	// Preset resolution replaces the inline material block.
	mat := deck.Cases[0].Config.Material
	if mat.FractureToughness <= 0 || mat.ParisC <= 0 {
		t.Errorf("preset not resolved: %+v", mat)
	}

	// Unset assessment knobs fall back to defaults.
	if deck.Cases[0].Config.Assessment.InspectionDivisor != 3.0 {
		t.Errorf("inspection divisor = %v", deck.Cases[0].Config.Assessment.InspectionDivisor)
	}
}

func TestLoadDeck_UnnamedCase(t *testing.T) {
	deck, err := LoadDeck(writeDeck(t, `cases:
  - material_preset: ferritic_steel
    crack:
      type: through
      orientation: axial
      a_mm: 2
      w_mm: 20
    assessment:
      applied_stress: 150
      design_life_cycles: 1e5
      required_fracture_sf: 2.0
`))
	if err != nil {
		t.Fatal(err)
	}
	if deck.Cases[0].Name() != "case_1" {
		t.Errorf("name = %s", deck.Cases[0].Name())
	}
}

func TestLoadDeck_Empty(t *testing.T) {
	if _, err := LoadDeck(writeDeck(t, "cases: []\n")); err == nil {
		t.Error("expected error for empty deck")
	}
}

func TestLoadDeck_UnknownPreset(t *testing.T) {
	_, err := LoadDeck(writeDeck(t, `cases:
  - name: x
    material_preset: unobtainium
    crack:
      type: through
      orientation: axial
      a_mm: 2
      w_mm: 20
`))
	if err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestRun(t *testing.T) {
	deck, err := LoadDeck(writeDeck(t, testDeck))
	if err != nil {
		t.Fatal(err)
	}

	results := Run(context.Background(), deck, 2)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Results keep deck order regardless of worker scheduling.
	for i, c := range deck.Cases {
		if results[i].Name != c.Name() {
			t.Errorf("result %d = %s, want %s", i, results[i].Name, c.Name())
		}
	}

	if results[0].Err != nil {
		t.Errorf("ok_through failed: %v", results[0].Err)
	}
	if results[0].Assessment == nil {
		t.Fatal("ok_through has no assessment")
	}

	// a/W = 0.7 is outside the edge crack window. The case fails on
	// its own without sinking the deck.
	if !errors.Is(results[1].Err, fracture.ErrGeometryDomain) {
		t.Errorf("bad_geometry err = %v, want geometry domain error", results[1].Err)
	}

	if results[2].Err != nil {
		t.Errorf("overloaded failed: %v", results[2].Err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	deck, err := LoadDeck(writeDeck(t, testDeck))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, deck, 1)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("case %s err = %v, want context.Canceled", r.Name, r.Err)
		}
	}
}

func TestSummary(t *testing.T) {
	deck, err := LoadDeck(writeDeck(t, testDeck))
	if err != nil {
		t.Fatal(err)
	}

	results := Run(context.Background(), deck, 4)
	byStatus, errs := Summary(results)

	if errs != 1 {
		t.Errorf("errs = %d, want 1", errs)
	}
	total := 0
	for _, n := range byStatus {
		total += n
	}
	if total != 2 {
		t.Errorf("assessed cases = %d, want 2", total)
	}
	if byStatus[assess.StatusAcceptable] < 1 {
		t.Errorf("expected ok_through to be acceptable, got %v", byStatus)
	}
}
