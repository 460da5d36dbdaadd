// Package storage persists assessment runs as on-disk artifacts: a
// metadata.json summary and a growth.csv trace per run.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/fatigue"
	"github.com/san-kum/cracklab/internal/fracture"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the persisted summary of one assessment run.
type RunMetadata struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Timestamp   time.Time `json:"timestamp"`
	CrackType   string    `json:"crack_type"`
	Orientation string    `json:"crack_orientation"`

	A              float64 `json:"a_mm"`
	W              float64 `json:"w_mm"`
	C              float64 `json:"c_mm,omitempty"`
	LocationRadius float64 `json:"crack_location_radius_mm,omitempty"`

	AppliedStress      float64 `json:"applied_stress"`
	FractureToughness  float64 `json:"fracture_toughness"`
	DesignLifeCycles   float64 `json:"design_life_cycles"`
	RequiredFractureSF float64 `json:"required_fracture_sf"`

	Assessment *assess.SafetyAssessment `json:"assessment"`
}

// Save writes one run directory and returns its ID.
func (s *Store) Save(name string, spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec, result *assess.SafetyAssessment) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:                 runID,
		Name:               name,
		Timestamp:          time.Now(),
		CrackType:          spec.Type().String(),
		Orientation:        spec.Orientation().String(),
		A:                  spec.A(),
		W:                  spec.W(),
		C:                  spec.C(),
		LocationRadius:     spec.LocationRadius(),
		AppliedStress:      mat.AppliedStress,
		FractureToughness:  mat.FractureToughness,
		DesignLifeCycles:   mat.DesignLifeCycles,
		RequiredFractureSF: mat.RequiredFractureSF,
		Assessment:         result,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeHistory(filepath.Join(runDir, "growth.csv"), result.Fatigue.History); err != nil {
		return "", err
	}

	return runID, nil
}

func writeHistory(path string, history []fatigue.GrowthSample) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"cycles", "a_mm", "delta_k"}); err != nil {
		return err
	}
	for _, sample := range history {
		row := []string{
			strconv.FormatFloat(sample.Cycles, 'f', 2, 64),
			strconv.FormatFloat(sample.A, 'f', 6, 64),
			strconv.FormatFloat(sample.K, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns every readable run, skipping directories with missing
// or malformed metadata.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadHistory reads back the growth trace of a saved run.
func (s *Store) LoadHistory(runID string) ([]fatigue.GrowthSample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "growth.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []fatigue.GrowthSample{}, nil
	}

	history := make([]fatigue.GrowthSample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 3 {
			continue
		}
		n, err1 := strconv.ParseFloat(record[0], 64)
		a, err2 := strconv.ParseFloat(record[1], 64)
		k, err3 := strconv.ParseFloat(record[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		history = append(history, fatigue.GrowthSample{Cycles: n, A: a, K: k})
	}
	return history, nil
}
