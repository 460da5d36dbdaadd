// Package batch evaluates many crack specifications concurrently.
// Evaluations share nothing and need no locking, so the runner is a
// plain fan-out with a worker cap.
package batch

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/config"
)

// Case is one named assessment in a deck. MaterialPreset, when set,
// replaces the inline material block.
type Case struct {
	MaterialPreset string        `yaml:"material_preset,omitempty"`
	Config         config.Config `yaml:",inline"`
}

// Name is the case label, taken from the inline config.
func (c *Case) Name() string { return c.Config.Name }

// Deck is a set of cases loaded from one YAML file.
type Deck struct {
	Cases []Case `yaml:"cases"`
}

// LoadDeck reads a deck, filling unset assessment knobs from defaults
// and resolving material presets.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var deck Deck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, err
	}
	if len(deck.Cases) == 0 {
		return nil, fmt.Errorf("batch: deck %s has no cases", path)
	}

	defaults := config.DefaultConfig()
	for i := range deck.Cases {
		c := &deck.Cases[i]
		if c.Config.Name == "" {
			c.Config.Name = fmt.Sprintf("case_%d", i+1)
		}
		if c.MaterialPreset != "" {
			mat, ok := config.GetMaterial(c.MaterialPreset)
			if !ok {
				return nil, fmt.Errorf("batch: case %s: unknown material preset %q", c.Config.Name, c.MaterialPreset)
			}
			c.Config.Material = mat
		}
		if c.Config.Assessment.InspectionDivisor == 0 {
			c.Config.Assessment.InspectionDivisor = defaults.Assessment.InspectionDivisor
		}
		if c.Config.Assessment.MarginalSFRatio == 0 {
			c.Config.Assessment.MarginalSFRatio = defaults.Assessment.MarginalSFRatio
		}
		if c.Config.Assessment.MarginalLifeFraction == 0 {
			c.Config.Assessment.MarginalLifeFraction = defaults.Assessment.MarginalLifeFraction
		}
	}
	return &deck, nil
}

// CaseResult pairs a case name with its assessment or the error that
// aborted it. Errors stay per-case; one bad geometry does not sink the
// rest of the deck.
type CaseResult struct {
	Name       string
	Assessment *assess.SafetyAssessment
	Err        error
}

// Run evaluates every case in the deck, at most workers at a time.
func Run(ctx context.Context, deck *Deck, workers int) []CaseResult {
	if workers < 1 {
		workers = 1
	}

	results := make([]CaseResult, len(deck.Cases))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i := range deck.Cases {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			c := deck.Cases[idx]
			results[idx] = CaseResult{Name: c.Name()}

			if err := ctx.Err(); err != nil {
				results[idx].Err = err
				return
			}

			spec, err := c.Config.BuildSpec()
			if err != nil {
				results[idx].Err = err
				return
			}
			results[idx].Assessment, results[idx].Err = c.Config.BuildEvaluator().Evaluate(spec, c.Config.BuildMaterial())
		}(i)
	}
	wg.Wait()

	return results
}

// Summary counts results by status, with errors tallied separately.
func Summary(results []CaseResult) (byStatus map[assess.Status]int, errs int) {
	byStatus = make(map[assess.Status]int)
	for _, r := range results {
		if r.Err != nil {
			errs++
			continue
		}
		byStatus[r.Assessment.Status]++
	}
	return byStatus, errs
}
