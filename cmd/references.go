package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pagesim/pagesim/sim"
)

// referenceSource collects the mutually exclusive ways a reference string can be supplied.
type referenceSource struct {
	Refs         string  // literal list, "7 0 1 2"
	Preset       string  // name in defaults.yaml
	Scenario     string  // scenario YAML path
	RandomLength int     // > 0 selects a generated string
	RandomPages  int     // distinct pages in a generated string
	Locality     float64 // working-set locality of a generated string
	WorkingSet   int
	Seed         int64
	DefaultsPath string
}

func (s referenceSource) selected() int {
	n := 0
	for _, set := range []bool{s.Refs != "", s.Preset != "", s.Scenario != "", s.RandomLength > 0} {
		if set {
			n++
		}
	}
	return n
}

// resolved is a reference string plus the run settings a scenario file may carry.
type resolved struct {
	Refs     []sim.Page
	Scenario *sim.Scenario // nil unless the source was a scenario file
}

// resolveReferences turns exactly one configured source into a non-empty reference string.
func resolveReferences(src referenceSource) (*resolved, error) {
	switch src.selected() {
	case 0:
		return nil, errors.New("no reference string given; use one of --refs, --preset, --scenario or --random-length")
	case 1:
	default:
		return nil, errors.New("--refs, --preset, --scenario and --random-length are mutually exclusive")
	}

	out := &resolved{}
	var err error
	switch {
	case src.Refs != "":
		out.Refs, err = sim.ParseReferences(src.Refs)
	case src.Preset != "":
		out.Refs, err = loadDefaultsConfig(src.DefaultsPath).lookupPreset(src.Preset)
	case src.Scenario != "":
		out.Scenario, err = sim.LoadScenario(src.Scenario)
		if err == nil {
			err = out.Scenario.Validate()
		}
		if err == nil {
			out.Refs = out.Scenario.References
			if out.Scenario.Preset != "" {
				out.Refs, err = loadDefaultsConfig(src.DefaultsPath).lookupPreset(out.Scenario.Preset)
			}
		}
	default:
		out.Refs, err = sim.GenerateReferences(sim.NewSimulationKey(src.Seed), sim.GeneratorConfig{
			Length:        src.RandomLength,
			DistinctPages: src.RandomPages,
			Locality:      src.Locality,
			WorkingSet:    src.WorkingSet,
		})
		if err == nil {
			logrus.Infof("Generated reference string (seed=%d): %s", src.Seed, sim.FormatReferences(out.Refs))
		}
	}
	if err != nil {
		return nil, err
	}
	if len(out.Refs) == 0 {
		return nil, fmt.Errorf("reference string must contain at least one page")
	}
	return out, nil
}
