package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible generated reference string.
// Two generations with the same SimulationKey and identical configuration
// MUST produce identical reference strings.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemReferences is the RNG subsystem that picks page numbers.
	// Uses master seed directly so --seed maps one-to-one onto a reference string.
	SubsystemReferences = "references"

	// SubsystemLocality decides whether a reference stays inside the working set.
	SubsystemLocality = "locality"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemReferences: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemReferences {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === Reference generation ===

// GeneratorConfig shapes a generated reference string.
//
// With Locality = 0 every page is drawn uniformly from [0, DistinctPages).
// With Locality > 0, each reference stays inside a sliding working set of
// WorkingSet pages with probability Locality; the set shifts by one page
// whenever a reference escapes it.
type GeneratorConfig struct {
	Length        int
	DistinctPages int
	Locality      float64 // probability in [0, 1]
	WorkingSet    int     // pages in the working set; ignored when Locality is 0
}

// Validate checks the generator parameters.
func (c GeneratorConfig) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("length must be non-negative, got %d", c.Length)
	}
	if c.DistinctPages < 1 {
		return fmt.Errorf("distinct pages must be at least 1, got %d", c.DistinctPages)
	}
	if c.Locality < 0 || c.Locality > 1 {
		return fmt.Errorf("locality must be in [0, 1], got %v", c.Locality)
	}
	if c.Locality > 0 && (c.WorkingSet < 1 || c.WorkingSet > c.DistinctPages) {
		return fmt.Errorf("working set must be in [1, %d], got %d", c.DistinctPages, c.WorkingSet)
	}
	return nil
}

// GenerateReferences produces a reproducible reference string.
func GenerateReferences(key SimulationKey, cfg GeneratorConfig) ([]Page, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generating references: %w", err)
	}
	rngs := NewPartitionedRNG(key)
	pages := rngs.ForSubsystem(SubsystemReferences)
	locality := rngs.ForSubsystem(SubsystemLocality)

	refs := make([]Page, cfg.Length)
	base := 0 // first page of the working set
	for i := range refs {
		if cfg.Locality > 0 && locality.Float64() < cfg.Locality {
			refs[i] = Page((base + pages.Intn(cfg.WorkingSet)) % cfg.DistinctPages)
			continue
		}
		refs[i] = Page(pages.Intn(cfg.DistinctPages))
		if cfg.Locality > 0 {
			base = (base + 1) % cfg.DistinctPages
		}
	}
	return refs, nil
}
