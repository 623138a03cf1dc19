package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesim/pagesim/sim"
)

// repoDefaultsPath locates the repository's defaults.yaml from the cmd package directory.
func repoDefaultsPath(t *testing.T) string {
	t.Helper()
	path := "defaults.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = "../defaults.yaml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Skip("defaults.yaml not found, skipping integration test")
		}
	}
	return path
}

func TestParseDefaultsConfig_ValidPresets(t *testing.T) {
	cfg, err := parseDefaultsConfig([]byte(`
version: "1"
presets:
  tiny:
    description: "three pages"
    references: [1, 2, 3]
`))
	require.NoError(t, err)
	refs, err := cfg.lookupPreset("tiny")
	require.NoError(t, err)
	assert.Equal(t, []sim.Page{1, 2, 3}, refs)
}

func TestParseDefaultsConfig_StrictFields(t *testing.T) {
	// Typos must cause errors
	_, err := parseDefaultsConfig([]byte(`
version: "1"
prests: {}
`))
	assert.Error(t, err)
}

func TestParseDefaultsConfig_EmptyPresetRejected(t *testing.T) {
	_, err := parseDefaultsConfig([]byte(`
presets:
  hollow:
    description: "nothing"
    references: []
`))
	assert.ErrorContains(t, err, `preset "hollow" has no references`)
}

func TestLookupPreset_UnknownListsAvailable(t *testing.T) {
	cfg := Config{Presets: map[string]Preset{"b": {References: []sim.Page{1}}, "a": {References: []sim.Page{2}}}}
	_, err := cfg.lookupPreset("zzz")
	assert.ErrorContains(t, err, "[a b]")
}

func TestLookupPreset_ReturnsCopy(t *testing.T) {
	cfg := Config{Presets: map[string]Preset{"p": {References: []sim.Page{1, 2}}}}
	refs, err := cfg.lookupPreset("p")
	require.NoError(t, err)
	refs[0] = 99
	assert.Equal(t, sim.Page(1), cfg.Presets["p"].References[0])
}

// TestRepoDefaults_PresetsMatchDocumentedCounts keeps defaults.yaml honest about
// the behavior its descriptions promise.
func TestRepoDefaults_PresetsMatchDocumentedCounts(t *testing.T) {
	cfg := loadDefaultsConfig(repoDefaultsPath(t))

	textbook, err := cfg.lookupPreset("textbook")
	require.NoError(t, err)
	assert.Equal(t, "7 0 1 2 0 3 0 4 2 3 0 3 2", sim.FormatReferences(textbook))

	belady, err := cfg.lookupPreset("belady")
	require.NoError(t, err)
	three, err := sim.SimulateFIFO(belady, 3)
	require.NoError(t, err)
	four, err := sim.SimulateFIFO(belady, 4)
	require.NoError(t, err)
	assert.Equal(t, 9, three.Faults)
	assert.Equal(t, 10, four.Faults)

	loop, err := cfg.lookupPreset("loop")
	require.NoError(t, err)
	for _, p := range []sim.Policy{sim.PolicyFIFO, sim.PolicyLRU} {
		res, err := sim.Simulate(p, loop, 3)
		require.NoError(t, err)
		assert.Equal(t, len(loop), res.Faults, p)
	}
}
