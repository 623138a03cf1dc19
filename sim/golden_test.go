package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesim/pagesim/sim/internal/testutil"
)

// TestSimulate_GoldenDataset replays every worked trace in testdata/goldendataset.json
// and checks the fault count, the hit/fault pattern, slot contents and victims step by step.
func TestSimulate_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		t.Run(fmt.Sprintf("%s/%s/%d", tc.Name, tc.Policy, tc.Frames), func(t *testing.T) {
			// GIVEN a golden reference string and frame count
			refs := pages(tc.References...)
			policy, err := ParsePolicy(tc.Policy)
			require.NoError(t, err)

			// WHEN the policy runs
			res := mustSimulate(t, policy, refs, tc.Frames)

			// THEN the aggregate and per-step outcome match the worked trace
			assert.Equal(t, tc.Faults, res.Faults, "faults")
			assert.Equal(t, tc.Pattern, res.HitPattern(), "hit/fault pattern")
			n := float64(len(tc.References))
			testutil.AssertFloat64Equal(t, "hit_ratio", float64(len(tc.References)-tc.Faults)/n, res.HitRatio(), 1e-9)
			testutil.AssertFloat64Equal(t, "miss_ratio", float64(tc.Faults)/n, res.MissRatio(), 1e-9)
			require.Len(t, res.Steps, len(tc.References))
			for i, step := range res.Steps {
				assert.Equal(t, i+1, step.Step)
				assert.Equal(t, refs[i], step.Page)
				assert.Equal(t, pages(tc.FramesAfter[i]...), step.Frames, "frames after step %d", i+1)
				if tc.Evicted[i] == nil {
					assert.Nil(t, step.Evicted, "step %d should not evict", i+1)
				} else if assert.NotNil(t, step.Evicted, "step %d should evict", i+1) {
					assert.Equal(t, Page(*tc.Evicted[i]), *step.Evicted, "victim at step %d", i+1)
				}
			}
		})
	}
}

// TestSimulate_TextbookString_WorkedTrace pins the 13-reference sample with 3 frames.
// FIFO faults on steps 1-4 and 6-11 (10 faults); Optimal needs only 7.
func TestSimulate_TextbookString_WorkedTrace(t *testing.T) {
	tests := []struct {
		policy  Policy
		faults  int
		pattern string
	}{
		{PolicyFIFO, 10, "FFFFHFFFFFFHH"},
		{PolicyLRU, 9, "FFFFHFHFFFFHH"},
		{PolicyOptimal, 7, "FFFFHFHFHHFHH"},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			res := mustSimulate(t, tt.policy, textbookRefs, 3)
			assert.Equal(t, tt.faults, res.Faults)
			assert.Equal(t, tt.pattern, res.HitPattern())
			assert.Equal(t, len(textbookRefs)-tt.faults, res.Hits())
		})
	}
}
