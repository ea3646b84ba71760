package analysis_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/pitch"
	"github.com/RyanBlaney/sonido-pctheory/algorithms/pset"
	"github.com/RyanBlaney/sonido-pctheory/analysis"
	"github.com/RyanBlaney/sonido-pctheory/analysis/config"
	"github.com/RyanBlaney/sonido-pctheory/logging"
)

// captureLogs installs a writer logger for the duration of the test
func captureLogs(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prev := logging.GetGlobalLogger()
	logging.SetGlobalLogger(logging.NewWriterLogger(&out, &errOut))
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })
	return &out, &errOut
}

func TestNewAnalyzer_Defaults(t *testing.T) {
	a, err := analysis.NewAnalyzer(nil)
	require.NoError(t, err)
	assert.Equal(t, *config.DefaultAnalysisConfig(), a.Config())
}

func TestNewAnalyzer_InvalidConfig(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	cfg.SubsetSoftLimit = 30
	_, err := analysis.NewAnalyzer(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestAnalyze_Trichord(t *testing.T) {
	a, err := analysis.NewAnalyzer(nil)
	require.NoError(t, err)

	r, err := a.Analyze(pset.MustNew(pitch.PitchClass12, 4, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, "PitchClass12", r.Variant)
	assert.Equal(t, 3, r.Cardinality)
	assert.Equal(t, []int{0, 1, 4}, r.Values)
	assert.Equal(t, []int{1, 3}, r.SetClass)
	assert.Equal(t, []int{1, 3}, r.PCINTClass)
	assert.Equal(t, pset.Roster{1: 1, 3: 1, 4: 1}, r.Roster)
	assert.InDelta(t, 8.0/3.0, r.RosterMean, 1e-9)
	assert.Equal(t, [][]float64{{0, 1, 4}, {1, 0, 3}, {4, 3, 0}}, r.Rows)
	require.Len(t, r.DFTMagnitudes, 7)
	assert.InDelta(t, 3.0, r.DFTMagnitudes[0], 1e-9)
	assert.InDelta(t, 1.0, r.DFTProfile[0], 1e-9)
}

func TestAnalyze_OptionalSections(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	cfg.IncludeMatrix = false
	cfg.IncludeDFT = false
	a, err := analysis.NewAnalyzer(cfg)
	require.NoError(t, err)

	r, err := a.Analyze(pset.MustNew(pitch.Pitch12, 0, 7))
	require.NoError(t, err)
	assert.Nil(t, r.Matrix)
	assert.Nil(t, r.DFTMagnitudes)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "ic_matrix")
	assert.Contains(t, string(raw), `"ic_roster":{"7":1}`)
}

func TestAnalyze_EmptySet(t *testing.T) {
	a, err := analysis.NewAnalyzer(nil)
	require.NoError(t, err)

	r, err := a.Analyze(pset.MustNew(pitch.PitchClass24))
	require.NoError(t, err)
	assert.Zero(t, r.Cardinality)
	assert.Empty(t, r.Rows)
	assert.Zero(t, r.RosterMean)
}

func TestAnalyze_UnknownVariant(t *testing.T) {
	_, errOut := captureLogs(t)
	a, err := analysis.NewAnalyzer(nil)
	require.NoError(t, err)

	_, err = a.Analyze(pset.Set{})
	require.ErrorIs(t, err, pset.ErrMissingModulus)
	assert.Contains(t, errOut.String(), "Cannot classify set")
}

func TestCompare(t *testing.T) {
	a, err := analysis.NewAnalyzer(nil)
	require.NoError(t, err)
	got := a.Compare(pset.MustNew(pitch.PitchClass12, 0, 4, 7), pset.MustNew(pitch.PitchClass12, 0, 3, 7))
	assert.Equal(t, pset.Similarity{SharedPitches: 2, SharedIntervals: 3}, got)
}

func TestCompareMany(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	cfg.SimilarityWorkers = 2
	a, err := analysis.NewAnalyzer(cfg)
	require.NoError(t, err)

	target := pset.MustNew(pitch.PitchClass12, 0, 4, 7)
	var candidates []pset.Set
	for n := 0; n < 12; n++ {
		candidates = append(candidates, pset.Transpose(pset.MustNew(pitch.PitchClass12, 0, 3, 7), n))
	}

	got, err := a.CompareMany(context.Background(), target, candidates)
	require.NoError(t, err)
	require.Len(t, got, 12)
	for i, sim := range got {
		assert.Equal(t, 3, sim.SharedIntervals, "candidate %d", i)
	}
	assert.Equal(t, 2, got[0].SharedPitches)
}

func TestCompareMany_Cancelled(t *testing.T) {
	_, errOut := captureLogs(t)
	a, err := analysis.NewAnalyzer(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.CompareMany(ctx, pset.MustNew(pitch.PitchClass12, 0), []pset.Set{pset.MustNew(pitch.PitchClass12, 0)})
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, errOut.String(), "Batch similarity interrupted")
}

func TestSubsets_Limits(t *testing.T) {
	_, errOut := captureLogs(t)
	cfg := config.DefaultAnalysisConfig()
	cfg.SubsetSoftLimit = 3
	cfg.SubsetHardLimit = 5
	a, err := analysis.NewAnalyzer(cfg)
	require.NoError(t, err)

	subs, err := a.Subsets(pset.MustNew(pitch.PitchClass12, 0, 1, 4))
	require.NoError(t, err)
	assert.Len(t, subs, 8)
	assert.Empty(t, errOut.String())

	subs, err = a.Subsets(pset.MustNew(pitch.PitchClass12, 0, 1, 2, 3))
	require.NoError(t, err)
	assert.Len(t, subs, 16)
	assert.Contains(t, errOut.String(), "Large subset enumeration")

	_, err = a.Subsets(pset.MustNew(pitch.PitchClass12, 0, 1, 2, 3, 4, 5))
	require.ErrorIs(t, err, analysis.ErrTooManyElements)
}
