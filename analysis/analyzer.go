package analysis

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/common"
	"github.com/RyanBlaney/sonido-pctheory/algorithms/pset"
	"github.com/RyanBlaney/sonido-pctheory/analysis/config"
	"github.com/RyanBlaney/sonido-pctheory/logging"
)

// ErrTooManyElements is returned by Subsets when the set is larger than the
// configured hard limit
var ErrTooManyElements = errors.New("analysis: set too large for subset enumeration")

// Report collects the single-set analyses of a pitch set
type Report struct {
	Variant     string      `json:"variant"`
	Cardinality int         `json:"cardinality"`
	Values      []int       `json:"values"`
	SetClass    []int       `json:"set_class"`
	PCINTClass  []int       `json:"pcint_class"`
	Roster      pset.Roster `json:"ic_roster"`
	RosterMean  float64     `json:"ic_roster_mean"`

	// Present when IncludeMatrix is set
	Matrix *mat.SymDense `json:"-"`
	Rows   [][]float64   `json:"ic_matrix,omitempty"`

	// Present when IncludeDFT is set
	DFTMagnitudes []float64 `json:"dft_magnitudes,omitempty"`
	DFTProfile    []float64 `json:"dft_profile,omitempty"` // magnitudes scaled to max 1
}

// Analyzer runs the pitch-set analyses with configured limits and logging
type Analyzer struct {
	config *config.AnalysisConfig
	logger logging.Logger
}

// NewAnalyzer creates an analyzer; a nil config selects the defaults
func NewAnalyzer(cfg *config.AnalysisConfig) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Analyzer{
		config: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "pset_analyzer",
		}),
	}, nil
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() config.AnalysisConfig {
	return *a.config
}

// Analyze computes the interval content and classifications of s
func (a *Analyzer) Analyze(s pset.Set) (*Report, error) {
	pcint, err := pset.PCINTClass(s)
	if err != nil {
		a.logger.Error(err, "Cannot classify set", logging.Fields{"set": s.String()})
		return nil, fmt.Errorf("analyze %s: %w", s, err)
	}

	roster := pset.ICRoster(s)
	report := &Report{
		Variant:     s.Variant().String(),
		Cardinality: s.Len(),
		Values:      s.Values(),
		SetClass:    pset.SetClass(s),
		PCINTClass:  pcint,
		Roster:      roster,
		RosterMean:  roster.Mean(),
	}

	if a.config.IncludeMatrix {
		report.Matrix = pset.ICMatrix(s)
		report.Rows = matrixRows(report.Matrix)
	}

	if a.config.IncludeDFT {
		mags, err := pset.DFTMagnitudes(s)
		if err != nil {
			return nil, fmt.Errorf("analyze %s: %w", s, err)
		}
		report.DFTMagnitudes = mags
		report.DFTProfile = common.MaxNormalize(mags)
	}

	a.logger.Debug("Set analyzed", logging.Fields{
		"set":         s.String(),
		"cardinality": report.Cardinality,
		"pairs":       roster.Total(),
	})

	return report, nil
}

// Compare returns the PM similarity of two sets
func (a *Analyzer) Compare(x, y pset.Set) pset.Similarity {
	return pset.PMSimilarity(x, y)
}

// CompareMany compares target against every candidate concurrently
func (a *Analyzer) CompareMany(ctx context.Context, target pset.Set, candidates []pset.Set) ([]pset.Similarity, error) {
	logger := a.logger.WithContext(ctx)

	results, err := pset.PMSimilarityMany(ctx, target, candidates, a.config.SimilarityWorkers)
	if err != nil {
		logger.Warn("Batch similarity interrupted", logging.Fields{
			"target":     target.String(),
			"candidates": len(candidates),
			"error":      err.Error(),
		})
		return nil, err
	}

	logger.Debug("Batch similarity completed", logging.Fields{
		"target":     target.String(),
		"candidates": len(candidates),
	})
	return results, nil
}

// Subsets enumerates every subset of s, refusing sets above the hard limit
func (a *Analyzer) Subsets(s pset.Set) ([]pset.Set, error) {
	n := s.Len()
	if n > a.config.SubsetHardLimit {
		err := fmt.Errorf("%w: %d elements, limit %d", ErrTooManyElements, n, a.config.SubsetHardLimit)
		a.logger.Error(err, "Subset enumeration refused")
		return nil, err
	}
	if n > a.config.SubsetSoftLimit {
		a.logger.Warn("Large subset enumeration", logging.Fields{
			"cardinality": n,
			"subsets":     1 << n,
		})
	}
	return pset.Subsets(s), nil
}

func matrixRows(mx *mat.SymDense) [][]float64 {
	if mx.IsEmpty() {
		return [][]float64{}
	}
	n := mx.SymmetricDim()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = mx.At(i, j)
		}
	}
	return rows
}
