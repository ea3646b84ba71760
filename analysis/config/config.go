package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for inconsistent settings
var ErrInvalidConfig = errors.New("config: invalid analysis config")

// maxSubsetBits keeps 1<<n within an int on every platform
const maxSubsetBits = 30

// AnalysisConfig configures the Analyzer
type AnalysisConfig struct {
	// Subset enumeration
	SubsetSoftLimit int `json:"subset_soft_limit"` // warn above this cardinality
	SubsetHardLimit int `json:"subset_hard_limit"` // refuse above this cardinality

	// Batch similarity
	SimilarityWorkers int `json:"similarity_workers"` // 0 = GOMAXPROCS

	// Report contents
	IncludeMatrix bool `json:"include_matrix"`
	IncludeDFT    bool `json:"include_dft"`
}

// DefaultAnalysisConfig returns sensible defaults for analysis
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		SubsetSoftLimit:   16,
		SubsetHardLimit:   24, // 16M subsets
		SimilarityWorkers: 0,
		IncludeMatrix:     true,
		IncludeDFT:        true,
	}
}

// Validate checks the limits are ordered and within range
func (c *AnalysisConfig) Validate() error {
	switch {
	case c.SubsetSoftLimit < 0 || c.SubsetHardLimit < 0:
		return fmt.Errorf("%w: negative subset limit", ErrInvalidConfig)
	case c.SubsetHardLimit > maxSubsetBits:
		return fmt.Errorf("%w: subset_hard_limit %d exceeds %d", ErrInvalidConfig, c.SubsetHardLimit, maxSubsetBits)
	case c.SubsetSoftLimit > c.SubsetHardLimit:
		return fmt.Errorf("%w: subset_soft_limit %d above subset_hard_limit %d", ErrInvalidConfig, c.SubsetSoftLimit, c.SubsetHardLimit)
	case c.SimilarityWorkers < 0:
		return fmt.Errorf("%w: negative similarity_workers", ErrInvalidConfig)
	}
	return nil
}
