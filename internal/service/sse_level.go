package service

import "strings"

// SSELevel is one of the five SSE-CMM-inspired maturity bands assigned to a
// percentage of confirmed ("Yes") capabilities:
//
//	 0-20 %  Informal
//	21-40 %  Defined
//	41-60 %  Systematic
//	61-80 %  Integrated
//	81-100 % Optimized
type SSELevel string

const (
	LevelInformal   SSELevel = "Informal"
	LevelDefined    SSELevel = "Defined"
	LevelSystematic SSELevel = "Systematic"
	LevelIntegrated SSELevel = "Integrated"
	LevelOptimized  SSELevel = "Optimized"
)

// levelBand is the inclusive upper bound of each band. Bands are contiguous:
// every clamped percentage maps to exactly one level.
var levelBands = []struct {
	upper float64
	level SSELevel
}{
	{0.20, LevelInformal},
	{0.40, LevelDefined},
	{0.60, LevelSystematic},
	{0.80, LevelIntegrated},
	{1.00, LevelOptimized},
}

// ClassifyPercentage maps a 0..1 percentage to its SSE level. Inputs outside
// [0,1] are clamped before classification.
func ClassifyPercentage(p float64) SSELevel {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	for _, band := range levelBands {
		if p <= band.upper {
			return band.level
		}
	}
	return LevelOptimized
}

// Rank returns the 1-5 numeric rank of the level for sorting and comparison.
func (l SSELevel) Rank() int {
	switch l {
	case LevelInformal:
		return 1
	case LevelDefined:
		return 2
	case LevelSystematic:
		return 3
	case LevelIntegrated:
		return 4
	case LevelOptimized:
		return 5
	default:
		return 1
	}
}

// Name returns the enum-style constant name ("INFORMAL") kept for templates
// and clients that key off the historical identifier.
func (l SSELevel) Name() string {
	return strings.ToUpper(string(l))
}

// Description returns the fixed one-sentence characterization of the level.
func (l SSELevel) Description() string {
	switch l {
	case LevelInformal:
		return "Ad-hoc controls; limited consistency; practices not standardized."
	case LevelDefined:
		return "Controls defined; initial standardization; repeatable in pockets."
	case LevelSystematic:
		return "Controls systematically applied; governance emerging; wider coverage."
	case LevelIntegrated:
		return "Controls integrated across lifecycle; cross-functional adoption; measurable."
	case LevelOptimized:
		return "Controls optimized; continuous improvement; predictive and proactive."
	default:
		return ""
	}
}

// LevelFromRank is the inverse of Rank; out-of-range values clamp to the
// nearest band.
func LevelFromRank(rank int) SSELevel {
	switch {
	case rank <= 1:
		return LevelInformal
	case rank == 2:
		return LevelDefined
	case rank == 3:
		return LevelSystematic
	case rank == 4:
		return LevelIntegrated
	default:
		return LevelOptimized
	}
}
