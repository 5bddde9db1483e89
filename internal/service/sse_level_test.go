package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPercentageBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		expected   SSELevel
	}{
		{0.00, LevelInformal},
		{0.20, LevelInformal},
		{0.21, LevelDefined},
		{0.40, LevelDefined},
		{0.41, LevelSystematic},
		{0.60, LevelSystematic},
		{0.61, LevelIntegrated},
		{0.80, LevelIntegrated},
		{0.81, LevelOptimized},
		{1.00, LevelOptimized},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, ClassifyPercentage(tc.percentage), "percentage %.2f", tc.percentage)
	}
}

func TestClassifyPercentageTotality(t *testing.T) {
	// Every value in [0,1] must land in exactly one band.
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000.0
		level := ClassifyPercentage(p)
		assert.Contains(t, []SSELevel{
			LevelInformal, LevelDefined, LevelSystematic, LevelIntegrated, LevelOptimized,
		}, level, "percentage %.3f", p)
	}
}

func TestClassifyPercentageClampsOutOfRange(t *testing.T) {
	assert.Equal(t, LevelInformal, ClassifyPercentage(-0.5))
	assert.Equal(t, LevelOptimized, ClassifyPercentage(1.5))
}

func TestLevelRankRoundTrip(t *testing.T) {
	levels := []SSELevel{LevelInformal, LevelDefined, LevelSystematic, LevelIntegrated, LevelOptimized}
	for i, level := range levels {
		assert.Equal(t, i+1, level.Rank())
		assert.Equal(t, level, LevelFromRank(level.Rank()))
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "INFORMAL", LevelInformal.Name())
	assert.Equal(t, "OPTIMIZED", LevelOptimized.Name())
}

func TestLevelDescriptionsNonEmpty(t *testing.T) {
	for _, level := range []SSELevel{LevelInformal, LevelDefined, LevelSystematic, LevelIntegrated, LevelOptimized} {
		assert.NotEmpty(t, level.Description())
	}
}
