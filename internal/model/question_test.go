package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinaryDetection(t *testing.T) {
	cases := []struct {
		name     string
		question Question
		expected bool
	}{
		{
			name:     "grouped suffix A",
			question: Question{ID: "GSA-GSC-01A"},
			expected: true,
		},
		{
			name:     "grouped suffix F",
			question: Question{ID: "GSA-GSC-12F"},
			expected: true,
		},
		{
			name:     "suffix beyond F",
			question: Question{ID: "GSA-GSC-01G"},
			expected: false,
		},
		{
			name:     "letter suffix without two digits before it",
			question: Question{ID: "GSA-GSC-A"},
			expected: false,
		},
		{
			name:     "one digit before the letter",
			question: Question{ID: "X1A"},
			expected: false,
		},
		{
			name:     "levels 1 and 2 only",
			question: Question{ID: "GSA-GSC-01", Level1Desc: "No", Level2Desc: "Yes"},
			expected: true,
		},
		{
			name:     "all four levels described",
			question: Question{ID: "GSA-GSC-01", Level1Desc: "a", Level2Desc: "b", Level3Desc: "c", Level4Desc: "d"},
			expected: false,
		},
		{
			name:     "level 1 only",
			question: Question{ID: "GSA-GSC-01", Level1Desc: "a"},
			expected: false,
		},
		{
			name:     "no suffix and no levels",
			question: Question{ID: "GSA-GSC-01"},
			expected: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.question.IsBinary())
		})
	}
}

func TestBaseID(t *testing.T) {
	assert.Equal(t, "FC-AIT-01", (&Question{ID: "FC-AIT-01A"}).BaseID())
	assert.Equal(t, "FC-AIT-01", (&Question{ID: "FC-AIT-01F"}).BaseID())
	// No grouping pattern: the ID is its own base.
	assert.Equal(t, "FC-AIT-01", (&Question{ID: "FC-AIT-01"}).BaseID())
	assert.Equal(t, "FC-AIT-01G", (&Question{ID: "FC-AIT-01G"}).BaseID())
}

func TestBinarySubLevel(t *testing.T) {
	cases := map[string]int{
		"FC-AIT-01A": 1,
		"FC-AIT-01B": 1,
		"FC-AIT-01C": 2,
		"FC-AIT-01D": 3,
		"FC-AIT-01E": 3,
		"FC-AIT-01F": 4,
		"FC-AIT-01":  1,
	}
	for id, expected := range cases {
		assert.Equal(t, expected, (&Question{ID: id}).BinarySubLevel(), id)
	}
}

func TestBinaryWeight(t *testing.T) {
	assert.Equal(t, 1.0, (&Question{ID: "FC-AIT-01A"}).BinaryWeight())
	assert.Equal(t, 0.0, (&Question{ID: "FC-AIT-01"}).BinaryWeight())
}

func TestResponseIsYes(t *testing.T) {
	assert.True(t, (&Response{Score: ScoreYes}).IsYes())
	assert.False(t, (&Response{Score: ScoreNo}).IsYes())
	// Out-of-range scores count as No rather than erroring.
	assert.False(t, (&Response{Score: 0}).IsYes())
	assert.True(t, (&Response{Score: 3}).IsYes())
}

func TestAssessmentName(t *testing.T) {
	assert.Equal(t, "Platform", (&Assessment{OrganizationName: "Acme", TeamName: "Platform"}).Name())
	assert.Equal(t, "Acme", (&Assessment{OrganizationName: "Acme"}).Name())
}

func TestAssessmentIsEditable(t *testing.T) {
	assert.True(t, (&Assessment{Status: StatusInProgress}).IsEditable())
	assert.False(t, (&Assessment{Status: StatusCompleted}).IsEditable())
	assert.False(t, (&Assessment{Status: StatusLocked}).IsEditable())
}
