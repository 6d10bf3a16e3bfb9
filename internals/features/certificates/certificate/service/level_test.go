package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLevelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{10, "A0"},
		{11, "A1"},
		{20, "A1"},
		{21, "A2"},
		{40, "A2"},
		{41, "B1"},
		{50, "B1"},
		{51, "B2"},
		{70, "B2"},
		{71, "C1"},
		{85, "C1"},
		{86, "C2"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyLevel(tc.score).Code, "score %d", tc.score)
	}
}

func TestClassifyLevelTotalOverAllIntegers(t *testing.T) {
	// di luar [0,100] tetap terpetakan, bukan error
	assert.Equal(t, "A0", ClassifyLevel(-50).Code)
	assert.Equal(t, "A0", ClassifyLevel(0).Code)
	assert.Equal(t, "C2", ClassifyLevel(100).Code)
	assert.Equal(t, "C2", ClassifyLevel(250).Code)
}

func TestClassifyLevelMonotonic(t *testing.T) {
	rank := map[string]int{"A0": 0, "A1": 1, "A2": 2, "B1": 3, "B2": 4, "C1": 5, "C2": 6}
	prev := -1
	for score := -10; score <= 110; score++ {
		cur := rank[ClassifyLevel(score).Code]
		assert.GreaterOrEqual(t, cur, prev, "band turun di score %d", score)
		prev = cur
	}
}

func TestClassifyLevelLabels(t *testing.T) {
	assert.Equal(t, "Novice", ClassifyLevel(5).Label)
	assert.Equal(t, "Beginner", ClassifyLevel(15).Label)
	assert.Equal(t, "Elementary", ClassifyLevel(30).Label)
	assert.Equal(t, "Intermediate", ClassifyLevel(45).Label)
	assert.Equal(t, "Upper Intermediate", ClassifyLevel(60).Label)
	assert.Equal(t, "Advanced", ClassifyLevel(80).Label)
	assert.Equal(t, "Proficient", ClassifyLevel(95).Label)
}

func TestAggregateScore(t *testing.T) {
	assert.Equal(t, 75, AggregateScore(70, 80, 90, 60)) // 300/4 = 75.0
	assert.Equal(t, 0, AggregateScore(0, 0, 0, 1))      // 0.25 turun ke 0
	assert.Equal(t, 1, AggregateScore(0, 0, 1, 1))      // 0.5 naik ke 1
	assert.Equal(t, 100, AggregateScore(100, 100, 100, 100))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 0, RoundScore(nil))

	v := 41.5
	assert.Equal(t, 42, RoundScore(&v))

	v = 41.4
	assert.Equal(t, 41, RoundScore(&v))
}
