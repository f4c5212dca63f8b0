package assessment_test

import (
	"testing"

	"github.com/fitpath/fitpath/internal/assessment"
	"github.com/fitpath/fitpath/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestRecommendations(t *testing.T) {
	t.Run("generic sentences come first", func(t *testing.T) {
		recs := assessment.Recommendations(catalog.CategoryFlexibility, assessment.LevelAdvanced, nil)
		assert.Len(t, recs, 3)
	})

	t.Run("shoulder pain adds a caution for upper body", func(t *testing.T) {
		recs := assessment.Recommendations(catalog.CategoryUpperBody, assessment.LevelAdvanced, map[string]assessment.Answer{
			"shoulder-pain": {Flag: true},
		})
		assert.Len(t, recs, 4)
		assert.Contains(t, recs[3], "shoulder pain")
	})

	t.Run("upper body beginner gets both the caution and the drill", func(t *testing.T) {
		recs := assessment.Recommendations(catalog.CategoryUpperBody, assessment.LevelBeginner, map[string]assessment.Answer{
			"shoulder-pain": {Flag: true},
		})
		assert.Len(t, recs, 5)
		assert.Contains(t, recs[3], "shoulder pain")
		assert.Contains(t, recs[4], "incline push-ups")
	})

	t.Run("elevated resting heart rate flagged for cardio", func(t *testing.T) {
		recs := assessment.Recommendations(catalog.CategoryCardio, assessment.LevelIntermediate, map[string]assessment.Answer{
			"resting-heart-rate": {Number: 88},
		})
		assert.Len(t, recs, 4)
		assert.Contains(t, recs[3], "resting heart rate")
	})

	t.Run("resting heart rate of exactly 80 is not flagged", func(t *testing.T) {
		recs := assessment.Recommendations(catalog.CategoryCardio, assessment.LevelIntermediate, map[string]assessment.Answer{
			"resting-heart-rate": {Number: 80},
		})
		assert.Len(t, recs, 3)
	})

	t.Run("recent injury flagged for background", func(t *testing.T) {
		recs := assessment.Recommendations(catalog.CategoryBackground, assessment.LevelAdvanced, map[string]assessment.Answer{
			"recent-injury": {Flag: true},
		})
		assert.Len(t, recs, 4)
		assert.Contains(t, recs[3], "recent injury")
	})
}

func TestStartingLevels_UpperBody(t *testing.T) {
	testCases := []struct {
		name           string
		answers        map[string]assessment.Answer
		expectedPushup int
		expectedPullup int
	}{
		{
			name: "strong on both",
			answers: map[string]assessment.Answer{
				"pushup-max":       {Number: 25},
				"pushup-variation": {Number: 4},
				"hang-time":        {Number: 90},
			},
			expectedPushup: 7,
			expectedPullup: 4,
		},
		{
			name: "mid level",
			answers: map[string]assessment.Answer{
				"pushup-max":       {Number: 12},
				"pushup-variation": {Number: 3},
				"hang-time":        {Number: 20},
			},
			expectedPushup: 5,
			expectedPullup: 2,
		},
		{
			name: "reps without the variation stay low",
			answers: map[string]assessment.Answer{
				"pushup-max":       {Number: 18},
				"pushup-variation": {Number: 1},
				"hang-time":        {Number: 5},
			},
			expectedPushup: 2,
			expectedPullup: 1,
		},
		{
			name:           "no answers start at the bottom",
			answers:        nil,
			expectedPushup: 1,
			expectedPullup: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			levels := assessment.StartingLevels(catalog.CategoryUpperBody, tc.answers)
			assert.Equal(t, tc.expectedPushup, levels[catalog.ProgressionPushup])
			assert.Equal(t, tc.expectedPullup, levels[catalog.ProgressionPullup])
		})
	}
}

func TestStartingLevels_OtherCategories(t *testing.T) {
	t.Run("squat ladder", func(t *testing.T) {
		levels := assessment.StartingLevels(catalog.CategoryLowerBody, map[string]assessment.Answer{
			"squat-max":   {Number: 16},
			"squat-depth": {Number: 2},
		})
		assert.Equal(t, map[string]int{catalog.ProgressionSquat: 5}, levels)
	})

	t.Run("plank ladder", func(t *testing.T) {
		levels := assessment.StartingLevels(catalog.CategoryCore, map[string]assessment.Answer{
			"plank-hold": {Number: 75},
		})
		assert.Equal(t, map[string]int{catalog.ProgressionPlank: 4}, levels)
	})

	t.Run("running ladder falls back to weekly cardio", func(t *testing.T) {
		levels := assessment.StartingLevels(catalog.CategoryCardio, map[string]assessment.Answer{
			"run-duration": {Number: 0},
			"weekly-cardio": {Number: 3},
		})
		assert.Equal(t, map[string]int{catalog.ProgressionRunning: 2}, levels)
	})

	t.Run("categories without progressions produce an empty map", func(t *testing.T) {
		levels := assessment.StartingLevels(catalog.CategoryFlexibility, map[string]assessment.Answer{
			"toe-touch": {Number: 4},
		})
		assert.Empty(t, levels)
	})
}
