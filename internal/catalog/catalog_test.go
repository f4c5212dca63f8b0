package catalog_test

import (
	"testing"

	"github.com/fitpath/fitpath/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Lookups(t *testing.T) {
	c := catalog.Default()

	cat, err := c.Category(catalog.CategoryUpperBody)
	require.NoError(t, err)
	assert.Equal(t, "Upper Body Strength", cat.Name)
	assert.Equal(t, []string{catalog.ProgressionPushup, catalog.ProgressionPullup}, cat.ProgressionIDs)

	_, err = c.Category("no-such-category")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	mt, err := c.MovementTest("overhead-squat")
	require.NoError(t, err)
	assert.Equal(t, catalog.TestTagMovementPattern, mt.Tag)

	_, err = c.MovementTest("no-such-test")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	tpl, err := c.ProgressionTemplate(catalog.ProgressionPushup)
	require.NoError(t, err)
	assert.Len(t, tpl.Levels, 7)

	_, err = c.ProgressionTemplate("no-such-template")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDefault_CategoriesOrderAndQuestionTypes(t *testing.T) {
	c := catalog.Default()

	categories := c.Categories()
	require.Len(t, categories, 6)
	assert.Equal(t, catalog.CategoryUpperBody, categories[0].ID)
	assert.Equal(t, catalog.CategoryBackground, categories[5].ID)

	for _, cat := range categories {
		require.NotEmpty(t, cat.Questions, "category %s has no questions", cat.ID)
		for _, q := range cat.Questions {
			assert.True(t, q.Type.IsValid(), "question %s has invalid type %s", q.ID, q.Type)
			if q.Type == catalog.QuestionTypeMultipleChoice {
				assert.NotEmpty(t, q.Options, "multiple choice question %s has no options", q.ID)
			}
			if q.Type == catalog.QuestionTypeScale {
				assert.Greater(t, q.ScaleMax, q.ScaleMin, "scale question %s has a degenerate scale", q.ID)
			}
		}
	}
}

func TestDefault_ProgressionTemplatesConsistent(t *testing.T) {
	c := catalog.Default()

	templates := c.ProgressionTemplates()
	require.Len(t, templates, 5)

	for _, tpl := range templates {
		var weeks int
		for i, level := range tpl.Levels {
			assert.Equal(t, i+1, level.Number, "template %s levels out of order", tpl.ID)
			assert.Positive(t, level.TargetWeeks, "template %s level %d has no target weeks", tpl.ID, level.Number)
			weeks += level.TargetWeeks
		}
		assert.Equal(t, tpl.TotalWeeks, weeks, "template %s total weeks mismatch", tpl.ID)
	}
}

func TestDefault_MovementTestsCriteria(t *testing.T) {
	c := catalog.Default()

	tests := c.MovementTests()
	require.Len(t, tests, 7)

	for _, mt := range tests {
		require.Len(t, mt.Criteria, 4, "test %s must have a tier per score 0-3", mt.ID)
		for score, tier := range mt.Criteria {
			assert.Equal(t, score, tier.Score, "test %s criteria out of order", mt.ID)
		}
	}
}
