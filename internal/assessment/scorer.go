package assessment

import (
	"github.com/fitpath/fitpath/internal/catalog"
)

// Scorer turns the raw answers of one category into a scored Result.
type Scorer struct {
	normalizer *Normalizer
}

func NewScorer(normalizer *Normalizer) *Scorer {
	return &Scorer{
		normalizer: normalizer,
	}
}

// ScoreCategory iterates the category's questions in declared order and
// accumulates the normalized points of the answered ones. Unanswered
// questions contribute nothing to either sum, they are treated as "not
// yet answered" rather than counted against the user.
func (s *Scorer) ScoreCategory(category catalog.Category, answers map[string]Answer) Result {
	var score, maxScore int
	for _, question := range category.Questions {
		answer, ok := answers[question.ID]
		if !ok {
			continue
		}
		points, maxPoints := s.normalizer.Normalize(question, answer)
		score += points
		maxScore += maxPoints
	}

	var percentage float64
	if maxScore > 0 {
		percentage = float64(score) / float64(maxScore) * 100
	}

	level := LevelForPercentage(percentage)

	return Result{
		CategoryID:      category.ID,
		Score:           score,
		MaxScore:        maxScore,
		Percentage:      percentage,
		Level:           level,
		Recommendations: Recommendations(category.ID, level, answers),
		StartingLevels:  StartingLevels(category.ID, answers),
	}
}
