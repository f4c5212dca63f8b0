package assessment

import (
	"time"
)

// Answer is one raw answer to an assessment question.
// Number carries the option index for multiple_choice questions, the
// chosen value for scale, the rep count or magnitude for performance
// and the seconds for time_based questions. Flag carries the answer
// for boolean questions.
type Answer struct {
	Number int  `json:"number"`
	Flag   bool `json:"flag"`
}

// AnswerSet holds the raw answers of one assessment session,
// keyed by category id, then by question id. Questions the user
// skipped are simply absent.
type AnswerSet map[string]map[string]Answer

// Level can be one of:
//   - beginner
//   - intermediate
//   - advanced
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) String() string {
	return string(l)
}

// Fitness level thresholds over a 0-100 percentage. Note that the
// movement screen risk thresholds (80/60) are a separate table, the
// two must not be unified.
const (
	advancedThreshold     = 70
	intermediateThreshold = 40
)

// LevelForPercentage derives the qualitative fitness level from a
// percentage score. The thresholds are half-open: exactly 70 is
// advanced, exactly 40 is intermediate.
func LevelForPercentage(percentage float64) Level {
	switch {
	case percentage >= advancedThreshold:
		return LevelAdvanced
	case percentage >= intermediateThreshold:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Result is the scored outcome of one assessment category.
type Result struct {
	CategoryID string  `json:"categoryId"`
	Score      int     `json:"score"`
	MaxScore   int     `json:"maxScore"`
	Percentage float64 `json:"percentage"`
	Level      Level   `json:"level"`
	// Recommendations are free-text guidance sentences, generic ones
	// first, category specific ones appended after.
	Recommendations []string `json:"recommendations"`
	// StartingLevels maps progression template id to the level the
	// user should begin that progression at.
	StartingLevels map[string]int `json:"startingLevels"`
}

// UserAssessment is one completed assessment session. It is created
// once, persisted, and never mutated afterwards.
type UserAssessment struct {
	ID                      string    `json:"id"`
	UserID                  string    `json:"userId"`
	CompletedAt             time.Time `json:"completedAt"`
	Results                 []Result  `json:"results"`
	OverallLevel            Level     `json:"overallLevel"`
	RecommendedProgressions []string  `json:"recommendedProgressions"`
	Notes                   string    `json:"notes,omitempty"`
}

// OverallLevel averages the percentage across all category results and
// applies the same 70/40 thresholds. No results defaults to beginner.
func OverallLevel(results []Result) Level {
	if len(results) == 0 {
		return LevelBeginner
	}

	var sum float64
	for _, res := range results {
		sum += res.Percentage
	}
	return LevelForPercentage(sum / float64(len(results)))
}

// RecommendedProgressions collects the progression template ids across
// all results' starting levels, de-duplicated, first seen order.
func RecommendedProgressions(results []Result) []string {
	seen := make(map[string]bool)
	recommended := make([]string, 0)
	for _, res := range results {
		for _, progressionID := range progressionOrder(res.CategoryID) {
			if _, ok := res.StartingLevels[progressionID]; !ok {
				continue
			}
			if seen[progressionID] {
				continue
			}
			seen[progressionID] = true
			recommended = append(recommended, progressionID)
		}
	}
	return recommended
}
