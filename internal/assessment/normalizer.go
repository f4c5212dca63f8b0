package assessment

import (
	"github.com/fitpath/fitpath/internal/catalog"
)

// Defaults applied for question ids missing from the lookup tables.
const (
	defaultPerformanceCeiling = 10
	defaultTimeCeiling        = 10
	defaultSecondsPerPoint    = 1
)

// Normalizer maps one (question, answer) pair to earned points and the
// question's maximum points. Performance and time based questions use
// per-question-id lookup tables instead of hard-coded switches, so the
// engine can be exercised against fixture catalogs.
type Normalizer struct {
	performanceCeilings map[string]int
	timeCeilings        map[string]int
	secondsPerPoint     map[string]int
}

func NewNormalizer(
	performanceCeilings map[string]int,
	timeCeilings map[string]int,
	secondsPerPoint map[string]int,
) *Normalizer {
	return &Normalizer{
		performanceCeilings: performanceCeilings,
		timeCeilings:        timeCeilings,
		secondsPerPoint:     secondsPerPoint,
	}
}

// DefaultNormalizer carries the production lookup tables.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(
		map[string]int{
			"pushup-max":         20,
			"squat-max":          20,
			"dead-bug-reps":      10,
			"resting-heart-rate": 100,
		},
		map[string]int{
			"hang-time":          10,
			"plank-hold":         10,
			"single-leg-balance": 10,
		},
		map[string]int{
			"hang-time":          6,
			"plank-hold":         12,
			"single-leg-balance": 3,
		},
	)
}

// Normalize never fails: performance and time based raw values are
// clamped by the ceiling, multiple choice and scale answers are assumed
// to be validated against the declared bounds at the input boundary.
func (n *Normalizer) Normalize(question catalog.Question, answer Answer) (points, maxPoints int) {
	switch question.Type {
	case catalog.QuestionTypeMultipleChoice:
		maxPoints = len(question.Options) - 1
		points = answer.Number
	case catalog.QuestionTypeScale:
		maxPoints = question.ScaleMax - question.ScaleMin
		points = answer.Number - question.ScaleMin
	case catalog.QuestionTypeBoolean:
		// reverse scored: these questions ask about pain or injury,
		// "no" is the favorable answer
		maxPoints = 1
		if !answer.Flag {
			points = 1
		}
	case catalog.QuestionTypePerformance:
		maxPoints = n.performanceCeiling(question.ID)
		points = min(answer.Number, maxPoints)
	case catalog.QuestionTypeTimeBased:
		maxPoints = n.timeCeiling(question.ID)
		points = min(answer.Number/n.divisor(question.ID), maxPoints)
	default:
		return 0, 0
	}
	return points, maxPoints
}

func (n *Normalizer) performanceCeiling(questionID string) int {
	if ceiling, ok := n.performanceCeilings[questionID]; ok {
		return ceiling
	}
	return defaultPerformanceCeiling
}

func (n *Normalizer) timeCeiling(questionID string) int {
	if ceiling, ok := n.timeCeilings[questionID]; ok {
		return ceiling
	}
	return defaultTimeCeiling
}

func (n *Normalizer) divisor(questionID string) int {
	if secondsPerPoint, ok := n.secondsPerPoint[questionID]; ok && secondsPerPoint > 0 {
		return secondsPerPoint
	}
	return defaultSecondsPerPoint
}
