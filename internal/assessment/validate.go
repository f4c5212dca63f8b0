package assessment

import (
	"errors"
	"fmt"

	"github.com/fitpath/fitpath/internal/catalog"
)

var ErrInvalidAnswer = errors.New("invalid answer")

// ValidateAnswers checks every supplied answer against the declared
// bounds of its question. The normalizer assumes in-range values for
// multiple choice and scale answers, so out-of-range input has to be
// rejected here, before any scoring happens.
func ValidateAnswers(categories []catalog.Category, answers AnswerSet) error {
	for _, category := range categories {
		categoryAnswers := answers[category.ID]
		if len(categoryAnswers) == 0 {
			continue
		}
		for _, question := range category.Questions {
			answer, answered := categoryAnswers[question.ID]
			if !answered {
				continue
			}
			if err := validateAnswer(question, answer); err != nil {
				return fmt.Errorf(
					"%w: category [%s], question [%s]: %s",
					ErrInvalidAnswer, category.ID, question.ID, err,
				)
			}
		}
	}
	return nil
}

func validateAnswer(question catalog.Question, answer Answer) error {
	switch question.Type {
	case catalog.QuestionTypeMultipleChoice:
		if answer.Number < 0 || answer.Number >= len(question.Options) {
			return fmt.Errorf(
				"option index %d out of range [0, %d]",
				answer.Number, len(question.Options)-1,
			)
		}
	case catalog.QuestionTypeScale:
		if answer.Number < question.ScaleMin || answer.Number > question.ScaleMax {
			return fmt.Errorf(
				"value %d out of scale [%d, %d]",
				answer.Number, question.ScaleMin, question.ScaleMax,
			)
		}
	case catalog.QuestionTypePerformance, catalog.QuestionTypeTimeBased:
		if answer.Number < 0 {
			return fmt.Errorf("negative value %d", answer.Number)
		}
	}
	return nil
}
