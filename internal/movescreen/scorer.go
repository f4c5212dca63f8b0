package movescreen

import (
	"errors"
	"fmt"

	"github.com/fitpath/fitpath/internal/catalog"
)

var ErrInvalidScore = errors.New("invalid test score")

// Scorer aggregates evaluator-scored test results into one screen
// outcome. It only needs the catalog to resolve test names, tags and
// corrective exercise lists.
type Scorer struct {
	catalog testCatalog
}

type testCatalog interface {
	MovementTest(id string) (catalog.MovementTest, error)
}

func NewScorer(testCatalog testCatalog) *Scorer {
	return &Scorer{
		catalog: testCatalog,
	}
}

// Score sums the supplied results, derives the risk tier and collects
// limitations, correctives and restrictions. Results are processed in
// the order given, all derived lists keep first-seen order. It fails
// on a result referencing a test id the catalog does not know, or on
// a score outside the 0-3 rubric.
func (s *Scorer) Score(results []TestResult) (*Assessment, error) {
	var overallScore, maxOverallScore int
	var limitations []string
	var correctives []string
	var restrictions []string
	seenCorrectives := make(map[string]bool)
	seenRestrictions := make(map[string]bool)

	scored := make([]TestResult, 0, len(results))
	for _, res := range results {
		test, err := s.catalog.MovementTest(res.TestID)
		if err != nil {
			return nil, fmt.Errorf("movement test [%s]: %w", res.TestID, err)
		}
		if err := validateResult(res); err != nil {
			return nil, fmt.Errorf("movement test [%s]: %w", res.TestID, err)
		}

		res.MaxScore = MaxTestScore
		res.Asymmetry = IsAsymmetric(res.LeftScore, res.RightScore)
		scored = append(scored, res)

		overallScore += res.Score
		maxOverallScore += res.MaxScore

		if res.Score > 1 {
			continue
		}

		limitations = append(limitations, fmt.Sprintf("%s: %s", test.Name, test.Tag))

		for _, exercise := range correctiveExercises(test.Correctives) {
			if seenCorrectives[exercise] {
				continue
			}
			seenCorrectives[exercise] = true
			correctives = append(correctives, exercise)
		}

		if len(res.RedFlags) > 0 {
			restriction := fmt.Sprintf("Avoid high-intensity %s exercises until %s improves", test.Tag, test.Name)
			if !seenRestrictions[restriction] {
				seenRestrictions[restriction] = true
				restrictions = append(restrictions, restriction)
			}
		}
	}

	var percentage float64
	if maxOverallScore > 0 {
		percentage = float64(overallScore) / float64(maxOverallScore) * 100
	}
	riskLevel := RiskForPercentage(percentage)

	return &Assessment{
		Results:         scored,
		OverallScore:    overallScore,
		MaxOverallScore: maxOverallScore,
		Percentage:      percentage,
		RiskLevel:       riskLevel,
		Limitations:     limitations,
		Correctives:     correctives,
		Restrictions:    restrictions,
		FollowUps:       FollowUps(riskLevel, len(limitations) > 0),
	}, nil
}

func validateResult(res TestResult) error {
	if err := validateScore("score", res.Score); err != nil {
		return err
	}
	if res.LeftScore != nil {
		if err := validateScore("left score", *res.LeftScore); err != nil {
			return err
		}
	}
	if res.RightScore != nil {
		if err := validateScore("right score", *res.RightScore); err != nil {
			return err
		}
	}
	return nil
}

func validateScore(what string, score int) error {
	if score < 0 || score > MaxTestScore {
		return fmt.Errorf("%w: %s %d outside [0, %d]", ErrInvalidScore, what, score, MaxTestScore)
	}
	return nil
}

// IsAsymmetric reports a meaningful left/right imbalance. A single
// point of difference is within normal variation, only a gap of two
// or more counts.
func IsAsymmetric(left, right *int) bool {
	if left == nil || right == nil {
		return false
	}
	diff := *left - *right
	if diff < 0 {
		diff = -diff
	}
	return diff > 1
}

func correctiveExercises(set catalog.CorrectiveSet) []string {
	exercises := make([]string, 0, len(set.Mobility)+len(set.Stability)+len(set.Activation))
	exercises = append(exercises, set.Mobility...)
	exercises = append(exercises, set.Stability...)
	exercises = append(exercises, set.Activation...)
	return exercises
}

var followUpsByRisk = map[RiskLevel][]string{
	RiskLow: {
		"Your movement quality is solid, continue with your regular training.",
		"Re-screen in eight to twelve weeks to confirm nothing has drifted.",
	},
	RiskModerate: {
		"Add the corrective exercises to your warm-up three times per week.",
		"Keep training but hold off on adding load to the flagged patterns.",
		"Re-screen in four to six weeks to track improvement.",
	},
	RiskHigh: {
		"Prioritize the corrective work over regular training for the next month.",
		"Consider a session with a qualified movement professional.",
		"Re-screen in four weeks before returning to intense training.",
	},
}

// FollowUps returns the fixed guidance sentences for the risk tier,
// with one extra sentence appended when limitations were found.
func FollowUps(risk RiskLevel, hasLimitations bool) []string {
	followUps := make([]string, 0, 4)
	followUps = append(followUps, followUpsByRisk[risk]...)
	if hasLimitations {
		followUps = append(followUps, "Focus on the listed limitations first, they are holding the rest back.")
	}
	return followUps
}
