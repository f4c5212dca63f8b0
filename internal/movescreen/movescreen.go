package movescreen

import (
	"time"
)

// MaxTestScore is the fixed per-test ceiling. Evaluators score each
// movement test 0-3 against the descriptive criteria tiers, the engine
// never computes the per-test score itself.
const MaxTestScore = 3

// TestResult is one evaluator-scored movement test.
type TestResult struct {
	TestID        string   `json:"testId"`
	Score         int      `json:"score"`
	MaxScore      int      `json:"maxScore"`
	Notes         string   `json:"notes,omitempty"`
	Compensations []string `json:"compensations,omitempty"`
	RedFlags      []string `json:"redFlags,omitempty"`
	// bilateral tests carry separate side scores
	LeftScore  *int `json:"leftScore,omitempty"`
	RightScore *int `json:"rightScore,omitempty"`
	Asymmetry  bool `json:"asymmetry"`
}

// RiskLevel can be one of:
//   - low
//   - moderate
//   - high
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

func (r RiskLevel) String() string {
	return string(r)
}

// Risk thresholds over a 0-100 percentage. Deliberately a separate
// table from the fitness level thresholds (70/40), the two engines
// must not share cut points.
const (
	lowRiskThreshold      = 80
	moderateRiskThreshold = 60
)

// RiskForPercentage derives the injury risk tier from the overall
// screen percentage. High percentage means clean movement, so risk is
// low at the top of the scale.
func RiskForPercentage(percentage float64) RiskLevel {
	switch {
	case percentage >= lowRiskThreshold:
		return RiskLow
	case percentage >= moderateRiskThreshold:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// Assessment is one completed movement screen session.
type Assessment struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	CompletedAt     time.Time    `json:"completedAt"`
	Results         []TestResult `json:"results"`
	OverallScore    int          `json:"overallScore"`
	MaxOverallScore int          `json:"maxOverallScore"`
	Percentage      float64      `json:"percentage"`
	RiskLevel       RiskLevel    `json:"riskLevel"`
	Limitations     []string     `json:"limitations"`
	Correctives     []string     `json:"correctives"`
	Restrictions    []string     `json:"restrictions"`
	FollowUps       []string     `json:"followUps"`
}
