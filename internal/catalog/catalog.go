package catalog

import "errors"

// ErrNotFound is returned when a catalog entry is looked up by an
// unknown identifier. All reference data is expected to resolve, so
// callers should treat this as a genuine error, not a soft miss.
var ErrNotFound = errors.New("catalog entry not found")

// QuestionType can be one of:
//   - multiple_choice
//   - scale
//   - boolean
//   - performance
//   - time_based
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeScale          QuestionType = "scale"
	QuestionTypeBoolean        QuestionType = "boolean"
	QuestionTypePerformance    QuestionType = "performance"
	QuestionTypeTimeBased      QuestionType = "time_based"
)

func (qt QuestionType) String() string {
	return string(qt)
}

func (qt QuestionType) IsValid() bool {
	switch qt {
	case QuestionTypeMultipleChoice,
		QuestionTypeScale,
		QuestionTypeBoolean,
		QuestionTypePerformance,
		QuestionTypeTimeBased:
		return true
	default:
		return false
	}
}

type Question struct {
	ID     string       `json:"id"`
	Type   QuestionType `json:"type"`
	Prompt string       `json:"prompt"`
	// Options is set for multiple_choice questions, ordered from the
	// least to the most favorable answer.
	Options []string `json:"options,omitempty"`
	// ScaleMin and ScaleMax bound the answer for scale questions.
	ScaleMin int `json:"scaleMin,omitempty"`
	ScaleMax int `json:"scaleMax,omitempty"`
	// Unit labels performance and time_based answers (reps, seconds, bpm).
	Unit string `json:"unit,omitempty"`
}

type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
	// ProgressionIDs are the progression templates this category can
	// produce starting levels for.
	ProgressionIDs []string `json:"progressionIds,omitempty"`
}

// TestTag can be one of:
//   - mobility
//   - stability
//   - movement_pattern
//   - asymmetry
type TestTag string

const (
	TestTagMobility        TestTag = "mobility"
	TestTagStability       TestTag = "stability"
	TestTagMovementPattern TestTag = "movement_pattern"
	TestTagAsymmetry       TestTag = "asymmetry"
)

func (tt TestTag) String() string {
	return string(tt)
}

// CriteriaTier describes the rubric for one score on the fixed 0-3
// movement test scale. The evaluator matches observed performance to a
// tier by hand, scoring is not a formula.
type CriteriaTier struct {
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Indicators  []string `json:"indicators,omitempty"`
}

type CorrectiveSet struct {
	Mobility   []string `json:"mobility,omitempty"`
	Stability  []string `json:"stability,omitempty"`
	Activation []string `json:"activation,omitempty"`
}

type MovementTest struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Tag           TestTag        `json:"tag"`
	Criteria      []CriteriaTier `json:"criteria"`
	Compensations []string       `json:"compensations,omitempty"`
	RedFlags      []string       `json:"redFlags,omitempty"`
	Correctives   CorrectiveSet  `json:"correctives"`
}

type ProgressionLevel struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetWeeks int    `json:"targetWeeks"`
	// progression criteria, zero when not applicable
	TargetReps        int      `json:"targetReps,omitempty"`
	TargetSets        int      `json:"targetSets,omitempty"`
	TargetHoldSeconds int      `json:"targetHoldSeconds,omitempty"`
	FormChecklist     []string `json:"formChecklist,omitempty"`
	Prerequisite      string   `json:"prerequisite,omitempty"`
}

type ProgressionTemplate struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Levels         []ProgressionLevel `json:"levels"`
	TotalWeeks     int                `json:"totalWeeks"`
	Safety         []string           `json:"safety,omitempty"`
	CommonMistakes []string           `json:"commonMistakes,omitempty"`
	ProgressSigns  []string           `json:"progressSigns,omitempty"`
	RegressSigns   []string           `json:"regressSigns,omitempty"`
	Alternatives   []string           `json:"alternatives,omitempty"`
}

// InMemory is a read-only catalog of the assessment reference data.
// The scoring engine only ever reads from it, so it is safe for
// concurrent use once constructed.
type InMemory struct {
	categories   []Category
	categoryByID map[string]Category

	tests    []MovementTest
	testByID map[string]MovementTest

	templates    []ProgressionTemplate
	templateByID map[string]ProgressionTemplate
}

func NewInMemory(
	categories []Category,
	tests []MovementTest,
	templates []ProgressionTemplate,
) *InMemory {
	c := &InMemory{
		categories:   categories,
		categoryByID: make(map[string]Category, len(categories)),
		tests:        tests,
		testByID:     make(map[string]MovementTest, len(tests)),
		templates:    templates,
		templateByID: make(map[string]ProgressionTemplate, len(templates)),
	}
	for _, cat := range categories {
		c.categoryByID[cat.ID] = cat
	}
	for _, mt := range tests {
		c.testByID[mt.ID] = mt
	}
	for _, tpl := range templates {
		c.templateByID[tpl.ID] = tpl
	}
	return c
}

// Default returns the production catalog content.
func Default() *InMemory {
	return NewInMemory(defaultCategories, defaultMovementTests, defaultProgressionTemplates)
}

func (c *InMemory) Categories() []Category {
	return c.categories
}

func (c *InMemory) Category(id string) (Category, error) {
	cat, ok := c.categoryByID[id]
	if !ok {
		return Category{}, ErrNotFound
	}
	return cat, nil
}

func (c *InMemory) MovementTests() []MovementTest {
	return c.tests
}

func (c *InMemory) MovementTest(id string) (MovementTest, error) {
	mt, ok := c.testByID[id]
	if !ok {
		return MovementTest{}, ErrNotFound
	}
	return mt, nil
}

func (c *InMemory) ProgressionTemplates() []ProgressionTemplate {
	return c.templates
}

func (c *InMemory) ProgressionTemplate(id string) (ProgressionTemplate, error) {
	tpl, ok := c.templateByID[id]
	if !ok {
		return ProgressionTemplate{}, ErrNotFound
	}
	return tpl, nil
}
