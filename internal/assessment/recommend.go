package assessment

import (
	"github.com/fitpath/fitpath/internal/catalog"
)

// Generic guidance sentences chosen solely by the derived level.
var genericRecommendations = map[Level][]string{
	LevelBeginner: {
		"Start with two or three short sessions per week and focus on learning the movements.",
		"Keep every set two or more reps away from failure while your technique settles in.",
		"Prioritize consistency over intensity for the first month.",
	},
	LevelIntermediate: {
		"Train each movement pattern at least twice per week with a planned progression.",
		"Add small weekly increases in reps or load rather than big jumps.",
		"Track your sessions so plateaus become visible early.",
	},
	LevelAdvanced: {
		"Periodize your training with deliberate lighter weeks every fourth to sixth week.",
		"Use harder exercise variations before reaching for more volume.",
		"Address your weakest movement pattern first in each session.",
	},
}

// Recommendations returns the generic sentences for the level followed
// by category specific sentences appended in the fixed order the answer
// predicates are checked.
func Recommendations(categoryID string, level Level, answers map[string]Answer) []string {
	recs := make([]string, 0, len(genericRecommendations[level])+2)
	recs = append(recs, genericRecommendations[level]...)

	switch categoryID {
	case catalog.CategoryUpperBody:
		if answers["shoulder-pain"].Flag {
			recs = append(recs, "You reported shoulder pain: keep pressing volume low and get the shoulder assessed before progressing.")
		}
		if level == LevelBeginner {
			recs = append(recs, "Begin with incline push-ups and add dead hangs to build grip and shoulder tolerance.")
		}
	case catalog.CategoryLowerBody:
		if answers["knee-pain"].Flag {
			recs = append(recs, "You reported knee pain: favor box squats and avoid deep loaded knee flexion until it calms down.")
		}
		if level == LevelBeginner {
			recs = append(recs, "Practice box squats daily to groove the pattern before adding any load.")
		}
	case catalog.CategoryCore:
		if answers["lower-back-pain"].Flag {
			recs = append(recs, "You reported lower back pain: replace long planks with dead bugs and bird dogs until it resolves.")
		}
		if level == LevelBeginner {
			recs = append(recs, "Short frequent plank holds build endurance faster than rare maximal attempts.")
		}
	case catalog.CategoryCardio:
		if answers["chest-discomfort"].Flag {
			recs = append(recs, "You reported chest discomfort during exercise: see a physician before increasing cardio intensity.")
		}
		if answers["resting-heart-rate"].Number > 80 {
			recs = append(recs, "Your resting heart rate is elevated: build an aerobic base with easy conversational-pace sessions.")
		}
	case catalog.CategoryFlexibility:
		if level == LevelBeginner {
			recs = append(recs, "Spend five minutes daily on the hips, hamstrings and thoracic spine rather than one long weekly stretch.")
		}
	case catalog.CategoryBackground:
		if answers["recent-injury"].Flag {
			recs = append(recs, "You reported a recent injury: get clearance for the affected area before following the progressions.")
		}
	}

	return recs
}

// Per-category progression template order, used to keep the
// recommended progression list deterministic.
var categoryProgressions = map[string][]string{
	catalog.CategoryUpperBody: {catalog.ProgressionPushup, catalog.ProgressionPullup},
	catalog.CategoryLowerBody: {catalog.ProgressionSquat},
	catalog.CategoryCore:      {catalog.ProgressionPlank},
	catalog.CategoryCardio:    {catalog.ProgressionRunning},
}

func progressionOrder(categoryID string) []string {
	return categoryProgressions[categoryID]
}

// StartingLevels applies the per-category decision ladders over the raw
// answers and returns progression template id -> starting level.
// Categories without a mapped progression template produce an empty
// map. Missing answers default to 0 before bucket evaluation. The
// ladders are hand tuned and non-contiguous on purpose, do not
// interpolate the skipped levels.
func StartingLevels(categoryID string, answers map[string]Answer) map[string]int {
	number := func(questionID string) int {
		return answers[questionID].Number
	}

	startingLevels := make(map[string]int)
	switch categoryID {
	case catalog.CategoryUpperBody:
		pushupReps := number("pushup-max")
		variation := number("pushup-variation")
		switch {
		case pushupReps >= 20 && variation >= 4:
			startingLevels[catalog.ProgressionPushup] = 7
		case pushupReps >= 15 && variation >= 3:
			startingLevels[catalog.ProgressionPushup] = 6
		case pushupReps >= 10 && variation >= 3:
			startingLevels[catalog.ProgressionPushup] = 5
		case pushupReps >= 5:
			startingLevels[catalog.ProgressionPushup] = 2
		default:
			startingLevels[catalog.ProgressionPushup] = 1
		}

		hangSeconds := number("hang-time")
		switch {
		case hangSeconds >= 60:
			startingLevels[catalog.ProgressionPullup] = 4
		case hangSeconds >= 30:
			startingLevels[catalog.ProgressionPullup] = 3
		case hangSeconds >= 10:
			startingLevels[catalog.ProgressionPullup] = 2
		default:
			startingLevels[catalog.ProgressionPullup] = 1
		}
	case catalog.CategoryLowerBody:
		squatReps := number("squat-max")
		depth := number("squat-depth")
		switch {
		case squatReps >= 20 && depth >= 3:
			startingLevels[catalog.ProgressionSquat] = 6
		case squatReps >= 15 && depth >= 2:
			startingLevels[catalog.ProgressionSquat] = 5
		case squatReps >= 10:
			startingLevels[catalog.ProgressionSquat] = 3
		case squatReps >= 5:
			startingLevels[catalog.ProgressionSquat] = 2
		default:
			startingLevels[catalog.ProgressionSquat] = 1
		}
	case catalog.CategoryCore:
		plankSeconds := number("plank-hold")
		switch {
		case plankSeconds >= 120:
			startingLevels[catalog.ProgressionPlank] = 6
		case plankSeconds >= 60:
			startingLevels[catalog.ProgressionPlank] = 4
		case plankSeconds >= 30:
			startingLevels[catalog.ProgressionPlank] = 3
		case plankSeconds >= 15:
			startingLevels[catalog.ProgressionPlank] = 2
		default:
			startingLevels[catalog.ProgressionPlank] = 1
		}
	case catalog.CategoryCardio:
		runDuration := number("run-duration")
		weeklyCardio := number("weekly-cardio")
		switch {
		case runDuration >= 4 && weeklyCardio >= 4:
			startingLevels[catalog.ProgressionRunning] = 5
		case runDuration >= 3:
			startingLevels[catalog.ProgressionRunning] = 4
		case runDuration >= 2:
			startingLevels[catalog.ProgressionRunning] = 3
		case weeklyCardio >= 2:
			startingLevels[catalog.ProgressionRunning] = 2
		default:
			startingLevels[catalog.ProgressionRunning] = 1
		}
	}

	return startingLevels
}
