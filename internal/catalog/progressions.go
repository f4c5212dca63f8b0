package catalog

var defaultProgressionTemplates = []ProgressionTemplate{
	{
		ID:   ProgressionPushup,
		Name: "Push-up Progression",
		Levels: []ProgressionLevel{
			{
				Number:      1,
				Name:        "Wall push-ups",
				Description: "Push-ups standing at arm's length from a wall.",
				TargetWeeks: 2,
				TargetReps:  15,
				TargetSets:  3,
				FormChecklist: []string{
					"Body in one straight line",
					"Elbows at roughly 45 degrees to the torso",
				},
			},
			{
				Number:      2,
				Name:        "Incline push-ups",
				Description: "Hands on a bench or table, body straight.",
				TargetWeeks: 2,
				TargetReps:  12,
				TargetSets:  3,
				Prerequisite: "3x15 clean wall push-ups",
			},
			{
				Number:      3,
				Name:        "Knee push-ups",
				Description: "Push-ups from the knees with hips extended.",
				TargetWeeks: 3,
				TargetReps:  12,
				TargetSets:  3,
				Prerequisite: "3x12 clean incline push-ups",
			},
			{
				Number:      4,
				Name:        "Full push-ups",
				Description: "Standard push-ups from the toes.",
				TargetWeeks: 3,
				TargetReps:  10,
				TargetSets:  3,
				Prerequisite: "3x12 clean knee push-ups",
				FormChecklist: []string{
					"Chest touches one fist height from the floor",
					"No sagging hips",
				},
			},
			{
				Number:      5,
				Name:        "Diamond push-ups",
				Description: "Hands close together under the chest.",
				TargetWeeks: 3,
				TargetReps:  10,
				TargetSets:  3,
				Prerequisite: "3x10 clean full push-ups",
			},
			{
				Number:      6,
				Name:        "Decline push-ups",
				Description: "Feet elevated on a bench.",
				TargetWeeks: 4,
				TargetReps:  10,
				TargetSets:  3,
				Prerequisite: "3x10 clean diamond push-ups",
			},
			{
				Number:      7,
				Name:        "Archer push-ups",
				Description: "Weight shifted to one arm, the other arm extended sideways.",
				TargetWeeks: 4,
				TargetReps:  6,
				TargetSets:  3,
				Prerequisite: "3x10 clean decline push-ups",
			},
		},
		TotalWeeks: 21,
		Safety: []string{
			"Stop the set when the body line breaks, not when the arms give out",
			"Skip pressing work on days with shoulder pain",
		},
		CommonMistakes: []string{
			"Flaring elbows straight out to the sides",
			"Craning the neck toward the floor",
			"Half range of motion at the bottom",
		},
		ProgressSigns: []string{
			"All target sets completed with 2+ reps in reserve",
			"No form breakdown in the last rep of the last set",
		},
		RegressSigns: []string{
			"Unable to complete half the target reps",
			"Pain during or after the session",
		},
		Alternatives: []string{"Dumbbell bench press", "Machine chest press"},
	},
	{
		ID:   ProgressionPullup,
		Name: "Pull-up Progression",
		Levels: []ProgressionLevel{
			{
				Number:            1,
				Name:              "Dead hang",
				Description:       "Passive hang from the bar with both hands.",
				TargetWeeks:       2,
				TargetHoldSeconds: 30,
				TargetSets:        3,
			},
			{
				Number:      2,
				Name:        "Scapular pulls",
				Description: "From a dead hang, pull the shoulder blades down and together.",
				TargetWeeks: 3,
				TargetReps:  8,
				TargetSets:  3,
				Prerequisite: "3x30s dead hang",
			},
			{
				Number:      3,
				Name:        "Negative pull-ups",
				Description: "Jump to the top position and lower down slowly.",
				TargetWeeks: 3,
				TargetReps:  5,
				TargetSets:  3,
				Prerequisite: "3x8 scapular pulls",
				FormChecklist: []string{
					"At least 3 seconds per descent",
					"Controlled all the way to straight arms",
				},
			},
			{
				Number:      4,
				Name:        "Band-assisted pull-ups",
				Description: "Pull-ups with a resistance band under the feet.",
				TargetWeeks: 4,
				TargetReps:  8,
				TargetSets:  3,
				Prerequisite: "3x5 slow negatives",
			},
			{
				Number:      5,
				Name:        "Full pull-ups",
				Description: "Strict pull-ups from a dead hang, chin over the bar.",
				TargetWeeks: 4,
				TargetReps:  5,
				TargetSets:  3,
				Prerequisite: "3x8 band-assisted pull-ups on the lightest band",
			},
		},
		TotalWeeks: 16,
		Safety: []string{
			"No kipping until strict reps are consolidated",
			"Stop hanging work if finger or elbow tendons ache",
		},
		CommonMistakes: []string{
			"Chin reaching instead of chest lifting",
			"Dropping from the top instead of lowering",
		},
		ProgressSigns: []string{
			"Targets reached on two consecutive sessions",
		},
		RegressSigns: []string{
			"Reps collapse below half the target",
		},
		Alternatives: []string{"Lat pulldown", "Inverted rows"},
	},
	{
		ID:   ProgressionSquat,
		Name: "Squat Progression",
		Levels: []ProgressionLevel{
			{
				Number:      1,
				Name:        "Assisted squats",
				Description: "Squats holding a doorframe or suspension trainer.",
				TargetWeeks: 2,
				TargetReps:  12,
				TargetSets:  3,
			},
			{
				Number:      2,
				Name:        "Box squats",
				Description: "Squats to a knee-height box, touch and stand.",
				TargetWeeks: 2,
				TargetReps:  12,
				TargetSets:  3,
				Prerequisite: "3x12 assisted squats",
			},
			{
				Number:      3,
				Name:        "Air squats",
				Description: "Free bodyweight squats to parallel or below.",
				TargetWeeks: 3,
				TargetReps:  15,
				TargetSets:  3,
				Prerequisite: "3x12 box squats",
				FormChecklist: []string{
					"Heels stay on the floor",
					"Knees track over the toes",
				},
			},
			{
				Number:      4,
				Name:        "Goblet squats",
				Description: "Squats holding a dumbbell or kettlebell at the chest.",
				TargetWeeks: 3,
				TargetReps:  10,
				TargetSets:  3,
				Prerequisite: "3x15 air squats below parallel",
			},
			{
				Number:      5,
				Name:        "Bulgarian split squats",
				Description: "Rear foot elevated split squats, each side.",
				TargetWeeks: 4,
				TargetReps:  8,
				TargetSets:  3,
				Prerequisite: "3x10 goblet squats",
			},
			{
				Number:      6,
				Name:        "Pistol squat preparation",
				Description: "Single leg box pistols, descending depth over time.",
				TargetWeeks: 4,
				TargetReps:  5,
				TargetSets:  3,
				Prerequisite: "3x8 Bulgarian split squats per side",
			},
		},
		TotalWeeks: 18,
		Safety: []string{
			"Depth comes before load",
			"Skip loaded squats on days with knee pain",
		},
		CommonMistakes: []string{
			"Heels lifting at the bottom",
			"Knees caving inward on the way up",
		},
		ProgressSigns: []string{
			"All sets at full depth with steady tempo",
		},
		RegressSigns: []string{
			"Depth shrinking set over set",
			"Knee discomfort that outlasts the warm-up",
		},
		Alternatives: []string{"Leg press", "Step-ups"},
	},
	{
		ID:   ProgressionPlank,
		Name: "Plank Progression",
		Levels: []ProgressionLevel{
			{
				Number:            1,
				Name:              "Incline plank",
				Description:       "Forearm plank with hands on a bench.",
				TargetWeeks:       2,
				TargetHoldSeconds: 30,
				TargetSets:        3,
			},
			{
				Number:            2,
				Name:              "Knee plank",
				Description:       "Forearm plank from the knees.",
				TargetWeeks:       2,
				TargetHoldSeconds: 45,
				TargetSets:        3,
				Prerequisite:      "3x30s incline plank",
			},
			{
				Number:            3,
				Name:              "Full plank",
				Description:       "Forearm plank from the toes, straight body line.",
				TargetWeeks:       3,
				TargetHoldSeconds: 45,
				TargetSets:        3,
				Prerequisite:      "3x45s knee plank",
				FormChecklist: []string{
					"Hips level with the shoulders",
					"Glutes and abs braced the whole hold",
				},
			},
			{
				Number:            4,
				Name:              "Long hold plank",
				Description:       "Full plank with extended hold times.",
				TargetWeeks:       3,
				TargetHoldSeconds: 90,
				TargetSets:        2,
				Prerequisite:      "3x45s full plank",
			},
			{
				Number:            5,
				Name:              "Side plank",
				Description:       "Plank on one forearm, each side.",
				TargetWeeks:       3,
				TargetHoldSeconds: 45,
				TargetSets:        2,
				Prerequisite:      "2x90s full plank",
			},
			{
				Number:            6,
				Name:              "Weighted plank",
				Description:       "Full plank with a plate on the upper back.",
				TargetWeeks:       4,
				TargetHoldSeconds: 60,
				TargetSets:        3,
				Prerequisite:      "2x45s side plank per side",
			},
		},
		TotalWeeks: 17,
		Safety: []string{
			"End the hold when the hips start to sag",
			"Keep breathing, never hold the breath through the set",
		},
		CommonMistakes: []string{
			"Hips hiked high to make the hold easier",
			"Shoulders shrugged toward the ears",
		},
		ProgressSigns: []string{
			"Target holds achieved with no shaking in the last 10 seconds",
		},
		RegressSigns: []string{
			"Lower back takes over before the target time",
		},
		Alternatives: []string{"Dead bugs", "Bird dogs"},
	},
	{
		ID:   ProgressionRunning,
		Name: "Running Progression",
		Levels: []ProgressionLevel{
			{
				Number:            1,
				Name:              "Brisk walking",
				Description:       "30 minute brisk walks, conversational pace.",
				TargetWeeks:       2,
				TargetHoldSeconds: 1800,
				TargetSets:        3,
			},
			{
				Number:      2,
				Name:        "Walk-run intervals",
				Description: "Alternate 2 minutes running with 2 minutes walking.",
				TargetWeeks: 3,
				TargetReps:  8,
				TargetSets:  1,
				Prerequisite: "3x30min brisk walks per week",
			},
			{
				Number:            3,
				Name:              "Continuous 20 minute run",
				Description:       "Easy continuous running, no walk breaks.",
				TargetWeeks:       3,
				TargetHoldSeconds: 1200,
				TargetSets:        1,
				Prerequisite:      "8x2min run intervals without strain",
			},
			{
				Number:            4,
				Name:              "Continuous 30 minute run",
				Description:       "Easy continuous running, conversational pace.",
				TargetWeeks:       4,
				TargetHoldSeconds: 1800,
				TargetSets:        1,
				Prerequisite:      "20 minutes continuous running",
			},
			{
				Number:      5,
				Name:        "5k with tempo segments",
				Description: "5 kilometers with 3x3 minute tempo pickups.",
				TargetWeeks: 4,
				TargetReps:  3,
				TargetSets:  1,
				Prerequisite: "30 minutes continuous running",
			},
		},
		TotalWeeks: 16,
		Safety: []string{
			"Increase weekly volume by no more than 10 percent",
			"Stop the session on sharp joint pain, not general fatigue",
		},
		CommonMistakes: []string{
			"Running every interval at maximum effort",
			"Skipping the walking recoveries",
		},
		ProgressSigns: []string{
			"The prescribed session feels easy two weeks in a row",
		},
		RegressSigns: []string{
			"Heart rate drifting high at previously easy paces",
			"Persistent soreness in shins or knees",
		},
		Alternatives: []string{"Cycling intervals", "Rowing machine"},
	},
}
