package catalog

// assessment category identifiers
const (
	CategoryUpperBody   = "upper-body-strength"
	CategoryLowerBody   = "lower-body-strength"
	CategoryCore        = "core-strength"
	CategoryCardio      = "cardiovascular-fitness"
	CategoryFlexibility = "flexibility-mobility"
	CategoryBackground  = "fitness-background"
)

// progression template identifiers
const (
	ProgressionPushup  = "pushup-progression"
	ProgressionPullup  = "pullup-progression"
	ProgressionSquat   = "squat-progression"
	ProgressionPlank   = "plank-progression"
	ProgressionRunning = "running-progression"
)

var defaultCategories = []Category{
	{
		ID:   CategoryUpperBody,
		Name: "Upper Body Strength",
		Questions: []Question{
			{
				ID:     "pushup-max",
				Type:   QuestionTypePerformance,
				Prompt: "How many push-ups can you do in a single set with good form?",
				Unit:   "reps",
			},
			{
				ID:     "pushup-variation",
				Type:   QuestionTypeMultipleChoice,
				Prompt: "What is the hardest push-up variation you can perform for 5 clean reps?",
				Options: []string{
					"Wall push-ups",
					"Incline push-ups",
					"Knee push-ups",
					"Full push-ups",
					"Decline push-ups",
				},
			},
			{
				ID:     "hang-time",
				Type:   QuestionTypeTimeBased,
				Prompt: "How long can you hang from a bar with both hands?",
				Unit:   "seconds",
			},
			{
				ID:     "shoulder-pain",
				Type:   QuestionTypeBoolean,
				Prompt: "Do you currently feel pain in your shoulders during pressing movements?",
			},
		},
		ProgressionIDs: []string{ProgressionPushup, ProgressionPullup},
	},
	{
		ID:   CategoryLowerBody,
		Name: "Lower Body Strength",
		Questions: []Question{
			{
				ID:     "squat-max",
				Type:   QuestionTypePerformance,
				Prompt: "How many bodyweight squats can you do in a single set?",
				Unit:   "reps",
			},
			{
				ID:     "squat-depth",
				Type:   QuestionTypeMultipleChoice,
				Prompt: "How deep can you squat while keeping your heels on the ground?",
				Options: []string{
					"Quarter squat",
					"Half squat",
					"Parallel",
					"Below parallel",
					"Full depth, upright torso",
				},
			},
			{
				ID:     "single-leg-balance",
				Type:   QuestionTypeTimeBased,
				Prompt: "How long can you balance on one leg with your eyes open?",
				Unit:   "seconds",
			},
			{
				ID:     "knee-pain",
				Type:   QuestionTypeBoolean,
				Prompt: "Do you currently feel pain in your knees when squatting or climbing stairs?",
			},
		},
		ProgressionIDs: []string{ProgressionSquat},
	},
	{
		ID:   CategoryCore,
		Name: "Core Strength",
		Questions: []Question{
			{
				ID:     "plank-hold",
				Type:   QuestionTypeTimeBased,
				Prompt: "How long can you hold a forearm plank with a straight body line?",
				Unit:   "seconds",
			},
			{
				ID:     "dead-bug-reps",
				Type:   QuestionTypePerformance,
				Prompt: "How many slow dead-bug reps per side can you do without arching your lower back?",
				Unit:   "reps",
			},
			{
				ID:     "lower-back-pain",
				Type:   QuestionTypeBoolean,
				Prompt: "Do you currently feel pain in your lower back during everyday activities?",
			},
		},
		ProgressionIDs: []string{ProgressionPlank},
	},
	{
		ID:   CategoryCardio,
		Name: "Cardiovascular Fitness",
		Questions: []Question{
			{
				ID:       "weekly-cardio",
				Type:     QuestionTypeScale,
				Prompt:   "How many days per week do you currently do at least 20 minutes of cardio?",
				ScaleMin: 0,
				ScaleMax: 7,
			},
			{
				ID:     "run-duration",
				Type:   QuestionTypeMultipleChoice,
				Prompt: "How long can you run continuously without stopping to walk?",
				Options: []string{
					"I cannot run",
					"Up to 5 minutes",
					"Up to 15 minutes",
					"Up to 30 minutes",
					"45 minutes or more",
				},
			},
			{
				ID:     "resting-heart-rate",
				Type:   QuestionTypePerformance,
				Prompt: "What is your resting heart rate?",
				Unit:   "bpm",
			},
			{
				ID:     "chest-discomfort",
				Type:   QuestionTypeBoolean,
				Prompt: "Have you felt chest discomfort or unusual breathlessness during exercise recently?",
			},
		},
		ProgressionIDs: []string{ProgressionRunning},
	},
	{
		ID:   CategoryFlexibility,
		Name: "Flexibility & Mobility",
		Questions: []Question{
			{
				ID:     "toe-touch",
				Type:   QuestionTypeMultipleChoice,
				Prompt: "Standing with straight legs, how far can you reach toward your toes?",
				Options: []string{
					"Mid shin or above",
					"Ankles",
					"Toes",
					"Knuckles on the floor",
					"Palms flat on the floor",
				},
			},
			{
				ID:       "overhead-reach",
				Type:     QuestionTypeScale,
				Prompt:   "How freely can you raise both arms straight overhead? (1 = very restricted, 5 = fully free)",
				ScaleMin: 1,
				ScaleMax: 5,
			},
			{
				ID:     "morning-stiffness",
				Type:   QuestionTypeBoolean,
				Prompt: "Do you regularly feel stiff for more than 30 minutes after waking up?",
			},
		},
	},
	{
		ID:   CategoryBackground,
		Name: "Fitness Background",
		Questions: []Question{
			{
				ID:       "training-years",
				Type:     QuestionTypeScale,
				Prompt:   "For how many of the last 10 years have you trained regularly?",
				ScaleMin: 0,
				ScaleMax: 10,
			},
			{
				ID:       "weekly-sessions",
				Type:     QuestionTypeScale,
				Prompt:   "How many workout sessions do you currently manage per week?",
				ScaleMin: 0,
				ScaleMax: 7,
			},
			{
				ID:     "recent-injury",
				Type:   QuestionTypeBoolean,
				Prompt: "Have you had an injury in the last 6 months that still limits your training?",
			},
		},
	},
}
