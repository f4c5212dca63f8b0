package catalog

var defaultMovementTests = []MovementTest{
	{
		ID:   "overhead-squat",
		Name: "Overhead Squat",
		Tag:  TestTagMovementPattern,
		Criteria: []CriteriaTier{
			{
				Score:       0,
				Description: "Pain during the movement",
				Indicators:  []string{"Any pain reported, regardless of depth"},
			},
			{
				Score:       1,
				Description: "Cannot reach parallel depth even with heels elevated",
				Indicators:  []string{"Torso collapses forward", "Arms fall well in front of the head"},
			},
			{
				Score:       2,
				Description: "Reaches depth with heels elevated or with compensations",
				Indicators:  []string{"Heels lift on the flat floor", "Knees drift inward"},
			},
			{
				Score:       3,
				Description: "Full depth squat, arms overhead, heels down, upright torso",
			},
		},
		Compensations: []string{
			"Heels lifting off the floor",
			"Knee valgus",
			"Excessive forward lean",
		},
		RedFlags: []string{
			"Pain in the knees or lower back",
			"Sharp pinch in the hips at depth",
		},
		Correctives: CorrectiveSet{
			Mobility:   []string{"Ankle dorsiflexion rocks", "Goblet squat pry holds"},
			Stability:  []string{"Wall-facing squats", "Heels-elevated tempo squats"},
			Activation: []string{"Glute bridges", "Banded lateral walks"},
		},
	},
	{
		ID:   "shoulder-mobility-reach",
		Name: "Shoulder Mobility Reach",
		Tag:  TestTagMobility,
		Criteria: []CriteriaTier{
			{
				Score:       0,
				Description: "Pain during the reach or the clearing test",
			},
			{
				Score:       1,
				Description: "Fists further apart than one and a half hand lengths behind the back",
			},
			{
				Score:       2,
				Description: "Fists within one and a half hand lengths",
			},
			{
				Score:       3,
				Description: "Fists within one hand length behind the back",
			},
		},
		Compensations: []string{
			"Shrugging the lower shoulder to close the gap",
			"Arching the lower back",
		},
		RedFlags: []string{
			"Pain on the impingement clearing test",
		},
		Correctives: CorrectiveSet{
			Mobility:   []string{"Thoracic extensions over a roller", "Sleeper stretch"},
			Stability:  []string{"Quadruped shoulder taps"},
			Activation: []string{"Band pull-aparts", "Prone Y-T-W raises"},
		},
	},
	{
		ID:   "active-straight-leg-raise",
		Name: "Active Straight Leg Raise",
		Tag:  TestTagMobility,
		Criteria: []CriteriaTier{
			{
				Score:       0,
				Description: "Pain during the raise",
			},
			{
				Score:       1,
				Description: "Ankle does not pass the opposite knee",
				Indicators:  []string{"Opposite leg lifts or knee bends"},
			},
			{
				Score:       2,
				Description: "Ankle passes between the opposite knee and mid-thigh",
			},
			{
				Score:       3,
				Description: "Ankle passes the opposite mid-thigh with both legs straight",
			},
		},
		Compensations: []string{
			"Bending the moving knee",
			"Pelvis rolling off the floor",
		},
		RedFlags: []string{
			"Nerve-like pain down the back of the leg",
		},
		Correctives: CorrectiveSet{
			Mobility:   []string{"Supine hamstring stretch with a strap", "Hip flexor stretch"},
			Stability:  []string{"Leg lowering drills with core braced"},
			Activation: []string{"Dead bugs"},
		},
	},
	{
		ID:   "trunk-stability-pushup",
		Name: "Trunk Stability Push-up",
		Tag:  TestTagStability,
		Criteria: []CriteriaTier{
			{
				Score:       0,
				Description: "Pain during the push-up or the press-up clearing test",
			},
			{
				Score:       1,
				Description: "Cannot perform one rep with the body moving as a unit, even from the easier hand position",
			},
			{
				Score:       2,
				Description: "One clean rep from the easier hand position",
				Indicators:  []string{"Men thumbs at chin, women thumbs at clavicle"},
			},
			{
				Score:       3,
				Description: "One clean rep from the harder hand position, no lag in the spine",
			},
		},
		Compensations: []string{
			"Hips lagging behind the chest",
			"One side of the torso rotating up first",
		},
		RedFlags: []string{
			"Lower back pain on the press-up clearing test",
		},
		Correctives: CorrectiveSet{
			Mobility:   []string{"Cat-camel"},
			Stability:  []string{"Front plank progressions", "Push-up position holds"},
			Activation: []string{"Hollow body holds"},
		},
	},
	{
		ID:   "rotary-stability",
		Name: "Rotary Stability",
		Tag:  TestTagStability,
		Criteria: []CriteriaTier{
			{
				Score:       0,
				Description: "Pain during the movement or the flexion clearing test",
			},
			{
				Score:       1,
				Description: "Cannot perform the diagonal pattern with control",
			},
			{
				Score:       2,
				Description: "Clean diagonal pattern, same-side pattern not possible",
			},
			{
				Score:       3,
				Description: "Clean same-side pattern, knee and elbow touch without tipping",
			},
		},
		Compensations: []string{
			"Hips swinging sideways to counterbalance",
			"Rushing through the touch",
		},
		RedFlags: []string{
			"Pain on the spine flexion clearing test",
		},
		Correctives: CorrectiveSet{
			Mobility:   []string{"Open books"},
			Stability:  []string{"Bird dog holds", "Side plank progressions"},
			Activation: []string{"Quadruped diagonal reaches"},
		},
	},
	{
		ID:   "single-leg-step-down",
		Name: "Single Leg Step Down",
		Tag:  TestTagAsymmetry,
		Criteria: []CriteriaTier{
			{
				Score:       0,
				Description: "Pain during the step down",
			},
			{
				Score:       1,
				Description: "Cannot control the descent, heel drops to the floor",
				Indicators:  []string{"Loud heel strike", "Trunk collapses over the stance leg"},
			},
			{
				Score:       2,
				Description: "Controlled descent with a wobble or knee drift",
			},
			{
				Score:       3,
				Description: "Slow controlled descent, knee tracks over the toes, pelvis level",
			},
		},
		Compensations: []string{
			"Knee diving inward",
			"Pelvis dropping on the free-leg side",
		},
		RedFlags: []string{
			"Kneecap pain during the descent",
		},
		Correctives: CorrectiveSet{
			Mobility:   []string{"Ankle dorsiflexion rocks"},
			Stability:  []string{"Lateral step-down practice from a low box"},
			Activation: []string{"Side-lying hip abductions", "Single leg glute bridges"},
		},
	},
	{
		ID:   "inline-lunge",
		Name: "Inline Lunge",
		Tag:  TestTagMovementPattern,
		Criteria: []CriteriaTier{
			{
				Score:       0,
				Description: "Pain during the lunge",
			},
			{
				Score:       1,
				Description: "Loses balance or cannot touch the back knee down",
			},
			{
				Score:       2,
				Description: "Completes the lunge with a wobble or torso lean",
			},
			{
				Score:       3,
				Description: "Knee touches behind the front heel, torso vertical, no wobble",
			},
		},
		Compensations: []string{
			"Front heel lifting",
			"Torso rotating toward the front leg",
		},
		RedFlags: []string{
			"Knee pain on either leg",
		},
		Correctives: CorrectiveSet{
			Mobility:   []string{"Half-kneeling hip flexor stretch", "Ankle dorsiflexion rocks"},
			Stability:  []string{"Split squat holds", "Narrow-stance lunge practice"},
			Activation: []string{"Glute bridges"},
		},
	},
}
