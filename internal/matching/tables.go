package matching

import "math"

// Sub-score weights. They sum to MaxScore before bonuses.
const (
	SkillWeight      = 40
	MajorWeight      = 25
	EducationWeight  = 15
	ExperienceWeight = 20

	MaxScore = 100
)

// tier is one row of a threshold table: values >= min earn score.
type tier struct {
	min   float64
	score int
}

// lookup walks an ordered table (highest min first) and returns the score of
// the first tier the value clears, or fallback.
func lookup(table []tier, v float64, fallback int) int {
	for _, t := range table {
		if v >= t.min {
			return t.score
		}
	}
	return fallback
}

// Skill: share of required skills covered by the candidate. The last row
// accepts any non-zero share.
var skillTiers = []tier{
	{min: 1, score: 40},
	{min: 0.75, score: 38},
	{min: 0.5, score: 32},
	{min: 0.25, score: 20},
	{min: math.SmallestNonzeroFloat64, score: 12},
}

const (
	skillNoMatch      = 8
	skillNoCandidate  = 8
	majorExact        = 25
	majorPartial      = 20
	majorMismatch     = 10
	majorNoCandidate  = 8
	educationMeets    = 15
	educationPartial  = 12
	educationMismatch = 7
	educationAbsent   = 5
	experienceMeets   = 20
	experienceAbsent  = 6
)

// Education: candidate level / required level when the candidate falls short.
var educationRatioTiers = []tier{
	{min: 0.8, score: 14},
	{min: 0.6, score: 11},
	{min: 0.4, score: 8},
}

const educationRatioFloor = 6

// Experience: candidate years / required years when the candidate falls short.
var experienceRatioTiers = []tier{
	{min: 0.8, score: 19},
	{min: 0.6, score: 16},
	{min: 0.4, score: 12},
	{min: 0.2, score: 9},
}

const experienceRatioFloor = 7

// Experience scores used when years cannot be read from either text.
const (
	experienceSharedKeyword = 14
	experienceBothDetailed  = 10
	experienceCandidateOnly = 8
	experienceDetailLength  = 10
)

// thresholds holds one minimum per sub-score for a bonus tier.
type thresholds struct {
	skill, major, education, experience int
}

func (t thresholds) cleared(b Breakdown) int {
	n := 0
	if b.Skill >= t.skill {
		n++
	}
	if b.Major >= t.major {
		n++
	}
	if b.Education >= t.education {
		n++
	}
	if b.Experience >= t.experience {
		n++
	}
	return n
}

// countTier maps "number of sub-scores clearing a bonus tier" to points.
type countTier struct {
	min   int
	bonus int
}

type bonusTier struct {
	limits thresholds
	awards []countTier
}

// Only the first tier that awards points applies.
var bonusTiers = []bonusTier{
	{
		limits: thresholds{skill: 35, major: 20, education: 12, experience: 16},
		awards: []countTier{{min: 3, bonus: 10}, {min: 2, bonus: 7}},
	},
	{
		limits: thresholds{skill: 25, major: 15, education: 9, experience: 12},
		awards: []countTier{{min: 3, bonus: 5}, {min: 2, bonus: 3}},
	},
}

// Stacking bonuses.
var skillBonusTiers = []tier{
	{min: 35, score: 5},
	{min: 30, score: 3},
}

const (
	exactMajorBonus  = 3
	balancedBonus    = 2
	balancedMinScore = 5
)
