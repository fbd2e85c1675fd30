package matching

import (
	"regexp"
	"strings"
)

// Score returns the 0-100 compatibility score for the given inputs.
func Score(in MatchInput) int {
	return Evaluate(in).Total
}

// ScoreJob resolves the job's requirements and scores the profile against it.
func ScoreJob(profile CandidateProfile, job JobRequirement) int {
	return Score(NewMatchInput(profile, job))
}

// Evaluate computes every sub-score, the bonus and the clamped total.
func Evaluate(in MatchInput) Breakdown {
	b := Breakdown{
		Skill:      skillScore(in.CandidateSkills, in.RequiredSkills),
		Major:      majorScore(in.CandidateMajor, in.RequiredMajor),
		Education:  educationScore(in.CandidateEducation, in.RequiredEducation),
		Experience: experienceScore(in.CandidateExperience, in.RequiredExperience),
	}
	b.Bonus = bonus(b)

	total := b.Skill + b.Major + b.Education + b.Experience + b.Bonus
	if total > MaxScore {
		total = MaxScore
	}
	if total < 0 {
		total = 0
	}
	b.Total = total
	return b
}

func skillScore(candidate, required []string) int {
	req := normalizeAll(required)
	if len(req) == 0 {
		return SkillWeight
	}
	cand := normalizeAll(candidate)
	if len(cand) == 0 {
		return skillNoCandidate
	}

	matched := 0
	for _, r := range req {
		for _, c := range cand {
			if strings.Contains(c, r) || strings.Contains(r, c) {
				matched++
				break
			}
		}
	}

	ratio := float64(matched) / float64(len(req))
	return lookup(skillTiers, ratio, skillNoMatch)
}

func majorScore(candidate, required string) int {
	req := normalize(required)
	if req == "" {
		return MajorWeight
	}
	cand := normalize(candidate)
	switch {
	case cand == "":
		return majorNoCandidate
	case cand == req:
		return majorExact
	case strings.Contains(cand, req) || strings.Contains(req, cand):
		return majorPartial
	default:
		return majorMismatch
	}
}

func educationScore(candidate, required string) int {
	req := normalize(required)
	if req == "" {
		return EducationWeight
	}
	cand := normalize(candidate)
	if cand == "" {
		return educationAbsent
	}

	candLevel, reqLevel := EducationLevel(cand), EducationLevel(req)
	if candLevel > 0 && reqLevel > 0 {
		if candLevel >= reqLevel {
			return educationMeets
		}
		ratio := float64(candLevel) / float64(reqLevel)
		return lookup(educationRatioTiers, ratio, educationRatioFloor)
	}

	switch {
	case cand == req:
		return educationMeets
	case strings.Contains(cand, req) || strings.Contains(req, cand):
		return educationPartial
	default:
		return educationMismatch
	}
}

var educationLevels = []struct {
	level    int
	keywords []string
}{
	{level: 5, keywords: []string{"s3", "doktor"}},
	{level: 4, keywords: []string{"s2", "magister", "strata 2"}},
	{level: 3, keywords: []string{"s1", "sarjana", "strata 1"}},
	{level: 2, keywords: []string{"d3", "diploma"}},
	{level: 1, keywords: []string{"sma", "smk"}},
}

// EducationLevel maps free text to an ordinal level: SMA/SMK=1, D3=2, S1=3,
// S2=4, S3=5. The highest level mentioned wins; unrecognized text is 0.
func EducationLevel(text string) int {
	t := strings.ToLower(text)
	for _, e := range educationLevels {
		if containsAny(t, e.keywords) {
			return e.level
		}
	}
	return 0
}

var (
	yearsPattern = regexp.MustCompile(`(\d+)\s*(?:tahun|years|yr|th)`)
	plusPattern  = regexp.MustCompile(`(\d+)\+`)
)

// ExperienceYears reads the first year count out of free text such as
// "3 tahun", "5 years" or "5+". Returns 0 when no count is found.
func ExperienceYears(text string) int {
	t := strings.ToLower(text)
	for _, re := range []*regexp.Regexp{yearsPattern, plusPattern} {
		if m := re.FindStringSubmatch(t); m != nil {
			return parseYears(m[1])
		}
	}
	return 0
}

var experienceKeywords = []string{"pengalaman", "experience", "bekerja", "kerja", "tahun"}

func experienceScore(candidate, required string) int {
	req := normalize(required)
	if req == "" {
		return ExperienceWeight
	}
	cand := normalize(candidate)
	if cand == "" {
		return experienceAbsent
	}

	candYears, reqYears := ExperienceYears(cand), ExperienceYears(req)
	if candYears > 0 && reqYears > 0 {
		if candYears >= reqYears {
			return experienceMeets
		}
		ratio := float64(candYears) / float64(reqYears)
		return lookup(experienceRatioTiers, ratio, experienceRatioFloor)
	}

	for _, kw := range experienceKeywords {
		if strings.Contains(cand, kw) && strings.Contains(req, kw) {
			return experienceSharedKeyword
		}
	}
	if len(cand) > experienceDetailLength && len(req) > experienceDetailLength {
		return experienceBothDetailed
	}
	return experienceCandidateOnly
}

func bonus(b Breakdown) int {
	total := 0
	for _, t := range bonusTiers {
		n := t.limits.cleared(b)
		awarded := 0
		for _, a := range t.awards {
			if n >= a.min {
				awarded = a.bonus
				break
			}
		}
		if awarded > 0 {
			total += awarded
			break
		}
	}

	total += lookup(skillBonusTiers, float64(b.Skill), 0)
	if b.Major == majorExact {
		total += exactMajorBonus
	}
	if b.Skill > balancedMinScore && b.Major > balancedMinScore &&
		b.Education > balancedMinScore && b.Experience > balancedMinScore {
		total += balancedBonus
	}
	return total
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}
