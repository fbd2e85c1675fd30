// Package matching scores how well a candidate profile fits a job posting.
//
// Every function in this package is pure: no I/O, no shared state, safe to
// call from concurrent requests. Optional inputs are plain strings and slices
// where a blank value means "absent".
package matching

import "strings"

// JobLevel is the coarse seniority label attached to a job posting.
type JobLevel string

const (
	LevelEntry     JobLevel = "Entry Level"
	LevelMid       JobLevel = "Mid Level"
	LevelSenior    JobLevel = "Senior Level"
	LevelExecutive JobLevel = "Executive"
)

// JobLevels lists the accepted labels in ascending seniority.
var JobLevels = []JobLevel{LevelEntry, LevelMid, LevelSenior, LevelExecutive}

// Normalize maps a label to its canonical form, ignoring case and
// surrounding whitespace. Unknown or blank labels report ok=false.
func (l JobLevel) Normalize() (JobLevel, bool) {
	s := strings.TrimSpace(string(l))
	if s == "" {
		return "", false
	}
	for _, known := range JobLevels {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// Education labels produced by inference.
const (
	EducationSMA = "SMA/SMK"
	EducationD3  = "D3"
	EducationS1  = "S1"
	EducationS2  = "S2"
	EducationS3  = "S3"
)

// CandidateProfile is the subset of a job seeker's profile used for scoring.
type CandidateProfile struct {
	Skills     []string
	Major      string
	Education  string
	Experience string
}

// JobRequirement is the subset of a job posting used for scoring.
// EducationRequired and ExperienceRequired hold explicit structured
// requirements; when blank they are inferred from JobLevel or Requirements.
type JobRequirement struct {
	SkillsRequired     []string
	MajorRequired      string
	JobLevel           JobLevel
	Requirements       []string
	EducationRequired  string
	ExperienceRequired string
}

// MatchInput carries the eight scoring inputs. Required education and
// experience are expected post-inference (see RequiredEducation).
type MatchInput struct {
	CandidateSkills     []string
	RequiredSkills      []string
	CandidateMajor      string
	RequiredMajor       string
	CandidateEducation  string
	RequiredEducation   string
	CandidateExperience string
	RequiredExperience  string
}

// NewMatchInput resolves the job's education and experience requirements
// and pairs them with the candidate's fields.
func NewMatchInput(profile CandidateProfile, job JobRequirement) MatchInput {
	return MatchInput{
		CandidateSkills:     profile.Skills,
		RequiredSkills:      job.SkillsRequired,
		CandidateMajor:      profile.Major,
		RequiredMajor:       job.MajorRequired,
		CandidateEducation:  profile.Education,
		RequiredEducation:   RequiredEducation(job),
		CandidateExperience: profile.Experience,
		RequiredExperience:  RequiredExperience(job),
	}
}

// Breakdown exposes the individual components of a match score.
type Breakdown struct {
	Skill      int `json:"skill"`
	Major      int `json:"major"`
	Education  int `json:"education"`
	Experience int `json:"experience"`
	Bonus      int `json:"bonus"`
	Total      int `json:"total"`
}
