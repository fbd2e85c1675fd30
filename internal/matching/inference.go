package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// Best-effort inference of job requirements that were never entered as
// structured fields. Keyword groups and regex patterns are evaluated in the
// order they are declared; the first hit wins.

var levelEducation = map[JobLevel]string{
	LevelEntry:     EducationSMA,
	LevelMid:       EducationS1,
	LevelSenior:    EducationS1,
	LevelExecutive: EducationS2,
}

var levelExperience = map[JobLevel]string{
	LevelEntry:     "0-1 tahun",
	LevelMid:       "2-4 tahun",
	LevelSenior:    "5+ tahun",
	LevelExecutive: "10+ tahun",
}

type keywordRule struct {
	keywords []string
	value    string
}

var educationRules = []keywordRule{
	{keywords: []string{"s3", "doktor"}, value: EducationS3},
	{keywords: []string{"s2", "magister"}, value: EducationS2},
	{keywords: []string{"s1", "sarjana"}, value: EducationS1},
	{keywords: []string{"d3", "diploma"}, value: EducationD3},
	{keywords: []string{"sma", "smk"}, value: EducationSMA},
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+\s*tahun`),
	regexp.MustCompile(`minimal\s+(\d+)\s*tahun`),
	regexp.MustCompile(`(\d+)\s*tahun`),
}

// maxExperienceYears caps year counts too large to be meaningful, including
// ones that overflow int.
const maxExperienceYears = 60

// parseYears converts a run of digits captured by the experience patterns.
func parseYears(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxExperienceYears {
		return maxExperienceYears
	}
	return n
}

var experienceRules = []keywordRule{
	{keywords: []string{"fresh graduate", "entry level"}, value: "0-1 tahun"},
	{keywords: []string{"senior", "lead"}, value: "5+ tahun"},
}

// InferEducation derives a coarse education requirement from the job level,
// falling back to the free-text requirement lines. Returns "" when nothing
// can be inferred.
func InferEducation(job JobRequirement) string {
	if level, ok := job.JobLevel.Normalize(); ok {
		return levelEducation[level]
	}

	text := requirementsText(job.Requirements)
	if text == "" {
		return ""
	}
	return firstRule(text, educationRules)
}

// InferExperience derives a coarse experience requirement ("<N>+ tahun" or a
// level range) from the job level or the requirement lines.
func InferExperience(job JobRequirement) string {
	if level, ok := job.JobLevel.Normalize(); ok {
		return levelExperience[level]
	}

	text := requirementsText(job.Requirements)
	if text == "" {
		return ""
	}

	for _, re := range experiencePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return strconv.Itoa(parseYears(m[1])) + "+ tahun"
	}

	return firstRule(text, experienceRules)
}

// RequiredEducation returns the explicit education requirement of the job if
// one was entered, otherwise the inferred one.
func RequiredEducation(job JobRequirement) string {
	if v := strings.TrimSpace(job.EducationRequired); v != "" {
		return v
	}
	return InferEducation(job)
}

// RequiredExperience is the experience counterpart of RequiredEducation.
func RequiredExperience(job JobRequirement) string {
	if v := strings.TrimSpace(job.ExperienceRequired); v != "" {
		return v
	}
	return InferExperience(job)
}

func requirementsText(lines []string) string {
	return strings.ToLower(strings.TrimSpace(strings.Join(lines, " ")))
}

func firstRule(text string, rules []keywordRule) string {
	for _, rule := range rules {
		if containsAny(text, rule.keywords) {
			return rule.value
		}
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
