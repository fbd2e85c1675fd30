package matching

import (
	"math"
	"strings"
)

// ProfileFields are the ten profile fields counted by Completeness.
type ProfileFields struct {
	Name       string
	Headline   string
	City       string
	Major      string
	Skills     []string
	AvatarURL  string
	Phone      string
	Bio        string
	Experience string
	Education  string
}

// Field keys reported by MissingFields.
const (
	FieldName       = "name"
	FieldHeadline   = "headline"
	FieldCity       = "city"
	FieldMajor      = "major"
	FieldSkills     = "skills"
	FieldAvatar     = "avatar"
	FieldPhone      = "phone"
	FieldBio        = "bio"
	FieldExperience = "experience"
	FieldEducation  = "education"
)

const profileFieldCount = 10

func (p ProfileFields) checks() []struct {
	key    string
	filled bool
} {
	filled := func(s string) bool { return strings.TrimSpace(s) != "" }
	return []struct {
		key    string
		filled bool
	}{
		{FieldName, filled(p.Name)},
		{FieldHeadline, filled(p.Headline)},
		{FieldCity, filled(p.City)},
		{FieldMajor, filled(p.Major)},
		{FieldSkills, len(normalizeAll(p.Skills)) > 0},
		{FieldAvatar, filled(p.AvatarURL)},
		{FieldPhone, filled(p.Phone)},
		{FieldBio, filled(p.Bio)},
		{FieldExperience, filled(p.Experience)},
		{FieldEducation, filled(p.Education)},
	}
}

// Completeness returns the percentage (0-100) of filled profile fields.
func Completeness(p ProfileFields) int {
	completed := 0
	for _, c := range p.checks() {
		if c.filled {
			completed++
		}
	}
	return int(math.Round(float64(completed) / profileFieldCount * 100))
}

// MissingFields lists the keys of the fields still empty, in display order.
func MissingFields(p ProfileFields) []string {
	missing := []string{}
	for _, c := range p.checks() {
		if !c.filled {
			missing = append(missing, c.key)
		}
	}
	return missing
}
