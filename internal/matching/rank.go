package matching

import (
	"sort"
	"strings"
)

// Rankable is implemented by job records that can be scored and filtered by
// location.
type Rankable interface {
	MatchRequirement() JobRequirement
	MatchLocation() (city, province string)
}

// Ranked pairs a job with its resolved requirements and match score.
type Ranked[T any] struct {
	Job                T
	RequiredEducation  string
	RequiredExperience string
	Score              int
}

// Rank scores every job against the profile and returns them by descending
// score. When location is non-blank only jobs whose city or province contains
// it (case-insensitive) are kept. Equal scores keep their input order.
func Rank[T Rankable](profile CandidateProfile, jobs []T, location string) []Ranked[T] {
	loc := normalize(location)
	out := make([]Ranked[T], 0, len(jobs))

	for _, job := range jobs {
		if loc != "" && !inLocation(job, loc) {
			continue
		}
		req := job.MatchRequirement()
		in := NewMatchInput(profile, req)
		out = append(out, Ranked[T]{
			Job:                job,
			RequiredEducation:  in.RequiredEducation,
			RequiredExperience: in.RequiredExperience,
			Score:              Score(in),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func inLocation(job Rankable, loc string) bool {
	city, province := job.MatchLocation()
	return strings.Contains(normalize(city), loc) || strings.Contains(normalize(province), loc)
}
