package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	id       int
	city     string
	province string
	req      JobRequirement
}

func (l listing) MatchRequirement() JobRequirement { return l.req }

func (l listing) MatchLocation() (string, string) { return l.city, l.province }

func ids(ranked []Ranked[listing]) []int {
	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.Job.id
	}
	return out
}

func TestRank(t *testing.T) {
	profile := CandidateProfile{
		Skills:     []string{"Go", "PostgreSQL"},
		Major:      "Teknik Informatika",
		Education:  "S1 Teknik Informatika",
		Experience: "3 tahun backend",
	}

	jobs := []listing{
		{id: 1, city: "Bandung", province: "Jawa Barat", req: JobRequirement{
			SkillsRequired: []string{"Java", "Spring"}, MajorRequired: "Akuntansi", JobLevel: LevelExecutive,
		}},
		{id: 2, city: "Jakarta Selatan", province: "DKI Jakarta", req: JobRequirement{
			SkillsRequired: []string{"Go", "PostgreSQL"}, MajorRequired: "Informatika", JobLevel: LevelMid,
		}},
		{id: 3, city: "Surabaya", province: "Jawa Timur", req: JobRequirement{
			SkillsRequired: []string{"Go", "Kafka"}, Requirements: []string{"Minimal S1", "Minimal 5 tahun"},
		}},
	}

	t.Run("orders by descending score", func(t *testing.T) {
		ranked := Rank(profile, jobs, "")
		require.Len(t, ranked, 3)
		assert.Equal(t, []int{2, 3, 1}, ids(ranked))
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
		}
	})

	t.Run("attaches resolved requirements", func(t *testing.T) {
		ranked := Rank(profile, jobs, "")
		byID := map[int]Ranked[listing]{}
		for _, r := range ranked {
			byID[r.Job.id] = r
		}
		assert.Equal(t, "S2", byID[1].RequiredEducation)
		assert.Equal(t, "10+ tahun", byID[1].RequiredExperience)
		assert.Equal(t, "S1", byID[3].RequiredEducation)
		assert.Equal(t, "5+ tahun", byID[3].RequiredExperience)
		assert.Equal(t, ScoreJob(profile, jobs[2].req), byID[3].Score)
	})

	t.Run("filters by city or province ignoring case", func(t *testing.T) {
		assert.Equal(t, []int{2}, ids(Rank(profile, jobs, "jakarta")))
		assert.Equal(t, []int{3, 1}, ids(Rank(profile, jobs, "JAWA")))
		assert.Empty(t, Rank(profile, jobs, "Medan"))
	})

	t.Run("blank location keeps everything", func(t *testing.T) {
		assert.Len(t, Rank(profile, jobs, "   "), 3)
	})
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	jobs := []listing{{id: 10}, {id: 11}, {id: 12}, {id: 13}}
	ranked := Rank(CandidateProfile{}, jobs, "")
	assert.Equal(t, []int{10, 11, 12, 13}, ids(ranked))
	for _, r := range ranked {
		assert.Equal(t, 100, r.Score)
	}
}

func TestRank_EmptyAndSingle(t *testing.T) {
	ranked := Rank(CandidateProfile{}, []listing{}, "")
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)

	assert.Empty(t, Rank(CandidateProfile{}, []listing(nil), "Bandung"))

	single := Rank(CandidateProfile{}, []listing{{id: 7, req: JobRequirement{SkillsRequired: []string{"Go"}}}}, "")
	require.Len(t, single, 1)
	assert.Equal(t, 7, single[0].Job.id)
}
