package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferEducation(t *testing.T) {
	tests := []struct {
		name string
		job  JobRequirement
		want string
	}{
		{"entry level", JobRequirement{JobLevel: LevelEntry}, "SMA/SMK"},
		{"mid level", JobRequirement{JobLevel: LevelMid}, "S1"},
		{"senior level", JobRequirement{JobLevel: LevelSenior}, "S1"},
		{"executive", JobRequirement{JobLevel: LevelExecutive}, "S2"},
		{"level label is case-insensitive", JobRequirement{JobLevel: "senior level"}, "S1"},
		{"level wins over requirement text", JobRequirement{JobLevel: LevelMid, Requirements: []string{"Lulusan S3"}}, "S1"},
		{"unknown level falls back to text", JobRequirement{JobLevel: "Intern", Requirements: []string{"Pendidikan D3"}}, "D3"},
		{"doctorate", JobRequirement{Requirements: []string{"Gelar Doktor bidang AI"}}, "S3"},
		{"higher group checked first", JobRequirement{Requirements: []string{"Minimal S1", "Diutamakan S2"}}, "S2"},
		{"sarjana", JobRequirement{Requirements: []string{"Sarjana Ekonomi"}}, "S1"},
		{"diploma", JobRequirement{Requirements: []string{"Diploma Akuntansi"}}, "D3"},
		{"high school", JobRequirement{Requirements: []string{"Lulusan SMK Teknik Mesin"}}, "SMA/SMK"},
		{"nothing to infer", JobRequirement{Requirements: []string{"Mampu bekerja dalam tim"}}, ""},
		{"empty job", JobRequirement{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferEducation(tt.job))
		})
	}
}

func TestInferExperience(t *testing.T) {
	tests := []struct {
		name string
		job  JobRequirement
		want string
	}{
		{"entry level", JobRequirement{JobLevel: LevelEntry}, "0-1 tahun"},
		{"mid level", JobRequirement{JobLevel: LevelMid}, "2-4 tahun"},
		{"senior level", JobRequirement{JobLevel: LevelSenior}, "5+ tahun"},
		{"executive", JobRequirement{JobLevel: LevelExecutive}, "10+ tahun"},
		{"plus pattern", JobRequirement{Requirements: []string{"Pengalaman 2+ tahun"}}, "2+ tahun"},
		{"minimal pattern", JobRequirement{Requirements: []string{"Minimal 3 tahun pengalaman"}}, "3+ tahun"},
		{"plain years", JobRequirement{Requirements: []string{"Pengalaman 4 tahun di bidang yang sama"}}, "4+ tahun"},
		{"pattern order beats text position", JobRequirement{Requirements: []string{"Minimal 2 tahun", "Lebih disukai 5+ tahun"}}, "5+ tahun"},
		{"overflowing count is capped", JobRequirement{Requirements: []string{"Minimal 99999999999999999999 tahun"}}, "60+ tahun"},
		{"fresh graduate", JobRequirement{Requirements: []string{"Fresh graduate dipersilakan melamar"}}, "0-1 tahun"},
		{"entry level keyword", JobRequirement{Requirements: []string{"Posisi entry level"}}, "0-1 tahun"},
		{"senior keyword", JobRequirement{Requirements: []string{"Senior engineer"}}, "5+ tahun"},
		{"lead keyword", JobRequirement{Requirements: []string{"Team lead"}}, "5+ tahun"},
		{"nothing to infer", JobRequirement{Requirements: []string{"Jujur dan disiplin"}}, ""},
		{"empty job", JobRequirement{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferExperience(tt.job))
		})
	}
}

func TestRequiredFieldsPreferExplicitValues(t *testing.T) {
	job := JobRequirement{
		JobLevel:           LevelExecutive,
		EducationRequired:  "D3 Perhotelan",
		ExperienceRequired: "1 tahun",
	}
	assert.Equal(t, "D3 Perhotelan", RequiredEducation(job))
	assert.Equal(t, "1 tahun", RequiredExperience(job))

	job.EducationRequired = "  "
	job.ExperienceRequired = ""
	assert.Equal(t, "S2", RequiredEducation(job))
	assert.Equal(t, "10+ tahun", RequiredExperience(job))
}

func TestJobLevelNormalize(t *testing.T) {
	level, ok := JobLevel("  mid LEVEL ").Normalize()
	assert.True(t, ok)
	assert.Equal(t, LevelMid, level)

	_, ok = JobLevel("").Normalize()
	assert.False(t, ok)

	_, ok = JobLevel("Magang").Normalize()
	assert.False(t, ok)
}
