package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileInput struct {
	FullName string `validate:"required,valid_name"`
	Phone    string `validate:"omitempty,valid_phone"`
	Bio      string `validate:"no_emoji,max=20"`
	JobLevel string `validate:"job_level"`
	Role     string `validate:"omitempty,oneof=candidate employer"`
}

func TestCustomValidators(t *testing.T) {
	v := New()

	t.Run("Should accept valid input", func(t *testing.T) {
		err := v.Struct(profileInput{
			FullName: "Siti Rahma-Putri",
			Phone:    "+6281234567890",
			Bio:      "Backend dev",
			JobLevel: "senior level",
			Role:     "employer",
		})
		assert.NoError(t, err)
	})

	t.Run("Should accept an empty job level", func(t *testing.T) {
		assert.NoError(t, v.Struct(profileInput{FullName: "Budi"}))
	})

	tests := []struct {
		name  string
		input profileInput
		want  string
	}{
		{"missing name", profileInput{}, "Nama Lengkap: Wajib diisi"},
		{"bad name", profileInput{FullName: "Budi#1"}, "Nama Lengkap: Hanya boleh huruf, spasi, dan tanda baca umum (. ' - /)"},
		{"bad phone", profileInput{FullName: "Budi", Phone: "0812-abc"}, "Nomor Telepon: Format nomor telepon tidak valid (7-15 digit, dengan/tanpa +)"},
		{"emoji", profileInput{FullName: "Budi", Bio: "halo 😀"}, "Bio: Tidak boleh mengandung emoji atau simbol khusus"},
		{"too long", profileInput{FullName: "Budi", Bio: "ini bio yang terlalu panjang"}, "Bio: Maksimal 20 karakter"},
		{"unknown level", profileInput{FullName: "Budi", JobLevel: "Magang"}, "Level Jabatan: Harus salah satu dari: Entry Level, Mid Level, Senior Level, Executive"},
		{"bad role", profileInput{FullName: "Budi", Role: "admin"}, "Peran: Harus salah satu dari: Kandidat, Perusahaan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)
			assert.Equal(t, []string{tt.want}, FormatValidationErrors(err))
		})
	}
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
}

func TestFieldLabelFallback(t *testing.T) {
	assert.Equal(t, "Expected Salary", getFieldLabel("ExpectedSalary"))
}
