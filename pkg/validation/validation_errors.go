package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly Indonesian labels
var FieldLabels = map[string]string{
	// Candidate profile
	"FullName":   "Nama Lengkap",
	"Headline":   "Headline",
	"City":       "Kota",
	"Province":   "Provinsi",
	"Major":      "Jurusan",
	"Skills":     "Keahlian",
	"AvatarURL":  "URL Foto Profil",
	"Phone":      "Nomor Telepon",
	"Bio":        "Bio",
	"Experience": "Pengalaman",
	"Education":  "Pendidikan",

	// Company profile
	"CompanyName": "Nama Perusahaan",
	"LogoURL":     "URL Logo",
	"Website":     "Situs Web",
	"Industry":    "Industri",
	"Description": "Deskripsi",
	"Location":    "Lokasi",

	// Jobs
	"Title":              "Judul Lowongan",
	"EmploymentType":     "Tipe Pekerjaan",
	"JobLevel":           "Level Jabatan",
	"MajorRequired":      "Jurusan yang Dibutuhkan",
	"SkillsRequired":     "Keahlian yang Dibutuhkan",
	"Requirements":       "Persyaratan",
	"EducationRequired":  "Pendidikan Minimal",
	"ExperienceRequired": "Pengalaman Minimal",
	"SalaryMin":          "Gaji Minimum",
	"SalaryMax":          "Gaji Maksimum",

	// Applications
	"CoverLetter": "Surat Lamaran",
	"Status":      "Status",

	// Auth / admin
	"Email":  "Email",
	"Role":   "Peran",
	"Reason": "Alasan",
}

// ValidationRules contains max/min values for validation messages
var ValidationRules = map[string]map[string]interface{}{
	"Bio":         {"max": 1000},
	"Headline":    {"max": 150},
	"Title":       {"min": 3, "max": 150},
	"Phone":       {"min": 7, "max": 15},
	"CoverLetter": {"max": 3000},
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		msg := formatSingleError(e)
		messages = append(messages, msg)
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	label := getFieldLabel(fieldName)
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s: Wajib diisi", label)

	case "min":
		if rules, ok := ValidationRules[fieldName]; ok {
			if unit, hasUnit := rules["unit"]; hasUnit {
				return fmt.Sprintf("%s: Minimal %s %s", label, param, unit)
			}
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Minimal %s karakter", label, param)
		}
		return fmt.Sprintf("%s: Minimal %s", label, param)

	case "max":
		if rules, ok := ValidationRules[fieldName]; ok {
			if unit, hasUnit := rules["unit"]; hasUnit {
				return fmt.Sprintf("%s: Maksimal %s %s", label, param, unit)
			}
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Maksimal %s karakter", label, param)
		}
		return fmt.Sprintf("%s: Maksimal %s", label, param)

	case "len":
		return fmt.Sprintf("%s: Harus tepat %s karakter", label, param)

	case "oneof":
		options := formatOneOfOptions(param)
		return fmt.Sprintf("%s: Harus salah satu dari: %s", label, options)

	case "email":
		return fmt.Sprintf("%s: Format email tidak valid", label)

	case "url":
		return fmt.Sprintf("%s: Format URL tidak valid", label)

	case "valid_name":
		return fmt.Sprintf("%s: Hanya boleh huruf, spasi, dan tanda baca umum (. ' - /)", label)

	case "valid_phone":
		return fmt.Sprintf("%s: Format nomor telepon tidak valid (7-15 digit, dengan/tanpa +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s: Tidak boleh mengandung emoji atau simbol khusus", label)

	case "job_level":
		return fmt.Sprintf("%s: Harus salah satu dari: Entry Level, Mid Level, Senior Level, Executive", label)

	case "dive":
		return fmt.Sprintf("%s: Isi tidak valid", label)

	case "gtefield":
		paramLabel := getFieldLabel(param)
		return fmt.Sprintf("%s: Tidak boleh lebih kecil dari %s", label, paramLabel)

	case "eqfield":
		paramLabel := getFieldLabel(param)
		return fmt.Sprintf("%s: Harus sama dengan %s", label, paramLabel)

	case "gtfield":
		paramLabel := getFieldLabel(param)
		return fmt.Sprintf("%s: Harus lebih besar dari %s", label, paramLabel)

	case "ltfield":
		paramLabel := getFieldLabel(param)
		return fmt.Sprintf("%s: Harus lebih kecil dari %s", label, paramLabel)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validasi gagal (%s)", label, tag)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

// formatOneOfOptions formats oneof options for display
func formatOneOfOptions(param string) string {
	options := strings.Split(param, " ")
	formatted := make([]string, len(options))
	for i, opt := range options {
		formatted[i] = formatEnumValue(opt)
	}
	return strings.Join(formatted, ", ")
}

// formatEnumValue formats enum values for display
func formatEnumValue(value string) string {
	// Map common enum values to Indonesian
	enumLabels := map[string]string{
		"candidate":  "Kandidat",
		"employer":   "Perusahaan",
		"admin":      "Admin",
		"applied":    "Dilamar",
		"reviewed":   "Ditinjau",
		"accepted":   "Diterima",
		"rejected":   "Ditolak",
		"approve":    "Setujui",
		"reject":     "Tolak",
		"full_time":  "Penuh Waktu",
		"part_time":  "Paruh Waktu",
		"contract":   "Kontrak",
		"internship": "Magang",
		"freelance":  "Lepas",
		"xlsx":       "Excel",
		"csv":        "CSV",
	}

	if label, ok := enumLabels[value]; ok {
		return label
	}
	return value
}
