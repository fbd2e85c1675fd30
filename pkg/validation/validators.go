package validation

import (
	"regexp"
	"unicode"

	"go-jobboard-backend/internal/matching"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// E164-like phone: optional +, digits 7-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("job_level", ValidJobLevel)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// ValidJobLevel accepts an empty value or one of the four job level labels,
// ignoring case.
func ValidJobLevel(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, ok := matching.JobLevel(val).Normalize()
	return ok
}
