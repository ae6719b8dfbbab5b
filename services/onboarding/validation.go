package onboarding

import (
	"fmt"
	"regexp"

	"orderly/models"

	"github.com/go-playground/validator/v10"
)

// e164USPattern accepts +1 followed by exactly 10 digits, nothing else.
// Matching numbers are used unchanged; there is no normalization.
var e164USPattern = regexp.MustCompile(`^\+1[0-9]{10}$`)

// IsE164US reports whether the number is a US E.164 phone number.
func IsE164US(number string) bool {
	return e164USPattern.MatchString(number)
}

// PhoneInput is the input to the lookup and code-send steps.
type PhoneInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,e164us"`
}

// CodeCheckInput is the input to the code-check step.
type CodeCheckInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,e164us"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
}

// CategoriesInput is the input to the category-selection step. Set
// membership against the catalog is checked separately.
type CategoriesInput struct {
	Categories []string `json:"categories" validate:"required,min=1,max=5,dive,required"`
}

// HourlyRateInput is the input to the hourly-rate step.
type HourlyRateInput struct {
	HourlyRate float64 `json:"hourlyRate" validate:"required"`
}

// TrustSafetyInput is the input to the trust & safety step.
type TrustSafetyInput struct {
	LegalName              string `json:"legalName" validate:"required,min=2,max=120"`
	BackgroundCheckConsent bool   `json:"backgroundCheckConsent"`
	GuidelinesAccepted     bool   `json:"guidelinesAccepted"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	// Registration only fails for programmer errors (empty tag, nil fn).
	if err := v.RegisterValidation("e164us", func(fl validator.FieldLevel) bool {
		return IsE164US(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("onboarding: failed to register e164us validator: %v", err))
	}
	return v
}

// check runs struct validation and converts the outcome into the step
// validation contract: a list of human-readable issues, never a panic for
// well-formed input.
func (s *DefaultOnboardingService) check(in any) *ValidationError {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Issues: []string{"invalid input"}}
	}
	issues := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, describeIssue(fe))
	}
	return &ValidationError{Issues: issues}
}

func describeIssue(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "e164us":
		return fmt.Sprintf("%s must be +1 followed by 10 digits", fe.Field())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s entries", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// validateHourlyRate enforces the platform rate band.
func validateHourlyRate(rate float64) *ValidationError {
	if rate < models.MinHourlyRate || rate > models.MaxHourlyRate {
		return validationf("hourly rate must be between $%.0f and $%.0f", models.MinHourlyRate, models.MaxHourlyRate)
	}
	return nil
}

// validateCategories enforces catalog membership and selection bounds.
func validateCategories(categories []string) *ValidationError {
	var issues []string
	if len(categories) < models.MinCategories {
		issues = append(issues, fmt.Sprintf("select at least %d category", models.MinCategories))
	}
	if len(categories) > models.MaxCategories {
		issues = append(issues, fmt.Sprintf("select at most %d categories", models.MaxCategories))
	}
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if !models.IsServiceCategory(c) {
			issues = append(issues, fmt.Sprintf("unknown category %q", c))
		}
		if seen[c] {
			issues = append(issues, fmt.Sprintf("duplicate category %q", c))
		}
		seen[c] = true
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// validateWorkPhotos enforces photo count, content type and size limits.
func validateWorkPhotos(photos []WorkPhoto) *ValidationError {
	var issues []string
	if len(photos) < models.MinWorkPhotos {
		issues = append(issues, fmt.Sprintf("at least %d photos required", models.MinWorkPhotos))
	}
	if len(photos) > models.MaxWorkPhotos {
		issues = append(issues, fmt.Sprintf("at most %d photos allowed", models.MaxWorkPhotos))
	}
	for _, p := range photos {
		if !models.AllowedPhotoMIMETypes[p.ContentType] {
			issues = append(issues, fmt.Sprintf("%s: unsupported file type %q", p.Filename, p.ContentType))
		}
		if p.Size <= 0 || p.Size > models.MaxWorkPhotoBytes {
			issues = append(issues, fmt.Sprintf("%s: file must be between 1 byte and %d MB", p.Filename, models.MaxWorkPhotoBytes>>20))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
