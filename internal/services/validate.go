package services

import (
	"regexp"
	"strings"

	apperrors "hometownheating/pkg/errors"
)

const (
	minNameLength    = 1
	maxNameLength    = 100
	minPhoneLength   = 10
	maxPhoneLength   = 20
	maxMessageLength = 5000
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Basic phone validation (allows international format)
	phoneRegex = regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)
)

func appendRequiredName(fields []apperrors.FieldError, field, value string) []apperrors.FieldError {
	v := strings.TrimSpace(value)
	if len(v) < minNameLength {
		return append(fields, apperrors.FieldError{Field: field, Message: field + " is required"})
	}
	if len(v) > maxNameLength {
		return append(fields, apperrors.FieldError{Field: field, Message: field + " must not exceed 100 characters"})
	}
	return fields
}

func appendEmail(fields []apperrors.FieldError, value string) []apperrors.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(fields, apperrors.FieldError{Field: "email", Message: "email is required"})
	}
	if !emailRegex.MatchString(v) {
		return append(fields, apperrors.FieldError{Field: "email", Message: "invalid email address"})
	}
	return fields
}

func appendPhone(fields []apperrors.FieldError, value string) []apperrors.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(fields, apperrors.FieldError{Field: "phone", Message: "phone is required"})
	}
	if !phoneRegex.MatchString(v) || len(v) < minPhoneLength || len(v) > maxPhoneLength {
		return append(fields, apperrors.FieldError{Field: "phone", Message: "invalid phone number format"})
	}
	return fields
}

// optionalString trims a form value and returns nil when it is blank, so
// optional fields are stored as null rather than empty strings.
func optionalString(value string) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	return &v
}
