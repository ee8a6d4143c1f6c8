package model

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const emailMax = 255

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when input fails its field constraints. It is
// always produced before any store access.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add records a violation for field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns e as an error when it holds violations and nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Has reports whether field has at least one violation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func validateEmail(v *ValidationError, email string) {
	if !isEmail(email) {
		v.Add("email", "Please enter a valid email address")
		return
	}
	if runeLen(email) > emailMax {
		v.Add("email", "Email must be less than 255 characters")
	}
}

// emailPattern mirrors the address grammar the site's form has always
// enforced: an ASCII local part of letters, digits and _'+-. that neither
// starts nor ends with a dot, and a domain of alphanumeric labels (inner
// hyphens allowed) ending in an alphabetic TLD of two or more letters.
var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9_'+\-.]*[a-z0-9_+\-]@([a-z0-9][a-z0-9\-]*\.)+[a-z]{2,}$`)

// isEmail accepts a bare address (no display name, no surrounding
// whitespace) matching emailPattern.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailPattern.MatchString(s)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
