package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RUT format: digits (with optional thousand dots), hyphen, verifier digit or K.
var rutRegex = regexp.MustCompile(`^\d{1,2}(?:\.?\d{3}){2}-[\dkK]$`)

// IsValidRUT validates a Chilean RUT: format plus modulo-11 check digit.
func IsValidRUT(rut string) bool {
	if !rutRegex.MatchString(rut) {
		return false
	}
	clean := strings.ReplaceAll(rut, ".", "")
	parts := strings.Split(clean, "-")
	body, verifier := parts[0], strings.ToUpper(parts[1])

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		digit, _ := strconv.Atoi(string(body[i]))
		sum += digit * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	rest := 11 - (sum % 11)
	var want string
	switch rest {
	case 11:
		want = "0"
	case 10:
		want = "K"
	default:
		want = strconv.Itoa(rest)
	}
	return verifier == want
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsValidDate checks a calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidYear checks a four-digit year within a sane range.
func IsValidYear(s string) bool {
	year, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return year >= 2000 && year <= 2100
}
