// Package validation collects field violations for a request body.
// Message codes are part of the wire contract and must stay stable.
// Checks do not fail fast: a single field can report several codes
// (an empty name is both not_blank and out of size range).
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Violations []Violation

func (v *Violations) Add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

// NotBlank fails when the value is null, empty or whitespace only.
func (v *Violations) NotBlank(field string, s *string) {
	if s == nil || strings.TrimSpace(*s) == "" {
		v.Add(field, "not_blank")
	}
}

// NotNull fails when a required scalar is null. The lenient body
// decoding maps blank strings to null first, so " " lands here too.
func (v *Violations) NotNull(field string, present bool) {
	if !present {
		v.Add(field, "not_null")
	}
}

// SizeBetween checks the character length of a present value. Null
// values pass; NotBlank is responsible for those.
func (v *Violations) SizeBetween(field string, s *string, min, max int) {
	if s == nil {
		return
	}
	if n := utf8.RuneCountInString(*s); n < min || n > max {
		v.Add(field, fmt.Sprintf("size_between:%d:%d", min, max))
	}
}

// Matches checks a present value against a full-string pattern.
func (v *Violations) Matches(field string, s *string, re *regexp.Regexp, message string) {
	if s != nil && !re.MatchString(*s) {
		v.Add(field, message)
	}
}

// PositiveOrZero fails on present negative values.
func (v *Violations) PositiveOrZero(field string, n *int64) {
	if n != nil && *n < 0 {
		v.Add(field, "positive_or_zero")
	}
}
