package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	rePlateSeparators = regexp.MustCompile(`[\s_.]+`)
	reMultiHyphen     = regexp.MustCompile(`-+`)
)

func upper(s string) string {
	return strings.ToUpper(s)
}

// SanitizePlate upper-cases a vehicle plate and folds separators, so
// " 7abc  123 " and "7ABC_123" both become "7ABC 123".
func SanitizePlate(input string) string {
	p := Pipeline{
		strings.TrimSpace,
		upper,
		func(s string) string { return rePlateSeparators.ReplaceAllString(s, " ") },
		func(s string) string { return reMultiHyphen.ReplaceAllString(s, "-") },
		func(s string) string { return strings.Trim(s, " -") },
	}
	return p.Apply(input)
}

// SanitizeID trims whitespace around a client-supplied document id.
func SanitizeID(input string) string {
	return strings.TrimSpace(input)
}
