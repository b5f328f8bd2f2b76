package service

import (
	"regexp"
	"strings"
)

// MaxSlugLength bounds app and tenant slugs
const MaxSlugLength = 50

var (
	slugSeparators   = regexp.MustCompile(`[^a-z0-9]+`)
	identifierFormat = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// Slugify lower-cases name, collapses every run of characters outside
// [a-z0-9] into one '-', trims leading and trailing '-' and truncates to
// MaxSlugLength. Slugify(Slugify(s)) == Slugify(s).
func Slugify(name string) string {
	slug := slugSeparators.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	return slug
}

// IsIdentifier reports whether s can serve as a module system name or a field
// name, which double as keys in record data
func IsIdentifier(s string) bool {
	return len(s) <= 50 && identifierFormat.MatchString(s)
}
