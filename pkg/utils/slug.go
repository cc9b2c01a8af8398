package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile("[^a-z0-9]+")

// Slugify lowercases the input, collapses runs of non-alphanumeric
// characters into single hyphens and strips leading/trailing hyphens,
// so "Clean Water!!" and "Clean Water" both yield "clean-water".
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
