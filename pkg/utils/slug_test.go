package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Clean Water":        "clean-water",
		"Clean Water!!":      "clean-water",
		"  Trees & Rivers  ": "trees-rivers",
		"HEALTH-2025 camp":   "health-2025-camp",
		"---":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}
