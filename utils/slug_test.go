package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Everest Base Camp Trek!":    "everest-base-camp-trek",
		"Annapurna Circuit":          "annapurna-circuit",
		"  Manaslu --- Trek  ":       "manaslu-trek",
		"Upper Mustang (14 Days)":    "upper-mustang-14-days",
		"already-a-slug":             "already-a-slug",
		"!!!":                        "",
		"Langtang Валли Trek":        "langtang-trek",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Everest Base Camp Trek!",
		"  Gokyo Lakes & Cho La Pass ",
		"treks",
		"",
	}

	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "input %q", input)
	}
}
