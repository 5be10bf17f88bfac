package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Alucard's Novel  Title!":     "alucards-novel-title",
		"":                            "",
		"  Leading and trailing  ":    "leading-and-trailing",
		"Already-slugged":             "already-slugged",
		"Dash -- dash":                "dash-dash",
		"Tabs\tand\nnewlines":         "tabs-and-newlines",
		"Ünïcode Tîtle":               "ncode-ttle",
		"snake_case_title":            "snake_case_title",
		"Volume 2: The Return (Part)": "volume-2-the-return-part",
		"a\u00a0b":                    "a-b",
		"\ufeffBOM\u3000Title\u2028":  "bom-title",
		"Vertical\vtab":               "vertical-tab",
		"Thin\u2009space":             "thin-space",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Alucard's Novel  Title!",
		"--weird -- input--",
		"  x  ",
		"The Villainess Is Doing Her Best?!",
		"a - - b",
	}

	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "input %q", input)
	}
}
