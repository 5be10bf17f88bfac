package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTextSizeClamps(t *testing.T) {
	s := Defaults()
	s.Size = MaxTextSize
	s.StepTextSize(1)
	assert.Equal(t, 30, s.Size)

	s.Size = MinTextSize
	s.StepTextSize(-1)
	assert.Equal(t, 12, s.Size)

	s.Size = 16
	s.StepTextSize(1)
	assert.Equal(t, 17, s.Size)
}

func TestStepLineHeightClamps(t *testing.T) {
	s := Defaults()
	s.LineHeight = MaxLineHeight
	s.StepLineHeight(1)
	assert.Equal(t, 40, s.LineHeight)

	s.LineHeight = MinLineHeight
	s.StepLineHeight(-1)
	assert.Equal(t, 18, s.LineHeight)

	s.LineHeight = 24
	s.StepLineHeight(-1)
	assert.Equal(t, 23, s.LineHeight)
}

func TestSetFontAndContrast(t *testing.T) {
	s := Defaults()

	assert.NoError(t, s.SetFont("merriweather"))
	assert.Equal(t, "merriweather", s.Font)
	assert.Error(t, s.SetFont("comic-sans"))
	assert.Equal(t, "merriweather", s.Font)

	assert.NoError(t, s.SetContrast("high"))
	assert.Equal(t, "high", s.Contrast)
	assert.Error(t, s.SetContrast("inverted"))
}

func TestNormalize(t *testing.T) {
	got := ReaderSettings{Font: "font-montserrat", Size: 99, LineHeight: 3, Contrast: "weird"}.Normalize()

	assert.Equal(t, ReaderSettings{Font: "montserrat", Size: 30, LineHeight: 18, Contrast: "normal"}, got)
	assert.Equal(t, Defaults(), ReaderSettings{}.Normalize())
}

func TestSetFontAcceptsPrefix(t *testing.T) {
	s := Defaults()

	assert.NoError(t, s.SetFont("font-Montserrat"))
	assert.Equal(t, "montserrat", s.Font)
}
