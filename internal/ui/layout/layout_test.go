package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{60, "1:00"},
		{299, "4:59"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.in))
	}
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderHeaderAndFooter(t *testing.T) {
	header := RenderHeader("Quiz", "1:00", 80)
	assert.Contains(t, header, "IELTS Vocab")
	assert.Contains(t, header, "Quiz")
	assert.Contains(t, header, "1:00")

	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 80)
	assert.Contains(t, footer, "Enter")
	assert.Contains(t, footer, "Select")

	frame := RenderFrame(header, "body", footer, 80, 24)
	assert.True(t, strings.HasPrefix(frame, header))
	assert.Contains(t, frame, "body")
}
