package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"LED Blinker Circuit", 30, "LED Blinker Circuit"},
		{"LED Blinker Circuit", 8, "LED Bli…"},
		{"LED", 0, ""},
		{"LED", 1, "…"},
		{"⏱️ 2-3 hours", 40, "⏱️ 2-3 hours"},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.width)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.width)
		assert.LessOrEqual(t, VisualWidth(got), max(tt.width, 0))
	}
}

func TestSpaceBetween(t *testing.T) {
	assert.Equal(t, "ab    cd", SpaceBetween("ab", "cd", 8))
	assert.Equal(t, "abc def", SpaceBetween("abc", "def", 4))
}

func TestChips(t *testing.T) {
	tags := []string{"PCB Layout", "Grounding", "Thermal"}
	assert.Equal(t, "PCB Layout Grounding Thermal", Chips(tags, 0))
	assert.Equal(t, "PCB Layout Grounding\nThermal", Chips(tags, 22))
	assert.Equal(t, "PCB Layout\nGrounding\nThermal", Chips(tags, 10))
	assert.Equal(t, "", Chips(nil, 10))
}
