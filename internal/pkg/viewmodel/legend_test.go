package viewmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		change float64
		color  string
	}{
		{12.5, "#EF3054"},
		{1.1, "#EF3054"},
		{0.0001, "#EF3054"},
		{0, "#EF5E30"},
		{-1.9, "#EF5E30"},
		{-2, "#EF7F17"},
		{-4, "#EF9917"},
		{-5.2, "#EF9917"},
		{-7, "#EFBF17"},
		{-9.99, "#EFBF17"},
		{-10, "#91BFC8"},
		{-40, "#91BFC8"},
		{-math.MaxFloat64, "#91BFC8"},
		{math.NaN(), "#91BFC8"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.color, BandFor(tt.change).Color, "change %v", tt.change)
	}
}

func TestLegend_OrderAndCopy(t *testing.T) {
	bands := Legend()
	colors := make([]string, len(bands))
	for i, b := range bands {
		colors[i] = b.Color
	}
	assert.Equal(t, []string{"#EF3054", "#EF5E30", "#EF7F17", "#EF9917", "#EFBF17", "#91BFC8"}, colors)

	bands[0].Color = "#000000"
	assert.Equal(t, "#EF3054", Legend()[0].Color)
}
