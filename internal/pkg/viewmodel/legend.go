package viewmodel

import "math"

// LegendBand is one color of the map legend. A change falls into the band
// when Lower < change <= Upper.
type LegendBand struct {
	Color string  `json:"color"`
	Label string  `json:"label"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

var legendBands = []LegendBand{
	{Color: "#EF3054", Label: "Ökat mer än 0%", Lower: 0, Upper: math.MaxFloat64},
	{Color: "#EF5E30", Label: "Minskat med 0-2%", Lower: -2, Upper: 0},
	{Color: "#EF7F17", Label: "Minskat med 2-4%", Lower: -4, Upper: -2},
	{Color: "#EF9917", Label: "Minskat med 4-7%", Lower: -7, Upper: -4},
	{Color: "#EFBF17", Label: "Minskat med 7-10%", Lower: -10, Upper: -7},
	{Color: "#91BFC8", Label: "Minskat mer än 10%", Lower: -math.MaxFloat64, Upper: -10},
}

// Legend returns a copy of the six bands, highest change first
func Legend() []LegendBand {
	bands := make([]LegendBand, len(legendBands))
	copy(bands, legendBands)
	return bands
}

// BandFor returns the legend band an average emission change belongs to
func BandFor(change float64) LegendBand {
	for _, b := range legendBands {
		if change > b.Lower && change <= b.Upper {
			return b
		}
	}
	// NaN and -MaxFloat64 fall through
	return legendBands[len(legendBands)-1]
}
