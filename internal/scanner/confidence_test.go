package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahlen/vinkallaren/constants"
)

func TestConfidence(t *testing.T) {
	name := "Barolo Riserva"
	producer := "Marchesi di Barolo"
	vintage := 2016
	wineType := constants.Red
	country := "Italien"

	tests := []struct {
		name string
		data ExtractedWineData
		want float32
	}{
		{
			name: "all five fields present",
			data: ExtractedWineData{
				Name: &name, Producer: &producer, Vintage: &vintage,
				WineType: &wineType, Country: &country,
			},
			want: 1.0,
		},
		{name: "only name", data: ExtractedWineData{Name: &name}, want: 0.3},
		{name: "only producer", data: ExtractedWineData{Producer: &producer}, want: 0.25},
		{name: "only vintage", data: ExtractedWineData{Vintage: &vintage}, want: 0.2},
		{name: "only type", data: ExtractedWineData{WineType: &wineType}, want: 0.15},
		{name: "only country", data: ExtractedWineData{Country: &country}, want: 0.1},
		{name: "nothing extracted", data: ExtractedWineData{}, want: 0.0},
		{
			name: "name and vintage",
			data: ExtractedWineData{Name: &name, Vintage: &vintage},
			want: 0.5,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Confidence(tc.data), 1e-6)
		})
	}
}

func TestConfidence_BlankStringsDoNotCount(t *testing.T) {
	blank := "  "
	assert.InDelta(t, 0.0, Confidence(ExtractedWineData{Name: &blank, Country: &blank}), 1e-6)
}

// the region and alcohol fields are extracted but unweighted; confidence
// only tracks the five identification fields
func TestConfidence_IgnoresUnweightedFields(t *testing.T) {
	region := "Bordeaux"
	alc := float32(13.5)
	assert.InDelta(t, 0.0, Confidence(ExtractedWineData{Region: &region, AlcoholContent: &alc}), 1e-6)
}
