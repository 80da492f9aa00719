package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/internal/analysis"
)

func TestPairings_EveryTypeHasSuggestions(t *testing.T) {
	for _, wt := range []constants.WineType{
		constants.Red, constants.White, constants.Rose, constants.Sparkling,
		constants.Dessert, constants.Fortified, constants.Orange, constants.Unknown,
	} {
		ps := analysis.Pairings(wt, "", nil)
		assert.NotEmpty(t, ps, "type %s", wt)
		for _, p := range ps {
			assert.NotEmpty(t, p.Category)
			assert.NotEmpty(t, p.Quality.Stars())
		}
	}
}

func TestPairings_SparklingFavorsOysters(t *testing.T) {
	ps := analysis.Pairings(constants.Sparkling, "Champagne", nil)
	assert.Equal(t, "Ostron", ps[0].Category)
	assert.Equal(t, constants.PairingExcellent, ps[0].Quality)
}

func TestPairingQualityRendering(t *testing.T) {
	assert.Equal(t, "★★★★★", constants.PairingExcellent.Stars())
	assert.Equal(t, "★★☆☆☆", constants.PairingFair.Stars())
	assert.Equal(t, "Mycket bra", constants.PairingVeryGood.DisplayName())
}
