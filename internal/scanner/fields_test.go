package scanner

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlen/vinkallaren/constants"
)

const currentYear = 2026

func TestExtractName(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
		none  bool
	}{
		{
			name:  "longest qualifying line wins",
			lines: []string{"2019", "Château Margaux Grand Vin", "Margaux"},
			want:  "Château Margaux Grand Vin",
		},
		{
			name:  "boilerplate lines excluded",
			lines: []string{"13.5% vol 750ml", "Product of France", "Barolo Riserva DOCG"},
			want:  "Barolo Riserva DOCG",
		},
		{
			name:  "short lines never qualify",
			lines: []string{"Rioja", "2015"},
			none:  true,
		},
		{
			name:  "overlong lines excluded",
			lines: []string{strings.Repeat("x", 81), "Amarone della Valpolicella"},
			want:  "Amarone della Valpolicella",
		},
		{
			name: "no lines",
			none: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extractName(tc.lines)
			if tc.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestExtractProducer(t *testing.T) {
	got := extractProducer([]string{"2018 Pinot Noir", "Willamette Estate Winery", "Oregon"})
	require.NotNil(t, got)
	assert.Equal(t, "Willamette Estate Winery", *got)

	// fallback: first line truncated to 40 characters
	long := strings.Repeat("a", 50)
	got = extractProducer([]string{long, "something"})
	require.NotNil(t, got)
	assert.Len(t, *got, 40)

	assert.Nil(t, extractProducer(nil))
}

func TestExtractProducer_TruncatesOnRunes(t *testing.T) {
	// an accented rune straddling byte 40 must not be split
	long := strings.Repeat("a", 39) + "é château gruaud larose"
	got := extractProducer([]string{long})
	require.NotNil(t, got)
	assert.True(t, utf8.ValidString(*got))
	assert.Equal(t, strings.Repeat("a", 39)+"é", *got)
	assert.Equal(t, 40, utf8.RuneCountInString(*got))
}

func TestExtractVintage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		none bool
	}{
		{name: "plain vintage", text: "Chianti Classico 2018 DOCG", want: 2018},
		{name: "first in-range match wins", text: "Produced 1887, bottled 2018", want: 2018},
		{name: "future year rejected", text: "best before 2092", none: true},
		{name: "pre-1900 rejected", text: "est. 1887", none: true},
		{name: "left to right", text: "1999 and 2005", want: 1999},
		{name: "no digits", text: "Grand Cru", none: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extractVintage(tc.text, currentYear)
			if tc.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestDetectWineType(t *testing.T) {
	tests := []struct {
		text string
		want constants.WineType
		none bool
	}{
		{text: "Vin Rosé de Provence", want: constants.Rose},
		{text: "rosso di montalcino", want: constants.Red},
		{text: "Rotwein trocken", want: constants.Red},
		{text: "Weiss Bianco blend", want: constants.White},
		{text: "Champagne Brut", want: constants.Sparkling},
		{text: "Prosecco DOC", want: constants.Sparkling},
		{text: "Sött dessertvin", want: constants.Dessert},
		{text: "Tawny Port", want: constants.Fortified},
		{text: "orange wine skin contact", want: constants.Orange},
		{text: "nothing recognizable", none: true},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got := detectWineType(tc.text)
			if tc.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestDetectWineType_RoseBeforeRosso(t *testing.T) {
	// "rose" is substring-matched before the red keywords, so a label with
	// both resolves to ROSE; this is the documented rule order.
	got := detectWineType("rose rosso")
	require.NotNil(t, got)
	assert.Equal(t, constants.Rose, *got)
}

func TestExtractCountry(t *testing.T) {
	tests := []struct {
		text string
		want string
		none bool
	}{
		{text: "Product of France", want: "Frankrike"},
		{text: "Napa Valley Cabernet", want: "USA"},
		{text: "vino de españa", none: true}, // table is keyed on english names
		{text: "New Zealand Sauvignon", want: "Nya Zeeland"},
		{text: "no origin here", none: true},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got := extractCountry(tc.text)
			if tc.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestExtractRegion(t *testing.T) {
	got := extractRegion("Grand Vin de Bordeaux")
	require.NotNil(t, got)
	assert.Equal(t, "Bordeaux", *got)

	got = extractRegion("RIBERA DEL DUERO crianza")
	require.NotNil(t, got)
	assert.Equal(t, "Ribera del duero", *got)

	assert.Nil(t, extractRegion("nowhere"))
}

func TestExtractAlcohol(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float32
		none bool
	}{
		{name: "percent vol", text: "13.5% vol", want: 13.5},
		{name: "decimal comma", text: "12,5 % vol", want: 12.5},
		{name: "alc prefix", text: "alc. 14.0 by volume", want: 14.0},
		{name: "bare percent", text: "11.5%", want: 11.5},
		{name: "vol beats bare percent", text: "11.5% then 13.0% vol", want: 13.0},
		{name: "no match", text: "750ml", none: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extractAlcohol(tc.text)
			if tc.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tc.want, *got, 1e-4)
		})
	}
}

func TestExtractFields_FullLabel(t *testing.T) {
	lines := []string{
		"Silver Oak Estate Winery",
		"Alexander Valley Cabernet Sauvignon",
		"Napa 2019",
		"Red wine 13.5% vol",
		"Product of USA",
	}
	data := ExtractFields(lines, strings.Join(lines, " "), currentYear)

	require.NotNil(t, data.Name)
	assert.Equal(t, "Alexander Valley Cabernet Sauvignon", *data.Name)
	require.NotNil(t, data.Producer)
	assert.Equal(t, "Silver Oak Estate Winery", *data.Producer)
	require.NotNil(t, data.Vintage)
	assert.Equal(t, 2019, *data.Vintage)
	require.NotNil(t, data.WineType)
	assert.Equal(t, constants.Red, *data.WineType)
	require.NotNil(t, data.Country)
	assert.Equal(t, "USA", *data.Country)
	require.NotNil(t, data.AlcoholContent)
	assert.InDelta(t, 13.5, *data.AlcoholContent, 1e-4)

	assert.True(t, data.IsComplete())
	assert.True(t, data.HasMinimumData())
}

func TestExtractedWineData_MinimumData(t *testing.T) {
	assert.False(t, ExtractedWineData{}.HasMinimumData())

	v := 2019
	assert.True(t, ExtractedWineData{Vintage: &v}.HasMinimumData())

	blank := "   "
	assert.False(t, ExtractedWineData{Name: &blank}.HasMinimumData())
	assert.False(t, ExtractedWineData{Name: &blank}.IsComplete())
}
