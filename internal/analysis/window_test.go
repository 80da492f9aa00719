package analysis_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/internal/analysis"
)

// fixedClock pins "now" for deterministic current-year behavior.
type fixedClock struct {
	year int
}

func (c fixedClock) Now() time.Time {
	return time.Date(c.year, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }
func f32Ptr(v float32) *float32 { return &v }

func TestEstimateWindow_OrderingInvariant(t *testing.T) {
	// One input per rule branch; every branch must produce start <= peak <= end.
	cases := []struct {
		name     string
		wineType constants.WineType
		vintage  int
		region   string
		grapes   []string
	}{
		{"red cabernet", constants.Red, 2015, "", []string{"Cabernet Sauvignon"}},
		{"red pinot grape", constants.Red, 2015, "", []string{"Pinot Noir"}},
		{"red burgundy region", constants.Red, 2015, "Burgundy", nil},
		{"red nebbiolo", constants.Red, 2015, "", []string{"Nebbiolo"}},
		{"red tempranillo", constants.Red, 2015, "", []string{"Tempranillo"}},
		{"red syrah", constants.Red, 2015, "", []string{"Syrah"}},
		{"red shiraz", constants.Red, 2015, "", []string{"Shiraz"}},
		{"red merlot", constants.Red, 2015, "", []string{"Merlot"}},
		{"red sangiovese", constants.Red, 2015, "", []string{"Sangiovese"}},
		{"red grenache", constants.Red, 2015, "", []string{"Grenache"}},
		{"red gamay", constants.Red, 2015, "", []string{"Gamay"}},
		{"red beaujolais region", constants.Red, 2015, "Beaujolais", nil},
		{"red bordeaux region", constants.Red, 2015, "Bordeaux", nil},
		{"red default", constants.Red, 2015, "", nil},
		{"white chardonnay burgundy", constants.White, 2015, "Burgundy", []string{"Chardonnay"}},
		{"white chardonnay côte d'or", constants.White, 2015, "Côte d'Or", []string{"Chardonnay"}},
		{"white chardonnay plain", constants.White, 2015, "", []string{"Chardonnay"}},
		{"white riesling mosel", constants.White, 2015, "Mosel", []string{"Riesling"}},
		{"white riesling rheingau", constants.White, 2015, "Rheingau", []string{"Riesling"}},
		{"white riesling plain", constants.White, 2015, "", []string{"Riesling"}},
		{"white sauvignon blanc", constants.White, 2015, "", []string{"Sauvignon Blanc"}},
		{"white chenin blanc", constants.White, 2015, "", []string{"Chenin Blanc"}},
		{"white loire region", constants.White, 2015, "Loire", nil},
		{"white grüner veltliner", constants.White, 2015, "", []string{"Grüner Veltliner"}},
		{"white gewürztraminer", constants.White, 2015, "", []string{"Gewürztraminer"}},
		{"white viognier", constants.White, 2015, "", []string{"Viognier"}},
		{"white default", constants.White, 2015, "", nil},
		{"rose", constants.Rose, 2023, "", nil},
		{"rose future vintage", constants.Rose, 2026, "", nil},
		{"sparkling champagne vintage", constants.Sparkling, 1995, "Champagne", nil},
		{"sparkling champagne old", constants.Sparkling, 1985, "Champagne", nil},
		{"sparkling cava", constants.Sparkling, 2020, "Cava", nil},
		{"sparkling default", constants.Sparkling, 2020, "", nil},
		{"dessert sauternes", constants.Dessert, 2010, "Sauternes", nil},
		{"dessert barsac", constants.Dessert, 2010, "Barsac", nil},
		{"dessert default", constants.Dessert, 2010, "", nil},
		{"fortified", constants.Fortified, 2000, "", nil},
		{"orange", constants.Orange, 2018, "", nil},
		{"unknown", constants.Unknown, 2018, "", nil},
	}

	est := analysis.NewEstimator(fixedClock{year: 2025})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := est.EstimateWindow(tc.wineType, intPtr(tc.vintage), tc.region, tc.grapes)
			assert.LessOrEqual(t, w.Start, w.Peak, "start must not exceed peak")
			assert.LessOrEqual(t, w.Peak, w.End, "peak must not exceed end")
			assert.NotEmpty(t, w.Notes)
		})
	}
}

func TestEstimateWindow_GrapeRuleBeatsRegionRule(t *testing.T) {
	est := analysis.NewEstimator(fixedClock{year: 2025})

	// Cabernet rule is checked before the Bordeaux region fallback.
	w := est.EstimateWindow(constants.Red, intPtr(2015), "Bordeaux", []string{"Cabernet Sauvignon"})
	assert.Equal(t, 2020, w.Start)
	assert.Equal(t, 2025, w.Peak)
	assert.Equal(t, 2035, w.End)
}

func TestEstimateWindow_ChampagneVintageBranch(t *testing.T) {
	est := analysis.NewEstimator(fixedClock{year: 2025})

	w := est.EstimateWindow(constants.Sparkling, intPtr(1995), "Champagne", nil)
	assert.Equal(t, 2000, w.Start)
	assert.Equal(t, 2005, w.Peak)
	assert.Equal(t, 2015, w.End)

	// pre-1991 Champagne falls into the non-vintage branch
	old := est.EstimateWindow(constants.Sparkling, intPtr(1985), "Champagne", nil)
	assert.Equal(t, 1985, old.Start)
	assert.Equal(t, 1989, old.End)
}

func TestEstimateWindow_MissingVintageUsesCurrentYear(t *testing.T) {
	est := analysis.NewEstimator(fixedClock{year: 2025})

	w := est.EstimateWindow(constants.Red, nil, "", nil)
	assert.Equal(t, 2028, w.Start)
	assert.Equal(t, 2031, w.Peak)
	assert.Equal(t, 2035, w.End)
}

func TestEstimateWindow_RoseCapsPeakAtNextYear(t *testing.T) {
	est := analysis.NewEstimator(fixedClock{year: 2025})

	w := est.EstimateWindow(constants.Rose, intPtr(2024), "", nil)
	assert.Equal(t, 2025, w.Start)
	assert.Equal(t, 2026, w.Peak)
	assert.Equal(t, 2027, w.End)

	// a vintage ahead of the calendar must not invert the window
	future := est.EstimateWindow(constants.Rose, intPtr(2027), "", nil)
	assert.Equal(t, future.Start, future.Peak)
}

func TestIsReadyToDrink(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		start *int
		end   *int
		want  bool
	}{
		{"inside window", 2025, intPtr(2020), intPtr(2030), true},
		{"at start", 2020, intPtr(2020), intPtr(2030), true},
		{"at end", 2030, intPtr(2020), intPtr(2030), true},
		{"before start", 2019, intPtr(2020), intPtr(2030), false},
		{"after end", 2031, intPtr(2020), intPtr(2030), false},
		{"nil start never ready", 2025, nil, intPtr(2030), false},
		{"nil end unbounded", 2100, intPtr(2020), nil, true},
		{"nil end before start", 2019, intPtr(2020), nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analysis.IsReadyToDrink(tc.year, tc.start, tc.end))
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		start *int
		end   *int
		want  constants.DrinkingStatus
	}{
		{"missing start", 2025, nil, intPtr(2030), constants.StatusUnknown},
		{"missing end", 2025, intPtr(2020), nil, constants.StatusUnknown},
		{"past end", 2031, intPtr(2020), intPtr(2030), constants.StatusOverdue},
		{"in window", 2025, intPtr(2020), intPtr(2030), constants.StatusReady},
		{"year before start", 2019, intPtr(2020), intPtr(2030), constants.StatusApproaching},
		{"well before start", 2018, intPtr(2020), intPtr(2030), constants.StatusTooYoung},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analysis.StatusFor(tc.year, tc.start, tc.end))
		})
	}
}

func TestStatusFor_ExactlyOneStatus(t *testing.T) {
	// classification must be total and mutually exclusive over a year sweep
	start, end := 2020, 2030
	seen := map[constants.DrinkingStatus]bool{}
	for year := 2015; year <= 2035; year++ {
		s := analysis.StatusFor(year, &start, &end)
		require.Contains(t, []constants.DrinkingStatus{
			constants.StatusReady,
			constants.StatusApproaching,
			constants.StatusTooYoung,
			constants.StatusOverdue,
		}, s, fmt.Sprintf("year %d", year))
		seen[s] = true
	}
	assert.Len(t, seen, 4)
}

func TestValueScore(t *testing.T) {
	assert.Nil(t, analysis.ValueScore(nil, f32Ptr(10)))
	assert.Nil(t, analysis.ValueScore(f32Ptr(4), nil))
	assert.Nil(t, analysis.ValueScore(f32Ptr(4), f32Ptr(0)))
	assert.Nil(t, analysis.ValueScore(f32Ptr(4), f32Ptr(-1)))

	got := analysis.ValueScore(f32Ptr(4.0), f32Ptr(2.0))
	require.NotNil(t, got)
	assert.InDelta(t, 80.0, float64(*got), 1e-6)
}

func TestDrinkingWindowHelpers(t *testing.T) {
	w := analysis.DrinkingWindow{Start: 2028, Peak: 2031, End: 2035, Notes: "x"}
	assert.Equal(t, "2028 - 2035 (topp: 2031)", w.DisplayString())
	assert.Equal(t, 3, w.YearsUntilDrinkable(2025))
	assert.Equal(t, 6, w.YearsUntilPeak(2025))
	assert.Equal(t, 0, w.YearsUntilDrinkable(2030))
}
