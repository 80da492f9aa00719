// Package analysis holds the wine maturity rules: drinking-window
// estimation, drinking status, value scoring and food pairings.
// Everything here is a pure function of its inputs.
package analysis

import (
	"fmt"
	"strings"

	"github.com/sahlen/vinkallaren/constants"
)

// DrinkingWindow is the estimated year interval during which a wine is
// ready to enjoy. Start <= Peak <= End holds for every rule branch.
type DrinkingWindow struct {
	Start int
	Peak  int
	End   int
	Notes string
}

func (w DrinkingWindow) DisplayString() string {
	return fmt.Sprintf("%d - %d (topp: %d)", w.Start, w.End, w.Peak)
}

func (w DrinkingWindow) YearsUntilDrinkable(currentYear int) int {
	return max(0, w.Start-currentYear)
}

func (w DrinkingWindow) YearsUntilPeak(currentYear int) int {
	return max(0, w.Peak-currentYear)
}

// Estimator computes drinking windows from catalog attributes.
type Estimator struct {
	clock Clock
}

func NewEstimator(clock Clock) *Estimator {
	if clock == nil {
		clock = RealClock{}
	}
	return &Estimator{clock: clock}
}

func (e *Estimator) CurrentYear() int {
	return e.clock.Now().Year()
}

// EstimateWindow maps (wine type, vintage, region, grape varieties) to a
// drinking window. A missing vintage means "just acquired, unknown age"
// and is substituted with the current calendar year.
//
// Dispatch is by wine type first; RED and WHITE then walk a priority-ordered
// rule list over the lowercased first grape variety and region. The first
// matching rule wins, so rule order is load-bearing (e.g. the Cabernet rule
// must be checked before the Bordeaux region fallback).
func (e *Estimator) EstimateWindow(wineType constants.WineType, vintage *int, region string, grapes []string) DrinkingWindow {
	currentYear := e.CurrentYear()
	year := currentYear
	if vintage != nil {
		year = *vintage
	}

	switch wineType {
	case constants.Red:
		return redWindow(year, region, grapes)
	case constants.White:
		return whiteWindow(year, region, grapes)
	case constants.Rose:
		return roseWindow(year, currentYear)
	case constants.Sparkling:
		return sparklingWindow(year, region)
	case constants.Dessert:
		return dessertWindow(year, region)
	case constants.Fortified:
		return DrinkingWindow{
			Start: year,
			Peak:  year + 10,
			End:   year + 50,
			Notes: "Förstärkta viner kan lagras mycket länge",
		}
	case constants.Orange:
		return DrinkingWindow{
			Start: year + 2,
			Peak:  year + 5,
			End:   year + 10,
			Notes: "Orange viner utvecklas unikt med lagring",
		}
	default:
		return DrinkingWindow{
			Start: year,
			Peak:  year + 3,
			End:   year + 5,
			Notes: "Generiskt drickfönster",
		}
	}
}

func firstGrapeLower(grapes []string) string {
	if len(grapes) == 0 {
		return ""
	}
	return strings.ToLower(grapes[0])
}

func redWindow(vintage int, region string, grapes []string) DrinkingWindow {
	grape := firstGrapeLower(grapes)
	regionLower := strings.ToLower(region)

	switch {
	case strings.Contains(grape, "cabernet sauvignon"):
		return DrinkingWindow{
			Start: vintage + 5, Peak: vintage + 10, End: vintage + 20,
			Notes: "Cabernet Sauvignon utvecklas långsamt, full mognad efter 8-15 år",
		}
	case strings.Contains(grape, "pinot noir") || strings.Contains(regionLower, "burgundy"):
		return DrinkingWindow{
			Start: vintage + 3, Peak: vintage + 8, End: vintage + 15,
			Notes: "Pinot Noir når tidigare mognad, drick 5-12 år",
		}
	case strings.Contains(grape, "nebbiolo"):
		return DrinkingWindow{
			Start: vintage + 7, Peak: vintage + 15, End: vintage + 25,
			Notes: "Nebbiolo kräver lång lagring, full mognad efter 10-20 år",
		}
	case strings.Contains(grape, "tempranillo"):
		return DrinkingWindow{
			Start: vintage + 4, Peak: vintage + 8, End: vintage + 15,
			Notes: "Tempranillo: Reserva 5-10 år, Gran Reserva 10-20 år",
		}
	case strings.Contains(grape, "syrah") || strings.Contains(grape, "shiraz"):
		return DrinkingWindow{
			Start: vintage + 4, Peak: vintage + 8, End: vintage + 15,
			Notes: "Syrah/Shiraz: 5-10 år för optimal mognad",
		}
	case strings.Contains(grape, "merlot"):
		return DrinkingWindow{
			Start: vintage + 3, Peak: vintage + 7, End: vintage + 12,
			Notes: "Merlot mognar tidigare än Cabernet",
		}
	case strings.Contains(grape, "sangiovese"):
		return DrinkingWindow{
			Start: vintage + 3, Peak: vintage + 7, End: vintage + 15,
			Notes: "Sangiovese: Chianti 3-8 år, Brunello 5-15 år",
		}
	case strings.Contains(grape, "grenache"):
		return DrinkingWindow{
			Start: vintage + 2, Peak: vintage + 5, End: vintage + 10,
			Notes: "Grenache dricks bäst relativt ungt",
		}
	case strings.Contains(grape, "gamay") || strings.Contains(regionLower, "beaujolais"):
		return DrinkingWindow{
			Start: vintage + 1, Peak: vintage + 2, End: vintage + 5,
			Notes: "Lätta rödviner dricks bäst unga",
		}
	case strings.Contains(regionLower, "bordeaux"):
		return DrinkingWindow{
			Start: vintage + 5, Peak: vintage + 12, End: vintage + 25,
			Notes: "Bordeaux: Cru Classé 10-30 år, vanlig 5-10 år",
		}
	default:
		return DrinkingWindow{
			Start: vintage + 3, Peak: vintage + 6, End: vintage + 10,
			Notes: "De flesta rödviner är optimala efter 3-8 år",
		}
	}
}

func whiteWindow(vintage int, region string, grapes []string) DrinkingWindow {
	grape := firstGrapeLower(grapes)
	regionLower := strings.ToLower(region)

	switch {
	case strings.Contains(grape, "chardonnay"):
		if strings.Contains(regionLower, "burgundy") || strings.Contains(regionLower, "côte d'or") {
			return DrinkingWindow{
				Start: vintage + 3, Peak: vintage + 7, End: vintage + 15,
				Notes: "Burgundy Chardonnay: Montrachet 5-15 år, Village 3-8 år",
			}
		}
		return DrinkingWindow{
			Start: vintage + 1, Peak: vintage + 3, End: vintage + 6,
			Notes: "Chardonnay: drick ungt, upp till 5 år",
		}
	case strings.Contains(grape, "riesling"):
		if strings.Contains(regionLower, "mosel") || strings.Contains(regionLower, "rheingau") {
			return DrinkingWindow{
				Start: vintage + 2, Peak: vintage + 8, End: vintage + 20,
				Notes: "Tysk Riesling: halbtrocken 5-15 år, trocken 3-10 år, söt 10-30 år",
			}
		}
		return DrinkingWindow{
			Start: vintage + 2, Peak: vintage + 5, End: vintage + 10,
			Notes: "Riesling åldras elegant, särskilt från kalla klimat",
		}
	case strings.Contains(grape, "sauvignon blanc"):
		return DrinkingWindow{
			Start: vintage, Peak: vintage + 1, End: vintage + 3,
			Notes: "Sauvignon Blanc dricks bäst inom 1-2 år",
		}
	case strings.Contains(grape, "chenin blanc") || strings.Contains(regionLower, "loire"):
		return DrinkingWindow{
			Start: vintage + 2, Peak: vintage + 8, End: vintage + 15,
			Notes: "Chenin Blanc från Loire kan lagras 10-20 år",
		}
	case strings.Contains(grape, "grüner veltliner"):
		return DrinkingWindow{
			Start: vintage + 2, Peak: vintage + 4, End: vintage + 8,
			Notes: "Grüner Veltliner: 2-5 år för Smaragd, 1-3 för klassisk",
		}
	case strings.Contains(grape, "gewürztraminer") || strings.Contains(grape, "gewurztraminer"):
		return DrinkingWindow{
			Start: vintage + 1, Peak: vintage + 3, End: vintage + 6,
			Notes: "Gewürztraminer dricks bäst relativt ungt",
		}
	case strings.Contains(grape, "viognier"):
		return DrinkingWindow{
			Start: vintage + 2, Peak: vintage + 4, End: vintage + 7,
			Notes: "Viognier utvecklas till 3-5 år",
		}
	default:
		return DrinkingWindow{
			Start: vintage, Peak: vintage + 2, End: vintage + 4,
			Notes: "De flesta vita viner dricks bäst inom 1-3 år",
		}
	}
}

func roseWindow(vintage, currentYear int) DrinkingWindow {
	start := vintage + 1
	// peak is capped at next year for young rosé; keep Start <= Peak
	// for future vintages
	peak := min(vintage+2, currentYear+1)
	if peak < start {
		peak = start
	}
	return DrinkingWindow{
		Start: start,
		Peak:  peak,
		End:   vintage + 3,
		Notes: "Rosé dricks bäst ungt, inom 1-3 år från skörden",
	}
}

func sparklingWindow(vintage int, region string) DrinkingWindow {
	regionLower := strings.ToLower(region)
	switch {
	case strings.Contains(regionLower, "champagne"):
		// vintage-dated Champagne assumed after 1990
		if vintage > 1990 {
			return DrinkingWindow{
				Start: vintage + 5, Peak: vintage + 10, End: vintage + 20,
				Notes: "Vintage Champagne: 5-20 år, non-vintage 2-3 år",
			}
		}
		return DrinkingWindow{
			Start: vintage, Peak: vintage + 2, End: vintage + 4,
			Notes: "Non-vintage Champagne: drick inom 2-3 år",
		}
	case strings.Contains(regionLower, "cava"):
		return DrinkingWindow{
			Start: vintage, Peak: vintage + 2, End: vintage + 5,
			Notes: "Cava: Reserva 2-3 år, Gran Reserva 3-5 år",
		}
	default:
		return DrinkingWindow{
			Start: vintage, Peak: vintage + 1, End: vintage + 3,
			Notes: "Mousserande vin dricks bäst ungt",
		}
	}
}

func dessertWindow(vintage int, region string) DrinkingWindow {
	regionLower := strings.ToLower(region)
	if strings.Contains(regionLower, "sauternes") || strings.Contains(regionLower, "barsac") {
		return DrinkingWindow{
			Start: vintage + 5, Peak: vintage + 15, End: vintage + 30,
			Notes: "Sauternes: exceptionell åldringspotential 10-30 år",
		}
	}
	return DrinkingWindow{
		Start: vintage + 2, Peak: vintage + 8, End: vintage + 15,
		Notes: "Dessertviner lagras generellt längre",
	}
}

// IsReadyToDrink reports whether currentYear falls inside [start, end]
// inclusive. A nil end is treated as unbounded; a nil start means the
// window is unknown and the wine is not considered ready.
func IsReadyToDrink(currentYear int, start, end *int) bool {
	if start == nil {
		return false
	}
	if currentYear < *start {
		return false
	}
	if end == nil {
		return true
	}
	return currentYear <= *end
}

// StatusFor classifies currentYear against a drinking window. The five
// statuses are mutually exclusive and total over (year, start, end).
func StatusFor(currentYear int, start, end *int) constants.DrinkingStatus {
	switch {
	case start == nil || end == nil:
		return constants.StatusUnknown
	case currentYear > *end:
		return constants.StatusOverdue
	case currentYear >= *start:
		return constants.StatusReady
	case currentYear >= *start-1:
		return constants.StatusApproaching
	default:
		return constants.StatusTooYoung
	}
}

// ValueScore computes the quality-price ratio rating²/price×10.
// Returns nil unless both inputs are present and price is positive.
// The formula is kept exactly as the product defined it.
func ValueScore(rating, price *float32) *float32 {
	if rating == nil || price == nil || *price <= 0 {
		return nil
	}
	score := (*rating * *rating) / *price * 10
	return &score
}
