package analysis

import "github.com/sahlen/vinkallaren/constants"

// FoodPairing is a static pairing suggestion derived from wine type.
type FoodPairing struct {
	Category string
	Examples string
	Quality  constants.PairingQuality
}

// Pairings returns food pairing suggestions for a wine. Region and grapes
// are accepted for future refinement but the tables currently branch on
// type only, matching the product rules.
func Pairings(wineType constants.WineType, region string, grapes []string) []FoodPairing {
	switch wineType {
	case constants.Red:
		return []FoodPairing{
			{Category: "Grillat", Examples: "Rött kött från grillen", Quality: constants.PairingExcellent},
			{Category: "Chark", Examples: "Skinka, korv", Quality: constants.PairingGood},
		}
	case constants.White:
		return []FoodPairing{
			{Category: "Fisk", Examples: "Vit fisk, skaldjur", Quality: constants.PairingExcellent},
			{Category: "Kyckling", Examples: "Lättare rätter", Quality: constants.PairingGood},
		}
	case constants.Rose:
		return []FoodPairing{
			{Category: "Sallad", Examples: "Sommarsallad", Quality: constants.PairingExcellent},
			{Category: "Tapas", Examples: "Spanska tilltugg", Quality: constants.PairingVeryGood},
		}
	case constants.Sparkling:
		return []FoodPairing{
			{Category: "Ostron", Examples: "Färska ostron", Quality: constants.PairingExcellent},
			{Category: "Förrätt", Examples: "Tapas, tilltugg", Quality: constants.PairingExcellent},
			{Category: "Chark", Examples: "Charkuterier", Quality: constants.PairingGood},
		}
	case constants.Dessert:
		return []FoodPairing{
			{Category: "Dessert", Examples: "Choklad, bär", Quality: constants.PairingExcellent},
			{Category: "Ost", Examples: "Blåmögel", Quality: constants.PairingExcellent},
		}
	case constants.Fortified:
		return []FoodPairing{
			{Category: "Nötter", Examples: "Mandlar, valnötter", Quality: constants.PairingExcellent},
			{Category: "Dessert", Examples: "Choklad", Quality: constants.PairingGood},
		}
	case constants.Orange:
		return []FoodPairing{
			{Category: "Asiatiskt", Examples: "Kryddig mat", Quality: constants.PairingExcellent},
			{Category: "Fisk", Examples: "Fet fisk", Quality: constants.PairingGood},
		}
	default:
		return []FoodPairing{
			{Category: "Mat", Examples: "Passar till mat", Quality: constants.PairingGood},
		}
	}
}
