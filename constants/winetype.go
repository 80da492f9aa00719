package constants

import "strings"

// WineType is the canonical wine style for rows in wines.
type WineType string

// Stable values (store these exact strings in DB).
const (
	Red       WineType = "RED"
	White     WineType = "WHITE"
	Rose      WineType = "ROSE"
	Sparkling WineType = "SPARKLING"
	Dessert   WineType = "DESSERT"
	Fortified WineType = "FORTIFIED"
	Orange    WineType = "ORANGE"
	Unknown   WineType = "UNKNOWN"
)

var allWineTypes = []WineType{
	Red,
	White,
	Rose,
	Sparkling,
	Dessert,
	Fortified,
	Orange,
	Unknown,
}

func WineTypesAsStringSlice() []string {
	result := make([]string, len(allWineTypes))
	for i, wt := range allWineTypes {
		result[i] = string(wt)
	}
	return result
}

// CanonicalizeWineType maps free-form input to a WineType.
// The second return reports whether the input matched anything.
func CanonicalizeWineType(input string) (WineType, bool) {
	if input == "" {
		return Unknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map, including Systembolaget category level names
	synonyms := map[string]WineType{
		"rött vin":        Red,
		"rött":            Red,
		"red wine":        Red,
		"vitt vin":        White,
		"vitt":            White,
		"white wine":      White,
		"rosévin":         Rose,
		"rosé":            Rose,
		"mousserande vin": Sparkling,
		"mousserande":     Sparkling,
		"champagne":       Sparkling,
		"dessertvin":      Dessert,
		"starkvin":        Fortified,
		"portvin":         Fortified,
		"sherry":          Fortified,
		"orange vin":      Orange,
	}

	if wt, ok := synonyms[normalized]; ok {
		return wt, true
	}

	for _, wt := range allWineTypes {
		if normalized == strings.ToLower(string(wt)) {
			return wt, true
		}
	}

	return Unknown, false
}

// DisplayName returns the Swedish display label.
func (w WineType) DisplayName() string {
	switch w {
	case Red:
		return "Rött vin"
	case White:
		return "Vitt vin"
	case Rose:
		return "Rosé"
	case Sparkling:
		return "Mousserande"
	case Dessert:
		return "Dessertvin"
	case Fortified:
		return "Förstärkt vin"
	case Orange:
		return "Orange vin"
	default:
		return "Okänd"
	}
}

// LocationType is the kind of storage a wine lives in.
type LocationType string

const (
	WineFridge LocationType = "WINE_FRIDGE"
	Cellar     LocationType = "CELLAR"
	Cabinet    LocationType = "CABINET"
	Rack       LocationType = "RACK"
	OtherStore LocationType = "OTHER"
)

var LocationTypes = []string{
	string(WineFridge), string(Cellar), string(Cabinet), string(Rack), string(OtherStore),
}

func (l LocationType) DisplayName() string {
	switch l {
	case WineFridge:
		return "Vinkyl"
	case Cellar:
		return "Vinkällare"
	case Cabinet:
		return "Skåp"
	case Rack:
		return "Vinställ"
	default:
		return "Annan"
	}
}
