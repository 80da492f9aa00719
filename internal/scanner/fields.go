package scanner

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/sahlen/vinkallaren/constants"
)

var (
	reVintage = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// alcohol patterns, tried in order
	reAlcVol   = regexp.MustCompile(`(?i)(\d{1,2}[.,]\d)\s*%?\s*vol`)
	reAlcAbbr  = regexp.MustCompile(`(?i)alc\.?\s*(\d{1,2}[.,]\d)`)
	reAlcPlain = regexp.MustCompile(`(\d{1,2}[.,]\d)\s*%`)
)

// label boilerplate that disqualifies a line from being the wine name
var nameStopWords = []string{"vol", "product of", "bottled", "contains"}

// wineTypeRules is evaluated in order; overlapping keywords ("rose" vs
// "rosso", "champagne" already claimed by sparkling) depend on this order.
var wineTypeRules = []struct {
	keywords []string
	wineType constants.WineType
}{
	{[]string{"rosé", "rose"}, constants.Rose},
	{[]string{"rött", "red", "rotwein", "rosso"}, constants.Red},
	{[]string{"vitt", "white", "weiss", "bianco"}, constants.White},
	{[]string{"mousserande", "sparkling", "champagne", "cava", "prosecco"}, constants.Sparkling},
	{[]string{"dessert", "sweet", "sött"}, constants.Dessert},
	{[]string{"fortified", "port", "sherry"}, constants.Fortified},
	{[]string{"orange"}, constants.Orange},
}

// countryRules maps label keywords (including regional proxies) to the
// Swedish country name. First match wins.
var countryRules = []struct {
	keyword string
	country string
}{
	{"france", "Frankrike"}, {"italy", "Italien"}, {"spain", "Spanien"},
	{"portugal", "Portugal"}, {"germany", "Tyskland"}, {"austria", "Österrike"},
	{"usa", "USA"}, {"california", "USA"}, {"napa", "USA"},
	{"australia", "Australien"}, {"argentina", "Argentina"}, {"chile", "Chile"},
	{"south africa", "Sydafrika"}, {"new zealand", "Nya Zeeland"},
	{"hungary", "Ungern"}, {"croatia", "Kroatien"}, {"greece", "Grekland"},
}

var regionKeywords = []string{
	"bordeaux", "burgundy", "champagne", "rhône", "loire", "alsace", "provence",
	"tuscany", "piedmont", "veneto", "chianti", "barolo",
	"rioja", "ribera del duero", "priorat", "cava",
	"douro", "porto",
	"mosel", "rheingau", "pfalz",
}

// ExtractFields runs every field heuristic over the recognized lines and
// their concatenation. Fields are extracted independently; no heuristic
// consumes another's output.
func ExtractFields(lines []string, fullText string, currentYear int) ExtractedWineData {
	return ExtractedWineData{
		Name:           extractName(lines),
		Producer:       extractProducer(lines),
		Vintage:        extractVintage(fullText, currentYear),
		WineType:       detectWineType(fullText),
		Country:        extractCountry(fullText),
		Region:         extractRegion(fullText),
		AlcoholContent: extractAlcohol(fullText),
	}
}

// extractName picks the longest line between 4 and 80 characters that
// carries none of the volume/provenance boilerplate, as long as it is
// longer than 8 characters.
func extractName(lines []string) *string {
	var best string
	for _, line := range lines {
		lower := strings.ToLower(line)
		if len(line) < 4 || len(line) > 80 {
			continue
		}
		skip := false
		for _, stop := range nameStopWords {
			if strings.Contains(lower, stop) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		if len(line) > 8 && len(line) > len(best) {
			best = line
		}
	}
	if best == "" {
		return nil
	}
	trimmed := strings.TrimSpace(best)
	return &trimmed
}

// extractProducer returns the first line mentioning an estate/winery/
// vineyards marker, falling back to the first line truncated to 40 chars.
func extractProducer(lines []string) *string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "estate") ||
			strings.Contains(lower, "winery") ||
			strings.Contains(lower, "vineyards") {
			trimmed := strings.TrimSpace(line)
			return &trimmed
		}
	}
	if len(lines) == 0 {
		return nil
	}
	first := lines[0]
	// rune-based so a truncated multi-byte name stays valid UTF-8
	if runes := []rune(first); len(runes) > 40 {
		first = string(runes[:40])
	}
	return &first
}

// extractVintage returns the first 4-digit run scanning left to right
// that parses as a plausible vintage: 1900 <= year <= currentYear.
func extractVintage(text string, currentYear int) *int {
	for _, m := range reVintage.FindAllString(text, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if year >= 1900 && year <= currentYear {
			return &year
		}
	}
	return nil
}

// detectWineType matches multilingual style keywords in rule order.
// No match yields nil, never Unknown; the caller decides the fallback.
func detectWineType(text string) *constants.WineType {
	lower := strings.ToLower(text)
	for _, rule := range wineTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				wt := rule.wineType
				return &wt
			}
		}
	}
	return nil
}

func extractCountry(text string) *string {
	lower := strings.ToLower(text)
	for _, rule := range countryRules {
		if strings.Contains(lower, rule.keyword) {
			c := rule.country
			return &c
		}
	}
	return nil
}

func extractRegion(text string) *string {
	lower := strings.ToLower(text)
	for _, kw := range regionKeywords {
		if strings.Contains(lower, kw) {
			r := titleCase(kw)
			return &r
		}
	}
	return nil
}

func extractAlcohol(text string) *float32 {
	for _, re := range []*regexp.Regexp{reAlcVol, reAlcAbbr, reAlcPlain} {
		if m := re.FindStringSubmatch(text); m != nil {
			normalized := strings.ReplaceAll(m[1], ",", ".")
			v, err := strconv.ParseFloat(normalized, 32)
			if err != nil {
				return nil
			}
			f := float32(v)
			return &f
		}
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
