package scanner

// Field weights for the completeness score. All five weighted fields are
// attempted on every scan, so the denominator is their fixed sum.
const (
	weightName     = 30
	weightProducer = 25
	weightVintage  = 20
	weightType     = 15
	weightCountry  = 10

	weightTotal = weightName + weightProducer + weightVintage + weightType + weightCountry
)

// Confidence returns the weighted-presence completeness ratio in [0, 1].
// It is not a calibrated probability, only a measure of how much of the
// label was readable.
func Confidence(d ExtractedWineData) float32 {
	var score float32
	if notBlank(d.Name) {
		score += weightName
	}
	if notBlank(d.Producer) {
		score += weightProducer
	}
	if d.Vintage != nil {
		score += weightVintage
	}
	if d.WineType != nil {
		score += weightType
	}
	if notBlank(d.Country) {
		score += weightCountry
	}
	return score / weightTotal
}
