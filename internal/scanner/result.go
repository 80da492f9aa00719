// Package scanner turns recognized label text into structured wine fields.
// Extraction is deterministic and field-independent: ordered keyword and
// regex tables evaluated first-match-wins.
package scanner

import (
	"strings"

	"github.com/sahlen/vinkallaren/constants"
)

// ExtractedWineData is the best-effort record read off a label.
// All fields are optional.
type ExtractedWineData struct {
	Name           *string             `json:"name,omitempty"`
	Producer       *string             `json:"producer,omitempty"`
	Vintage        *int                `json:"vintage,omitempty"`
	WineType       *constants.WineType `json:"wine_type,omitempty"`
	Country        *string             `json:"country,omitempty"`
	Region         *string             `json:"region,omitempty"`
	AlcoholContent *float32            `json:"alcohol_content,omitempty"`
}

// IsComplete reports whether both name and producer were read.
func (d ExtractedWineData) IsComplete() bool {
	return notBlank(d.Name) && notBlank(d.Producer)
}

// HasMinimumData reports whether at least one of name, producer or
// vintage was read. Scans below this bar are surfaced as errors.
func (d ExtractedWineData) HasMinimumData() bool {
	return notBlank(d.Name) || notBlank(d.Producer) || d.Vintage != nil
}

func notBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// Result is a successful scan: the raw recognized text, the extracted
// fields and a 0-1 completeness confidence. Failures travel as plain
// errors with display-ready messages.
type Result struct {
	RawText    string
	Data       ExtractedWineData
	Confidence float32
}
