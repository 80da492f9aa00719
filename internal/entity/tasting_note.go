package entity

import (
	"time"

	"github.com/google/uuid"
)

// TastingNote represents a tasting note for data transfer between layers.
type TastingNote struct {
	ID          uuid.UUID `json:"id"`
	WineID      uuid.UUID `json:"wine_id"`
	TastingDate time.Time `json:"tasting_date"`
	Location    *string   `json:"location,omitempty"`
	Occasion    *string   `json:"occasion,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Aromas      *string   `json:"aromas,omitempty"`
	Palate      *string   `json:"palate,omitempty"`
	Score       *float32  `json:"score,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
