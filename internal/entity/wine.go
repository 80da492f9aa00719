package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wine represents a wine for data transfer between layers.
type Wine struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Producer            string     `json:"producer"`
	Vintage             *int       `json:"vintage,omitempty"`
	WineType            string     `json:"wine_type"`
	Country             *string    `json:"country,omitempty"`
	Region              *string    `json:"region,omitempty"`
	SubRegion           *string    `json:"sub_region,omitempty"`
	Appellation         *string    `json:"appellation,omitempty"`
	GrapeVarieties      []string   `json:"grape_varieties,omitempty"`
	AlcoholContent      *float32   `json:"alcohol_content,omitempty"`
	BottleSize          string     `json:"bottle_size"`
	Quantity            int        `json:"quantity"`
	PurchasePrice       *float64   `json:"purchase_price,omitempty"`
	Currency            string     `json:"currency"`
	PersonalRating      *float32   `json:"personal_rating,omitempty"`
	DrinkingWindowStart *int       `json:"drinking_window_start,omitempty"`
	DrinkingWindowEnd   *int       `json:"drinking_window_end,omitempty"`
	PeakMaturityYear    *int       `json:"peak_maturity_year,omitempty"`
	TastingSummary      *string    `json:"tasting_summary,omitempty"`
	FoodPairings        []string   `json:"food_pairings,omitempty"`
	LocationID          *uuid.UUID `json:"location_id,omitempty"`
	SystembolagetID     *string    `json:"systembolaget_id,omitempty"`
	Barcode             *string    `json:"barcode,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
