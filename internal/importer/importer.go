package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/repository"
)

// WineRecord is one wine row in a backup file.
type WineRecord struct {
	Name                string   `json:"name"`
	Producer            string   `json:"producer"`
	WineType            string   `json:"wine_type"`
	Vintage             *int     `json:"vintage,omitempty"`
	Country             *string  `json:"country,omitempty"`
	Region              *string  `json:"region,omitempty"`
	SubRegion           *string  `json:"sub_region,omitempty"`
	Appellation         *string  `json:"appellation,omitempty"`
	GrapeVarieties      []string `json:"grape_varieties,omitempty"`
	AlcoholContent      *float32 `json:"alcohol_content,omitempty"`
	BottleSize          string   `json:"bottle_size,omitempty"`
	Quantity            int      `json:"quantity,omitempty"`
	PurchasePrice       *float64 `json:"purchase_price,omitempty"`
	Currency            string   `json:"currency,omitempty"`
	PersonalRating      *float32 `json:"personal_rating,omitempty"`
	DrinkingWindowStart *int     `json:"drinking_window_start,omitempty"`
	DrinkingWindowEnd   *int     `json:"drinking_window_end,omitempty"`
	PeakMaturityYear    *int     `json:"peak_maturity_year,omitempty"`
	TastingSummary      *string  `json:"tasting_summary,omitempty"`
	FoodPairings        []string `json:"food_pairings,omitempty"`
	SystembolagetID     *string  `json:"systembolaget_id,omitempty"`
	Barcode             *string  `json:"barcode,omitempty"`
}

// Backup is a whole exported cellar.
type Backup struct {
	Version int          `json:"version"`
	Wines   []WineRecord `json:"wines"`
}

// ImportStats summarizes a finished import.
type ImportStats struct {
	Imported int
	Failed   int
}

type Importer struct {
	Wines  repository.WineRepository
	Logger *slog.Logger
}

func NewImporter(wines repository.WineRepository, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{Wines: wines, Logger: logger}
}

// ImportFile validates and loads a backup file. Validation failure
// aborts before any write; per-row create failures are counted and the
// rest of the file still loads.
func (i *Importer) ImportFile(ctx context.Context, path string) (ImportStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportStats{}, fmt.Errorf("read backup: %w", err)
	}
	return i.Import(ctx, data)
}

func (i *Importer) Import(ctx context.Context, data []byte) (ImportStats, error) {
	if err := ValidateBackup(data); err != nil {
		return ImportStats{}, err
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return ImportStats{}, fmt.Errorf("decode backup: %w", err)
	}

	var stats ImportStats
	for _, rec := range backup.Wines {
		w := recordToWine(rec)
		if _, err := i.Wines.Create(ctx, w); err != nil {
			i.Logger.Error("import row failed", "name", rec.Name, "producer", rec.Producer, "error", err)
			stats.Failed++
			continue
		}
		stats.Imported++
	}
	i.Logger.Info("backup imported", "imported", stats.Imported, "failed", stats.Failed)
	return stats, nil
}

func recordToWine(rec WineRecord) *entity.Wine {
	quantity := rec.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return &entity.Wine{
		Name:                rec.Name,
		Producer:            rec.Producer,
		WineType:            rec.WineType,
		Vintage:             rec.Vintage,
		Country:             rec.Country,
		Region:              rec.Region,
		SubRegion:           rec.SubRegion,
		Appellation:         rec.Appellation,
		GrapeVarieties:      rec.GrapeVarieties,
		AlcoholContent:      rec.AlcoholContent,
		BottleSize:          rec.BottleSize,
		Quantity:            quantity,
		PurchasePrice:       rec.PurchasePrice,
		Currency:            rec.Currency,
		PersonalRating:      rec.PersonalRating,
		DrinkingWindowStart: rec.DrinkingWindowStart,
		DrinkingWindowEnd:   rec.DrinkingWindowEnd,
		PeakMaturityYear:    rec.PeakMaturityYear,
		TastingSummary:      rec.TastingSummary,
		FoodPairings:        rec.FoodPairings,
		SystembolagetID:     rec.SystembolagetID,
		Barcode:             rec.Barcode,
	}
}
