package utils

import (
	"time"

	"github.com/sahlen/vinkallaren/gen/ent"
	cellarpb "github.com/sahlen/vinkallaren/gen/proto/cellar/v1"
	"github.com/sahlen/vinkallaren/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrZero(p *int) int32 {
	if p == nil {
		return 0
	}
	return int32(*p)
}

func floatOrZero(p *float32) float32 {
	if p == nil {
		return 0
	}
	return *p
}

// ParseYMD parses a YYYY-MM-DD string into a midnight-UTC time to match
// DATE column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToWine(e *ent.Wine) *entity.Wine {
	return &entity.Wine{
		ID:                  e.ID,
		Name:                e.Name,
		Producer:            e.Producer,
		Vintage:             e.Vintage,
		WineType:            e.WineType,
		Country:             e.Country,
		Region:              e.Region,
		SubRegion:           e.SubRegion,
		Appellation:         e.Appellation,
		GrapeVarieties:      e.GrapeVarieties,
		AlcoholContent:      e.AlcoholContent,
		BottleSize:          e.BottleSize,
		Quantity:            e.Quantity,
		PurchasePrice:       e.PurchasePrice,
		Currency:            e.Currency,
		PersonalRating:      e.PersonalRating,
		DrinkingWindowStart: e.DrinkingWindowStart,
		DrinkingWindowEnd:   e.DrinkingWindowEnd,
		PeakMaturityYear:    e.PeakMaturityYear,
		TastingSummary:      e.TastingSummary,
		FoodPairings:        e.FoodPairings,
		LocationID:          e.LocationID,
		SystembolagetID:     e.SystembolagetID,
		Barcode:             e.Barcode,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func ToScanJob(e *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:                   e.ID,
		PhotoID:              e.PhotoID,
		WineID:               e.WineID,
		Format:               e.Format,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorMessage:         e.ErrorMessage,
		DetectionConfidence:  e.DetectionConfidence,
		CroppedPath:          e.CroppedPath,
		RawText:              e.RawText,
		ExtractedJSON:        e.ExtractedJSON,
		ExtractionConfidence: e.ExtractionConfidence,
		NeedsReview:          e.NeedsReview,
	}
}

func ToStorageLocation(e *ent.StorageLocation) *entity.StorageLocation {
	return &entity.StorageLocation{
		ID:           e.ID,
		Name:         e.Name,
		LocationType: e.LocationType,
		Capacity:     e.Capacity,
		Temperature:  e.Temperature,
		Humidity:     e.Humidity,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToTastingNote(e *ent.TastingNote) *entity.TastingNote {
	return &entity.TastingNote{
		ID:          e.ID,
		WineID:      e.WineID,
		TastingDate: e.TastingDate,
		Location:    e.Location,
		Occasion:    e.Occasion,
		Color:       e.Color,
		Aromas:      e.Aromas,
		Palate:      e.Palate,
		Score:       e.Score,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

func ToPBWine(w *entity.Wine) *cellarpb.Wine {
	pb := &cellarpb.Wine{
		Id:                  w.ID.String(),
		Name:                w.Name,
		Producer:            w.Producer,
		Vintage:             intOrZero(w.Vintage),
		WineType:            w.WineType,
		Country:             strOrEmpty(w.Country),
		Region:              strOrEmpty(w.Region),
		SubRegion:           strOrEmpty(w.SubRegion),
		Appellation:         strOrEmpty(w.Appellation),
		GrapeVarieties:      w.GrapeVarieties,
		AlcoholContent:      floatOrZero(w.AlcoholContent),
		BottleSize:          w.BottleSize,
		Quantity:            int32(w.Quantity),
		Currency:            w.Currency,
		PersonalRating:      floatOrZero(w.PersonalRating),
		DrinkingWindowStart: intOrZero(w.DrinkingWindowStart),
		DrinkingWindowEnd:   intOrZero(w.DrinkingWindowEnd),
		PeakMaturityYear:    intOrZero(w.PeakMaturityYear),
		TastingSummary:      strOrEmpty(w.TastingSummary),
		FoodPairings:        w.FoodPairings,
		SystembolagetId:     strOrEmpty(w.SystembolagetID),
		Barcode:             strOrEmpty(w.Barcode),
		CreatedAt:           w.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:           w.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if w.PurchasePrice != nil {
		pb.PurchasePrice = *w.PurchasePrice
	}
	if w.LocationID != nil {
		pb.LocationId = w.LocationID.String()
	}
	return pb
}

func ToPBScanJob(j *entity.ScanJob) *cellarpb.ScanJob {
	pb := &cellarpb.ScanJob{
		Id:                   j.ID.String(),
		PhotoId:              j.PhotoID.String(),
		Format:               j.Format,
		Status:               strOrEmpty(j.Status),
		ErrorMessage:         strOrEmpty(j.ErrorMessage),
		DetectionConfidence:  floatOrZero(j.DetectionConfidence),
		CroppedPath:          strOrEmpty(j.CroppedPath),
		RawText:              strOrEmpty(j.RawText),
		ExtractedJson:        string(j.ExtractedJSON),
		ExtractionConfidence: floatOrZero(j.ExtractionConfidence),
		NeedsReview:          j.NeedsReview,
		StartedAt:            j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.WineID != nil {
		pb.WineId = j.WineID.String()
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

func ToPBStorageLocation(l *entity.StorageLocation) *cellarpb.StorageLocation {
	return &cellarpb.StorageLocation{
		Id:           l.ID.String(),
		Name:         l.Name,
		LocationType: l.LocationType,
		Capacity:     intOrZero(l.Capacity),
		Temperature:  floatOrZero(l.Temperature),
		Humidity:     floatOrZero(l.Humidity),
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBTastingNote(n *entity.TastingNote) *cellarpb.TastingNote {
	return &cellarpb.TastingNote{
		Id:          n.ID.String(),
		WineId:      n.WineID.String(),
		TastingDate: n.TastingDate.Format("2006-01-02"),
		Location:    strOrEmpty(n.Location),
		Occasion:    strOrEmpty(n.Occasion),
		Color:       strOrEmpty(n.Color),
		Aromas:      strOrEmpty(n.Aromas),
		Palate:      strOrEmpty(n.Palate),
		Score:       floatOrZero(n.Score),
		Notes:       strOrEmpty(n.Notes),
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339),
	}
}
