package server

import (
	"github.com/google/uuid"

	cellarpb "github.com/sahlen/vinkallaren/gen/proto/cellar/v1"
	"github.com/sahlen/vinkallaren/internal/entity"
)

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(v int32) *int {
	if v == 0 {
		return nil
	}
	i := int(v)
	return &i
}

func floatPtr(v float32) *float32 {
	if v == 0 {
		return nil
	}
	return &v
}

func doublePtr(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

// inputToWine maps the caller-editable proto fields onto an entity.
// Zero-valued scalars mean "unset".
func inputToWine(in *cellarpb.WineInput) *entity.Wine {
	w := &entity.Wine{
		Name:                in.GetName(),
		Producer:            in.GetProducer(),
		WineType:            in.GetWineType(),
		Vintage:             intPtr(in.GetVintage()),
		Country:             strPtr(in.GetCountry()),
		Region:              strPtr(in.GetRegion()),
		SubRegion:           strPtr(in.GetSubRegion()),
		Appellation:         strPtr(in.GetAppellation()),
		GrapeVarieties:      in.GetGrapeVarieties(),
		AlcoholContent:      floatPtr(in.GetAlcoholContent()),
		BottleSize:          in.GetBottleSize(),
		Quantity:            int(in.GetQuantity()),
		PurchasePrice:       doublePtr(in.GetPurchasePrice()),
		Currency:            in.GetCurrency(),
		PersonalRating:      floatPtr(in.GetPersonalRating()),
		DrinkingWindowStart: intPtr(in.GetDrinkingWindowStart()),
		DrinkingWindowEnd:   intPtr(in.GetDrinkingWindowEnd()),
		TastingSummary:      strPtr(in.GetTastingSummary()),
		SystembolagetID:     strPtr(in.GetSystembolagetId()),
		Barcode:             strPtr(in.GetBarcode()),
	}
	if lid := in.GetLocationId(); lid != "" {
		if id, err := uuid.Parse(lid); err == nil {
			w.LocationID = &id
		}
	}
	return w
}
