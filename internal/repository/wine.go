package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/gen/ent"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
	"github.com/sahlen/vinkallaren/internal/common"
	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/utils"
)

// WineFilter narrows ListWines. Nil fields are ignored.
type WineFilter struct {
	WineType   *string
	Country    *string
	Region     *string
	LocationID *uuid.UUID
	InStock    bool
}

// CellarStatistics aggregates the current cellar contents.
type CellarStatistics struct {
	TotalWines     int
	TotalBottles   int
	TotalValue     float64
	BottlesByType  map[string]int
	AverageRating  *float32
	DistinctRegion int
}

type WineRepository interface {
	Create(ctx context.Context, w *entity.Wine) (*entity.Wine, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Wine, error)
	Update(ctx context.Context, w *entity.Wine) (*entity.Wine, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter WineFilter) ([]*entity.Wine, error)
	Search(ctx context.Context, query string) ([]*entity.Wine, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (*entity.Wine, error)
	ReadyToDrink(ctx context.Context, year int) ([]*entity.Wine, error)
	NotYetReady(ctx context.Context, year int) ([]*entity.Wine, error)
	Overdue(ctx context.Context, year int) ([]*entity.Wine, error)
	Statistics(ctx context.Context) (*CellarStatistics, error)
	DistinctCountries(ctx context.Context) ([]string, error)
	DistinctRegions(ctx context.Context) ([]string, error)
	FindBySystembolagetID(ctx context.Context, artnr string) (*entity.Wine, error)
}

type wineRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewWineRepository(client *ent.Client, logger *slog.Logger) WineRepository {
	return &wineRepository{
		client: client,
		logger: logger,
	}
}

func (r *wineRepository) Create(ctx context.Context, w *entity.Wine) (*entity.Wine, error) {
	builder := r.client.Wine.Create().
		SetName(w.Name).
		SetProducer(w.Producer).
		SetWineType(w.WineType).
		SetNillableVintage(w.Vintage).
		SetNillableCountry(w.Country).
		SetNillableRegion(w.Region).
		SetNillableSubRegion(w.SubRegion).
		SetNillableAppellation(w.Appellation).
		SetNillableAlcoholContent(w.AlcoholContent).
		SetNillablePurchasePrice(w.PurchasePrice).
		SetNillablePersonalRating(w.PersonalRating).
		SetNillableDrinkingWindowStart(w.DrinkingWindowStart).
		SetNillableDrinkingWindowEnd(w.DrinkingWindowEnd).
		SetNillablePeakMaturityYear(w.PeakMaturityYear).
		SetNillableTastingSummary(w.TastingSummary).
		SetNillableLocationID(w.LocationID).
		SetNillableSystembolagetID(w.SystembolagetID).
		SetNillableBarcode(w.Barcode)

	if len(w.GrapeVarieties) > 0 {
		builder = builder.SetGrapeVarieties(w.GrapeVarieties)
	}
	if len(w.FoodPairings) > 0 {
		builder = builder.SetFoodPairings(w.FoodPairings)
	}
	if w.BottleSize != "" {
		builder = builder.SetBottleSize(w.BottleSize)
	}
	if w.Currency != "" {
		builder = builder.SetCurrency(w.Currency)
	}
	if w.Quantity > 0 {
		builder = builder.SetQuantity(w.Quantity)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create wine", "name", w.Name, "error", err)
		return nil, err
	}
	return utils.ToWine(row), nil
}

func (r *wineRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Wine, error) {
	row, err := r.client.Wine.Query().
		Where(wine.ID(id), wine.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToWine(row), nil
}

func (r *wineRepository) Update(ctx context.Context, w *entity.Wine) (*entity.Wine, error) {
	builder := r.client.Wine.UpdateOneID(w.ID).
		SetName(w.Name).
		SetProducer(w.Producer).
		SetWineType(w.WineType).
		SetNillableVintage(w.Vintage).
		SetNillableCountry(w.Country).
		SetNillableRegion(w.Region).
		SetNillableSubRegion(w.SubRegion).
		SetNillableAppellation(w.Appellation).
		SetNillableAlcoholContent(w.AlcoholContent).
		SetNillablePurchasePrice(w.PurchasePrice).
		SetNillablePersonalRating(w.PersonalRating).
		SetNillableDrinkingWindowStart(w.DrinkingWindowStart).
		SetNillableDrinkingWindowEnd(w.DrinkingWindowEnd).
		SetNillablePeakMaturityYear(w.PeakMaturityYear).
		SetNillableTastingSummary(w.TastingSummary).
		SetNillableSystembolagetID(w.SystembolagetID).
		SetNillableBarcode(w.Barcode).
		SetQuantity(w.Quantity)

	if len(w.GrapeVarieties) > 0 {
		builder = builder.SetGrapeVarieties(w.GrapeVarieties)
	}
	if len(w.FoodPairings) > 0 {
		builder = builder.SetFoodPairings(w.FoodPairings)
	}
	if w.LocationID != nil {
		builder = builder.SetLocationID(*w.LocationID)
	} else {
		builder = builder.ClearLocationID()
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update wine", "wine_id", w.ID, "error", err)
		return nil, err
	}
	return utils.ToWine(row), nil
}

// Delete marks the wine as deleted. Rows stay behind for scan job
// history and statistics backfills.
func (r *wineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Wine.UpdateOneID(id).
		SetIsDeleted(true).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func (r *wineRepository) List(ctx context.Context, filter WineFilter) ([]*entity.Wine, error) {
	q := r.client.Wine.Query().Where(wine.IsDeleted(false))
	if filter.WineType != nil {
		q = q.Where(wine.WineType(*filter.WineType))
	}
	if filter.Country != nil {
		q = q.Where(wine.CountryEqualFold(*filter.Country))
	}
	if filter.Region != nil {
		q = q.Where(wine.RegionEqualFold(*filter.Region))
	}
	if filter.LocationID != nil {
		q = q.Where(wine.LocationID(*filter.LocationID))
	}
	if filter.InStock {
		q = q.Where(wine.QuantityGT(0))
	}
	rows, err := q.Order(wine.ByName(), wine.ByVintage()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list wines", "error", err)
		return nil, err
	}
	return toWines(rows), nil
}

func (r *wineRepository) Search(ctx context.Context, query string) ([]*entity.Wine, error) {
	rows, err := r.client.Wine.Query().
		Where(
			wine.IsDeleted(false),
			wine.Or(
				wine.NameContainsFold(query),
				wine.ProducerContainsFold(query),
				wine.RegionContainsFold(query),
				wine.AppellationContainsFold(query),
			),
		).
		Order(wine.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to search wines", "query", query, "error", err)
		return nil, err
	}
	return toWines(rows), nil
}

// AdjustQuantity adds delta to the on-hand count, refusing to go below
// zero.
func (r *wineRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (*entity.Wine, error) {
	row, err := r.client.Wine.Query().
		Where(wine.ID(id), wine.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	next := row.Quantity + delta
	if next < 0 {
		return nil, common.ErrInvalidInput
	}
	updated, err := row.Update().SetQuantity(next).Save(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToWine(updated), nil
}

func (r *wineRepository) ReadyToDrink(ctx context.Context, year int) ([]*entity.Wine, error) {
	rows, err := r.client.Wine.Query().
		Where(
			wine.IsDeleted(false),
			wine.QuantityGT(0),
			wine.DrinkingWindowStartLTE(year),
			wine.Or(
				wine.DrinkingWindowEndIsNil(),
				wine.DrinkingWindowEndGTE(year),
			),
		).
		Order(wine.ByDrinkingWindowEnd()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toWines(rows), nil
}

func (r *wineRepository) NotYetReady(ctx context.Context, year int) ([]*entity.Wine, error) {
	rows, err := r.client.Wine.Query().
		Where(
			wine.IsDeleted(false),
			wine.QuantityGT(0),
			wine.DrinkingWindowStartGT(year),
		).
		Order(wine.ByDrinkingWindowStart()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toWines(rows), nil
}

func (r *wineRepository) Overdue(ctx context.Context, year int) ([]*entity.Wine, error) {
	rows, err := r.client.Wine.Query().
		Where(
			wine.IsDeleted(false),
			wine.QuantityGT(0),
			wine.DrinkingWindowEndLT(year),
		).
		Order(wine.ByDrinkingWindowEnd()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toWines(rows), nil
}

func (r *wineRepository) Statistics(ctx context.Context) (*CellarStatistics, error) {
	rows, err := r.client.Wine.Query().
		Where(wine.IsDeleted(false), wine.QuantityGT(0)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	stats := &CellarStatistics{BottlesByType: make(map[string]int)}
	regions := make(map[string]struct{})
	var ratingSum float32
	var rated int
	for _, row := range rows {
		stats.TotalWines++
		stats.TotalBottles += row.Quantity
		stats.BottlesByType[row.WineType] += row.Quantity
		if row.PurchasePrice != nil {
			stats.TotalValue += *row.PurchasePrice * float64(row.Quantity)
		}
		if row.Region != nil && *row.Region != "" {
			regions[*row.Region] = struct{}{}
		}
		if row.PersonalRating != nil {
			ratingSum += *row.PersonalRating
			rated++
		}
	}
	stats.DistinctRegion = len(regions)
	if rated > 0 {
		avg := ratingSum / float32(rated)
		stats.AverageRating = &avg
	}
	return stats, nil
}

func (r *wineRepository) DistinctCountries(ctx context.Context) ([]string, error) {
	return r.distinctField(ctx, wine.FieldCountry)
}

func (r *wineRepository) DistinctRegions(ctx context.Context) ([]string, error) {
	return r.distinctField(ctx, wine.FieldRegion)
}

func (r *wineRepository) distinctField(ctx context.Context, field string) ([]string, error) {
	values, err := r.client.Wine.Query().
		Where(wine.IsDeleted(false)).
		Unique(true).
		Select(field).
		Strings(ctx)
	if err != nil {
		return nil, err
	}
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *wineRepository) FindBySystembolagetID(ctx context.Context, artnr string) (*entity.Wine, error) {
	row, err := r.client.Wine.Query().
		Where(wine.SystembolagetID(artnr), wine.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToWine(row), nil
}

func toWines(rows []*ent.Wine) []*entity.Wine {
	result := make([]*entity.Wine, len(rows))
	for i, row := range rows {
		result[i] = utils.ToWine(row)
	}
	return result
}
