// Package cellar is the application service over the wine inventory:
// it turns scan results into cellar rows, fills in drinking windows and
// pairings, and answers what is ready to drink.
package cellar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/internal/analysis"
	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/repository"
	"github.com/sahlen/vinkallaren/internal/scanner"
)

type Service struct {
	wines     repository.WineRepository
	notes     repository.TastingNoteRepository
	locations repository.LocationRepository
	jobs      repository.ScanJobRepository
	estimator *analysis.Estimator
	logger    *slog.Logger
}

func NewService(
	wines repository.WineRepository,
	notes repository.TastingNoteRepository,
	locations repository.LocationRepository,
	jobs repository.ScanJobRepository,
	estimator *analysis.Estimator,
	logger *slog.Logger,
) *Service {
	if estimator == nil {
		estimator = analysis.NewEstimator(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		wines:     wines,
		notes:     notes,
		locations: locations,
		jobs:      jobs,
		estimator: estimator,
		logger:    logger,
	}
}

// CreateWine validates and stores a wine, estimating the drinking
// window and food pairings for any the caller left unset.
func (s *Service) CreateWine(ctx context.Context, w *entity.Wine) (*entity.Wine, error) {
	if w.Name == "" || w.Producer == "" {
		return nil, fmt.Errorf("name and producer are required")
	}
	wt, ok := constants.CanonicalizeWineType(w.WineType)
	if !ok {
		wt = constants.Unknown
	}
	w.WineType = string(wt)

	s.enrich(w, wt)

	created, err := s.wines.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	s.logger.Info("wine added to cellar",
		"wine_id", created.ID, "name", created.Name, "producer", created.Producer)
	return created, nil
}

// CreateFromScan turns extracted label data into a cellar row and links
// the scan job to it.
func (s *Service) CreateFromScan(ctx context.Context, jobID uuid.UUID, data scanner.ExtractedWineData) (*entity.Wine, error) {
	w := &entity.Wine{Quantity: 1}
	if data.Name != nil {
		w.Name = *data.Name
	}
	if data.Producer != nil {
		w.Producer = *data.Producer
	}
	if w.Name == "" {
		w.Name = w.Producer
	}
	if w.Producer == "" {
		w.Producer = w.Name
	}
	if w.Name == "" {
		return nil, fmt.Errorf("scan carries neither name nor producer")
	}

	w.Vintage = data.Vintage
	w.Country = data.Country
	w.Region = data.Region
	w.AlcoholContent = data.AlcoholContent
	if data.WineType != nil {
		w.WineType = string(*data.WineType)
	} else {
		w.WineType = string(constants.Unknown)
	}

	created, err := s.CreateWine(ctx, w)
	if err != nil {
		return nil, err
	}
	if err := s.jobs.LinkWine(ctx, jobID, created.ID); err != nil {
		s.logger.Warn("scan job not linked to wine", "job_id", jobID, "wine_id", created.ID, "error", err)
	}
	return created, nil
}

// UpdateWine re-estimates the window when the caller cleared it.
func (s *Service) UpdateWine(ctx context.Context, w *entity.Wine) (*entity.Wine, error) {
	if w.Name == "" || w.Producer == "" {
		return nil, fmt.Errorf("name and producer are required")
	}
	wt, ok := constants.CanonicalizeWineType(w.WineType)
	if !ok {
		wt = constants.Unknown
	}
	w.WineType = string(wt)
	s.enrich(w, wt)
	return s.wines.Update(ctx, w)
}

func (s *Service) GetWine(ctx context.Context, id uuid.UUID) (*entity.Wine, error) {
	return s.wines.GetByID(ctx, id)
}

func (s *Service) DeleteWine(ctx context.Context, id uuid.UUID) error {
	return s.wines.Delete(ctx, id)
}

func (s *Service) ListWines(ctx context.Context, filter repository.WineFilter) ([]*entity.Wine, error) {
	return s.wines.List(ctx, filter)
}

func (s *Service) SearchWines(ctx context.Context, query string) ([]*entity.Wine, error) {
	if query == "" {
		return s.wines.List(ctx, repository.WineFilter{})
	}
	return s.wines.Search(ctx, query)
}

// ConsumeBottle decrements the on-hand count and optionally records a
// tasting note in the same step.
func (s *Service) ConsumeBottle(ctx context.Context, id uuid.UUID, note *entity.TastingNote) (*entity.Wine, error) {
	w, err := s.wines.AdjustQuantity(ctx, id, -1)
	if err != nil {
		return nil, err
	}
	if note != nil {
		note.WineID = id
		if _, err := s.notes.Create(ctx, note); err != nil {
			s.logger.Warn("tasting note not saved", "wine_id", id, "error", err)
		}
	}
	s.logger.Info("bottle consumed", "wine_id", id, "remaining", w.Quantity)
	return w, nil
}

func (s *Service) AddBottles(ctx context.Context, id uuid.UUID, count int) (*entity.Wine, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive")
	}
	return s.wines.AdjustQuantity(ctx, id, count)
}

// ReadyToDrink lists in-stock wines inside their window this year.
func (s *Service) ReadyToDrink(ctx context.Context) ([]*entity.Wine, error) {
	return s.wines.ReadyToDrink(ctx, s.estimator.CurrentYear())
}

// Overdue lists in-stock wines past their window this year.
func (s *Service) Overdue(ctx context.Context) ([]*entity.Wine, error) {
	return s.wines.Overdue(ctx, s.estimator.CurrentYear())
}

// Upcoming lists in-stock wines whose window has not opened yet.
func (s *Service) Upcoming(ctx context.Context) ([]*entity.Wine, error) {
	return s.wines.NotYetReady(ctx, s.estimator.CurrentYear())
}

// EstimateWindow exposes the window estimator for previews before a
// wine is saved.
func (s *Service) EstimateWindow(wt constants.WineType, vintage *int, region string, grapes []string) analysis.DrinkingWindow {
	return s.estimator.EstimateWindow(wt, vintage, region, grapes)
}

// Status reports where a wine sits relative to its window this year.
func (s *Service) Status(w *entity.Wine) constants.DrinkingStatus {
	return analysis.StatusFor(s.estimator.CurrentYear(), w.DrinkingWindowStart, w.DrinkingWindowEnd)
}

func (s *Service) Statistics(ctx context.Context) (*repository.CellarStatistics, error) {
	return s.wines.Statistics(ctx)
}

func (s *Service) AddTastingNote(ctx context.Context, note *entity.TastingNote) (*entity.TastingNote, error) {
	if note.WineID == uuid.Nil {
		return nil, fmt.Errorf("wine_id is required")
	}
	if _, err := s.wines.GetByID(ctx, note.WineID); err != nil {
		return nil, err
	}
	return s.notes.Create(ctx, note)
}

func (s *Service) ListTastingNotes(ctx context.Context, wineID uuid.UUID) ([]*entity.TastingNote, error) {
	return s.notes.ListByWine(ctx, wineID)
}

func (s *Service) CreateLocation(ctx context.Context, l *entity.StorageLocation) (*entity.StorageLocation, error) {
	if l.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return s.locations.Create(ctx, l)
}

func (s *Service) ListLocations(ctx context.Context, activeOnly bool) ([]*entity.StorageLocation, error) {
	return s.locations.List(ctx, activeOnly)
}

// enrich fills the drinking window and pairings when unset.
func (s *Service) enrich(w *entity.Wine, wt constants.WineType) {
	if w.DrinkingWindowStart == nil || w.DrinkingWindowEnd == nil {
		region := ""
		if w.Region != nil {
			region = *w.Region
		}
		win := s.estimator.EstimateWindow(wt, w.Vintage, region, w.GrapeVarieties)
		w.DrinkingWindowStart = &win.Start
		w.DrinkingWindowEnd = &win.End
		w.PeakMaturityYear = &win.Peak
		if w.TastingSummary == nil && win.Notes != "" {
			notes := win.Notes
			w.TastingSummary = &notes
		}
	}
	if len(w.FoodPairings) == 0 {
		region := ""
		if w.Region != nil {
			region = *w.Region
		}
		for _, p := range analysis.Pairings(wt, region, w.GrapeVarieties) {
			w.FoodPairings = append(w.FoodPairings, p.Category)
		}
	}
}
