package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sahlen/vinkallaren/constants"
	cellarpb "github.com/sahlen/vinkallaren/gen/proto/cellar/v1"
	"github.com/sahlen/vinkallaren/internal/cellar"
	"github.com/sahlen/vinkallaren/internal/common"
	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/export"
	"github.com/sahlen/vinkallaren/internal/importer"
	"github.com/sahlen/vinkallaren/internal/repository"
	"github.com/sahlen/vinkallaren/internal/utils"
)

type CellarServer struct {
	cellarpb.UnimplementedCellarServiceServer
	svc      *cellar.Service
	exporter *export.Service
	importer *importer.Importer
	logger   *slog.Logger
}

func NewCellarServer(svc *cellar.Service, exporter *export.Service, imp *importer.Importer, logger *slog.Logger) *CellarServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CellarServer{svc: svc, exporter: exporter, importer: imp, logger: logger}
}

func parseWineID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "wine_id must be a UUID")
	}
	return id, nil
}

func (s *CellarServer) CreateWine(ctx context.Context, req *cellarpb.CreateWineRequest) (*cellarpb.CreateWineResponse, error) {
	in := req.GetWine()
	if in == nil || strings.TrimSpace(in.GetName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "wine.name is required")
	}
	w, err := s.svc.CreateWine(ctx, inputToWine(in))
	if err != nil {
		s.logger.Error("create wine failed", "name", in.GetName(), "error", err)
		return nil, status.Errorf(codes.Internal, "create wine: %v", err)
	}
	return &cellarpb.CreateWineResponse{Wine: utils.ToPBWine(w)}, nil
}

func (s *CellarServer) GetWine(ctx context.Context, req *cellarpb.GetWineRequest) (*cellarpb.GetWineResponse, error) {
	id, err := parseWineID(req.GetWineId())
	if err != nil {
		return nil, err
	}
	w, err := s.svc.GetWine(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "wine %s not found", id)
	}
	return &cellarpb.GetWineResponse{
		Wine:           utils.ToPBWine(w),
		DrinkingStatus: string(s.svc.Status(w)),
	}, nil
}

func (s *CellarServer) UpdateWine(ctx context.Context, req *cellarpb.UpdateWineRequest) (*cellarpb.UpdateWineResponse, error) {
	id, err := parseWineID(req.GetWineId())
	if err != nil {
		return nil, err
	}
	if req.GetWine() == nil {
		return nil, status.Error(codes.InvalidArgument, "wine is required")
	}
	w := inputToWine(req.GetWine())
	w.ID = id
	updated, err := s.svc.UpdateWine(ctx, w)
	if err != nil {
		s.logger.Error("update wine failed", "wine_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "update wine: %v", err)
	}
	return &cellarpb.UpdateWineResponse{Wine: utils.ToPBWine(updated)}, nil
}

func (s *CellarServer) DeleteWine(ctx context.Context, req *cellarpb.DeleteWineRequest) (*cellarpb.DeleteWineResponse, error) {
	id, err := parseWineID(req.GetWineId())
	if err != nil {
		return nil, err
	}
	if err := s.svc.DeleteWine(ctx, id); err != nil {
		return nil, status.Errorf(codes.NotFound, "wine %s not found", id)
	}
	return &cellarpb.DeleteWineResponse{}, nil
}

func (s *CellarServer) ListWines(ctx context.Context, req *cellarpb.ListWinesRequest) (*cellarpb.ListWinesResponse, error) {
	filter := repository.WineFilter{InStock: req.GetInStockOnly()}
	if wt := strings.TrimSpace(req.GetWineType()); wt != "" {
		filter.WineType = &wt
	}
	if c := strings.TrimSpace(req.GetCountry()); c != "" {
		filter.Country = &c
	}
	if r := strings.TrimSpace(req.GetRegion()); r != "" {
		filter.Region = &r
	}
	if lid := strings.TrimSpace(req.GetLocationId()); lid != "" {
		id, err := uuid.Parse(lid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "location_id must be a UUID")
		}
		filter.LocationID = &id
	}

	wines, err := s.svc.ListWines(ctx, filter)
	if err != nil {
		s.logger.Error("list wines failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list wines: %v", err)
	}
	return &cellarpb.ListWinesResponse{Wines: toPBWines(wines)}, nil
}

func (s *CellarServer) SearchWines(ctx context.Context, req *cellarpb.SearchWinesRequest) (*cellarpb.SearchWinesResponse, error) {
	wines, err := s.svc.SearchWines(ctx, strings.TrimSpace(req.GetQuery()))
	if err != nil {
		s.logger.Error("search wines failed", "query", req.GetQuery(), "error", err)
		return nil, status.Errorf(codes.Internal, "search wines: %v", err)
	}
	return &cellarpb.SearchWinesResponse{Wines: toPBWines(wines)}, nil
}

func (s *CellarServer) ConsumeBottle(ctx context.Context, req *cellarpb.ConsumeBottleRequest) (*cellarpb.ConsumeBottleResponse, error) {
	id, err := parseWineID(req.GetWineId())
	if err != nil {
		return nil, err
	}
	var note *entity.TastingNote
	if req.GetNote() != nil {
		note, err = inputToNote(req.GetNote())
		if err != nil {
			return nil, err
		}
	}
	w, err := s.svc.ConsumeBottle(ctx, id, note)
	if err != nil {
		s.logger.Error("consume bottle failed", "wine_id", id, "error", err)
		return nil, status.Errorf(codes.FailedPrecondition, "consume bottle: %v", err)
	}
	return &cellarpb.ConsumeBottleResponse{Wine: utils.ToPBWine(w)}, nil
}

func (s *CellarServer) AddBottles(ctx context.Context, req *cellarpb.AddBottlesRequest) (*cellarpb.AddBottlesResponse, error) {
	id, err := parseWineID(req.GetWineId())
	if err != nil {
		return nil, err
	}
	w, err := s.svc.AddBottles(ctx, id, int(req.GetCount()))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "add bottles: %v", err)
	}
	return &cellarpb.AddBottlesResponse{Wine: utils.ToPBWine(w)}, nil
}

func (s *CellarServer) ListReadyToDrink(ctx context.Context, _ *cellarpb.ListReadyToDrinkRequest) (*cellarpb.ListReadyToDrinkResponse, error) {
	ready, err := s.svc.ReadyToDrink(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "ready to drink: %v", err)
	}
	overdue, err := s.svc.Overdue(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "overdue: %v", err)
	}
	upcoming, err := s.svc.Upcoming(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "upcoming: %v", err)
	}
	return &cellarpb.ListReadyToDrinkResponse{
		Ready:    toPBWines(ready),
		Overdue:  toPBWines(overdue),
		Upcoming: toPBWines(upcoming),
	}, nil
}

func (s *CellarServer) GetStatistics(ctx context.Context, _ *cellarpb.GetStatisticsRequest) (*cellarpb.GetStatisticsResponse, error) {
	stats, err := s.svc.Statistics(ctx)
	if err != nil {
		return nil, common.InternalErrorf("statistics: %v", err)
	}
	out := &cellarpb.GetStatisticsResponse{
		TotalWines:      int32(stats.TotalWines),
		TotalBottles:    int32(stats.TotalBottles),
		TotalValue:      stats.TotalValue,
		BottlesByType:   make(map[string]int32, len(stats.BottlesByType)),
		DistinctRegions: int32(stats.DistinctRegion),
	}
	for k, v := range stats.BottlesByType {
		out.BottlesByType[k] = int32(v)
	}
	if stats.AverageRating != nil {
		out.AverageRating = *stats.AverageRating
	}
	return out, nil
}

func (s *CellarServer) EstimateWindow(ctx context.Context, req *cellarpb.EstimateWindowRequest) (*cellarpb.EstimateWindowResponse, error) {
	wt, ok := constants.CanonicalizeWineType(req.GetWineType())
	if !ok {
		wt = constants.Unknown
	}
	win := s.svc.EstimateWindow(wt, intPtr(req.GetVintage()), req.GetRegion(), req.GetGrapeVarieties())
	return &cellarpb.EstimateWindowResponse{
		StartYear: int32(win.Start),
		PeakYear:  int32(win.Peak),
		EndYear:   int32(win.End),
		Notes:     win.Notes,
	}, nil
}

func (s *CellarServer) AddTastingNote(ctx context.Context, req *cellarpb.AddTastingNoteRequest) (*cellarpb.AddTastingNoteResponse, error) {
	id, err := parseWineID(req.GetWineId())
	if err != nil {
		return nil, err
	}
	if req.GetNote() == nil {
		return nil, status.Error(codes.InvalidArgument, "note is required")
	}
	note, err := inputToNote(req.GetNote())
	if err != nil {
		return nil, err
	}
	note.WineID = id
	created, err := s.svc.AddTastingNote(ctx, note)
	if err != nil {
		s.logger.Error("add tasting note failed", "wine_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "add tasting note: %v", err)
	}
	return &cellarpb.AddTastingNoteResponse{Note: utils.ToPBTastingNote(created)}, nil
}

func (s *CellarServer) ListTastingNotes(ctx context.Context, req *cellarpb.ListTastingNotesRequest) (*cellarpb.ListTastingNotesResponse, error) {
	id, err := parseWineID(req.GetWineId())
	if err != nil {
		return nil, err
	}
	notes, err := s.svc.ListTastingNotes(ctx, id)
	if err != nil {
		return nil, common.InternalErrorf("list tasting notes: %v", err)
	}
	out := make([]*cellarpb.TastingNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, utils.ToPBTastingNote(n))
	}
	return &cellarpb.ListTastingNotesResponse{Notes: out}, nil
}

func (s *CellarServer) CreateLocation(ctx context.Context, req *cellarpb.CreateLocationRequest) (*cellarpb.CreateLocationResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	loc := &entity.StorageLocation{
		Name:         name,
		LocationType: req.GetLocationType(),
		Capacity:     intPtr(req.GetCapacity()),
		Temperature:  floatPtr(req.GetTemperature()),
		Humidity:     floatPtr(req.GetHumidity()),
	}
	created, err := s.svc.CreateLocation(ctx, loc)
	if err != nil {
		s.logger.Error("create location failed", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create location: %v", err)
	}
	return &cellarpb.CreateLocationResponse{Location: utils.ToPBStorageLocation(created)}, nil
}

func (s *CellarServer) ListLocations(ctx context.Context, req *cellarpb.ListLocationsRequest) (*cellarpb.ListLocationsResponse, error) {
	locs, err := s.svc.ListLocations(ctx, req.GetActiveOnly())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list locations: %v", err)
	}
	out := make([]*cellarpb.StorageLocation, 0, len(locs))
	for _, l := range locs {
		out = append(out, utils.ToPBStorageLocation(l))
	}
	return &cellarpb.ListLocationsResponse{Locations: out}, nil
}

func (s *CellarServer) ExportCellar(ctx context.Context, req *cellarpb.ExportCellarRequest) (*cellarpb.ExportCellarResponse, error) {
	filter := repository.WineFilter{InStock: req.GetInStockOnly()}
	if wt := strings.TrimSpace(req.GetWineType()); wt != "" {
		filter.WineType = &wt
	}
	xlsx, err := s.exporter.ExportCellarXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &cellarpb.ExportCellarResponse{Xlsx: xlsx}, nil
}

func (s *CellarServer) ImportCellar(ctx context.Context, req *cellarpb.ImportCellarRequest) (*cellarpb.ImportCellarResponse, error) {
	if len(req.GetJson()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "json payload is required")
	}
	stats, err := s.importer.Import(ctx, req.GetJson())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "import: %v", err)
	}
	return &cellarpb.ImportCellarResponse{
		Imported: int32(stats.Imported),
		Failed:   int32(stats.Failed),
	}, nil
}

func toPBWines(wines []*entity.Wine) []*cellarpb.Wine {
	out := make([]*cellarpb.Wine, 0, len(wines))
	for _, w := range wines {
		out = append(out, utils.ToPBWine(w))
	}
	return out
}

func inputToNote(in *cellarpb.TastingNoteInput) (*entity.TastingNote, error) {
	date, err := utils.ParseYMD(strings.TrimSpace(in.GetTastingDate()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "tasting_date must be YYYY-MM-DD")
	}
	return &entity.TastingNote{
		TastingDate: date,
		Location:    strPtr(in.GetLocation()),
		Occasion:    strPtr(in.GetOccasion()),
		Color:       strPtr(in.GetColor()),
		Aromas:      strPtr(in.GetAromas()),
		Palate:      strPtr(in.GetPalate()),
		Score:       floatPtr(in.GetScore()),
		Notes:       strPtr(in.GetNotes()),
	}, nil
}
