package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sahlen/vinkallaren/constants"
	cellarpb "github.com/sahlen/vinkallaren/gen/proto/cellar/v1"
	"github.com/sahlen/vinkallaren/internal/cellar"
	"github.com/sahlen/vinkallaren/internal/ingest"
	"github.com/sahlen/vinkallaren/internal/pipeline"
	"github.com/sahlen/vinkallaren/internal/repository"
	"github.com/sahlen/vinkallaren/internal/scanner"
	"github.com/sahlen/vinkallaren/internal/sysb"
	"github.com/sahlen/vinkallaren/internal/utils"
)

type ScanServer struct {
	cellarpb.UnimplementedScanServiceServer
	ingestor  ingest.Ingestor
	processor *pipeline.Processor
	jobs      repository.ScanJobRepository
	cellarSvc *cellar.Service
	catalog   *sysb.Client
	logger    *slog.Logger
}

func NewScanServer(
	ing ingest.Ingestor,
	proc *pipeline.Processor,
	jobs repository.ScanJobRepository,
	cellarSvc *cellar.Service,
	catalog *sysb.Client,
	logger *slog.Logger,
) *ScanServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanServer{
		ingestor:  ing,
		processor: proc,
		jobs:      jobs,
		cellarSvc: cellarSvc,
		catalog:   catalog,
		logger:    logger,
	}
}

// ScanLabel registers the photo and runs the scan pipeline on it. The
// job row carries the outcome either way; pipeline failure is reported
// through the job status rather than an RPC error.
func (s *ScanServer) ScanLabel(ctx context.Context, req *cellarpb.ScanLabelRequest) (*cellarpb.ScanLabelResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting label scan", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}

	photoID, err := uuid.Parse(r.PhotoID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "bad photo id: %v", err)
	}
	outcome, runErr := s.processor.Run(ctx, photoID)
	if runErr != nil {
		s.logger.Warn("scan pipeline failed", "photo_id", photoID, "error", runErr)
	}
	if outcome == nil {
		return nil, status.Errorf(codes.Internal, "scan: %v", runErr)
	}

	job, err := s.jobs.GetByID(ctx, outcome.JobID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load job: %v", err)
	}
	return &cellarpb.ScanLabelResponse{
		Job:          utils.ToPBScanJob(utils.ToScanJob(job)),
		Deduplicated: r.Deduplicated,
	}, nil
}

func (s *ScanServer) ScanDirectory(ctx context.Context, req *cellarpb.ScanDirectoryRequest) (*cellarpb.ScanDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory scan", "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &cellarpb.ScanDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Jobs:         make([]*cellarpb.ScanJob, 0, len(results)),
	}

	for _, r := range results {
		if r.Err != "" || r.PhotoID == "" {
			continue
		}
		photoID, err := uuid.Parse(r.PhotoID)
		if err != nil {
			continue
		}
		outcome, runErr := s.processor.Run(ctx, photoID)
		if runErr != nil {
			s.logger.Warn("scan pipeline failed", "photo_id", photoID, "error", runErr)
		}
		if outcome == nil {
			continue
		}
		if job, err := s.jobs.GetByID(ctx, outcome.JobID); err == nil {
			out.Jobs = append(out.Jobs, utils.ToPBScanJob(utils.ToScanJob(job)))
		}
	}
	return out, nil
}

func (s *ScanServer) GetScanJob(ctx context.Context, req *cellarpb.GetScanJobRequest) (*cellarpb.GetScanJobResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", id)
	}
	return &cellarpb.GetScanJobResponse{Job: utils.ToPBScanJob(utils.ToScanJob(job))}, nil
}

func (s *ScanServer) ListScanJobs(ctx context.Context, req *cellarpb.ListScanJobsRequest) (*cellarpb.ListScanJobsResponse, error) {
	jobs, err := s.jobs.ListRecent(ctx, int(req.GetLimit()))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}
	out := make([]*cellarpb.ScanJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBScanJob(utils.ToScanJob(j)))
	}
	return &cellarpb.ListScanJobsResponse{Jobs: out}, nil
}

// ConfirmScan creates a cellar row from a finished scan, applying the
// caller's corrections over the extracted fields.
func (s *ScanServer) ConfirmScan(ctx context.Context, req *cellarpb.ConfirmScanRequest) (*cellarpb.ConfirmScanResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", id)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusExtractOK) {
		return nil, status.Error(codes.FailedPrecondition, "scan job has no extracted data")
	}

	var data scanner.ExtractedWineData
	if len(job.ExtractedJSON) > 0 {
		if err := json.Unmarshal(job.ExtractedJSON, &data); err != nil {
			return nil, status.Errorf(codes.Internal, "decode extracted data: %v", err)
		}
	}
	applyOverrides(&data, req.GetOverrides())

	wine, err := s.cellarSvc.CreateFromScan(ctx, id, data)
	if err != nil {
		s.logger.Error("confirm scan failed", "job_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "confirm scan: %v", err)
	}
	return &cellarpb.ConfirmScanResponse{Wine: utils.ToPBWine(wine)}, nil
}

func (s *ScanServer) SearchCatalog(ctx context.Context, req *cellarpb.SearchCatalogRequest) (*cellarpb.SearchCatalogResponse, error) {
	if s.catalog == nil || !s.catalog.IsConfigured() {
		return nil, status.Error(codes.FailedPrecondition, "catalog search is not configured")
	}
	resp, err := s.catalog.Search(ctx, req.GetQuery(), int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "catalog search: %v", err)
	}

	out := &cellarpb.SearchCatalogResponse{TotalCount: int32(resp.TotalCount)}
	for _, p := range resp.Products {
		item := &cellarpb.CatalogProduct{
			ProductId:    p.ProductID,
			ProductName:  p.ProductName,
			ProducerName: p.ProducerName,
		}
		if p.Vintage != nil {
			item.Vintage = int32(*p.Vintage)
		}
		if p.Country != nil {
			item.Country = *p.Country
		}
		if p.CategoryLevel2 != nil {
			item.Category = *p.CategoryLevel2
		}
		if wt, ok := sysb.WineTypeFor(p); ok {
			item.WineType = string(wt)
		}
		if p.TasteDescription != nil {
			item.TasteDescription = *p.TasteDescription
		}
		if p.Usage != nil {
			item.Usage = *p.Usage
		}
		out.Products = append(out.Products, item)
	}
	return out, nil
}

// applyOverrides copies non-empty override fields over the extracted data.
func applyOverrides(data *scanner.ExtractedWineData, in *cellarpb.WineInput) {
	if in == nil {
		return
	}
	if v := strings.TrimSpace(in.GetName()); v != "" {
		data.Name = &v
	}
	if v := strings.TrimSpace(in.GetProducer()); v != "" {
		data.Producer = &v
	}
	if v := in.GetVintage(); v != 0 {
		year := int(v)
		data.Vintage = &year
	}
	if v := strings.TrimSpace(in.GetWineType()); v != "" {
		if wt, ok := constants.CanonicalizeWineType(v); ok {
			data.WineType = &wt
		}
	}
	if v := strings.TrimSpace(in.GetCountry()); v != "" {
		data.Country = &v
	}
	if v := strings.TrimSpace(in.GetRegion()); v != "" {
		data.Region = &v
	}
	if v := in.GetAlcoholContent(); v != 0 {
		data.AlcoholContent = &v
	}
}
