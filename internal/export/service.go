// Package export produces XLSX workbooks of the cellar for inventory
// lists and insurance paperwork.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/internal/analysis"
	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/repository"
)

// Service is a tiny façade over the wine repository that produces XLSX
// bytes for exports.
type Service struct {
	wines     repository.WineRepository
	estimator *analysis.Estimator
	logger    *slog.Logger
}

func NewService(wines repository.WineRepository, estimator *analysis.Estimator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if estimator == nil {
		estimator = analysis.NewEstimator(nil)
	}
	return &Service{wines: wines, estimator: estimator, logger: logger}
}

// ExportCellarXLSX returns an XLSX workbook of the cellar, one row per
// wine, filtered the same way as ListWines.
func (s *Service) ExportCellarXLSX(ctx context.Context, filter repository.WineFilter) ([]byte, error) {
	start := time.Now()

	wines, err := s.wines.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query wines: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Vinkällare"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// excelize seeds every workbook with "Sheet1"
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Namn",
		"Producent",
		"Årgång",
		"Typ",
		"Land",
		"Region",
		"Druvor",
		"Antal",
		"Pris",
		"Fönster",
		"Status",
		"Betyg",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	currentYear := s.estimator.CurrentYear()
	row := 2
	for _, w := range wines {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, w.Name)
		write(2, w.Producer)
		if w.Vintage != nil {
			write(3, *w.Vintage)
		}
		write(4, constants.WineType(w.WineType).DisplayName())
		write(5, orDash(w.Country))
		write(6, orDash(w.Region))
		write(7, strings.Join(w.GrapeVarieties, ", "))
		write(8, w.Quantity)
		if w.PurchasePrice != nil {
			write(9, fmt.Sprintf("%.2f %s", *w.PurchasePrice, w.Currency))
		}
		write(10, windowString(w))
		status := analysis.StatusFor(currentYear, w.DrinkingWindowStart, w.DrinkingWindowEnd)
		write(11, status.DisplayName())
		if w.PersonalRating != nil {
			write(12, *w.PersonalRating)
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // name
	_ = f.SetColWidth(sheet, "B", "B", 28) // producer
	_ = f.SetColWidth(sheet, "C", "C", 8)  // vintage
	_ = f.SetColWidth(sheet, "D", "F", 14) // type/country/region
	_ = f.SetColWidth(sheet, "G", "G", 28) // grapes
	_ = f.SetColWidth(sheet, "H", "I", 12) // quantity/price
	_ = f.SetColWidth(sheet, "J", "K", 20) // window/status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(wines),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func windowString(w *entity.Wine) string {
	if w.DrinkingWindowStart == nil || w.DrinkingWindowEnd == nil {
		return ""
	}
	if w.PeakMaturityYear != nil {
		return fmt.Sprintf("%d - %d (topp: %d)", *w.DrinkingWindowStart, *w.DrinkingWindowEnd, *w.PeakMaturityYear)
	}
	return fmt.Sprintf("%d - %d", *w.DrinkingWindowStart, *w.DrinkingWindowEnd)
}

func orDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}
