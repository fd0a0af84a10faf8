package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/entity"
)

// RatingSource is the slice of the ledger the exporter reads.
type RatingSource interface {
	GetRatings(addr string, filter constants.RatingFilter) []*entity.Rating
	GetKarma(addr string) int64
}

// Service produces XLSX bytes for ratings reports.
type Service struct {
	src    RatingSource
	logger *slog.Logger
}

func NewService(src RatingSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{src: src, logger: logger}
}

// ExportRatingsXLSX returns a workbook with every rating of the address in
// insertion order plus the karma tally.
func (s *Service) ExportRatingsXLSX(ctx context.Context, addr string) ([]byte, error) {
	start := time.Now()

	ratings := s.src.GetRatings(addr, constants.RatingFilterBoth)

	f := excelize.NewFile()
	const sheet = "Ratings"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Job ID",
		"Score",
		"Polarity",
		"Rated As",
		"Rated By",
		"Comment",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range ratings {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		polarity := "Negative"
		if r.Positive() {
			polarity = "Positive"
		}

		write(1, r.JobID)
		write(2, r.Score)
		write(3, polarity)
		write(4, string(r.Role))
		write(5, r.Rater)
		write(6, r.Comment)
		write(7, r.CreatedAt.UTC().Format(time.RFC3339))

		row++
	}

	// Karma summary under the table.
	karmaLabel, _ := excelize.CoordinatesToCellName(1, row+1)
	karmaValue, _ := excelize.CoordinatesToCellName(2, row+1)
	_ = f.SetCellValue(sheet, karmaLabel, "Karma")
	_ = f.SetCellValue(sheet, karmaValue, s.src.GetKarma(addr))

	_ = f.SetColWidth(sheet, "A", "B", 10)
	_ = f.SetColWidth(sheet, "C", "D", 14)
	_ = f.SetColWidth(sheet, "E", "E", 46)
	_ = f.SetColWidth(sheet, "F", "F", 48)
	_ = f.SetColWidth(sheet, "G", "G", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"address", addr,
		"rows", len(ratings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
