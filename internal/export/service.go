package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/repository"
)

// Service produces XLSX bytes for extraction exports.
type Service struct {
	fieldsRepo repository.ExtractionFieldRepository
	logger     *slog.Logger
}

func NewService(repo repository.ExtractionFieldRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fieldsRepo: repo, logger: logger}
}

// ExportDocumentXLSX returns a workbook with one sheet per source type
// for the given document. The effective value column shows the
// correction when one exists.
func (s *Service) ExportDocumentXLSX(ctx context.Context, documentID string) ([]byte, error) {
	start := time.Now()

	rows, err := s.fieldsRepo.ListByDocument(ctx, documentID, nil)
	if err != nil {
		return nil, fmt.Errorf("query fields: %w", err)
	}

	f := excelize.NewFile()
	first := true
	bySource := map[constants.SourceType][]*entity.ExtractedField{}
	for _, r := range rows {
		bySource[r.SourceType] = append(bySource[r.SourceType], r)
	}

	for _, src := range []constants.SourceType{constants.SourceMandateCard, constants.SourceNationalID} {
		fieldsForSrc, ok := bySource[src]
		if !ok {
			continue
		}
		sheet := string(src)
		if first {
			// replace the default sheet rather than leaving "Sheet1"
			_ = f.SetSheetName(f.GetSheetName(0), sheet)
			first = false
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		if err := writeFieldSheet(f, sheet, fieldsForSrc); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"document_id", documentID,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportCorrectionsXLSX returns a workbook listing every corrected
// field across all documents, for review and model feedback.
func (s *Service) ExportCorrectionsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	rows, err := s.fieldsRepo.ListCorrected(ctx)
	if err != nil {
		return nil, fmt.Errorf("query corrections: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Corrections"
	_ = f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Document ID", "Source Type", "Field", "Extracted Value", "Corrected Value", "Corrected At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.DocumentID)
		write(2, string(r.SourceType))
		write(3, r.FieldName)
		write(4, deref(r.ExtractedValue))
		write(5, deref(r.CorrectedValue))
		write(6, r.UpdatedAt.Format("2006-01-02 15:04"))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 36)
	_ = f.SetColWidth(sheet, "B", "B", 16)
	_ = f.SetColWidth(sheet, "C", "C", 20)
	_ = f.SetColWidth(sheet, "D", "E", 32)
	_ = f.SetColWidth(sheet, "F", "F", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.corrections.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeFieldSheet(f *excelize.File, sheet string, rows []*entity.ExtractedField) error {
	headers := []string{"Field", "Extracted Value", "Confidence", "Corrected", "Effective Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	rowIdx := 2
	for _, r := range rows {
		effective := deref(r.ExtractedValue)
		if r.IsCorrected {
			effective = deref(r.CorrectedValue)
		}
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.FieldName)
		write(2, deref(r.ExtractedValue))
		write(3, fmt.Sprintf("%.2f", r.ConfidenceScore))
		write(4, r.IsCorrected)
		write(5, effective)
		rowIdx++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "D", 12)
	_ = f.SetColWidth(sheet, "E", "E", 32)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
