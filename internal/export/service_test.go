package export

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

type fakeFieldsRepo struct {
	byDocument []*entity.ExtractedField
	corrected  []*entity.ExtractedField
}

func (f *fakeFieldsRepo) UpsertFields(context.Context, string, constants.SourceType, entity.FieldSet, float32) error {
	return nil
}

func (f *fakeFieldsRepo) ListByDocument(context.Context, string, *constants.SourceType) ([]*entity.ExtractedField, error) {
	return f.byDocument, nil
}

func (f *fakeFieldsRepo) Correct(context.Context, string, constants.SourceType, string, string) (*entity.ExtractedField, error) {
	return nil, nil
}

func (f *fakeFieldsRepo) ListCorrected(context.Context) ([]*entity.ExtractedField, error) {
	return f.corrected, nil
}

func strptr(s string) *string { return &s }

func field(docID string, src constants.SourceType, name, value string, corrected string) *entity.ExtractedField {
	ef := &entity.ExtractedField{
		ID:              uuid.New(),
		DocumentID:      docID,
		SourceType:      src,
		FieldName:       name,
		ExtractedValue:  strptr(value),
		ConfidenceScore: 0.99,
		UpdatedAt:       time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}
	if corrected != "" {
		ef.IsCorrected = true
		ef.CorrectedValue = strptr(corrected)
	}
	return ef
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestExportDocumentXLSX(t *testing.T) {
	repo := &fakeFieldsRepo{byDocument: []*entity.ExtractedField{
		field("doc-1", constants.SourceNationalID, "full_name", "TENDAI MOYO", ""),
		field("doc-1", constants.SourceNationalID, "id_number", "63-123456-A-12", "63-123456-A-13"),
		field("doc-1", constants.SourceMandateCard, "profession", "TEACHER", ""),
	}}
	svc := NewService(repo, testLogger())

	data, err := svc.ExportDocumentXLSX(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("ExportDocumentXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("sheets = %v, want two", sheets)
	}

	got, _ := wb.GetCellValue(string(constants.SourceNationalID), "A2")
	if got != "full_name" {
		t.Errorf("A2 = %q", got)
	}
	// corrected row shows the correction as the effective value
	name, _ := wb.GetCellValue(string(constants.SourceNationalID), "A3")
	effective, _ := wb.GetCellValue(string(constants.SourceNationalID), "E3")
	if name != "id_number" || effective != "63-123456-A-13" {
		t.Errorf("row 3 = %q / %q", name, effective)
	}
	prof, _ := wb.GetCellValue(string(constants.SourceMandateCard), "A2")
	if prof != "profession" {
		t.Errorf("mandate sheet A2 = %q", prof)
	}
}

func TestExportCorrectionsXLSX(t *testing.T) {
	repo := &fakeFieldsRepo{corrected: []*entity.ExtractedField{
		field("doc-1", constants.SourceNationalID, "id_number", "63-123456-A-12", "63-123456-A-13"),
		field("doc-2", constants.SourceMandateCard, "monthly_salary", "250.00", "2500.00"),
	}}
	svc := NewService(repo, testLogger())

	data, err := svc.ExportCorrectionsXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportCorrectionsXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	doc, _ := wb.GetCellValue("Corrections", "A3")
	val, _ := wb.GetCellValue("Corrections", "E3")
	if doc != "doc-2" || val != "2500.00" {
		t.Errorf("row 3 = %q / %q", doc, val)
	}
}

func TestExportDocumentXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeFieldsRepo{}, testLogger())

	data, err := svc.ExportDocumentXLSX(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ExportDocumentXLSX: %v", err)
	}
	if _, err := excelize.OpenReader(bytes.NewReader(data)); err != nil {
		t.Fatalf("open workbook: %v", err)
	}
}
