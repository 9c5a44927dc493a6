package repository

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

func testRepo(t *testing.T) ExtractionFieldRepository {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client, err := OpenSQLite(context.Background(), ":memory:", logger)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewExtractionFieldRepository(client, logger)
}

func idCardSet(name, id string) entity.FieldSet {
	fs := entity.NewFieldSet(constants.SourceNationalID)
	fs["full_name"] = name
	fs["id_number"] = id
	return fs
}

func TestUpsertFieldsWritesFullSchema(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.UpsertFields(ctx, "doc-1", constants.SourceNationalID, idCardSet("TENDAI MOYO", "63-123456-A-12"), 0)
	if err != nil {
		t.Fatalf("UpsertFields: %v", err)
	}

	rows, err := repo.ListByDocument(ctx, "doc-1", nil)
	if err != nil {
		t.Fatalf("ListByDocument: %v", err)
	}
	if len(rows) != len(constants.NationalIDFields) {
		t.Fatalf("rows = %d, want %d", len(rows), len(constants.NationalIDFields))
	}
	byName := map[string]string{}
	for _, r := range rows {
		if r.ExtractedValue != nil {
			byName[r.FieldName] = *r.ExtractedValue
		}
	}
	if byName["full_name"] != "TENDAI MOYO" {
		t.Errorf("full_name = %q", byName["full_name"])
	}
	if byName["gender"] != entity.NotFound {
		t.Errorf("gender = %q, want %q", byName["gender"], entity.NotFound)
	}
}

func TestUpsertFieldsReplacesAndClearsCorrection(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.UpsertFields(ctx, "doc-2", constants.SourceNationalID, idCardSet("TENDAI MOYO", "63-123456-A-12"), 0); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Correct(ctx, "doc-2", constants.SourceNationalID, "id_number", "63-123456-A-13"); err != nil {
		t.Fatalf("Correct: %v", err)
	}

	// a re-run overwrites the extraction and drops the stale correction
	if err := repo.UpsertFields(ctx, "doc-2", constants.SourceNationalID, idCardSet("TENDAI T MOYO", "63-654321-B-07"), 0); err != nil {
		t.Fatalf("second UpsertFields: %v", err)
	}

	src := constants.SourceNationalID
	rows, err := repo.ListByDocument(ctx, "doc-2", &src)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(constants.NationalIDFields) {
		t.Fatalf("rows = %d, duplicate rows after upsert", len(rows))
	}
	for _, r := range rows {
		if r.FieldName != "id_number" {
			continue
		}
		if r.ExtractedValue == nil || *r.ExtractedValue != "63-654321-B-07" {
			t.Errorf("id_number = %v", r.ExtractedValue)
		}
		if r.IsCorrected || r.CorrectedValue != nil {
			t.Errorf("correction survived re-extraction: %+v", r)
		}
	}
}

func TestCorrectAndListCorrected(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.UpsertFields(ctx, "doc-3", constants.SourceNationalID, idCardSet("TENDAI MOYO", "63-123456-A-12"), 0); err != nil {
		t.Fatal(err)
	}

	row, err := repo.Correct(ctx, "doc-3", constants.SourceNationalID, "full_name", "TENDAI TAPIWA MOYO")
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if !row.IsCorrected || row.CorrectedValue == nil || *row.CorrectedValue != "TENDAI TAPIWA MOYO" {
		t.Errorf("corrected row = %+v", row)
	}
	if row.ExtractedValue == nil || *row.ExtractedValue != "TENDAI MOYO" {
		t.Errorf("original value lost: %v", row.ExtractedValue)
	}

	corrected, err := repo.ListCorrected(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(corrected) != 1 || corrected[0].FieldName != "full_name" {
		t.Errorf("corrected = %+v", corrected)
	}
}

func TestCorrectUnknownField(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.Correct(context.Background(), "nope", constants.SourceNationalID, "full_name", "X")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
