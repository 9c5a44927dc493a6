package processor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/fields"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/llm"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ocr"
)

const idCardText = `REPUBLIC OF ZIMBABWE NATIONAL REGISTRATION
FULL NAME: TENDAI MOYO
ID NUMBER: 63-123456-A-12
DATE OF BIRTH: 15/07/1990
SEX: MALE
NATIONALITY: ZIMBABWEAN
DATE OF ISSUE: 01/02/2010
DATE OF EXPIRY: 01/02/2030`

const mandateText = `ACCOUNT OPENING MANDATE CARD
OCCUPATION: TEACHER
EMPLOYMENT STATUS: EMPLOYED
MONTHLY SALARY: USD 2,500.00
EMPLOYER ADDRESS: 12 SAMORA MACHEL AVE, HARARE`

type fakeRecognizer struct {
	text      string
	err       error
	png       []byte
	rasterErr error
}

func (f *fakeRecognizer) Extract(_ context.Context, _ string) (ocr.Result, error) {
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return ocr.Result{Text: f.text, Method: "pdf-text", Pages: 1}, nil
}

func (f *fakeRecognizer) RasterFirstPage(_ context.Context, _ string) ([]byte, error) {
	return f.png, f.rasterErr
}

type upsertCall struct {
	documentID string
	src        constants.SourceType
	fields     entity.FieldSet
}

type fakeRepo struct {
	calls []upsertCall
	err   error
}

func (f *fakeRepo) UpsertFields(_ context.Context, documentID string, src constants.SourceType, set entity.FieldSet, _ float32) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, upsertCall{documentID: documentID, src: src, fields: set})
	return nil
}

func (f *fakeRepo) ListByDocument(context.Context, string, *constants.SourceType) ([]*entity.ExtractedField, error) {
	return nil, nil
}

func (f *fakeRepo) Correct(context.Context, string, constants.SourceType, string, string) (*entity.ExtractedField, error) {
	return nil, nil
}

func (f *fakeRepo) ListCorrected(context.Context) ([]*entity.ExtractedField, error) {
	return nil, nil
}

type fakeVision struct {
	set      entity.FieldSet
	err      error
	lastReq  llm.ExtractRequest
	numCalls int
}

func (f *fakeVision) ExtractFields(_ context.Context, req llm.ExtractRequest) (entity.FieldSet, []byte, error) {
	f.numCalls++
	f.lastReq = req
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.set, []byte(`{}`), nil
}

func newTestProcessor(rec Recognizer, vision llm.FieldExtractor, repo *fakeRepo) *Processor {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewProcessor(logger, rec, fields.NewParser(logger), vision, repo)
}

func TestProcessDocumentHeuristic(t *testing.T) {
	repo := &fakeRepo{}
	p := newTestProcessor(&fakeRecognizer{text: idCardText}, nil, repo)

	res, err := p.ProcessDocument(context.Background(), Request{
		DocumentID: "doc-1",
		Path:       "/in/id.pdf",
		SourceType: constants.SourceNationalID,
	})
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
	if got := res.Fields["full_name"]; got != "TENDAI MOYO" {
		t.Errorf("full_name = %q", got)
	}
	if len(repo.calls) != 1 {
		t.Fatalf("upsert calls = %d, want 1", len(repo.calls))
	}
	if repo.calls[0].src != constants.SourceNationalID {
		t.Errorf("upserted source = %q", repo.calls[0].src)
	}
}

func TestProcessDocumentSniffsSource(t *testing.T) {
	repo := &fakeRepo{}
	p := newTestProcessor(&fakeRecognizer{text: mandateText}, nil, repo)

	res, err := p.ProcessDocument(context.Background(), Request{DocumentID: "doc-2", Path: "/in/form.pdf"})
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if res.SourceType != constants.SourceMandateCard {
		t.Errorf("sniffed source = %q, want %q", res.SourceType, constants.SourceMandateCard)
	}
	if got := res.Fields["monthly_salary"]; got != "2500.00" {
		t.Errorf("monthly_salary = %q", got)
	}
}

func TestProcessDocumentRecognitionError(t *testing.T) {
	p := newTestProcessor(&fakeRecognizer{err: common.NewAppError("RECOGNITION_ERROR", "no text", common.ErrRecognition)}, nil, &fakeRepo{})

	_, err := p.ProcessDocument(context.Background(), Request{DocumentID: "doc-3", Path: "/in/bad.pdf"})
	if !errors.Is(err, common.ErrRecognition) {
		t.Fatalf("err = %v, want ErrRecognition", err)
	}
}

func TestProcessDocumentVision(t *testing.T) {
	set := entity.NewFieldSet(constants.SourceNationalID)
	set["full_name"] = "TENDAI MOYO"
	vision := &fakeVision{set: set}
	repo := &fakeRepo{}
	rec := &fakeRecognizer{text: idCardText, png: []byte("fake-png")}
	p := newTestProcessor(rec, vision, repo)

	res, err := p.ProcessDocument(context.Background(), Request{
		DocumentID: "doc-4",
		Path:       "/in/id.pdf",
		SourceType: constants.SourceNationalID,
		UseVision:  true,
	})
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if res.Method != "vision" {
		t.Errorf("method = %q, want vision", res.Method)
	}
	if vision.lastReq.Text != idCardText {
		t.Errorf("vision request text not forwarded")
	}
	if string(vision.lastReq.Image) != "fake-png" {
		t.Errorf("vision request missing rasterized page")
	}
	if vision.lastReq.MimeType != "image/png" {
		t.Errorf("mime = %q, want image/png for a rasterized page", vision.lastReq.MimeType)
	}
	if len(repo.calls) != 1 || repo.calls[0].fields["full_name"] != "TENDAI MOYO" {
		t.Errorf("upsert = %+v", repo.calls)
	}
}

func TestProcessDocumentVisionSurvivesRecognitionFailure(t *testing.T) {
	set := entity.NewFieldSet(constants.SourceNationalID)
	vision := &fakeVision{set: set}
	rec := &fakeRecognizer{
		err: common.NewAppError("RECOGNITION_ERROR", "no text", common.ErrRecognition),
		png: []byte("fake-png"),
	}
	p := newTestProcessor(rec, vision, &fakeRepo{})

	_, err := p.ProcessDocument(context.Background(), Request{
		DocumentID: "doc-5",
		Path:       "/in/id.pdf",
		SourceType: constants.SourceNationalID,
		UseVision:  true,
	})
	if err != nil {
		t.Fatalf("vision path should tolerate OCR failure, got %v", err)
	}
	if vision.numCalls != 1 {
		t.Errorf("vision calls = %d, want 1", vision.numCalls)
	}
}

func TestProcessDocumentVisionImageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "id.jpg")
	if err := os.WriteFile(path, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	set := entity.NewFieldSet(constants.SourceNationalID)
	vision := &fakeVision{set: set}
	p := newTestProcessor(&fakeRecognizer{text: idCardText}, vision, &fakeRepo{})

	_, err := p.ProcessDocument(context.Background(), Request{
		DocumentID: "doc-6",
		Path:       path,
		SourceType: constants.SourceNationalID,
		UseVision:  true,
	})
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if string(vision.lastReq.Image) != "jpeg-bytes" {
		t.Errorf("image bytes not read from disk")
	}
	if vision.lastReq.MimeType != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg from the file extension", vision.lastReq.MimeType)
	}
}

func TestExtractDualSource(t *testing.T) {
	repo := &fakeRepo{}
	p := newTestProcessor(&fakeRecognizer{text: mandateText + "\n" + idCardText}, nil, repo)

	results, err := p.ExtractDualSource(context.Background(), Request{DocumentID: "doc-7", Path: "/in/combined.pdf"})
	if err != nil {
		t.Fatalf("ExtractDualSource: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].SourceType != constants.SourceMandateCard || results[1].SourceType != constants.SourceNationalID {
		t.Errorf("source order = %q, %q", results[0].SourceType, results[1].SourceType)
	}
	if got := results[0].Fields["profession"]; got != "TEACHER" {
		t.Errorf("profession = %q", got)
	}
	if got := results[1].Fields["full_name"]; got != "TENDAI MOYO" {
		t.Errorf("full_name = %q", got)
	}
	if len(repo.calls) != 2 {
		t.Errorf("upsert calls = %d, want 2", len(repo.calls))
	}
}
