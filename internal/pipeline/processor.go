package processor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/fields"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/llm"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ocr"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/repository"
)

// Recognizer is the text-recognition stage the processor runs first.
type Recognizer interface {
	Extract(ctx context.Context, path string) (ocr.Result, error)
	RasterFirstPage(ctx context.Context, path string) ([]byte, error)
}

// Processor coordinates text recognition, field parsing, and
// persistence for a single document.
type Processor struct {
	Logger     *slog.Logger
	Recognizer Recognizer
	Parser     *fields.Parser
	Vision     llm.FieldExtractor // nil disables the vision path
	Repo       repository.ExtractionFieldRepository
}

// Request identifies one document on disk.
type Request struct {
	DocumentID string
	Path       string
	SourceType constants.SourceType // empty means sniff from text
	UseVision  bool
}

// Result is what one extraction run produced.
type Result struct {
	DocumentID string
	SourceType constants.SourceType
	Fields     entity.FieldSet
	Method     string // recognition method, or "vision"
	RawModel   []byte // raw model JSON on the vision path
}

func NewProcessor(logger *slog.Logger, rec Recognizer, parser *fields.Parser, vision llm.FieldExtractor, repo repository.ExtractionFieldRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Recognizer: rec, Parser: parser, Vision: vision, Repo: repo}
}

// ProcessDocument runs recognition then parsing for one document and
// upserts the resulting field set. When req.UseVision is set the parse
// step is delegated to the vision model instead of the rule parser.
func (p *Processor) ProcessDocument(ctx context.Context, req Request) (Result, error) {
	ocrRes, err := p.Recognizer.Extract(ctx, req.Path)
	if err != nil {
		if !req.UseVision || p.Vision == nil {
			p.Logger.Error("processor.recognize.failed", "document_id", req.DocumentID, "err", err)
			return Result{}, err
		}
		// Vision can still read the page image when OCR got nothing.
		p.Logger.Warn("processor.recognize.failed_vision_continues",
			"document_id", req.DocumentID, "err", err)
		ocrRes = ocr.Result{}
	}

	src := req.SourceType
	if src == "" {
		src = fields.SniffSourceType(ocrRes.Text)
		p.Logger.Info("processor.source.sniffed", "document_id", req.DocumentID, "source_type", src)
	}

	if req.UseVision && p.Vision != nil {
		return p.processVision(ctx, req, src, ocrRes.Text)
	}

	set := p.Parser.Parse(ocrRes.Text, src)
	if err := p.upsert(ctx, req.DocumentID, src, set, repository.DefaultConfidence); err != nil {
		return Result{}, err
	}
	p.Logger.Info("processor.parse.ok",
		"document_id", req.DocumentID,
		"source_type", src,
		"method", ocrRes.Method,
		"found", countFound(set),
	)
	return Result{
		DocumentID: req.DocumentID,
		SourceType: src,
		Fields:     set,
		Method:     ocrRes.Method,
	}, nil
}

// ExtractDualSource parses one document once per source type. A scanned
// mandate card often carries the customer's ID on the same sheet, so
// both target schemas are filled from the same text.
func (p *Processor) ExtractDualSource(ctx context.Context, req Request) ([]Result, error) {
	results := make([]Result, 0, 2)
	for _, src := range []constants.SourceType{constants.SourceMandateCard, constants.SourceNationalID} {
		r := req
		r.SourceType = src
		res, err := p.ProcessDocument(ctx, r)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (p *Processor) processVision(ctx context.Context, req Request, src constants.SourceType, text string) (Result, error) {
	var img []byte
	mime := "image/png"
	if constants.MapExtToFormat(filepath.Ext(req.Path)) == constants.PDF {
		// rasterized pages always come out as PNG
		data, err := p.Recognizer.RasterFirstPage(ctx, req.Path)
		if err != nil {
			p.Logger.Warn("processor.vision.raster_failed", "document_id", req.DocumentID, "err", err)
		} else {
			img = data
		}
	} else {
		data, err := os.ReadFile(req.Path)
		if err != nil {
			return Result{}, common.NewAppError("EXTRACTION_ERROR",
				"reading image for vision extraction", common.ErrExtraction)
		}
		img = data
		mime = constants.MimeForExt(filepath.Ext(req.Path))
	}
	if img == nil && text == "" {
		return Result{}, common.NewAppError("EXTRACTION_ERROR",
			"nothing to send: no text and no page image", common.ErrExtraction)
	}

	set, raw, err := p.Vision.ExtractFields(ctx, llm.ExtractRequest{
		DocumentID:   req.DocumentID,
		SourceType:   src,
		Text:         text,
		Image:        img,
		MimeType:     mime,
		FilenameHint: filepath.Base(req.Path),
	})
	if err != nil {
		p.Logger.Error("processor.vision.failed", "document_id", req.DocumentID, "err", err)
		return Result{}, err
	}
	if err := p.upsert(ctx, req.DocumentID, src, set, repository.DefaultConfidence); err != nil {
		return Result{}, err
	}
	p.Logger.Info("processor.vision.ok",
		"document_id", req.DocumentID,
		"source_type", src,
		"found", countFound(set),
	)
	return Result{
		DocumentID: req.DocumentID,
		SourceType: src,
		Fields:     set,
		Method:     "vision",
		RawModel:   raw,
	}, nil
}

func (p *Processor) upsert(ctx context.Context, documentID string, src constants.SourceType, set entity.FieldSet, confidence float32) error {
	if p.Repo == nil {
		return nil
	}
	return p.Repo.UpsertFields(ctx, documentID, src, set, confidence)
}

func countFound(set entity.FieldSet) int {
	n := 0
	for _, v := range set {
		if v != entity.NotFound {
			n++
		}
	}
	return n
}
