package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir      string
	ArtifactCacheDir string
}

type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger

	// stubbed in tests
	readPDFText func(path string) (string, int, error)
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger, readPDFText: pdfTextLayer}
}

// Extract picks a strategy based on file extension.
//
// PDFs go through the embedded text layer first; when the layer yields
// fewer than constants.MinTextContent characters the document is
// rasterized and OCRed, and whichever pass produced more text wins.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("ocr.extract.start", "path", path, "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("ocr.extract.unsupported", "extension", ext)
		return Result{}, common.NewAppError("RECOGNITION_ERROR",
			fmt.Sprintf("unsupported extension: %q", ext), common.ErrRecognition)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	res := Result{SourceType: constants.PDF, Language: e.cfg.TesseractLang}

	native, pages, nativeErr := e.readPDFText(path)
	native = Normalize(native)
	if nativeErr != nil {
		res.Warnings = append(res.Warnings, nativeErr.Error())
	}
	if len(strings.TrimSpace(native)) >= constants.MinTextContent {
		res.Text = native
		res.Pages = pages
		res.Method = "pdf-text"
		return res, nil
	}

	// thin or absent text layer: rasterize and OCR
	e.logger.Info("ocr.pdf.fallback", "path", path, "native_chars", len(strings.TrimSpace(native)))
	ocrText, ocrPages, warns, ocrErr := e.pdfToOCR(ctx, path)
	ocrText = Normalize(ocrText)
	res.Warnings = append(res.Warnings, warns...)
	if ocrErr != nil {
		if nativeErr != nil {
			return res, common.NewAppError("RECOGNITION_ERROR",
				fmt.Sprintf("pdf recognition failed for %s", filepath.Base(path)), common.ErrRecognition)
		}
		// OCR failed but the text layer gave us something
		res.Text = native
		res.Pages = pages
		res.Method = "pdf-text"
		return res, nil
	}

	// prefer whichever pass recovered more text
	if len(strings.TrimSpace(ocrText)) > len(strings.TrimSpace(native)) {
		res.Text = ocrText
		res.Pages = ocrPages
		res.Method = "pdf-ocr"
	} else {
		res.Text = native
		res.Pages = pages
		res.Method = "pdf-text"
	}
	return res, nil
}
