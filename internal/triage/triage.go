package triage

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/classify"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ocr"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/quality"
)

// Recognizer is the slice of the OCR extractor triage needs.
type Recognizer interface {
	Extract(ctx context.Context, path string) (ocr.Result, error)
}

// Engine runs the pre-check over incoming packages. Per-file failures
// never abort a package: an unreadable document is reported as
// Unknown Document and the rest of the package still runs.
type Engine struct {
	logger     *slog.Logger
	store      *Store
	rules      *Rules
	classifier *classify.Classifier
	recognizer Recognizer
}

func NewEngine(logger *slog.Logger, store *Store, rules *Rules, recognizer Recognizer) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:     logger,
		store:      store,
		rules:      rules,
		classifier: classify.NewClassifier(rules.ClassifierRules()),
		recognizer: recognizer,
	}
}

// RunAll triages every package currently in incoming. A failed
// package is logged and skipped; the rest still run.
func (e *Engine) RunAll(ctx context.Context) ([]*entity.TriageResult, error) {
	ids, err := e.store.ListIncoming()
	if err != nil {
		return nil, err
	}
	results := make([]*entity.TriageResult, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		result, err := e.Run(ctx, id)
		if err != nil {
			e.logger.Error("triage.package.failed", "package_id", id, "error", err)
			continue
		}
		if result == nil {
			// empty package, deleted rather than triaged
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// Run triages one package and commits the outcome to the store. A
// package holding no processable documents is deleted from intake and
// reported as a nil result.
func (e *Engine) Run(ctx context.Context, packageID string) (*entity.TriageResult, error) {
	start := time.Now()
	manifest := e.store.ReadManifest(packageID)
	docs, err := e.store.ListDocuments(packageID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		e.logger.Warn("triage.package.empty", "package_id", packageID)
		if err := e.store.DeleteIncoming(packageID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	root := e.store.IncomingPath(packageID)

	reports := make([]entity.DocumentReport, 0, len(docs))
	texts := make([]string, 0, len(docs))
	identified := make(map[string]bool)

	for _, rel := range docs {
		check := e.checkDocument(ctx, filepath.Join(root, rel), rel)
		if check.report.IdentifiedType != constants.UnknownDocument {
			identified[check.report.IdentifiedType] = true
		}
		reports = append(reports, check.report)
		texts = append(texts, check.text)
	}

	account := classify.AccountType(texts, e.rules.Classification.Company)

	var missing []string
	for _, required := range e.rules.Checklist(account) {
		if !identified[required] {
			missing = append(missing, required)
		}
	}

	status := constants.StatusClean
	if len(missing) > 0 || anyIssues(reports) {
		status = constants.StatusFlagged
	}

	result := &entity.TriageResult{
		PackageID:   manifest.AccountNo,
		AccountType: account,
		Status:      status,
		Documents:   reports,
		MissingDocs: missing,
		ProcessedAt: time.Now().UTC(),
	}
	if err := e.store.Commit(result); err != nil {
		return nil, err
	}

	e.logger.Info("triage.package.done",
		"package_id", result.PackageID,
		"account_type", account,
		"status", status,
		"documents", len(reports),
		"missing", len(missing),
		"duration_ms", time.Since(start).Milliseconds())
	return result, nil
}

type documentCheck struct {
	report entity.DocumentReport
	text   string
}

func (e *Engine) checkDocument(ctx context.Context, path, rel string) documentCheck {
	report := entity.DocumentReport{Filename: rel, IdentifiedType: constants.UnknownDocument}

	res, err := e.recognizer.Extract(ctx, path)
	if err != nil {
		// recognition failure is not a quality verdict: the file stays
		// an Unknown Document with no quality line attached
		e.logger.Warn("triage.document.unreadable", "path", rel, "error", err)
		return documentCheck{report: report}
	}

	var q quality.Report
	if res.SourceType == constants.IMAGE {
		if imgReport, imgErr := quality.AnalyzeImageFile(path); imgErr == nil {
			q = imgReport
		} else {
			q = quality.AnalyzeText(res.Text)
		}
	} else {
		q = quality.AnalyzeText(res.Text)
	}
	report.Quality = q.Status()
	report.Issues = append(report.Issues, q.Issues()...)

	report.IdentifiedType = e.classifier.Classify(res.Text)
	return documentCheck{report: report, text: res.Text}
}

func anyIssues(reports []entity.DocumentReport) bool {
	for _, r := range reports {
		if len(r.Issues) > 0 {
			return true
		}
	}
	return false
}
