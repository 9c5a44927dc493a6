package triage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ocr"
)

type fakeRecognizer struct {
	// keyed by base filename
	texts map[string]string
	errs  map[string]error
}

func (f *fakeRecognizer) Extract(_ context.Context, path string) (ocr.Result, error) {
	base := filepath.Base(path)
	if err, ok := f.errs[base]; ok {
		return ocr.Result{}, err
	}
	return ocr.Result{Text: f.texts[base], SourceType: constants.PDF, Method: "pdf-text"}, nil
}

func testEngine(t *testing.T, rec Recognizer) (*Engine, *Store, string) {
	t.Helper()
	root := t.TempDir()
	cfg := common.TriageConfig{
		IncomingDir: filepath.Join(root, "incoming"),
		CleanDir:    filepath.Join(root, "clean"),
		FlaggedDir:  filepath.Join(root, "flagged"),
		ResolvedDir: filepath.Join(root, "resolved"),
	}
	for _, d := range []string{cfg.IncomingDir, cfg.CleanDir, cfg.FlaggedDir, cfg.ResolvedDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	rules := &Rules{
		Documents: []DocumentRule{
			{Type: "National ID", Keywords: []string{"NATIONAL REGISTRATION"}},
			{Type: "Proof of Residence", Keywords: []string{"UTILITY BILL"}},
			{Type: "Account Opening Form", Keywords: []string{"ACCOUNT OPENING"}},
		},
		Required: RequiredDocs{
			Individual: []string{"National ID", "Proof of Residence", "Account Opening Form"},
			Company:    []string{"Account Opening Form"},
		},
		Classification: Classification{
			Company: []string{"COMPANY", "COMPANIES ACT"},
		},
	}
	store := NewStore(cfg, nil)
	return NewEngine(nil, store, rules, rec), store, root
}

// enough text to clear the blank-page threshold
func longText(marker string) string {
	return marker + " " + strings.Repeat("account holder details and particulars ", 3)
}

func seedPackage(t *testing.T, incoming, id string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(incoming, id, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunCleanPackage(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{
		"id.pdf":   longText("NATIONAL REGISTRATION"),
		"bill.pdf": longText("UTILITY BILL"),
		"form.pdf": longText("ACCOUNT OPENING"),
	}}
	engine, _, root := testEngine(t, rec)
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-001", map[string]string{
		"id.pdf": "x", "bill.pdf": "x", "form.pdf": "x",
	})

	result, err := engine.Run(context.Background(), "PKG-001")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Status != constants.StatusClean {
		t.Errorf("status = %v, want clean; missing=%v docs=%+v", result.Status, result.MissingDocs, result.Documents)
	}
	if result.AccountType != constants.AccountIndividual {
		t.Errorf("account type = %v, want INDIVIDUAL", result.AccountType)
	}

	// package moved to clean with renamed files and a report
	dest := filepath.Join(root, "clean", "PKG-001")
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("package not in clean dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "incoming", "PKG-001")); !os.IsNotExist(err) {
		t.Error("package still in incoming")
	}
	if _, err := os.Stat(filepath.Join(dest, "INDIVIDUAL_National_ID.pdf")); err != nil {
		t.Errorf("renamed ID document missing: %v", err)
	}
	report, err := os.ReadFile(filepath.Join(dest, constants.ReportFilename))
	if err != nil {
		t.Fatalf("report missing: %v", err)
	}
	if !strings.Contains(string(report), "CLEAN_FOR_PROCESSING") {
		t.Errorf("report lacks status: %s", report)
	}
}

func TestRunFlagsMissingDocuments(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{
		"id.pdf": longText("NATIONAL REGISTRATION"),
	}}
	engine, _, root := testEngine(t, rec)
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-002", map[string]string{"id.pdf": "x"})

	result, err := engine.Run(context.Background(), "PKG-002")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Status != constants.StatusFlagged {
		t.Errorf("status = %v, want flagged", result.Status)
	}
	want := []string{"Proof of Residence", "Account Opening Form"}
	if len(result.MissingDocs) != len(want) {
		t.Fatalf("missing = %v, want %v", result.MissingDocs, want)
	}
	for i, m := range want {
		if result.MissingDocs[i] != m {
			t.Errorf("missing[%d] = %q, want %q", i, result.MissingDocs[i], m)
		}
	}
	if result.DestPath != filepath.Join(root, "flagged", "PKG-002") {
		t.Errorf("dest = %q, want flagged dir", result.DestPath)
	}
}

func TestRunFlagsBlankDocument(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{
		"id.pdf":   longText("NATIONAL REGISTRATION"),
		"bill.pdf": longText("UTILITY BILL"),
		"form.pdf": "tiny", // blank by text proxy, still classifies as unknown
	}}
	engine, _, root := testEngine(t, rec)
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-003", map[string]string{
		"id.pdf": "x", "bill.pdf": "x", "form.pdf": "x",
	})

	result, err := engine.Run(context.Background(), "PKG-003")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Status != constants.StatusFlagged {
		t.Errorf("status = %v, want flagged", result.Status)
	}
	var found bool
	for _, doc := range result.Documents {
		if doc.Filename == "form.pdf" {
			found = true
			if len(doc.Issues) == 0 || doc.Issues[0] != constants.IssueBlankPage {
				t.Errorf("form.pdf issues = %v, want [%s]", doc.Issues, constants.IssueBlankPage)
			}
			if !strings.Contains(doc.Quality, "DOCUMENT BLANK/UNREADABLE") {
				t.Errorf("form.pdf quality = %q, want the blank verdict", doc.Quality)
			}
		}
	}
	if !found {
		t.Error("form.pdf missing from report")
	}
}

func TestRunDeletesEmptyPackage(t *testing.T) {
	engine, store, root := testEngine(t, &fakeRecognizer{})
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-NODOCS", map[string]string{
		constants.ManifestFilename: `{"account_no": "PKG-NODOCS"}`,
	})

	result, err := engine.Run(context.Background(), "PKG-NODOCS")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil for an empty package", result)
	}
	if _, err := os.Stat(filepath.Join(root, "incoming", "PKG-NODOCS")); !os.IsNotExist(err) {
		t.Error("empty package still in incoming")
	}
	if _, _, err := store.Find("PKG-NODOCS"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Find err = %v, want ErrNotFound after deletion", err)
	}
}

func TestRunDowngradesUnreadableFile(t *testing.T) {
	rec := &fakeRecognizer{
		texts: map[string]string{
			"id.pdf":   longText("NATIONAL REGISTRATION"),
			"bill.pdf": longText("UTILITY BILL"),
		},
		errs: map[string]error{"form.pdf": errors.New("corrupt xref")},
	}
	engine, _, root := testEngine(t, rec)
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-004", map[string]string{
		"id.pdf": "x", "bill.pdf": "x", "form.pdf": "x",
	})

	result, err := engine.Run(context.Background(), "PKG-004")
	if err != nil {
		t.Fatalf("Run must not fail on a per-file error: %v", err)
	}
	if result.Status != constants.StatusFlagged {
		t.Errorf("status = %v, want flagged", result.Status)
	}
	for _, doc := range result.Documents {
		if doc.Filename == "form.pdf" && doc.IdentifiedType != constants.UnknownDocument {
			t.Errorf("unreadable file identified as %q", doc.IdentifiedType)
		}
	}
}

func TestRunUnreadableExtraFileKeepsPackageClean(t *testing.T) {
	// a recognition failure is not a quality issue: with the checklist
	// complete, the unreadable extra must not flag the package
	rec := &fakeRecognizer{
		texts: map[string]string{
			"id.pdf":   longText("NATIONAL REGISTRATION"),
			"bill.pdf": longText("UTILITY BILL"),
			"form.pdf": longText("ACCOUNT OPENING"),
		},
		errs: map[string]error{"extra.pdf": errors.New("corrupt xref")},
	}
	engine, _, root := testEngine(t, rec)
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-009", map[string]string{
		"id.pdf": "x", "bill.pdf": "x", "form.pdf": "x", "extra.pdf": "x",
	})

	result, err := engine.Run(context.Background(), "PKG-009")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Status != constants.StatusClean {
		t.Errorf("status = %v, want clean; docs=%+v", result.Status, result.Documents)
	}
	for _, doc := range result.Documents {
		if !strings.HasPrefix(doc.Filename, "extra") {
			continue
		}
		if doc.IdentifiedType != constants.UnknownDocument {
			t.Errorf("extra.pdf identified as %q", doc.IdentifiedType)
		}
		if len(doc.Issues) != 0 {
			t.Errorf("extra.pdf issues = %v, want none", doc.Issues)
		}
		if doc.Quality != "" {
			t.Errorf("extra.pdf quality = %q, want no verdict", doc.Quality)
		}
	}
}

func TestRunCompanyAccountType(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{
		"form.pdf": longText("ACCOUNT OPENING for REGISTERED COMPANY"),
	}}
	engine, _, root := testEngine(t, rec)
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-005", map[string]string{"form.pdf": "x"})

	result, err := engine.Run(context.Background(), "PKG-005")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.AccountType != constants.AccountCompany {
		t.Errorf("account type = %v, want COMPANY", result.AccountType)
	}
	// company checklist only needs the form, so this is clean
	if result.Status != constants.StatusClean {
		t.Errorf("status = %v, want clean", result.Status)
	}
}

func TestCommitRemovesStaleDestination(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{
		"form.pdf": longText("ACCOUNT OPENING for COMPANY"),
	}}
	engine, _, root := testEngine(t, rec)
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-006", map[string]string{"form.pdf": "x"})

	// leftover from a crashed earlier run
	stale := filepath.Join(root, "clean", "PKG-006")
	if err := os.MkdirAll(stale, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stale, "old.pdf"), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := engine.Run(context.Background(), "PKG-006"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(stale, "old.pdf")); !os.IsNotExist(err) {
		t.Error("stale destination contents survived the move")
	}
	if _, err := os.Stat(filepath.Join(stale, constants.ReportFilename)); err != nil {
		t.Errorf("fresh package contents missing: %v", err)
	}
}

func TestResolveMovesFlaggedPackage(t *testing.T) {
	_, store, root := testEngine(t, &fakeRecognizer{})
	flagged := filepath.Join(root, "flagged", "PKG-007")
	if err := os.MkdirAll(flagged, 0o755); err != nil {
		t.Fatal(err)
	}

	dest, err := store.Resolve("PKG-007")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if dest != filepath.Join(root, "resolved", "PKG-007") {
		t.Errorf("dest = %q", dest)
	}
	if _, err := os.Stat(flagged); !os.IsNotExist(err) {
		t.Error("package still in flagged")
	}
}

func TestResolveUnknownPackage(t *testing.T) {
	_, store, _ := testEngine(t, &fakeRecognizer{})
	if _, err := store.Resolve("NOPE"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestManifestFallsBackToFolderName(t *testing.T) {
	_, store, root := testEngine(t, &fakeRecognizer{})
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-008", map[string]string{
		constants.ManifestFilename: "{not json",
	})
	m := store.ReadManifest("PKG-008")
	if m.AccountNo != "PKG-008" {
		t.Errorf("account no = %q, want folder name", m.AccountNo)
	}
}

func TestManifestAccountFields(t *testing.T) {
	_, store, root := testEngine(t, &fakeRecognizer{})
	seedPackage(t, filepath.Join(root, "incoming"), "ACC-4411", map[string]string{
		constants.ManifestFilename: `{
			"account_no": "ACC-4411",
			"account_name": "T. Moyo",
			"branch_name": "Harare Main",
			"account_type": "INDIVIDUAL"
		}`,
	})
	m := store.ReadManifest("ACC-4411")
	if m.AccountNo != "ACC-4411" || m.AccountName != "T. Moyo" ||
		m.BranchName != "Harare Main" || m.AccountType != "INDIVIDUAL" {
		t.Errorf("manifest = %+v", m)
	}
}

func TestCommitSerializedPerPackage(t *testing.T) {
	_, store, root := testEngine(t, &fakeRecognizer{})
	seedPackage(t, filepath.Join(root, "incoming"), "PKG-RACE", map[string]string{"form.pdf": "x"})

	results := []*entity.TriageResult{
		{PackageID: "PKG-RACE", AccountType: constants.AccountIndividual, Status: constants.StatusClean},
		{PackageID: "PKG-RACE", AccountType: constants.AccountIndividual, Status: constants.StatusFlagged},
	}
	errs := make([]error, len(results))
	var wg sync.WaitGroup
	for i, res := range results {
		wg.Add(1)
		go func(i int, res *entity.TriageResult) {
			defer wg.Done()
			errs[i] = store.Commit(res)
		}(i, res)
	}
	wg.Wait()

	var ok, notFound int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrNotFound):
			notFound++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 || notFound != 1 {
		t.Fatalf("ok=%d notFound=%d, want exactly one commit to win", ok, notFound)
	}

	// the package landed in exactly one stage
	var stages int
	for _, dir := range []string{"clean", "flagged"} {
		if _, err := os.Stat(filepath.Join(root, dir, "PKG-RACE")); err == nil {
			stages++
		}
	}
	if stages != 1 {
		t.Errorf("package present in %d stages, want 1", stages)
	}
}

func TestLoadRulesValidation(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	valid := write("valid.yaml", `
documents:
  - type: National ID
    keywords: ["NATIONAL REGISTRATION"]
required:
  individual: ["National ID"]
classification:
  company: ["COMPANY"]
`)
	rules, err := LoadRules(valid)
	if err != nil {
		t.Fatalf("LoadRules(valid): %v", err)
	}
	if len(rules.Documents) != 1 || rules.Documents[0].Type != "National ID" {
		t.Errorf("unexpected rules: %+v", rules)
	}
	if len(rules.Classification.Company) != 1 {
		t.Errorf("unexpected classification: %+v", rules.Classification)
	}

	cases := map[string]string{
		"missing.yaml":   "", // no such file, handled below
		"empty.yaml":     `documents: []`,
		"nokeyword.yaml": "documents:\n  - type: X\n    keywords: []\n",
		"noclass.yaml":   "documents:\n  - type: X\n    keywords: [\"x\"]\n",
		"badref.yaml":    "documents:\n  - type: X\n    keywords: [\"x\"]\nclassification:\n  company: [\"COMPANY\"]\nrequired:\n  company: [\"Y\"]\n",
		"garbage.yaml":   `{{{`,
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		if name != "missing.yaml" {
			path = write(name, content)
		}
		if _, err := LoadRules(path); !errors.Is(err, common.ErrConfiguration) {
			t.Errorf("LoadRules(%s) err = %v, want ErrConfiguration", name, err)
		}
	}
}
