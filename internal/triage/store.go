package triage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

// Store owns the package folder state machine:
// incoming -> clean | flagged -> resolved.
// Transitions are atomic per package: the destination is fully staged
// before the incoming copy disappears, and a stale destination from an
// earlier crashed run is removed first.
type Store struct {
	incoming string
	clean    string
	flagged  string
	resolved string
	logger   *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(cfg common.TriageConfig, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		incoming: cfg.IncomingDir,
		clean:    cfg.CleanDir,
		flagged:  cfg.FlaggedDir,
		resolved: cfg.ResolvedDir,
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *Store) lock(packageID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[packageID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[packageID] = l
	}
	return l
}

// ListIncoming returns the package IDs waiting in the incoming dir,
// sorted for stable processing order.
func (s *Store) ListIncoming() ([]string, error) {
	entries, err := os.ReadDir(s.incoming)
	if err != nil {
		return nil, fmt.Errorf("listing incoming packages: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// IncomingPath returns the folder for a package still in intake.
func (s *Store) IncomingPath(packageID string) string {
	return filepath.Join(s.incoming, packageID)
}

// ReadManifest loads package_info.json, falling back to the folder
// name when the manifest is absent or unreadable.
func (s *Store) ReadManifest(packageID string) *entity.PackageManifest {
	path := filepath.Join(s.IncomingPath(packageID), constants.ManifestFilename)
	raw, err := os.ReadFile(path)
	if err != nil {
		return &entity.PackageManifest{AccountNo: packageID}
	}
	var m entity.PackageManifest
	if err := json.Unmarshal(raw, &m); err != nil || m.AccountNo == "" {
		s.logger.Warn("triage.manifest.invalid", "package_id", packageID, "error", err)
		return &entity.PackageManifest{AccountNo: packageID}
	}
	return &m
}

// DeleteIncoming removes a package folder from intake without moving
// it to any stage. Used for packages that arrive with no documents.
func (s *Store) DeleteIncoming(packageID string) error {
	l := s.lock(packageID)
	l.Lock()
	defer l.Unlock()

	src := s.IncomingPath(packageID)
	if _, err := os.Stat(src); err != nil {
		return common.NewAppError("NOT_FOUND",
			fmt.Sprintf("package %s not in incoming", packageID), common.ErrNotFound)
	}
	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("deleting package %s: %w", packageID, err)
	}
	s.logger.Info("triage.package.deleted", "package_id", packageID)
	return nil
}

// ListDocuments walks the package folder for processable files,
// skipping the manifest and anything with a disallowed extension.
func (s *Store) ListDocuments(packageID string) ([]string, error) {
	root := s.IncomingPath(packageID)
	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == constants.ManifestFilename {
			return nil
		}
		if constants.AllowedExt(filepath.Ext(d.Name())) {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			docs = append(docs, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking package %s: %w", packageID, err)
	}
	sort.Strings(docs)
	return docs, nil
}

// Commit applies a triage result: renames each identified document,
// writes the pre-check report, and moves the package out of incoming.
// The result's DestPath is filled in.
func (s *Store) Commit(result *entity.TriageResult) error {
	l := s.lock(result.PackageID)
	l.Lock()
	defer l.Unlock()

	src := s.IncomingPath(result.PackageID)
	if _, err := os.Stat(src); err != nil {
		return common.NewAppError("NOT_FOUND",
			fmt.Sprintf("package %s not in incoming", result.PackageID), common.ErrNotFound)
	}

	for i := range result.Documents {
		doc := &result.Documents[i]
		renamed, err := s.renameDocument(src, string(result.AccountType), doc)
		if err != nil {
			return err
		}
		doc.RenamedTo = renamed
	}

	if err := writeReport(filepath.Join(src, constants.ReportFilename), result); err != nil {
		return fmt.Errorf("writing report for %s: %w", result.PackageID, err)
	}

	destRoot := s.clean
	if result.Flagged() {
		destRoot = s.flagged
	}
	dest := filepath.Join(destRoot, result.PackageID)
	if err := s.movePackage(src, dest); err != nil {
		return err
	}
	result.DestPath = dest

	s.logger.Info("triage.package.committed",
		"package_id", result.PackageID,
		"status", result.Status,
		"dest", dest)
	return nil
}

// renameDocument renames a file in place to
// {ACCOUNT_TYPE}_{Identified_Type}{ext}, preserving its subfolder.
// A numeric suffix keeps a second document of the same type from
// clobbering the first.
func (s *Store) renameDocument(root, accountType string, doc *entity.DocumentReport) (string, error) {
	ext := filepath.Ext(doc.Filename)
	dir := filepath.Dir(doc.Filename)
	base := fmt.Sprintf("%s_%s", accountType, strings.ReplaceAll(doc.IdentifiedType, " ", "_"))

	rel := filepath.Join(dir, base+ext)
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(root, rel)); os.IsNotExist(err) {
			break
		}
		rel = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, n, ext))
	}
	if err := os.Rename(filepath.Join(root, doc.Filename), filepath.Join(root, rel)); err != nil {
		return "", fmt.Errorf("renaming %s: %w", doc.Filename, err)
	}
	return rel, nil
}

// movePackage replaces any stale destination, moves the folder, then
// prunes an emptied parent left behind in incoming.
func (s *Store) movePackage(src, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		s.logger.Warn("triage.package.stale_dest", "dest", dest)
		if err := os.RemoveAll(dest); err != nil {
			return fmt.Errorf("removing stale destination %s: %w", dest, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if err := os.Rename(src, dest); err != nil {
		return fmt.Errorf("moving package to %s: %w", dest, err)
	}
	return nil
}

// Resolve moves a reviewed package from flagged to resolved.
func (s *Store) Resolve(packageID string) (string, error) {
	l := s.lock(packageID)
	l.Lock()
	defer l.Unlock()

	src := filepath.Join(s.flagged, packageID)
	if _, err := os.Stat(src); err != nil {
		return "", common.NewAppError("NOT_FOUND",
			fmt.Sprintf("package %s not in flagged", packageID), common.ErrNotFound)
	}
	dest := filepath.Join(s.resolved, packageID)
	if err := s.movePackage(src, dest); err != nil {
		return "", err
	}
	s.logger.Info("triage.package.resolved", "package_id", packageID, "dest", dest)
	return dest, nil
}

// Find reports which stage currently holds the package.
func (s *Store) Find(packageID string) (stage, path string, err error) {
	for _, candidate := range []struct{ stage, root string }{
		{"incoming", s.incoming},
		{"clean", s.clean},
		{"flagged", s.flagged},
		{"resolved", s.resolved},
	} {
		p := filepath.Join(candidate.root, packageID)
		if _, statErr := os.Stat(p); statErr == nil {
			return candidate.stage, p, nil
		}
	}
	return "", "", common.NewAppError("NOT_FOUND",
		fmt.Sprintf("package %s not found in any stage", packageID), common.ErrNotFound)
}

// ListStage lists package IDs currently sitting in the named stage
// dir ("clean", "flagged", "resolved").
func (s *Store) ListStage(stage string) ([]string, error) {
	var root string
	switch stage {
	case "incoming":
		root = s.incoming
	case "clean":
		root = s.clean
	case "flagged":
		root = s.flagged
	case "resolved":
		root = s.resolved
	default:
		return nil, common.NewAppError("INVALID_INPUT",
			fmt.Sprintf("unknown stage %q", stage), common.ErrInvalidInput)
	}
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}
