package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	aurav1 "github.com/TadiwanasheNdombo/aura-document-system/gen/proto/aura/v1"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/triage"
)

type TriageServer struct {
	aurav1.UnimplementedTriageServiceServer
	engine *triage.Engine
	store  *triage.Store
	logger *slog.Logger
}

func NewTriageServer(engine *triage.Engine, store *triage.Store, logger *slog.Logger) *TriageServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TriageServer{engine: engine, store: store, logger: logger}
}

func (s *TriageServer) RunTriage(ctx context.Context, req *aurav1.RunTriageRequest) (*aurav1.RunTriageResponse, error) {
	packageID := strings.TrimSpace(req.GetPackageId())

	var results []*entity.TriageResult
	if packageID == "" {
		all, err := s.engine.RunAll(ctx)
		if err != nil {
			s.logger.Error("triage run failed", "error", err)
			return nil, common.GRPCStatusFromError(err)
		}
		results = all
	} else {
		res, err := s.engine.Run(ctx, packageID)
		if err != nil {
			s.logger.Error("triage run failed", "package_id", packageID, "error", err)
			return nil, common.GRPCStatusFromError(err)
		}
		if res != nil {
			results = []*entity.TriageResult{res}
		}
	}

	out := make([]*aurav1.TriageResult, len(results))
	for i, r := range results {
		out[i] = toProtoTriageResult(r)
	}
	return &aurav1.RunTriageResponse{Results: out}, nil
}

func (s *TriageServer) ListPackages(_ context.Context, req *aurav1.ListPackagesRequest) (*aurav1.ListPackagesResponse, error) {
	stage := strings.ToLower(strings.TrimSpace(req.GetStage()))
	if stage == "" {
		stage = "incoming"
	}
	ids, err := s.store.ListStage(stage)
	if err != nil {
		return nil, common.GRPCStatusFromError(err)
	}
	return &aurav1.ListPackagesResponse{PackageIds: ids}, nil
}

func (s *TriageServer) GetPackage(_ context.Context, req *aurav1.GetPackageRequest) (*aurav1.GetPackageResponse, error) {
	packageID := strings.TrimSpace(req.GetPackageId())
	if packageID == "" {
		return nil, status.Error(codes.InvalidArgument, "package_id is required")
	}
	stage, path, err := s.store.Find(packageID)
	if err != nil {
		return nil, common.GRPCStatusFromError(err)
	}
	return &aurav1.GetPackageResponse{
		PackageId: packageID,
		Stage:     stage,
		Path:      path,
	}, nil
}

func (s *TriageServer) ResolvePackage(ctx context.Context, req *aurav1.ResolvePackageRequest) (*aurav1.ResolvePackageResponse, error) {
	packageID := strings.TrimSpace(req.GetPackageId())
	if packageID == "" {
		return nil, status.Error(codes.InvalidArgument, "package_id is required")
	}
	if _, err := s.store.Resolve(packageID); err != nil {
		s.logger.Error("resolve failed", "package_id", packageID, "error", err)
		return nil, common.GRPCStatusFromError(err)
	}
	s.logger.Info("package resolved",
		"package_id", packageID,
		"actor", common.ActorIDFromContext(ctx),
	)
	return &aurav1.ResolvePackageResponse{
		PackageId: packageID,
		Stage:     "resolved",
	}, nil
}

func toProtoTriageResult(r *entity.TriageResult) *aurav1.TriageResult {
	docs := make([]*aurav1.DocumentReport, len(r.Documents))
	for i, d := range r.Documents {
		docs[i] = &aurav1.DocumentReport{
			Filename:       d.Filename,
			IdentifiedType: d.IdentifiedType,
			Issues:         d.Issues,
			RenamedTo:      d.RenamedTo,
			Quality:        d.Quality,
		}
	}
	return &aurav1.TriageResult{
		PackageId:   r.PackageID,
		AccountType: string(r.AccountType),
		Status:      string(r.Status),
		Documents:   docs,
		MissingDocs: r.MissingDocs,
		DestPath:    r.DestPath,
		ProcessedAt: r.ProcessedAt.Format(time.RFC3339Nano),
	}
}
