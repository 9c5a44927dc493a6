package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	aurav1 "github.com/TadiwanasheNdombo/aura-document-system/gen/proto/aura/v1"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/export"
)

type ExportServer struct {
	aurav1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportDocument(ctx context.Context, req *aurav1.ExportDocumentRequest) (*aurav1.ExportDocumentResponse, error) {
	documentID := strings.TrimSpace(req.GetDocumentId())
	if documentID == "" {
		return nil, status.Error(codes.InvalidArgument, "document_id is required")
	}

	xlsx, err := s.svc.ExportDocumentXLSX(ctx, documentID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "document_id", documentID, "err", err)
		return nil, status.Error(common.GRPCCodeFromError(err), "export failed")
	}
	return &aurav1.ExportDocumentResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportCorrections(ctx context.Context, _ *aurav1.ExportCorrectionsRequest) (*aurav1.ExportCorrectionsResponse, error) {
	xlsx, err := s.svc.ExportCorrectionsXLSX(ctx)
	if err != nil {
		s.logger.Error("export.corrections.failed", "err", err)
		return nil, status.Error(common.GRPCCodeFromError(err), "export failed")
	}
	return &aurav1.ExportCorrectionsResponse{Xlsx: xlsx}, nil
}
