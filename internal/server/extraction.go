package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	aurav1 "github.com/TadiwanasheNdombo/aura-document-system/gen/proto/aura/v1"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
	processor "github.com/TadiwanasheNdombo/aura-document-system/internal/pipeline"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/repository"
)

type ExtractionService struct {
	aurav1.UnimplementedExtractionServiceServer
	processor  *processor.Processor
	fieldsRepo repository.ExtractionFieldRepository
	logger     *slog.Logger
}

func NewExtractionService(proc *processor.Processor, repo repository.ExtractionFieldRepository, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{processor: proc, fieldsRepo: repo, logger: logger}
}

func (s *ExtractionService) ExtractDocument(ctx context.Context, req *aurav1.ExtractDocumentRequest) (*aurav1.ExtractDocumentResponse, error) {
	documentID := strings.TrimSpace(req.GetDocumentId())
	if documentID == "" {
		return nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	var src constants.SourceType
	if st := strings.TrimSpace(req.GetSourceType()); st != "" {
		parsed, ok := constants.ParseSourceType(st)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown source_type %q", st)
		}
		src = parsed
	}

	res, err := s.processor.ProcessDocument(ctx, processor.Request{
		DocumentID: documentID,
		Path:       path,
		SourceType: src,
		UseVision:  req.GetUseVision(),
	})
	if err != nil {
		s.logger.Error("extract document failed", "document_id", documentID, "error", err)
		return nil, common.GRPCStatusFromError(err)
	}
	return toExtractResponse(res), nil
}

func (s *ExtractionService) ExtractDualSource(ctx context.Context, req *aurav1.ExtractDualSourceRequest) (*aurav1.ExtractDualSourceResponse, error) {
	documentID := strings.TrimSpace(req.GetDocumentId())
	if documentID == "" {
		return nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	results, err := s.processor.ExtractDualSource(ctx, processor.Request{
		DocumentID: documentID,
		Path:       path,
		UseVision:  req.GetUseVision(),
	})
	if err != nil {
		s.logger.Error("dual source extract failed", "document_id", documentID, "error", err)
		return nil, common.GRPCStatusFromError(err)
	}

	out := make([]*aurav1.ExtractDocumentResponse, len(results))
	for i, r := range results {
		out[i] = toExtractResponse(r)
	}
	return &aurav1.ExtractDualSourceResponse{Results: out}, nil
}

func (s *ExtractionService) ListFields(ctx context.Context, req *aurav1.ListFieldsRequest) (*aurav1.ListFieldsResponse, error) {
	documentID := strings.TrimSpace(req.GetDocumentId())
	if documentID == "" {
		return nil, status.Error(codes.InvalidArgument, "document_id is required")
	}

	var srcFilter *constants.SourceType
	if st := strings.TrimSpace(req.GetSourceType()); st != "" {
		parsed, ok := constants.ParseSourceType(st)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown source_type %q", st)
		}
		srcFilter = &parsed
	}

	rows, err := s.fieldsRepo.ListByDocument(ctx, documentID, srcFilter)
	if err != nil {
		s.logger.Error("list fields failed", "document_id", documentID, "error", err)
		return nil, status.Error(common.GRPCCodeFromError(err), "listing fields failed")
	}

	out := make([]*aurav1.ExtractedField, len(rows))
	for i, row := range rows {
		out[i] = toProtoField(row)
	}
	return &aurav1.ListFieldsResponse{Fields: out}, nil
}

func (s *ExtractionService) CorrectField(ctx context.Context, req *aurav1.CorrectFieldRequest) (*aurav1.CorrectFieldResponse, error) {
	documentID := strings.TrimSpace(req.GetDocumentId())
	fieldName := strings.TrimSpace(req.GetFieldName())
	correctedValue := strings.TrimSpace(req.GetCorrectedValue())

	v := common.NewValidator().
		Field("document_id", documentID, common.Required).
		Field("source_type", req.GetSourceType(), common.Required, common.SourceType).
		Field("field_name", fieldName, common.Required).
		Field("corrected_value", correctedValue, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	src, _ := constants.ParseSourceType(req.GetSourceType())

	row, err := s.fieldsRepo.Correct(ctx, documentID, src, fieldName, correctedValue)
	if err != nil {
		s.logger.Error("correct field failed",
			"document_id", documentID, "field", fieldName, "error", err)
		return nil, common.GRPCStatusFromError(err)
	}
	s.logger.Info("field corrected",
		"document_id", documentID,
		"field", fieldName,
		"actor", common.ActorIDFromContext(ctx),
	)
	return &aurav1.CorrectFieldResponse{Field: toProtoField(row)}, nil
}

func toExtractResponse(r processor.Result) *aurav1.ExtractDocumentResponse {
	return &aurav1.ExtractDocumentResponse{
		DocumentId: r.DocumentID,
		SourceType: string(r.SourceType),
		Method:     r.Method,
		Fields:     map[string]string(r.Fields),
	}
}

func toProtoField(f *entity.ExtractedField) *aurav1.ExtractedField {
	out := &aurav1.ExtractedField{
		Id:              f.ID.String(),
		DocumentId:      f.DocumentID,
		SourceType:      string(f.SourceType),
		FieldName:       f.FieldName,
		ConfidenceScore: f.ConfidenceScore,
		IsCorrected:     f.IsCorrected,
		CreatedAt:       f.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       f.UpdatedAt.Format(time.RFC3339Nano),
	}
	if f.ExtractedValue != nil {
		out.ExtractedValue = *f.ExtractedValue
	}
	if f.CorrectedValue != nil {
		out.CorrectedValue = *f.CorrectedValue
	}
	return out
}
