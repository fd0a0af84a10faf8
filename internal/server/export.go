package server

import (
	"context"
	"log/slog"

	jobmarketpb "github.com/openlabor/jobmarket/gen/proto/jobmarket/v1"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/export"
)

type ExportServer struct {
	jobmarketpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportRatings(ctx context.Context, req *jobmarketpb.ExportRatingsRequest) (*jobmarketpb.ExportRatingsResponse, error) {
	validator := common.NewValidator()
	validator.Field("address", req.GetAddress(), common.Required, common.Address)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportRatingsXLSX(ctx, req.GetAddress())
	if err != nil {
		s.logger.Error("export.xlsx.failed", "address", req.GetAddress(), "err", err)
		return nil, common.InternalErrorf("export ratings: %v", err)
	}
	return &jobmarketpb.ExportRatingsResponse{Xlsx: xlsx}, nil
}
