package server

import (
	"context"
	"log/slog"

	jobmarketpb "github.com/openlabor/jobmarket/gen/proto/jobmarket/v1"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/ledger"
)

type ReviewsServer struct {
	jobmarketpb.UnimplementedReviewsServiceServer
	ledger *ledger.Ledger
	logger *slog.Logger
}

func NewReviewsServer(l *ledger.Ledger, logger *slog.Logger) *ReviewsServer {
	return &ReviewsServer{
		ledger: l,
		logger: logger,
	}
}

func (s *ReviewsServer) CreateReview(ctx context.Context, req *jobmarketpb.CreateReviewRequest) (*jobmarketpb.CreateReviewResponse, error) {
	validator := common.NewValidator()
	validator.Field("caller_address", req.GetCallerAddress(), common.Required, common.Address)
	validator.Field("score", req.GetScore(), common.Score)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	err := s.ledger.CreateReview(ctx, req.GetCallerAddress(), req.GetJobId(), int(req.GetScore()), req.GetComment())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.CreateReviewResponse{}, nil
}

// ListReviews is employee-only; the authoring employer is rejected like any
// third party.
func (s *ReviewsServer) ListReviews(ctx context.Context, req *jobmarketpb.ListReviewsRequest) (*jobmarketpb.ListReviewsResponse, error) {
	validator := common.NewValidator()
	validator.Field("caller_address", req.GetCallerAddress(), common.Required, common.Address)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	reviews, err := s.ledger.GetReviews(req.GetCallerAddress(), req.GetJobId())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	out := make([]*jobmarketpb.Review, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, toPBReview(rv))
	}
	return &jobmarketpb.ListReviewsResponse{Reviews: out}, nil
}
