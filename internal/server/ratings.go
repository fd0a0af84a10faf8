package server

import (
	"context"
	"log/slog"

	jobmarketpb "github.com/openlabor/jobmarket/gen/proto/jobmarket/v1"
	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/ledger"
)

type RatingsServer struct {
	jobmarketpb.UnimplementedRatingsServiceServer
	ledger *ledger.Ledger
	logger *slog.Logger
}

func NewRatingsServer(l *ledger.Ledger, logger *slog.Logger) *RatingsServer {
	return &RatingsServer{
		ledger: l,
		logger: logger,
	}
}

func (s *RatingsServer) CreateRating(ctx context.Context, req *jobmarketpb.CreateRatingRequest) (*jobmarketpb.CreateRatingResponse, error) {
	validator := common.NewValidator()
	validator.Field("caller_address", req.GetCallerAddress(), common.Required, common.Address)
	validator.Field("rated_person", req.GetRatedPerson(), common.Required, common.Address)
	validator.Field("score", req.GetScore(), common.Score)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	if !constants.IsValidRole(req.GetRole()) {
		return nil, common.InvalidArgumentErrorf("role must be one of %v", constants.Roles())
	}

	err := s.ledger.CreateRating(ctx,
		req.GetCallerAddress(),
		req.GetJobId(),
		req.GetRatedPerson(),
		int(req.GetScore()),
		constants.Role(req.GetRole()),
		req.GetComment(),
	)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.CreateRatingResponse{}, nil
}

func (s *RatingsServer) ListRatings(ctx context.Context, req *jobmarketpb.ListRatingsRequest) (*jobmarketpb.ListRatingsResponse, error) {
	filter, err := parseFilter(req.GetFilter())
	if err != nil {
		return nil, err
	}

	ratings := s.ledger.GetRatings(req.GetAddress(), filter)
	out := make([]*jobmarketpb.Rating, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, toPBRating(r))
	}
	return &jobmarketpb.ListRatingsResponse{Ratings: out}, nil
}

func (s *RatingsServer) GetRatingsCount(ctx context.Context, req *jobmarketpb.GetRatingsCountRequest) (*jobmarketpb.GetRatingsCountResponse, error) {
	filter, err := parseFilter(req.GetFilter())
	if err != nil {
		return nil, err
	}
	n := s.ledger.GetRatingsCount(req.GetAddress(), filter)
	return &jobmarketpb.GetRatingsCountResponse{Count: int64(n)}, nil
}

func (s *RatingsServer) GetKarma(ctx context.Context, req *jobmarketpb.GetKarmaRequest) (*jobmarketpb.GetKarmaResponse, error) {
	return &jobmarketpb.GetKarmaResponse{Karma: s.ledger.GetKarma(req.GetAddress())}, nil
}

// parseFilter maps the wire filter string; an empty filter means Both.
func parseFilter(s string) (constants.RatingFilter, error) {
	switch constants.RatingFilter(s) {
	case constants.RatingFilterPositive, constants.RatingFilterNegative, constants.RatingFilterBoth:
		return constants.RatingFilter(s), nil
	case "":
		return constants.RatingFilterBoth, nil
	default:
		return "", common.InvalidArgumentErrorf("filter must be POSITIVE, NEGATIVE or BOTH, got %q", s)
	}
}
