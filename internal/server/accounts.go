package server

import (
	"context"
	"log/slog"

	jobmarketpb "github.com/openlabor/jobmarket/gen/proto/jobmarket/v1"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/ledger"
)

type AccountsServer struct {
	jobmarketpb.UnimplementedAccountsServiceServer
	ledger *ledger.Ledger
	logger *slog.Logger
}

func NewAccountsServer(l *ledger.Ledger, logger *slog.Logger) *AccountsServer {
	return &AccountsServer{
		ledger: l,
		logger: logger,
	}
}

// Deposit credits external funds to an account.
func (s *AccountsServer) Deposit(ctx context.Context, req *jobmarketpb.DepositRequest) (*jobmarketpb.DepositResponse, error) {
	validator := common.NewValidator()
	validator.Field("address", req.GetAddress(), common.Required, common.Address)
	validator.Field("amount", req.GetAmount(), common.PositiveAmount)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	balance, err := s.ledger.Deposit(ctx, req.GetAddress(), req.GetAmount())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.DepositResponse{Balance: balance}, nil
}

func (s *AccountsServer) GetBalance(ctx context.Context, req *jobmarketpb.GetBalanceRequest) (*jobmarketpb.GetBalanceResponse, error) {
	validator := common.NewValidator()
	validator.Field("address", req.GetAddress(), common.Required, common.Address)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	return &jobmarketpb.GetBalanceResponse{Balance: s.ledger.Balance(req.GetAddress())}, nil
}
