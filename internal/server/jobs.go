package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	jobmarketpb "github.com/openlabor/jobmarket/gen/proto/jobmarket/v1"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/content"
	"github.com/openlabor/jobmarket/internal/ledger"
)

type JobsServer struct {
	jobmarketpb.UnimplementedJobsServiceServer
	ledger *ledger.Ledger
	logger *slog.Logger
}

func NewJobsServer(l *ledger.Ledger, logger *slog.Logger) *JobsServer {
	return &JobsServer{
		ledger: l,
		logger: logger,
	}
}

// CreateJob opens a job and escrows the payment from the caller's balance.
func (s *JobsServer) CreateJob(ctx context.Context, req *jobmarketpb.CreateJobRequest) (*jobmarketpb.CreateJobResponse, error) {
	validator := common.NewValidator()
	validator.Field("caller_address", req.GetCallerAddress(), common.Required, common.Address)
	validator.Field("payment", req.GetPayment(), common.PositiveAmount)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	deadline, err := time.Parse(time.RFC3339, req.GetDeadline())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("deadline must be RFC3339: %v", err)
	}

	ref := strings.TrimSpace(req.GetDescriptionRef())
	if doc := req.GetDescriptorJson(); doc != "" {
		if ref != "" {
			return nil, common.InvalidArgumentError("set either description_ref or descriptor_json, not both")
		}
		if err := content.ValidateDescriptor([]byte(doc)); err != nil {
			return nil, common.InvalidArgumentErrorf("descriptor: %v", err)
		}
		ref = content.DescriptorRef([]byte(doc))
	}
	if ref == "" {
		return nil, common.InvalidArgumentError("description_ref or descriptor_json is required")
	}

	jobID, err := s.ledger.CreateJob(ctx, req.GetCallerAddress(), req.GetPayment(), deadline, ref)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	return &jobmarketpb.CreateJobResponse{
		JobId:          jobID,
		DescriptionRef: ref,
	}, nil
}

func (s *JobsServer) ApplyForJob(ctx context.Context, req *jobmarketpb.ApplyForJobRequest) (*jobmarketpb.ApplyForJobResponse, error) {
	validator := common.NewValidator()
	validator.Field("caller_address", req.GetCallerAddress(), common.Required, common.Address)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	if err := s.ledger.ApplyForJob(ctx, req.GetCallerAddress(), req.GetJobId()); err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.ApplyForJobResponse{}, nil
}

func (s *JobsServer) AssignJob(ctx context.Context, req *jobmarketpb.AssignJobRequest) (*jobmarketpb.AssignJobResponse, error) {
	validator := common.NewValidator()
	validator.Field("caller_address", req.GetCallerAddress(), common.Required, common.Address)
	validator.Field("employee_address", req.GetEmployeeAddress(), common.Required, common.Address)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	if err := s.ledger.AssignJob(ctx, req.GetCallerAddress(), req.GetJobId(), req.GetEmployeeAddress()); err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.AssignJobResponse{}, nil
}

func (s *JobsServer) AskToReviewJob(ctx context.Context, req *jobmarketpb.AskToReviewJobRequest) (*jobmarketpb.AskToReviewJobResponse, error) {
	validator := common.NewValidator()
	validator.Field("caller_address", req.GetCallerAddress(), common.Required, common.Address)
	validator.Field("work_result_ref", req.GetWorkResultRef(), common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	if err := s.ledger.AskToReviewJob(ctx, req.GetCallerAddress(), req.GetJobId(), req.GetWorkResultRef()); err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.AskToReviewJobResponse{}, nil
}

func (s *JobsServer) CompleteJob(ctx context.Context, req *jobmarketpb.CompleteJobRequest) (*jobmarketpb.CompleteJobResponse, error) {
	validator := common.NewValidator()
	validator.Field("caller_address", req.GetCallerAddress(), common.Required, common.Address)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	if err := s.ledger.CompleteJob(ctx, req.GetCallerAddress(), req.GetJobId()); err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.CompleteJobResponse{}, nil
}

func (s *JobsServer) GetJob(ctx context.Context, req *jobmarketpb.GetJobRequest) (*jobmarketpb.GetJobResponse, error) {
	job, err := s.ledger.GetJob(req.GetJobId())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.GetJobResponse{Job: toPBJob(job)}, nil
}

func (s *JobsServer) ListJobApplications(ctx context.Context, req *jobmarketpb.ListJobApplicationsRequest) (*jobmarketpb.ListJobApplicationsResponse, error) {
	apps, err := s.ledger.GetJobApplications(req.GetJobId())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &jobmarketpb.ListJobApplicationsResponse{Applicants: apps}, nil
}
