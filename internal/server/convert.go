package server

import (
	"time"

	jobmarketpb "github.com/openlabor/jobmarket/gen/proto/jobmarket/v1"
	"github.com/openlabor/jobmarket/internal/entity"
)

func toPBJob(j *entity.Job) *jobmarketpb.Job {
	return &jobmarketpb.Job{
		Id:          j.ID,
		Employer:    j.Employer,
		Employee:    j.Employee,
		Payment:     j.Payment,
		Status:      string(j.Status),
		Description: j.Description,
		Deadline:    j.Deadline.UTC().Format(time.RFC3339),
		WorkResult:  j.WorkResult,
		CreatedAt:   j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toPBRating(r *entity.Rating) *jobmarketpb.Rating {
	return &jobmarketpb.Rating{
		JobId:       r.JobID,
		RatedPerson: r.RatedPerson,
		Rater:       r.Rater,
		Score:       int32(r.Score),
		Role:        string(r.Role),
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toPBReview(rv *entity.Review) *jobmarketpb.Review {
	return &jobmarketpb.Review{
		JobId:     rv.JobID,
		Score:     int32(rv.Score),
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt.UTC().Format(time.RFC3339),
	}
}
