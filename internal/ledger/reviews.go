package ledger

import (
	"context"
	"fmt"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/entity"
)

// reviewLedger is the append-only store of employer-authored work reviews
// keyed by job id.
type reviewLedger struct {
	byJob map[int64][]*entity.Review
	seq   int64
}

func newReviewLedger() *reviewLedger {
	return &reviewLedger{byJob: make(map[int64][]*entity.Review)}
}

func (r *reviewLedger) append(review *entity.Review) {
	review.Seq = r.seq
	r.seq++
	r.byJob[review.JobID] = append(r.byJob[review.JobID], review)
}

func (r *reviewLedger) restore(review *entity.Review) {
	r.byJob[review.JobID] = append(r.byJob[review.JobID], review)
	if review.Seq >= r.seq {
		r.seq = review.Seq + 1
	}
}

// CreateReview appends the employer's assessment of submitted work. Reviews
// are written while the job is WaitingReview, as part of deciding whether to
// release payment.
func (l *Ledger) CreateReview(ctx context.Context, caller string, jobID int64, score int, comment string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if score < constants.MinScore || score > constants.MaxScore {
		return fmt.Errorf("score %d outside [%d,%d]: %w", score, constants.MinScore, constants.MaxScore, common.ErrInvalidArgument)
	}
	job, err := l.jobLocked(jobID)
	if err != nil {
		return err
	}
	if caller != job.Employer {
		return fmt.Errorf("only the employer of job %d may review its work: %w", jobID, common.ErrUnauthorized)
	}
	if job.Status != constants.JobStatusWaitingReview {
		return fmt.Errorf("job %d is %s, reviews require %s: %w",
			jobID, job.Status, constants.JobStatusWaitingReview, common.ErrInvalidState)
	}

	review := &entity.Review{
		Seq:       l.reviews.seq,
		JobID:     jobID,
		Author:    caller,
		Score:     score,
		Comment:   comment,
		CreatedAt: l.now(),
	}
	if l.journal != nil {
		if err := l.journal.ReviewAdded(ctx, review); err != nil {
			return fmt.Errorf("journal review: %w", err)
		}
	}
	l.reviews.append(review)

	l.logger.Info("review recorded", "job_id", jobID, "score", score)
	return nil
}

// GetReviews returns the ordered reviews for a job. Only the assigned
// employee may read them; the authoring employer is rejected like any third
// party.
func (l *Ledger) GetReviews(caller string, jobID int64) ([]*entity.Review, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	job, err := l.jobLocked(jobID)
	if err != nil {
		return nil, err
	}
	if job.Employee == "" || caller != job.Employee {
		return nil, fmt.Errorf("only the employee of job %d may read its reviews: %w", jobID, common.ErrUnauthorized)
	}

	reviews := l.reviews.byJob[jobID]
	out := make([]*entity.Review, 0, len(reviews))
	for _, rv := range reviews {
		cp := *rv
		out = append(out, &cp)
	}
	return out, nil
}
