package ledger

import (
	"context"
	"fmt"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/entity"
)

// ratingLedger is the append-only store of cross-ratings keyed by rated
// address. There are no update or delete operations by construction.
type ratingLedger struct {
	byAddr map[string][]*entity.Rating
	seq    int64
}

func newRatingLedger() *ratingLedger {
	return &ratingLedger{byAddr: make(map[string][]*entity.Rating)}
}

func (r *ratingLedger) append(rating *entity.Rating) {
	rating.Seq = r.seq
	r.seq++
	r.byAddr[rating.RatedPerson] = append(r.byAddr[rating.RatedPerson], rating)
}

func (r *ratingLedger) restore(rating *entity.Rating) {
	r.byAddr[rating.RatedPerson] = append(r.byAddr[rating.RatedPerson], rating)
	if rating.Seq >= r.seq {
		r.seq = rating.Seq + 1
	}
}

func (r *ratingLedger) list(addr string, filter constants.RatingFilter) []*entity.Rating {
	var out []*entity.Rating
	for _, rating := range r.byAddr[addr] {
		if matchesFilter(rating, filter) {
			cp := *rating
			out = append(out, &cp)
		}
	}
	return out
}

func matchesFilter(rating *entity.Rating, filter constants.RatingFilter) bool {
	switch filter {
	case constants.RatingFilterPositive:
		return rating.Positive()
	case constants.RatingFilterNegative:
		return !rating.Positive()
	default:
		return true
	}
}

// CreateRating appends a permanent rating of one party of a completed job by
// the counterpart. Exactly two pairings are legal: the employer rates the
// employee under RoleEmployee, or the employee rates the employer under
// RoleEmployer.
func (l *Ledger) CreateRating(ctx context.Context, caller string, jobID int64, ratedPerson string, score int, role constants.Role, comment string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if score < constants.MinScore || score > constants.MaxScore {
		return fmt.Errorf("score %d outside [%d,%d]: %w", score, constants.MinScore, constants.MaxScore, common.ErrInvalidArgument)
	}
	job, err := l.jobLocked(jobID)
	if err != nil {
		return err
	}
	if job.Status != constants.JobStatusCompleted {
		return fmt.Errorf("job %d is %s, ratings require %s: %w",
			jobID, job.Status, constants.JobStatusCompleted, common.ErrInvalidState)
	}

	employerRatesEmployee := caller == job.Employer && ratedPerson == job.Employee && role == constants.RoleEmployee
	employeeRatesEmployer := caller == job.Employee && ratedPerson == job.Employer && role == constants.RoleEmployer
	if !employerRatesEmployee && !employeeRatesEmployer {
		return fmt.Errorf("caller %s may not rate %s as %s on job %d: %w",
			caller, ratedPerson, role, jobID, common.ErrUnauthorized)
	}

	rating := &entity.Rating{
		Seq:         l.ratings.seq,
		JobID:       jobID,
		RatedPerson: ratedPerson,
		Rater:       caller,
		Score:       score,
		Role:        role,
		Comment:     comment,
		CreatedAt:   l.now(),
	}
	if l.journal != nil {
		if err := l.journal.RatingAdded(ctx, rating); err != nil {
			return fmt.Errorf("journal rating: %w", err)
		}
	}
	l.ratings.append(rating)

	l.logger.Info("rating recorded", "job_id", jobID, "rated", ratedPerson, "score", score, "role", role)
	return nil
}

// GetRatings returns the ratings for an address filtered by derived polarity,
// in insertion order.
func (l *Ledger) GetRatings(addr string, filter constants.RatingFilter) []*entity.Rating {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ratings.list(addr, filter)
}

// GetRatingsCount returns the number of ratings matching the filter.
func (l *Ledger) GetRatingsCount(addr string, filter constants.RatingFilter) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, rating := range l.ratings.byAddr[addr] {
		if matchesFilter(rating, filter) {
			n++
		}
	}
	return n
}

// GetKarma returns positive count minus negative count for an address. It is
// a polarity tally, not a weighted average.
func (l *Ledger) GetKarma(addr string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var karma int64
	for _, rating := range l.ratings.byAddr[addr] {
		if rating.Positive() {
			karma++
		} else {
			karma--
		}
	}
	return karma
}
