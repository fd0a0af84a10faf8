package ledger

import (
	"context"
	"testing"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/common"
)

func TestCreateRatingEmployerRatesEmployee(t *testing.T) {
	l := newTestLedger(t)
	id := completedJob(t, l)

	err := l.CreateRating(context.Background(), employer, id, employee, 5, constants.RoleEmployee, "ref:comment")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}

	ratings := l.GetRatings(employee, constants.RatingFilterBoth)
	if len(ratings) != 1 {
		t.Fatalf("ratings = %d, want 1", len(ratings))
	}
	r := ratings[0]
	if r.JobID != id || r.Score != 5 || r.Role != constants.RoleEmployee || r.Comment != "ref:comment" {
		t.Fatalf("unexpected rating %+v", r)
	}
	if r.Rater != employer {
		t.Fatalf("rater = %s, want %s", r.Rater, employer)
	}
}

func TestCreateRatingEmployeeRatesEmployer(t *testing.T) {
	l := newTestLedger(t)
	id := completedJob(t, l)

	err := l.CreateRating(context.Background(), employee, id, employer, 4, constants.RoleEmployer, "ref:comment")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if n := l.GetRatingsCount(employer, constants.RatingFilterBoth); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestCreateRatingRejectsWrongPairings(t *testing.T) {
	l := newTestLedger(t)
	id := completedJob(t, l)
	ctx := context.Background()

	cases := []struct {
		name   string
		caller string
		rated  string
		role   constants.Role
	}{
		{"employee rates employer under employee role", employee, employer, constants.RoleEmployee},
		{"employer rates employee under employer role", employer, employee, constants.RoleEmployer},
		{"employer rates itself", employer, employer, constants.RoleEmployer},
		{"employee rates itself", employee, employee, constants.RoleEmployee},
		{"third party rates employee", stranger, employee, constants.RoleEmployee},
		{"employer rates third party", employer, stranger, constants.RoleEmployee},
	}
	for _, tc := range cases {
		err := l.CreateRating(ctx, tc.caller, id, tc.rated, 5, tc.role, "ref:comment")
		wantErr(t, err, common.ErrUnauthorized)
	}

	if n := l.GetRatingsCount(employer, constants.RatingFilterBoth); n != 0 {
		t.Fatalf("employer ratings = %d, want 0", n)
	}
	if n := l.GetRatingsCount(employee, constants.RatingFilterBoth); n != 0 {
		t.Fatalf("employee ratings = %d, want 0", n)
	}
}

func TestCreateRatingRequiresCompletedJob(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)

	err := l.CreateRating(context.Background(), employer, id, employee, 5, constants.RoleEmployee, "ref:comment")
	wantErr(t, err, common.ErrInvalidState)

	if n := l.GetRatingsCount(employee, constants.RatingFilterBoth); n != 0 {
		t.Fatalf("rating created for non-completed job")
	}
}

func TestCreateRatingRejectsOutOfRangeScore(t *testing.T) {
	l := newTestLedger(t)
	id := completedJob(t, l)
	ctx := context.Background()

	err := l.CreateRating(ctx, employer, id, employee, 0, constants.RoleEmployee, "ref:comment")
	wantErr(t, err, common.ErrInvalidArgument)
	err = l.CreateRating(ctx, employer, id, employee, 6, constants.RoleEmployee, "ref:comment")
	wantErr(t, err, common.ErrInvalidArgument)
}

func TestCreateRatingUnknownJob(t *testing.T) {
	l := newTestLedger(t)
	err := l.CreateRating(context.Background(), employer, 9, employee, 5, constants.RoleEmployee, "ref:comment")
	wantErr(t, err, common.ErrNotFound)
}

// Two jobs between the same parties so the employee collects one positive and
// one negative rating.
func rateTwice(t *testing.T, l *Ledger) {
	t.Helper()
	ctx := context.Background()

	first := completedJob(t, l)
	second := completedJob(t, l)
	if err := l.CreateRating(ctx, employer, first, employee, 5, constants.RoleEmployee, "ref:good"); err != nil {
		t.Fatalf("positive rating: %v", err)
	}
	if err := l.CreateRating(ctx, employer, second, employee, 2, constants.RoleEmployee, "ref:bad"); err != nil {
		t.Fatalf("negative rating: %v", err)
	}
}

func TestGetRatingsFiltersByPolarity(t *testing.T) {
	l := newTestLedger(t)
	rateTwice(t, l)

	pos := l.GetRatings(employee, constants.RatingFilterPositive)
	if len(pos) != 1 || pos[0].Score != 5 {
		t.Fatalf("positive = %+v, want the score-5 rating", pos)
	}
	neg := l.GetRatings(employee, constants.RatingFilterNegative)
	if len(neg) != 1 || neg[0].Score != 2 {
		t.Fatalf("negative = %+v, want the score-2 rating", neg)
	}

	both := l.GetRatings(employee, constants.RatingFilterBoth)
	if len(both) != 2 {
		t.Fatalf("both = %d ratings, want 2", len(both))
	}
	// Insertion order is preserved.
	if both[0].Score != 5 || both[1].Score != 2 {
		t.Fatalf("ratings out of insertion order: %+v", both)
	}
}

func TestScoreThreeIsPositive(t *testing.T) {
	l := newTestLedger(t)
	id := completedJob(t, l)

	if err := l.CreateRating(context.Background(), employer, id, employee, 3, constants.RoleEmployee, "ref:ok"); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if n := l.GetRatingsCount(employee, constants.RatingFilterPositive); n != 1 {
		t.Fatalf("score 3 not counted as positive")
	}
	if n := l.GetRatingsCount(employee, constants.RatingFilterNegative); n != 0 {
		t.Fatalf("score 3 counted as negative")
	}
}

func TestGetRatingsCount(t *testing.T) {
	l := newTestLedger(t)
	rateTwice(t, l)

	if n := l.GetRatingsCount(employee, constants.RatingFilterPositive); n != 1 {
		t.Fatalf("positive count = %d, want 1", n)
	}
	if n := l.GetRatingsCount(employee, constants.RatingFilterNegative); n != 1 {
		t.Fatalf("negative count = %d, want 1", n)
	}
	if n := l.GetRatingsCount(employee, constants.RatingFilterBoth); n != 2 {
		t.Fatalf("both count = %d, want 2", n)
	}
	if n := l.GetRatingsCount(stranger, constants.RatingFilterBoth); n != 0 {
		t.Fatalf("stranger count = %d, want 0", n)
	}
}

func TestGetKarmaTallies(t *testing.T) {
	l := newTestLedger(t)

	id := completedJob(t, l)
	if err := l.CreateRating(context.Background(), employer, id, employee, 1, constants.RoleEmployee, "ref:bad"); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if karma := l.GetKarma(employee); karma != -1 {
		t.Fatalf("karma = %d, want -1", karma)
	}

	rateTwice(t, l) // +1 and -1 cancel out
	if karma := l.GetKarma(employee); karma != -1 {
		t.Fatalf("karma = %d, want -1", karma)
	}
	if karma := l.GetKarma(stranger); karma != 0 {
		t.Fatalf("unrated karma = %d, want 0", karma)
	}
}
