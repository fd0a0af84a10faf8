package ledger

import (
	"log/slog"
	"sync"
	"time"

	"github.com/openlabor/jobmarket/internal/entity"
)

// Ledger is the authoritative marketplace state: the job lifecycle, escrow
// account, application registry and both rating/review ledgers. Every exposed
// operation runs to completion under one lock, so effects never interleave;
// each state change is journaled before it is applied in memory.
type Ledger struct {
	mu      sync.RWMutex
	jobs    []*entity.Job
	apps    *applicationRegistry
	escrow  *escrowAccount
	ratings *ratingLedger
	reviews *reviewLedger
	journal Journal
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates an empty ledger. A nil journal keeps all state in memory only.
func New(journal Journal, logger *slog.Logger, opts ...Option) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Ledger{
		apps:    newApplicationRegistry(),
		escrow:  newEscrowAccount(),
		ratings: newRatingLedger(),
		reviews: newReviewLedger(),
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Restore rebuilds the in-memory state from a journal snapshot. Jobs must be
// ordered by id and every slice by insertion sequence.
func (l *Ledger) Restore(snap *Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jobs = make([]*entity.Job, 0, len(snap.Jobs))
	for _, j := range snap.Jobs {
		l.jobs = append(l.jobs, j.Clone())
	}
	l.apps = newApplicationRegistry()
	for _, a := range snap.Applications {
		l.apps.add(a.JobID, a.Applicant)
	}
	l.escrow = newEscrowAccount()
	for _, e := range snap.Entries {
		l.escrow.apply(e)
	}
	l.ratings = newRatingLedger()
	for _, r := range snap.Ratings {
		cp := *r
		l.ratings.restore(&cp)
	}
	l.reviews = newReviewLedger()
	for _, rv := range snap.Reviews {
		cp := *rv
		l.reviews.restore(&cp)
	}

	l.logger.Info("ledger restored",
		"jobs", len(snap.Jobs),
		"applications", len(snap.Applications),
		"ratings", len(snap.Ratings),
		"reviews", len(snap.Reviews),
		"entries", len(snap.Entries),
	)
}
