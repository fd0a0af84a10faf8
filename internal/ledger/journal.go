package ledger

import (
	"context"

	"github.com/openlabor/jobmarket/internal/entity"
)

// Journal receives every state change before it is applied in memory, so a
// restart can replay the exact history. A nil journal runs the ledger in
// memory-only mode.
//
// Within CompleteJob the job row is journaled as Completed before the release
// entry is attempted; combined with the single-release guard this closes the
// repeated-release hazard by ordering rather than locking.
type Journal interface {
	// JobCreated records the new job row together with its escrow lock entry.
	JobCreated(ctx context.Context, job *entity.Job, lock *entity.LedgerEntry) error
	// JobUpdated records a job row after a lifecycle transition.
	JobUpdated(ctx context.Context, job *entity.Job) error
	ApplicationAdded(ctx context.Context, app *entity.Application) error
	RatingAdded(ctx context.Context, rating *entity.Rating) error
	ReviewAdded(ctx context.Context, review *entity.Review) error
	// EntryAdded records a standalone money movement (deposit or release).
	EntryAdded(ctx context.Context, e *entity.LedgerEntry) error
}

// Snapshot is the full journal contents in insertion order, used to rebuild
// the in-memory state at boot.
type Snapshot struct {
	Jobs         []*entity.Job
	Applications []*entity.Application
	Ratings      []*entity.Rating
	Reviews      []*entity.Review
	Entries      []*entity.LedgerEntry
}
