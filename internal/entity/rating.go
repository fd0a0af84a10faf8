package entity

import (
	"time"

	"github.com/openlabor/jobmarket/constants"
)

// Rating represents a permanent cross-rating of one party of a completed job.
// Seq is the global insertion position, assigned by the ledger.
type Rating struct {
	Seq         int64          `json:"seq"`
	JobID       int64          `json:"job_id"`
	RatedPerson string         `json:"rated_person"`
	Rater       string         `json:"rater"`
	Score       int            `json:"score"`
	Role        constants.Role `json:"role"`
	Comment     string         `json:"comment,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Positive reports the derived polarity; it is never stored.
func (r *Rating) Positive() bool {
	return constants.IsPositiveScore(r.Score)
}
