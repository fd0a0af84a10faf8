package entity

import (
	"time"

	"github.com/openlabor/jobmarket/constants"
)

// Job represents a job record for data transfer between layers. IDs are
// sequential and assigned by the ledger at creation; they are never reused.
type Job struct {
	ID          int64               `json:"id"`
	Employer    string              `json:"employer"`
	Employee    string              `json:"employee,omitempty"`
	Payment     int64               `json:"payment"`
	Status      constants.JobStatus `json:"status"`
	Description string              `json:"description"`
	Deadline    time.Time           `json:"deadline"`
	WorkResult  string              `json:"work_result,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Clone returns a copy safe to hand outside the ledger.
func (j *Job) Clone() *Job {
	cp := *j
	return &cp
}
