package entity

import "time"

// Application records one address expressing interest in a job. Position is
// the 0-based slot in the per-job list; existence does not imply selection.
type Application struct {
	JobID     int64     `json:"job_id"`
	Applicant string    `json:"applicant"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
