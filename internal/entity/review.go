package entity

import "time"

// Review represents an employer-authored assessment of submitted work,
// readable only by the employee it concerns.
type Review struct {
	Seq       int64     `json:"seq"`
	JobID     int64     `json:"job_id"`
	Author    string    `json:"author"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
