package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusOpen          JobStatus = "OPEN"           // accepting applications
	JobStatusInProgress    JobStatus = "IN_PROGRESS"    // employee assigned, work underway
	JobStatusWaitingReview JobStatus = "WAITING_REVIEW" // work submitted, employer reviewing
	JobStatusCompleted     JobStatus = "COMPLETED"      // terminal: payment released
	JobStatusCancelled     JobStatus = "CANCELLED"      // reserved: no operation produces it yet
)

// transitions is the single legal path through the lifecycle. Cancelled is
// deliberately absent until refund semantics are settled.
var transitions = map[JobStatus]JobStatus{
	JobStatusOpen:          JobStatusInProgress,
	JobStatusInProgress:    JobStatusWaitingReview,
	JobStatusWaitingReview: JobStatusCompleted,
}

// CanTransition reports whether from -> to is a legal lifecycle step.
func CanTransition(from, to JobStatus) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(s JobStatus) bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// JobStatuses returns every stable status string, for schema validation.
func JobStatuses() []string {
	return []string{
		string(JobStatusOpen),
		string(JobStatusInProgress),
		string(JobStatusWaitingReview),
		string(JobStatusCompleted),
		string(JobStatusCancelled),
	}
}
