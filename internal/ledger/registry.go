package ledger

// applicationRegistry is per-job bookkeeping of candidate addresses. It only
// enforces the no-duplicate invariant; callers enforce policy.
type applicationRegistry struct {
	byJob map[int64][]string
}

func newApplicationRegistry() *applicationRegistry {
	return &applicationRegistry{byJob: make(map[int64][]string)}
}

func (r *applicationRegistry) contains(jobID int64, addr string) bool {
	for _, a := range r.byJob[jobID] {
		if a == addr {
			return true
		}
	}
	return false
}

func (r *applicationRegistry) add(jobID int64, addr string) {
	r.byJob[jobID] = append(r.byJob[jobID], addr)
}

func (r *applicationRegistry) list(jobID int64) []string {
	apps := r.byJob[jobID]
	out := make([]string, len(apps))
	copy(out, apps)
	return out
}
