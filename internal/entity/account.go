package entity

import (
	"time"

	"github.com/openlabor/jobmarket/constants"
)

// LedgerEntry is one append-only money movement. Balances are never stored
// authoritatively; they are the fold of all entries in Seq order.
type LedgerEntry struct {
	Seq          int64               `json:"seq"`
	Type         constants.EntryType `json:"type"`
	Account      string              `json:"account"`
	JobID        *int64              `json:"job_id,omitempty"`
	Amount       int64               `json:"amount"`
	BalanceAfter int64               `json:"balance_after"`
	CreatedAt    time.Time           `json:"created_at"`
}
