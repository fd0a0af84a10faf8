package ledger

import (
	"fmt"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/entity"
)

// escrowAccount holds account balances and the funds escrowed per job. Funds
// enter a job exactly once at creation and leave exactly once at completion;
// the released set guards against a second release even under retried calls.
type escrowAccount struct {
	balances map[string]int64
	held     map[int64]int64
	released map[int64]bool
	seq      int64
}

func newEscrowAccount() *escrowAccount {
	return &escrowAccount{
		balances: make(map[string]int64),
		held:     make(map[int64]int64),
		released: make(map[int64]bool),
	}
}

func (e *escrowAccount) balance(addr string) int64 {
	return e.balances[addr]
}

func (e *escrowAccount) heldFor(jobID int64) int64 {
	return e.held[jobID]
}

// depositEntry builds the entry for an external funding credit. apply commits it.
func (e *escrowAccount) depositEntry(addr string, amount int64) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		Seq:          e.seq,
		Type:         constants.EntryDeposit,
		Account:      addr,
		Amount:       amount,
		BalanceAfter: e.balances[addr] + amount,
	}
}

// lockEntry builds the escrow debit for a new job. Fails when the employer
// cannot cover the payment.
func (e *escrowAccount) lockEntry(jobID int64, employer string, amount int64) (*entity.LedgerEntry, error) {
	if e.balances[employer] < amount {
		return nil, fmt.Errorf("account %s holds %d, payment is %d: %w",
			employer, e.balances[employer], amount, common.ErrInvalidArgument)
	}
	id := jobID
	return &entity.LedgerEntry{
		Seq:          e.seq,
		Type:         constants.EntryEscrowLock,
		Account:      employer,
		JobID:        &id,
		Amount:       -amount,
		BalanceAfter: e.balances[employer] - amount,
	}, nil
}

// releaseEntry builds the payout credit for a completed job. The guard trips
// on a second call for the same job id.
func (e *escrowAccount) releaseEntry(jobID int64, recipient string) (*entity.LedgerEntry, error) {
	if e.released[jobID] {
		return nil, fmt.Errorf("escrow for job %d already released: %w", jobID, common.ErrInvalidState)
	}
	amount, ok := e.held[jobID]
	if !ok || amount <= 0 {
		return nil, fmt.Errorf("no escrow held for job %d: %w", jobID, common.ErrNotFound)
	}
	id := jobID
	return &entity.LedgerEntry{
		Seq:          e.seq,
		Type:         constants.EntryEscrowRelease,
		Account:      recipient,
		JobID:        &id,
		Amount:       amount,
		BalanceAfter: e.balances[recipient] + amount,
	}, nil
}

// apply commits a previously built entry to the in-memory balances.
func (e *escrowAccount) apply(entry *entity.LedgerEntry) {
	switch entry.Type {
	case constants.EntryDeposit:
		e.balances[entry.Account] += entry.Amount
	case constants.EntryEscrowLock:
		e.balances[entry.Account] += entry.Amount // amount is negative
		e.held[*entry.JobID] = -entry.Amount
	case constants.EntryEscrowRelease:
		e.balances[entry.Account] += entry.Amount
		e.released[*entry.JobID] = true
		delete(e.held, *entry.JobID)
	}
	if entry.Seq >= e.seq {
		e.seq = entry.Seq + 1
	}
}
