package ledger

import (
	"context"
	"fmt"

	"github.com/openlabor/jobmarket/internal/common"
)

// Deposit credits an account with external funds. Employers must hold a
// balance before they can escrow a payment.
func (l *Ledger) Deposit(ctx context.Context, addr string, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return 0, fmt.Errorf("deposit must be greater than zero, got %d: %w", amount, common.ErrInvalidArgument)
	}

	entry := l.escrow.depositEntry(addr, amount)
	entry.CreatedAt = l.now()
	if l.journal != nil {
		if err := l.journal.EntryAdded(ctx, entry); err != nil {
			return 0, fmt.Errorf("journal deposit: %w", err)
		}
	}
	l.escrow.apply(entry)

	l.logger.Info("deposit recorded", "account", addr, "amount", amount, "balance", entry.BalanceAfter)
	return entry.BalanceAfter, nil
}

// Balance returns the spendable balance of an account. Unknown addresses
// hold zero.
func (l *Ledger) Balance(addr string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.escrow.balance(addr)
}
