package constants

// EntryType is the canonical entry_type for rows in ledger_entries.
type EntryType string

// Stable values (store these exact strings in DB).
const (
	EntryDeposit       EntryType = "DEPOSIT"        // external funding credited to an account
	EntryEscrowLock    EntryType = "ESCROW_LOCK"    // payment debited from the employer at job creation
	EntryEscrowRelease EntryType = "ESCROW_RELEASE" // payment credited to the employee at completion
)

func EntryTypes() []string {
	return []string{
		string(EntryDeposit),
		string(EntryEscrowLock),
		string(EntryEscrowRelease),
	}
}
