// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// LedgerEntry is the predicate function for ledgerentry builders.
type LedgerEntry func(*sql.Selector)

// Rating is the predicate function for rating builders.
type Rating func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)
