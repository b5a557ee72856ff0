package ledger

import "time"

// Direction defines possible transaction directions
type Direction string

const (
	DirectionCredit      Direction = "credit"
	DirectionDebit       Direction = "debit"
	DirectionTransferOut Direction = "transfer-out"
	DirectionTransferIn  Direction = "transfer-in"
)

// Status defines transaction states. Only completed is modeled; failed
// operations never produce a record.
type Status string

const (
	StatusCompleted Status = "completed"
)

// Record is an immutable entry in the append-only transaction log.
// Corrections require a new offsetting record, never in-place edits.
type Record struct {
	ID               string    `json:"id" bson:"id"` // Monotonically assigned sequence
	Direction        Direction `json:"direction" bson:"direction"`
	Amount           int64     `json:"amount" bson:"amount"` // Stored in kobo/minor units
	Counterparty     string    `json:"counterparty" bson:"counterparty"`
	CounterpartyAcct string    `json:"counterparty_account,omitempty" bson:"counterparty_account,omitempty"`
	CounterpartyBank string    `json:"counterparty_bank,omitempty" bson:"counterparty_bank,omitempty"`
	Description      string    `json:"description" bson:"description"`
	Status           Status    `json:"status" bson:"status"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// Inbound reports whether the record increases the balance.
func (r *Record) Inbound() bool {
	return r.Direction == DirectionCredit || r.Direction == DirectionTransferIn
}
