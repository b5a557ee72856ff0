package notification

import "time"

// Record is an entry in the append-only notification log. The read flag is
// the only mutable field and only ever moves false -> true.
type Record struct {
	ID            string    `json:"id" bson:"id"` // Monotonically assigned sequence
	Title         string    `json:"title" bson:"title"`
	Message       string    `json:"message" bson:"message"`
	TransactionID string    `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	Read          bool      `json:"read" bson:"read"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// ErrNotFound indicates a notification id with no matching record
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	return "notification not found: " + e.ID
}
