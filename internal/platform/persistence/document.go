// Package persistence provides the document store backing the account
// ledger. The whole wallet state is a single JSON document; implementations
// only load and save it, atomicity across the document's parts is the account
// store's job.
package persistence

import (
	"context"
	"strconv"
	"time"

	"github.com/geepay-ngn/wallet/internal/domain/account"
	"github.com/geepay-ngn/wallet/internal/domain/bank"
	"github.com/geepay-ngn/wallet/internal/domain/ledger"
	"github.com/geepay-ngn/wallet/internal/domain/notification"
)

// Meta records how and when a document snapshot was written. Useful for
// format upgrades and debugging.
type Meta struct {
	Storage   string    `json:"storage" bson:"storage"`
	Version   int       `json:"version" bson:"version"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// DocumentVersion is the current document format version.
const DocumentVersion = 1

// Document is the complete wallet state: the singleton account, the
// append-only transaction and notification logs (newest first), the cached
// bank directory, and the sequence counter for record ids.
type Document struct {
	Meta          Meta                  `json:"_meta" bson:"_meta"`
	NextSeq       int64                 `json:"next_seq" bson:"next_seq"`
	Account       account.Account       `json:"account" bson:"account"`
	Transactions  []ledger.Record       `json:"transactions" bson:"transactions"`
	Notifications []notification.Record `json:"notifications" bson:"notifications"`
	Banks         []bank.DirectoryEntry `json:"banks" bson:"banks"`
}

// Clone returns a deep copy of the document. Mutations are applied to a clone
// and only published once the save succeeds.
func (d *Document) Clone() *Document {
	out := *d
	out.Transactions = make([]ledger.Record, len(d.Transactions))
	copy(out.Transactions, d.Transactions)
	out.Notifications = make([]notification.Record, len(d.Notifications))
	copy(out.Notifications, d.Notifications)
	out.Banks = make([]bank.DirectoryEntry, len(d.Banks))
	copy(out.Banks, d.Banks)
	return &out
}

// NextID assigns the next monotonic record id and advances the sequence.
func (d *Document) NextID() string {
	id := d.NextSeq
	d.NextSeq++
	return strconv.FormatInt(id, 10)
}

// Store is the persistence substrate contract. Load returns ErrNotExist when
// no document has been written yet; a failed Save must leave any previously
// saved document intact. Save never mutates the document it is given.
type Store interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}
