package bank

import "context"

// DirectoryEntry is static reference data for a single bank. Entries are
// read-only after load.
type DirectoryEntry struct {
	Name  string `json:"name" bson:"name"`
	Code  string `json:"code" bson:"code"` // Unique key
	Color string `json:"color,omitempty" bson:"color,omitempty"`
}

// Source provides the bank directory. Implementations may fetch from a remote
// service; callers must tolerate a Source failing and fall back to a
// last-known-good cached set.
type Source interface {
	Banks(ctx context.Context) ([]DirectoryEntry, error)
}
