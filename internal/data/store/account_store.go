// Package store implements the account store: the sole owner of the wallet
// balance and the append-only transaction and notification logs. Every
// mutation is copy-mutate-save-swap over the persistence substrate, so a
// failed save leaves the published state untouched and readers never observe
// a partial write.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/geepay-ngn/wallet/internal/domain/account"
	"github.com/geepay-ngn/wallet/internal/domain/bank"
	"github.com/geepay-ngn/wallet/internal/domain/ledger"
	"github.com/geepay-ngn/wallet/internal/domain/notification"
	"github.com/geepay-ngn/wallet/internal/money"
	"github.com/geepay-ngn/wallet/internal/platform/persistence"
)

// MutationParams carries the caller-supplied fields of a debit or credit.
type MutationParams struct {
	Amount           int64 // Minor units, must be positive
	Counterparty     string
	CounterpartyAcct string
	CounterpartyBank string
	Description      string
}

// AccountStore guards the wallet document. Writes are serialized by a single
// mutex so two debits can never both observe the same stale balance; reads
// return copies of a consistent snapshot.
type AccountStore struct {
	mu      sync.RWMutex
	doc     *persistence.Document
	backend persistence.Store
	logger  *slog.Logger
}

// Open loads the wallet document from the backend, seeding sample data on
// first run when seed is true.
func Open(ctx context.Context, logger *slog.Logger, backend persistence.Store, seed bool) (*AccountStore, error) {
	doc, err := backend.Load(ctx)
	if err != nil {
		if !errors.Is(err, persistence.ErrNotExist) {
			return nil, err
		}
		if !seed {
			return nil, persistence.ErrNotExist
		}
		doc = persistence.SeedDocument()
		if err := backend.Save(ctx, doc); err != nil {
			return nil, err
		}
		logger.Info("seeded new wallet document",
			"account", doc.Account.AccountNumber,
			"balance", doc.Account.Balance,
		)
	}

	return &AccountStore{
		doc:     doc,
		backend: backend,
		logger:  logger,
	}, nil
}

// GetAccount returns a snapshot of the account. No side effects.
func (s *AccountStore) GetAccount() account.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Account
}

// ApplyDebit atomically decrements the balance and appends one transaction
// record plus one linked notification. A debit exceeding the balance fails
// with account.ErrInsufficientFunds and mutates nothing; a non-positive
// amount fails with account.ErrInvalidAmount.
func (s *AccountStore) ApplyDebit(ctx context.Context, direction ledger.Direction, p MutationParams) (*ledger.Record, error) {
	if direction != ledger.DirectionDebit && direction != ledger.DirectionTransferOut {
		return nil, fmt.Errorf("direction %q is not a debit direction", direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := next.Account.Debit(p.Amount); err != nil {
		return nil, err
	}

	rec := s.appendRecords(next, direction, p,
		"Transfer Successful",
		fmt.Sprintf("%s sent to %s", money.FormatNaira(p.Amount), p.Counterparty),
	)

	if err := s.backend.Save(ctx, next); err != nil {
		// Published document untouched, the mutation simply never happened.
		return nil, err
	}
	s.doc = next

	s.logger.Info("debit applied",
		"transaction_id", rec.ID,
		"amount", p.Amount,
		"counterparty", p.Counterparty,
		"balance", next.Account.Balance,
	)
	return &rec, nil
}

// ApplyCredit atomically increments the balance and appends one transaction
// record plus one linked notification. A non-positive amount fails with
// account.ErrInvalidAmount.
func (s *AccountStore) ApplyCredit(ctx context.Context, direction ledger.Direction, p MutationParams) (*ledger.Record, error) {
	if direction != ledger.DirectionCredit && direction != ledger.DirectionTransferIn {
		return nil, fmt.Errorf("direction %q is not a credit direction", direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := next.Account.Credit(p.Amount); err != nil {
		return nil, err
	}

	rec := s.appendRecords(next, direction, p,
		"Money Received",
		fmt.Sprintf("%s received from %s", money.FormatNaira(p.Amount), p.Counterparty),
	)

	if err := s.backend.Save(ctx, next); err != nil {
		return nil, err
	}
	s.doc = next

	s.logger.Info("credit applied",
		"transaction_id", rec.ID,
		"amount", p.Amount,
		"counterparty", p.Counterparty,
		"balance", next.Account.Balance,
	)
	return &rec, nil
}

// appendRecords prepends the transaction record and its linked notification
// to the cloned document, returning the record by value so callers never
// hold a pointer into the published log. Caller holds the write lock.
func (s *AccountStore) appendRecords(next *persistence.Document, direction ledger.Direction, p MutationParams, title, message string) ledger.Record {
	now := time.Now()

	rec := ledger.Record{
		ID:               next.NextID(),
		Direction:        direction,
		Amount:           p.Amount,
		Counterparty:     p.Counterparty,
		CounterpartyAcct: p.CounterpartyAcct,
		CounterpartyBank: p.CounterpartyBank,
		Description:      p.Description,
		Status:           ledger.StatusCompleted,
		CreatedAt:        now,
	}
	next.Transactions = append([]ledger.Record{rec}, next.Transactions...)

	note := notification.Record{
		ID:            next.NextID(),
		Title:         title,
		Message:       message,
		TransactionID: rec.ID,
		Read:          false,
		CreatedAt:     now,
	}
	next.Notifications = append([]notification.Record{note}, next.Notifications...)

	return rec
}

// ListTransactions returns transactions newest first. Pagination is stable:
// repeated calls see no duplicates or gaps unless a write lands in between.
// limit <= 0 means no limit.
func (s *AccountStore) ListTransactions(limit, offset int) []ledger.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.doc.Transactions) {
		return []ledger.Record{}
	}

	end := len(s.doc.Transactions)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]ledger.Record, end-offset)
	copy(out, s.doc.Transactions[offset:end])
	return out
}

// CountTransactions returns the total length of the transaction log.
func (s *AccountStore) CountTransactions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.doc.Transactions)
}

// ListNotifications returns all notifications newest first.
func (s *AccountStore) ListNotifications() []notification.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]notification.Record, len(s.doc.Notifications))
	copy(out, s.doc.Notifications)
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *AccountStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.doc.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationRead flips a notification's read flag. Idempotent: marking
// an already-read notification succeeds without rewriting the document.
// Unknown ids fail with notification.ErrNotFound.
func (s *AccountStore) MarkNotificationRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, n := range s.doc.Notifications {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return notification.ErrNotFound{ID: id}
	}
	if s.doc.Notifications[idx].Read {
		return nil
	}

	next := s.doc.Clone()
	next.Notifications[idx].Read = true

	if err := s.backend.Save(ctx, next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

// ListBanks returns the cached bank directory.
func (s *AccountStore) ListBanks() []bank.DirectoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]bank.DirectoryEntry, len(s.doc.Banks))
	copy(out, s.doc.Banks)
	return out
}

// FindBank looks a bank up by code. The second return reports whether it was
// found.
func (s *AccountStore) FindBank(code string) (bank.DirectoryEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.doc.Banks {
		if b.Code == code {
			return b, true
		}
	}
	return bank.DirectoryEntry{}, false
}

// ReplaceBanks swaps in a freshly fetched bank directory and persists it as
// the new last-known-good set.
func (s *AccountStore) ReplaceBanks(ctx context.Context, banks []bank.DirectoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	next.Banks = make([]bank.DirectoryEntry, len(banks))
	copy(next.Banks, banks)

	if err := s.backend.Save(ctx, next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

// Reset discards all state and reseeds the sample document. Used by the
// admin CLI and tests.
func (s *AccountStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := persistence.SeedDocument()
	if err := s.backend.Save(ctx, next); err != nil {
		return err
	}
	s.doc = next
	s.logger.Info("wallet document reset to sample data")
	return nil
}
