// Package service defines the handler-facing interfaces over the wallet
// core. The account store and the transfer gateway satisfy them directly;
// handlers depend on these interfaces so tests can substitute mocks.
package service

import (
	"context"

	"github.com/geepay-ngn/wallet/internal/data/store"
	"github.com/geepay-ngn/wallet/internal/domain/account"
	"github.com/geepay-ngn/wallet/internal/domain/bank"
	"github.com/geepay-ngn/wallet/internal/domain/ledger"
	"github.com/geepay-ngn/wallet/internal/domain/notification"
	"github.com/geepay-ngn/wallet/internal/transfer"
)

// AccountService exposes account, transaction-log, notification, and bank
// directory reads plus the notification read-flag mutation.
type AccountService interface {
	// GetAccount returns a snapshot of the account
	GetAccount() account.Account

	// ListTransactions returns transactions newest first; limit <= 0 means all
	ListTransactions(limit, offset int) []ledger.Record

	// CountTransactions returns the total transaction log length
	CountTransactions() int

	// ListNotifications returns notifications newest first
	ListNotifications() []notification.Record

	// UnreadCount returns the number of unread notifications
	UnreadCount() int

	// MarkNotificationRead flips a notification to read; idempotent.
	// Returns notification.ErrNotFound for unknown ids
	MarkNotificationRead(ctx context.Context, id string) error

	// ListBanks returns the cached bank directory
	ListBanks() []bank.DirectoryEntry
}

// TransferService validates and commits transfers.
type TransferService interface {
	// ResolveRecipient maps account number + bank code to the registered
	// account holder. Fails closed with transfer.ValidationError
	ResolveRecipient(ctx context.Context, accountNumber, bankCode string) (*transfer.ResolvedIdentity, error)

	// InitiateExternalTransfer debits the wallet for an outbound transfer.
	// Surfaces account.ErrInsufficientFunds and account.ErrInvalidAmount
	// unchanged
	InitiateExternalTransfer(ctx context.Context, amount int64, accountNumber, bankCode, resolvedName, description string) (*ledger.Record, error)

	// RecordIncoming credits the wallet for money received
	RecordIncoming(ctx context.Context, amount int64, senderName, description string) (*ledger.Record, error)
}

var (
	_ AccountService  = (*store.AccountStore)(nil)
	_ TransferService = (*transfer.Gateway)(nil)
)
