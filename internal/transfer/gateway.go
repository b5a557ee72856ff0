// Package transfer implements the transfer gateway: it validates a transfer
// request, sequences the identity-resolution step, and commits through the
// account store. Nothing is retried automatically; a failed request must be
// resubmitted fresh.
package transfer

import (
	"context"
	"log/slog"

	"github.com/geepay-ngn/wallet/internal/data/store"
	"github.com/geepay-ngn/wallet/internal/domain/ledger"
)

// ResolvedIdentity is the registered owner of an external account, as
// reported by the resolution service.
type ResolvedIdentity struct {
	AccountName string
	BankName    string
}

// Resolver is the external bank identity-resolution collaborator. A failed
// or timed-out resolution must surface as ValidationError, never as an
// invented identity.
type Resolver interface {
	Resolve(ctx context.Context, accountNumber, bankCode string) (*ResolvedIdentity, error)
}

// Policy holds the transfer policy constants.
type Policy struct {
	MinimumAmount       int64 // Minor units
	AccountNumberLength int
}

// Gateway validates and commits transfers against the account store.
type Gateway struct {
	accounts *store.AccountStore
	resolver Resolver
	policy   Policy
	logger   *slog.Logger
}

// NewGateway creates a transfer gateway
func NewGateway(logger *slog.Logger, accounts *store.AccountStore, resolver Resolver, policy Policy) *Gateway {
	return &Gateway{
		accounts: accounts,
		resolver: resolver,
		policy:   policy,
		logger:   logger,
	}
}

// ResolveRecipient maps an account number and bank code to the registered
// account holder via the external collaborator. Local format checks fail
// fast before any network call.
func (g *Gateway) ResolveRecipient(ctx context.Context, accountNumber, bankCode string) (*ResolvedIdentity, error) {
	if err := g.checkAccountNumber(accountNumber); err != nil {
		return nil, err
	}
	if err := checkBankCode(bankCode); err != nil {
		return nil, err
	}

	identity, err := g.resolver.Resolve(ctx, accountNumber, bankCode)
	if err != nil {
		g.logger.Warn("recipient resolution failed",
			"account_number", accountNumber,
			"bank_code", bankCode,
			"error", err,
		)
		return nil, err
	}

	g.logger.Info("recipient resolved",
		"account_number", accountNumber,
		"bank_code", bankCode,
		"account_name", identity.AccountName,
	)
	return identity, nil
}

// InitiateExternalTransfer debits the wallet for a transfer to an external
// account. The recipient name must already be resolved; the gateway never
// substitutes one. Account store errors surface unchanged.
func (g *Gateway) InitiateExternalTransfer(ctx context.Context, amount int64, accountNumber, bankCode, resolvedName, description string) (*ledger.Record, error) {
	if amount < g.policy.MinimumAmount {
		return nil, ValidationError{Reason: ReasonBelowMinimum,
			Message: "amount is below the minimum transfer amount"}
	}
	if resolvedName == "" {
		return nil, ValidationError{Reason: ReasonEmptyRecipient,
			Message: "recipient name must be resolved before transfer"}
	}
	if err := g.checkAccountNumber(accountNumber); err != nil {
		return nil, err
	}
	if err := checkBankCode(bankCode); err != nil {
		return nil, err
	}

	bankName := bankCode
	if b, ok := g.accounts.FindBank(bankCode); ok {
		bankName = b.Name
	}

	rec, err := g.accounts.ApplyDebit(ctx, ledger.DirectionTransferOut, store.MutationParams{
		Amount:           amount,
		Counterparty:     resolvedName,
		CounterpartyAcct: accountNumber,
		CounterpartyBank: bankName,
		Description:      description,
	})
	if err != nil {
		return nil, err
	}

	g.logger.Info("external transfer committed",
		"transaction_id", rec.ID,
		"amount", amount,
		"recipient", resolvedName,
		"bank", bankName,
	)
	return rec, nil
}

// RecordIncoming credits the wallet for money received from an external
// sender.
func (g *Gateway) RecordIncoming(ctx context.Context, amount int64, senderName, description string) (*ledger.Record, error) {
	return g.accounts.ApplyCredit(ctx, ledger.DirectionTransferIn, store.MutationParams{
		Amount:       amount,
		Counterparty: senderName,
		Description:  description,
	})
}

// checkAccountNumber enforces the policy digit-length format.
func (g *Gateway) checkAccountNumber(accountNumber string) error {
	if len(accountNumber) != g.policy.AccountNumberLength || !allDigits(accountNumber) {
		return ValidationError{Reason: ReasonInvalidAccountNum,
			Message: "account number must be exactly the required number of digits"}
	}
	return nil
}

func checkBankCode(bankCode string) error {
	if bankCode == "" || !allDigits(bankCode) {
		return ValidationError{Reason: ReasonInvalidBankCode,
			Message: "bank code must be numeric"}
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
