package account

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds for debit")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrEmptyDisplayName  = errors.New("display name cannot be empty")
)

// Account represents the single wallet account. The balance is mutated only
// through the account store's debit/credit operations, never assigned by
// callers.
type Account struct {
	ID            string    `json:"id" bson:"id"`
	DisplayName   string    `json:"name" bson:"name"`
	Balance       int64     `json:"balance" bson:"balance"` // Stored in kobo/minor units
	AccountNumber string    `json:"account_number" bson:"account_number"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// NewAccount creates a new account with the given parameters
func NewAccount(id, displayName, accountNumber string, initialBalance int64) (*Account, error) {
	if displayName == "" {
		return nil, ErrEmptyDisplayName
	}
	if initialBalance < 0 {
		return nil, ErrInvalidAmount
	}

	return &Account{
		ID:            id,
		DisplayName:   displayName,
		Balance:       initialBalance,
		AccountNumber: accountNumber,
		CreatedAt:     time.Now(),
	}, nil
}

// Credit adds the specified amount to the account balance
func (a *Account) Credit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.Balance += amount
	return nil
}

// Debit subtracts the specified amount from the account balance. The balance
// never goes negative; a debit that would do so is rejected whole.
func (a *Account) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if a.Balance < amount {
		return ErrInsufficientFunds
	}

	a.Balance -= amount
	return nil
}

// CanDebit checks if the account has sufficient funds for a debit
func (a *Account) CanDebit(amount int64) bool {
	return a.Balance >= amount
}
