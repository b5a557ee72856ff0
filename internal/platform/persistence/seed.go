package persistence

import (
	"time"

	"github.com/geepay-ngn/wallet/internal/domain/account"
	"github.com/geepay-ngn/wallet/internal/domain/bank"
	"github.com/geepay-ngn/wallet/internal/domain/ledger"
	"github.com/geepay-ngn/wallet/internal/domain/notification"
)

// NigerianBanks is the bundled bank directory, used to seed new documents and
// as the fallback when the remote directory source is unreachable.
var NigerianBanks = []bank.DirectoryEntry{
	{Name: "Access Bank", Code: "044", Color: "#E31E24"},
	{Name: "Zenith Bank", Code: "057", Color: "#ED1C24"},
	{Name: "Guaranty Trust Bank", Code: "058", Color: "#FF6600"},
	{Name: "First Bank of Nigeria", Code: "011", Color: "#1C4B9C"},
	{Name: "United Bank for Africa", Code: "033", Color: "#D42D2A"},
	{Name: "Fidelity Bank", Code: "070", Color: "#5C2D91"},
	{Name: "Sterling Bank", Code: "232", Color: "#ED7D31"},
	{Name: "Stanbic IBTC Bank", Code: "221", Color: "#005BA4"},
	{Name: "FCMB", Code: "214", Color: "#8CC63F"},
	{Name: "Heritage Bank", Code: "030", Color: "#F57C00"},
}

// SeedDocument builds the first-run wallet document with sample data: one
// account, a short transaction history, and a welcome notification. Balances
// and amounts are in kobo.
func SeedDocument() *Document {
	now := time.Now()

	doc := &Document{
		Meta: Meta{
			Version:   DocumentVersion,
			Timestamp: now,
		},
		NextSeq: 1,
		Account: account.Account{
			ID:            "1",
			DisplayName:   "Samson Chimaraoke",
			Balance:       80065660, // ₦800,656.60
			AccountNumber: "1234567890",
			CreatedAt:     now,
		},
		Banks: append([]bank.DirectoryEntry(nil), NigerianBanks...),
	}

	// Newest first, matching the display order of the logs.
	doc.Transactions = []ledger.Record{
		{
			ID:           doc.NextID(),
			Direction:    ledger.DirectionTransferOut,
			Amount:       2500000,
			Counterparty: "John Doe",
			Description:  "Transfer to John Doe",
			Status:       ledger.StatusCompleted,
			CreatedAt:    now,
		},
		{
			ID:           doc.NextID(),
			Direction:    ledger.DirectionDebit,
			Amount:       1500000,
			Counterparty: "ATM",
			Description:  "ATM Withdrawal",
			Status:       ledger.StatusCompleted,
			CreatedAt:    now.Add(-24 * time.Hour),
		},
		{
			ID:           doc.NextID(),
			Direction:    ledger.DirectionCredit,
			Amount:       5000000,
			Counterparty: "Employer",
			Description:  "Salary Payment",
			Status:       ledger.StatusCompleted,
			CreatedAt:    now.Add(-48 * time.Hour),
		},
	}

	doc.Notifications = []notification.Record{
		{
			ID:        doc.NextID(),
			Title:     "Welcome to GeePay NGN!",
			Message:   "Your account has been created successfully.",
			Read:      false,
			CreatedAt: now,
		},
		{
			ID:        doc.NextID(),
			Title:     "Transaction Alert",
			Message:   "You received ₦50,000.00 salary payment.",
			Read:      false,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}

	return doc
}
