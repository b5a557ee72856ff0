package handler

// AccountResponse represents the account snapshot in API responses
type AccountResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Balance        int64  `json:"balance"` // Minor units
	BalanceDisplay string `json:"balance_display"`
	AccountNumber  string `json:"account_number"`
	CreatedAt      string `json:"created_at"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                  string `json:"id"`
	Direction           string `json:"direction"`
	Amount              int64  `json:"amount"` // Minor units
	AmountDisplay       string `json:"amount_display"`
	Counterparty        string `json:"counterparty"`
	CounterpartyAccount string `json:"counterparty_account,omitempty"`
	CounterpartyBank    string `json:"counterparty_bank,omitempty"`
	Description         string `json:"description"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at"`
}

// TransactionListResponse represents a list of transactions in API responses
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
	Read          bool   `json:"read"`
	CreatedAt     string `json:"created_at"`
}

// UnreadCountResponse carries the unread notification badge count
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

// BankResponse represents a bank directory entry in API responses
type BankResponse struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Color string `json:"color,omitempty"`
}

// ResolveRecipientRequest asks the resolution service who owns an account
type ResolveRecipientRequest struct {
	AccountNumber string `json:"account_number" binding:"required"`
	BankCode      string `json:"bank_code" binding:"required"`
}

// ResolveRecipientResponse is the registered identity of the account holder
type ResolveRecipientResponse struct {
	AccountName string `json:"account_name"`
	BankName    string `json:"bank_name"`
}

// CreateTransferRequest represents an outbound transfer. Amount is a decimal
// string ("1200.00"); it is converted to minor units before any mutation.
type CreateTransferRequest struct {
	Amount        string `json:"amount" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	BankCode      string `json:"bank_code" binding:"required"`
	RecipientName string `json:"recipient_name" binding:"required"`
	Description   string `json:"description"`
}

// RecordIncomingRequest represents an inbound credit
type RecordIncomingRequest struct {
	Amount      string `json:"amount" binding:"required"`
	SenderName  string `json:"sender_name" binding:"required"`
	Description string `json:"description"`
}

// PaginationParams represents pagination parameters for list endpoints
type PaginationParams struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=10" binding:"min=1,max=100"`
}
