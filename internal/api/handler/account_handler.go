package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/geepay-ngn/wallet/internal/api/service"
	"github.com/geepay-ngn/wallet/internal/domain/account"
	"github.com/geepay-ngn/wallet/internal/domain/ledger"
	"github.com/geepay-ngn/wallet/internal/money"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for account and transaction reads
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Get returns the current account snapshot
func (h *AccountHandler) Get(c *gin.Context) {
	acc := h.accountService.GetAccount()
	RespondOK(c, mapAccountToResponse(acc))
}

// ListTransactions returns the paginated transaction log, newest first
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	var params PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.Error("Invalid pagination parameters", "error", err)
		RespondBadRequest(c, "Invalid pagination parameters: "+err.Error())
		return
	}

	offset := (params.Page - 1) * params.PerPage
	records := h.accountService.ListTransactions(params.PerPage, offset)
	total := h.accountService.CountTransactions()

	responses := make([]TransactionResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapTransactionToResponse(rec))
	}

	RespondWithPaginatedData(c, http.StatusOK, TransactionListResponse{Transactions: responses},
		params.Page, params.PerPage, total)
}

// mapAccountToResponse maps the account entity to its response DTO
func mapAccountToResponse(acc account.Account) AccountResponse {
	return AccountResponse{
		ID:             acc.ID,
		Name:           acc.DisplayName,
		Balance:        acc.Balance,
		BalanceDisplay: money.FormatMinor(acc.Balance),
		AccountNumber:  acc.AccountNumber,
		CreatedAt:      acc.CreatedAt.Format(time.RFC3339),
	}
}

// mapTransactionToResponse maps a ledger record to its response DTO
func mapTransactionToResponse(rec ledger.Record) TransactionResponse {
	return TransactionResponse{
		ID:                  rec.ID,
		Direction:           string(rec.Direction),
		Amount:              rec.Amount,
		AmountDisplay:       money.FormatMinor(rec.Amount),
		Counterparty:        rec.Counterparty,
		CounterpartyAccount: rec.CounterpartyAcct,
		CounterpartyBank:    rec.CounterpartyBank,
		Description:         rec.Description,
		Status:              string(rec.Status),
		CreatedAt:           rec.CreatedAt.Format(time.RFC3339),
	}
}
