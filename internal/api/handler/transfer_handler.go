package handler

import (
	"errors"
	"log/slog"

	"github.com/geepay-ngn/wallet/internal/api/service"
	"github.com/geepay-ngn/wallet/internal/domain/account"
	"github.com/geepay-ngn/wallet/internal/money"
	"github.com/geepay-ngn/wallet/internal/transfer"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles HTTP requests for transfer operations
type TransferHandler struct {
	transferService service.TransferService
	logger          *slog.Logger
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(logger *slog.Logger, transferService service.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		logger:          logger,
	}
}

// ResolveRecipient resolves an account number + bank code to the registered
// account holder. A failed resolution is an error response, never a guessed
// name.
func (h *TransferHandler) ResolveRecipient(c *gin.Context) {
	var req ResolveRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	identity, err := h.transferService.ResolveRecipient(c.Request.Context(), req.AccountNumber, req.BankCode)
	if err != nil {
		h.respondTransferError(c, err)
		return
	}

	RespondOK(c, ResolveRecipientResponse{
		AccountName: identity.AccountName,
		BankName:    identity.BankName,
	})
}

// Create commits an outbound transfer
func (h *TransferHandler) Create(c *gin.Context) {
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	amount, err := money.ParseMinor(req.Amount)
	if err != nil {
		RespondBadRequest(c, "Invalid amount: "+err.Error())
		return
	}

	rec, err := h.transferService.InitiateExternalTransfer(c.Request.Context(),
		amount, req.AccountNumber, req.BankCode, req.RecipientName, req.Description)
	if err != nil {
		h.respondTransferError(c, err)
		return
	}

	RespondCreated(c, mapTransactionToResponse(*rec))
}

// RecordIncoming commits an inbound credit
func (h *TransferHandler) RecordIncoming(c *gin.Context) {
	var req RecordIncomingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	amount, err := money.ParseMinor(req.Amount)
	if err != nil {
		RespondBadRequest(c, "Invalid amount: "+err.Error())
		return
	}

	rec, err := h.transferService.RecordIncoming(c.Request.Context(), amount, req.SenderName, req.Description)
	if err != nil {
		h.respondTransferError(c, err)
		return
	}

	RespondCreated(c, mapTransactionToResponse(*rec))
}

// respondTransferError maps core errors to HTTP responses
func (h *TransferHandler) respondTransferError(c *gin.Context, err error) {
	var validationErr transfer.ValidationError
	switch {
	case errors.As(err, &validationErr):
		switch validationErr.Reason {
		case transfer.ReasonUnreachable:
			RespondBadGateway(c, "Recipient resolution service is unreachable")
		case transfer.ReasonInvalidResponse:
			RespondBadGateway(c, "Recipient resolution service returned an invalid response")
		case transfer.ReasonNotFound:
			RespondNotFound(c, "Recipient account could not be resolved")
		default:
			RespondUnprocessable(c, "VALIDATION_FAILED", validationErr.Message)
		}
	case errors.Is(err, account.ErrInsufficientFunds):
		RespondUnprocessable(c, "INSUFFICIENT_FUNDS", "Balance is too low for this transfer")
	case errors.Is(err, account.ErrInvalidAmount):
		RespondBadRequest(c, "Amount must be positive")
	default:
		h.logger.Error("Transfer operation failed", "error", err)
		RespondInternalError(c)
	}
}
