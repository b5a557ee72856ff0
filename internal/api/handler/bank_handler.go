package handler

import (
	"log/slog"

	"github.com/geepay-ngn/wallet/internal/domain/bank"
	"github.com/gin-gonic/gin"
)

// BankHandler handles HTTP requests for the bank directory
type BankHandler struct {
	source bank.Source
	logger *slog.Logger
}

// NewBankHandler creates a new bank handler
func NewBankHandler(logger *slog.Logger, source bank.Source) *BankHandler {
	return &BankHandler{
		source: source,
		logger: logger,
	}
}

// List returns the bank directory. The source itself falls back to the
// cached set on remote failure, so this only errors when there is no
// directory at all.
func (h *BankHandler) List(c *gin.Context) {
	banks, err := h.source.Banks(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load bank directory", "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]BankResponse, 0, len(banks))
	for _, b := range banks {
		responses = append(responses, BankResponse{Name: b.Name, Code: b.Code, Color: b.Color})
	}

	RespondOK(c, responses)
}
