// Package resolver implements the HTTP client for the external bank
// identity-resolution service. Transport failures, non-2xx statuses, and
// malformed bodies all map to typed validation errors; the client never
// fabricates an account name.
package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/geepay-ngn/wallet/internal/config"
	"github.com/geepay-ngn/wallet/internal/transfer"
)

// Client resolves account numbers against a Flutterwave-style
// /accounts/resolve endpoint.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a resolver client from config. The configured timeout
// bounds every resolution call; expiry surfaces as reason "unreachable".
func NewClient(logger *slog.Logger, cfg *config.ResolverConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type resolveRequest struct {
	AccountNumber string `json:"account_number"`
	AccountBank   string `json:"account_bank"`
}

type resolveResponse struct {
	Status string `json:"status"`
	Data   struct {
		AccountName string `json:"account_name"`
		BankName    string `json:"bank_name"`
	} `json:"data"`
}

// Resolve calls the resolution service and returns the registered identity.
func (c *Client) Resolve(ctx context.Context, accountNumber, bankCode string) (*transfer.ResolvedIdentity, error) {
	body, err := json.Marshal(resolveRequest{
		AccountNumber: accountNumber,
		AccountBank:   bankCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode resolve request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/accounts/resolve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build resolve request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		c.logger.Warn("resolution service unreachable", "error", err)
		return nil, transfer.ValidationError{Reason: transfer.ReasonUnreachable,
			Message: "resolution service unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, transfer.ValidationError{Reason: transfer.ReasonNotFound,
			Message: "account could not be resolved"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("resolution service returned error status", "status", resp.StatusCode)
		return nil, transfer.ValidationError{Reason: transfer.ReasonInvalidResponse,
			Message: fmt.Sprintf("resolution service returned status %d", resp.StatusCode)}
	}

	var decoded resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, transfer.ValidationError{Reason: transfer.ReasonInvalidResponse,
			Message: "resolution service returned a malformed body"}
	}

	if decoded.Status != "success" || decoded.Data.AccountName == "" {
		return nil, transfer.ValidationError{Reason: transfer.ReasonNotFound,
			Message: "account could not be resolved"}
	}

	return &transfer.ResolvedIdentity{
		AccountName: decoded.Data.AccountName,
		BankName:    decoded.Data.BankName,
	}, nil
}

var _ transfer.Resolver = (*Client)(nil)
