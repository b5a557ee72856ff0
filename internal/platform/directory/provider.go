// Package directory loads the bank directory from the resolution service's
// banks endpoint, falling back to the last-known-good cached set when the
// remote source fails. The directory is fetched once and cached for the
// process lifetime.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/geepay-ngn/wallet/internal/config"
	"github.com/geepay-ngn/wallet/internal/data/store"
	"github.com/geepay-ngn/wallet/internal/domain/bank"
)

// Provider fetches the remote bank list and keeps the account store's cached
// copy current.
type Provider struct {
	baseURL    string
	token      string
	country    string
	httpClient *http.Client
	accounts   *store.AccountStore
	logger     *slog.Logger

	mu      sync.Mutex
	fetched bool
	entries []bank.DirectoryEntry
}

// NewProvider creates a bank directory provider
func NewProvider(logger *slog.Logger, resolverCfg *config.ResolverConfig, cfg *config.DirectoryConfig, accounts *store.AccountStore) *Provider {
	return &Provider{
		baseURL:    resolverCfg.BaseURL,
		token:      resolverCfg.Token,
		country:    cfg.Country,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		accounts:   accounts,
		logger:     logger,
	}
}

type banksResponse struct {
	Status string `json:"status"`
	Data   []struct {
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"data"`
}

// Banks returns the bank directory. The remote list is fetched at most once
// per process: the first successful fetch is memoized and written through to
// the account store as the new last-known-good set. Until a fetch succeeds,
// each failure falls back to the cached set and the next call retries.
func (p *Provider) Banks(ctx context.Context) ([]bank.DirectoryEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fetched {
		out := make([]bank.DirectoryEntry, len(p.entries))
		copy(out, p.entries)
		return out, nil
	}

	remote, err := p.fetch(ctx)
	if err != nil {
		p.logger.Warn("bank directory fetch failed, using cached set", "error", err)
		return p.accounts.ListBanks(), nil
	}

	if err := p.accounts.ReplaceBanks(ctx, remote); err != nil {
		// The fetched list is still good even if caching it failed.
		p.logger.Warn("failed to cache bank directory", "error", err)
	}
	p.entries = remote
	p.fetched = true
	return remote, nil
}

// fetch retrieves the bank list from the remote source
func (p *Provider) fetch(ctx context.Context) ([]bank.DirectoryEntry, error) {
	url := fmt.Sprintf("%s/banks/%s", p.baseURL, p.country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build banks request: %w", err)
	}
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("banks request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("banks request returned status %d", resp.StatusCode)
	}

	var decoded banksResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode banks response: %w", err)
	}
	if decoded.Status != "success" || len(decoded.Data) == 0 {
		return nil, fmt.Errorf("banks response contained no banks")
	}

	entries := make([]bank.DirectoryEntry, 0, len(decoded.Data))
	for _, b := range decoded.Data {
		entries = append(entries, bank.DirectoryEntry{Name: b.Name, Code: b.Code})
	}
	return entries, nil
}

var _ bank.Source = (*Provider)(nil)
