// Package rpc fetches raw transactions from a Monero-family daemon.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	getTransactionsPath = "/get_transactions"
	statusOK            = "OK"
	maxResponseBytes    = 64 << 20
)

// FetchedTx is one daemon-returned transaction.
type FetchedTx struct {
	Hash string
	Hex  string
}

// TransactionsResult holds the daemon answer in daemon order. Missing lists
// requested ids the daemon did not know about.
type TransactionsResult struct {
	Missing []string
	Txs     []FetchedTx
}

type getTransactionsRequest struct {
	TxsHashes    []string `json:"txs_hashes"`
	DecodeAsJSON bool     `json:"decode_as_json"`
}

type getTransactionsResponse struct {
	Status   string   `json:"status"`
	MissedTx []string `json:"missed_tx"`
	Txs      []struct {
		TxHash string `json:"tx_hash"`
		AsHex  string `json:"as_hex"`
	} `json:"txs"`
}

// Client talks to the daemon's non-JSON-RPC HTTP endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("rpc: base url required")
	}
	if timeout <= 0 {
		return nil, errors.New("rpc: timeout must be > 0")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default(),
	}, nil
}

// FetchTransactions requests all ids in a single call.
func (c *Client) FetchTransactions(ctx context.Context, ids []string) (*TransactionsResult, error) {
	body, err := json.Marshal(getTransactionsRequest{TxsHashes: ids})
	if err != nil {
		return nil, fmt.Errorf("rpc: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+getTransactionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("rpc: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("rpc get_transactions", "url", req.URL.String(), "count", len(ids))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc: get_transactions: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("rpc: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rpc: get_transactions: http %d", resp.StatusCode)
	}

	var decoded getTransactionsResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("rpc: decode response: %w", err)
	}
	if decoded.Status != statusOK {
		return nil, fmt.Errorf("rpc: get_transactions: status %q", decoded.Status)
	}

	out := &TransactionsResult{
		Missing: decoded.MissedTx,
		Txs:     make([]FetchedTx, 0, len(decoded.Txs)),
	}
	for _, tx := range decoded.Txs {
		out.Txs = append(out.Txs, FetchedTx{Hash: tx.TxHash, Hex: tx.AsHex})
	}
	return out, nil
}
