package node

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/node/rpc"
	"github.com/kayabaNerve/zephyr-verify-bulletproofs/node/store"
)

// Fetcher returns raw transactions for ids in a single batch. Results are
// expected in request order; RunBatch checks that before decoding.
type Fetcher interface {
	FetchTransactions(ctx context.Context, ids []string) (*rpc.TransactionsResult, error)
}

// CachingFetcher serves ids from the cache and asks Remote only for the rest.
// Fetched payloads are written back once their ids are confirmed.
type CachingFetcher struct {
	Remote Fetcher
	Cache  *store.TxCache
	Logger *slog.Logger
}

func (f *CachingFetcher) FetchTransactions(ctx context.Context, ids []string) (*rpc.TransactionsResult, error) {
	if f.Remote == nil {
		return nil, fmt.Errorf("caching fetcher: remote required")
	}
	if f.Cache == nil {
		return f.Remote.FetchTransactions(ctx, ids)
	}
	logger := f.Logger
	if logger == nil {
		logger = slog.Default()
	}

	hexByID := make(map[string]string, len(ids))
	var pending []string
	for _, id := range ids {
		txHex, ok, err := f.Cache.Get(id)
		if err != nil {
			return nil, fmt.Errorf("cache get %s: %w", id, err)
		}
		if ok {
			hexByID[id] = txHex
			continue
		}
		pending = append(pending, id)
	}
	logger.Debug("tx cache lookup", "hits", len(ids)-len(pending), "misses", len(pending))

	if len(pending) > 0 {
		res, err := f.Remote.FetchTransactions(ctx, pending)
		if err != nil {
			return nil, err
		}
		if len(res.Missing) > 0 {
			return &rpc.TransactionsResult{Missing: res.Missing}, nil
		}
		if err := checkFetchOrder(pending, res.Txs); err != nil {
			return nil, err
		}
		for i, tx := range res.Txs {
			if err := f.Cache.Put(pending[i], tx.Hex); err != nil {
				return nil, fmt.Errorf("cache put %s: %w", pending[i], err)
			}
			hexByID[pending[i]] = tx.Hex
		}
	}

	out := &rpc.TransactionsResult{Txs: make([]rpc.FetchedTx, 0, len(ids))}
	for _, id := range ids {
		out.Txs = append(out.Txs, rpc.FetchedTx{Hash: id, Hex: hexByID[id]})
	}
	return out, nil
}

// checkFetchOrder requires exactly one result per requested id, in order.
func checkFetchOrder(ids []string, txs []rpc.FetchedTx) error {
	if len(txs) != len(ids) {
		return fetchErr(FETCH_ERR_INTEGRITY, fmt.Sprintf("requested %d transactions, got %d", len(ids), len(txs)))
	}
	for i := range ids {
		if !strings.EqualFold(txs[i].Hash, ids[i]) {
			return fetchErr(FETCH_ERR_INTEGRITY, fmt.Sprintf("result %d is %s, requested %s", i, txs[i].Hash, ids[i]))
		}
	}
	return nil
}
