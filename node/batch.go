package node

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"filippo.io/edwards25519"
	"golang.org/x/sync/errgroup"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/consensus"
)

// BatchConfig carries the collaborators for one audit run.
type BatchConfig struct {
	Fetcher   Fetcher
	Verifier  consensus.RangeProofVerifier
	Magnitude *edwards25519.Scalar
	Workers   int

	// Rand is handed to the verifier unchanged. It must be safe for
	// concurrent use when Workers > 1.
	Rand   io.Reader
	Logger *slog.Logger
}

// Outcome is the result for one requested id. Err is set when the payload
// could not be decoded; Valid and Perturbations are meaningless then.
type Outcome struct {
	TxHash        string
	Valid         bool
	Perturbations []consensus.Perturbation
	ComputedHash  [32]byte
	HashMismatch  bool
	Err           error
}

// RunBatch fetches every id in one request, checks the response against the
// request, then decodes and verifies each transaction. Fetch problems fail
// the batch. A transaction that cannot be decoded only fails its own Outcome.
func RunBatch(ctx context.Context, cfg BatchConfig, ids []string) ([]Outcome, error) {
	if cfg.Fetcher == nil {
		return nil, errors.New("batch: fetcher required")
	}
	if cfg.Verifier == nil {
		return nil, errors.New("batch: verifier required")
	}
	if cfg.Magnitude == nil {
		return nil, errors.New("batch: magnitude required")
	}
	if len(ids) == 0 {
		return nil, nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	res, err := cfg.Fetcher.FetchTransactions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	if len(res.Missing) > 0 {
		return nil, fetchErr(FETCH_ERR_INCOMPLETE, "daemon missed "+strings.Join(res.Missing, ","))
	}
	if err := checkFetchOrder(ids, res.Txs); err != nil {
		return nil, err
	}
	logger.Info("fetched transactions", "count", len(ids))

	outcomes := make([]Outcome, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = analyse(cfg, logger, ids[i], res.Txs[i].Hex)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func analyse(cfg BatchConfig, logger *slog.Logger, id string, txHex string) Outcome {
	out := Outcome{TxHash: id}
	raw, err := hex.DecodeString(strings.TrimSpace(txHex))
	if err != nil {
		out.Err = fmt.Errorf("hex decode: %w", err)
		logger.Warn("transaction not analysed", "tx", id, "error", out.Err.Error())
		return out
	}
	tx, err := consensus.ParseTxFormat(raw, consensus.FormatConversionV3)
	if err != nil {
		out.Err = err
		logger.Warn("transaction not analysed", "tx", id, "error", err.Error())
		return out
	}

	out.ComputedHash = tx.Hash()
	if !strings.EqualFold(hex.EncodeToString(out.ComputedHash[:]), id) {
		out.HashMismatch = true
		logger.Warn("computed tx hash differs from requested id", "tx", id, "computed", fmt.Sprintf("%x", out.ComputedHash))
	}

	out.Valid = consensus.VerifyRangeProof(cfg.Verifier, tx, cfg.Rand)
	logger.Debug("range proof verified", "tx", id, "outputs", len(tx.Base.OutPk), "valid", out.Valid)
	if out.Valid {
		return out
	}
	perts, err := consensus.DiagnoseDiscrepancy(cfg.Verifier, tx, cfg.Magnitude, cfg.Rand)
	if err != nil {
		out.Err = err
		logger.Warn("discrepancy diagnostic failed", "tx", id, "error", err.Error())
		return out
	}
	out.Perturbations = perts
	return out
}
