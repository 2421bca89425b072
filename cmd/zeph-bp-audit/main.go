package main

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/crypto"
	"github.com/kayabaNerve/zephyr-verify-bulletproofs/node"
	"github.com/kayabaNerve/zephyr-verify-bulletproofs/node/rpc"
	"github.com/kayabaNerve/zephyr-verify-bulletproofs/node/store"
)

type multiStringFlag []string

func (m *multiStringFlag) String() string {
	if m == nil {
		return ""
	}
	return strings.Join(*m, ",")
}

func (m *multiStringFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defaults := node.DefaultConfig()
	var txs multiStringFlag

	cfg := defaults
	fs := flag.NewFlagSet("zeph-bp-audit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	txCSV := fs.String("txs", "", "transaction ids, comma-separated")
	txFile := fs.String("txs-file", "", "file with one transaction id per line")
	fs.Var(&txs, "tx", "single transaction id (repeatable)")
	fs.StringVar(&cfg.RPCURL, "rpc", defaults.RPCURL, "daemon base url")
	fs.StringVar(&cfg.CachePath, "cache", defaults.CachePath, "bbolt tx cache file (empty disables caching)")
	fs.IntVar(&cfg.Workers, "workers", defaults.Workers, "parallel decode/verify workers")
	fs.DurationVar(&cfg.Timeout, "timeout", defaults.Timeout, "daemon request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "log level: debug|info|warn|error")
	fs.Uint64Var(&cfg.MagnitudeUnits, "magnitude-units", defaults.MagnitudeUnits, "whole units added to a commitment by the diagnostic")
	fs.UintVar(&cfg.MagnitudeDecimals, "magnitude-decimals", defaults.MagnitudeDecimals, "decimal places of one whole unit")
	useCache := fs.Bool("use-cache", false, "cache fetched transactions under the default data dir when -cache is unset")
	dryRun := fs.Bool("dry-run", false, "print effective config and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if *useCache && cfg.CachePath == "" {
		cfg.CachePath = node.DefaultCachePath()
	}
	requested := append([]string{*txCSV}, txs...)
	if *txFile != "" {
		fromFile, err := node.LoadTxIDsFile(*txFile)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "tx id file: %v\n", err)
			return 2
		}
		requested = append(requested, fromFile...)
	}
	if ids := node.NormalizeTxIDs(requested...); len(ids) > 0 {
		cfg.TxIDs = ids
	}
	if err := node.ValidateConfig(cfg); err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 2
	}
	if *dryRun {
		if err := printConfig(stdout, cfg); err != nil {
			_, _ = fmt.Fprintf(stderr, "config encode failed: %v\n", err)
			return 1
		}
		return 0
	}

	logger := node.NewLogger(stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	magnitude, err := cfg.Magnitude()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "magnitude: %v\n", err)
		return 2
	}
	client, err := rpc.NewClient(cfg.RPCURL, cfg.Timeout)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "rpc client init failed: %v\n", err)
		return 2
	}
	fetcher := &node.CachingFetcher{Remote: client, Logger: logger}
	if cfg.CachePath != "" {
		cache, err := store.Open(cfg.CachePath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "cache open failed: %v\n", err)
			return 2
		}
		defer cache.Close()
		fetcher.Cache = cache
	}

	var verifier crypto.CryptoProvider = crypto.MoneroProvider{}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	outcomes, err := node.RunBatch(ctx, node.BatchConfig{
		Fetcher:   fetcher,
		Verifier:  verifier,
		Magnitude: magnitude,
		Workers:   cfg.Workers,
		Rand:      rand.Reader,
		Logger:    logger,
	}, cfg.TxIDs)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "batch failed: %v\n", err)
		return 2
	}
	if err := node.WriteReport(stdout, outcomes, cfg.MagnitudeUnits); err != nil {
		_, _ = fmt.Fprintf(stderr, "report write failed: %v\n", err)
		return 1
	}
	return 0
}

func printConfig(w io.Writer, cfg node.Config) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
