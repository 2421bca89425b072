package node

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"filippo.io/edwards25519"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/consensus"
	"github.com/kayabaNerve/zephyr-verify-bulletproofs/crypto"
	"github.com/kayabaNerve/zephyr-verify-bulletproofs/node/store"
)

const (
	DefaultRPCURL  = "http://node.zeph.network"
	maxWorkers     = 256
	txIDHexLen     = 64
	defaultTimeout = 60 * time.Second
)

type Config struct {
	RPCURL            string        `json:"rpc_url"`
	TxIDs             []string      `json:"tx_ids"`
	CachePath         string        `json:"cache_path"`
	Workers           int           `json:"workers"`
	Timeout           time.Duration `json:"timeout"`
	LogLevel          string        `json:"log_level"`
	MagnitudeUnits    uint64        `json:"magnitude_units"`
	MagnitudeDecimals uint          `json:"magnitude_decimals"`
}

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// DefaultTxIDs are the three transactions reported as carrying invalid
// Bulletproofs, followed by two same-day controls that are not.
func DefaultTxIDs() []string {
	return []string{
		"b17ef3d2e65ab980c8bd6cbe3210a8b3c9e417fb9621209380f7c1f756fcb2ed",
		"4e7ea2cc5484508bd17ff43f3fb8fbd69a22062f24a869794c513d89aee3eb6d",
		"d3abcf2bc0a173d6d8af19d88b2d7d610385abf258590d24ca82fc586017c6dd",
		"784d3e756aed645606f74aa3519ecf96e137a025c22c9cc585a6d4ec0fdb651a",
		"98b7180424495e3388c11b0ee9b4218018b06096b03ebde61467a4e9a49ddc79",
	}
}

func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".zeph-bp-audit"
	}
	return filepath.Join(home, ".zeph-bp-audit")
}

// DefaultCachePath is where -use-cache keeps fetched transactions.
func DefaultCachePath() string {
	return store.CachePath(DefaultDataDir())
}

func DefaultConfig() Config {
	return Config{
		RPCURL:            DefaultRPCURL,
		TxIDs:             DefaultTxIDs(),
		CachePath:         "",
		Workers:           4,
		Timeout:           defaultTimeout,
		LogLevel:          "info",
		MagnitudeUnits:    consensus.DIAGNOSTIC_MAGNITUDE_UNITS,
		MagnitudeDecimals: consensus.ATOMIC_UNIT_DECIMALS,
	}
}

// NormalizeTxIDs splits comma lists, trims, lowercases and drops repeats
// while keeping first-seen order.
func NormalizeTxIDs(raw ...string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, token := range raw {
		for _, id := range strings.Split(token, ",") {
			id = strings.ToLower(strings.TrimSpace(id))
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// LoadTxIDsFile reads one id per line. Blank lines and lines starting with
// '#' are ignored.
func LoadTxIDsFile(path string) ([]string, error) {
	b, err := readTxIDFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tx id file: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return NormalizeTxIDs(lines...), nil
}

// Magnitude is MagnitudeUnits scaled by 10^MagnitudeDecimals as a scalar.
func (c Config) Magnitude() (*edwards25519.Scalar, error) {
	if c.MagnitudeDecimals > math.MaxUint8 {
		return nil, fmt.Errorf("magnitude_decimals %d out of range", c.MagnitudeDecimals)
	}
	return crypto.MagnitudeScalar(c.MagnitudeUnits, uint8(c.MagnitudeDecimals))
}

func ValidateConfig(cfg Config) error {
	if err := validateRPCURL(cfg.RPCURL); err != nil {
		return fmt.Errorf("invalid rpc_url: %w", err)
	}
	if len(cfg.TxIDs) == 0 {
		return errors.New("at least one tx id is required")
	}
	for _, id := range cfg.TxIDs {
		if err := validateTxID(id); err != nil {
			return fmt.Errorf("invalid tx id %q: %w", id, err)
		}
	}
	if cfg.Workers <= 0 {
		return errors.New("workers must be > 0")
	}
	if cfg.Workers > maxWorkers {
		return fmt.Errorf("workers must be <= %d", maxWorkers)
	}
	if cfg.Timeout <= 0 {
		return errors.New("timeout must be > 0")
	}
	logLevel := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, ok := allowedLogLevels[logLevel]; !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if cfg.MagnitudeUnits == 0 {
		return errors.New("magnitude_units must be > 0")
	}
	if _, err := cfg.Magnitude(); err != nil {
		return fmt.Errorf("invalid magnitude: %w", err)
	}
	return nil
}

func validateRPCURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("empty url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

func validateTxID(id string) error {
	if len(id) != txIDHexLen {
		return fmt.Errorf("want %d hex chars, got %d", txIDHexLen, len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		return err
	}
	return nil
}
