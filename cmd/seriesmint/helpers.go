// Shared helpers for seriesmint CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/seriesmint/internal/badger"
	"github.com/mesh-intelligence/seriesmint/internal/sqlite"
	"github.com/mesh-intelligence/seriesmint/pkg/contract"
	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// newStore maps a backend name to its implementation.
func newStore(backend string) (types.Store, error) {
	switch backend {
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case types.BackendBadger:
		return badger.NewBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s, %s)",
			types.ErrBackendUnknown, backend, types.BackendSQLite, types.BackendBadger)
	}
}

// callContext builds the mutating-call context from the --as and
// --deposit flags.
func callContext() (contract.Call, error) {
	deposit, err := parseDeposit(flagDeposit)
	if err != nil {
		return contract.Call{}, err
	}
	return contract.Call{Caller: types.AccountID(flagCaller), Deposit: deposit}, nil
}

// parseDeposit parses a decimal yocto amount; empty means zero.
func parseDeposit(s string) (*uint256.Int, error) {
	if s == "" {
		return uint256.NewInt(0), nil
	}
	d, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("parse --deposit: %w", err)
	}
	return d, nil
}

// parseSeriesID parses a positional series id argument.
func parseSeriesID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidSeriesID, arg)
	}
	return id, nil
}

// parseExtra parses repeated key=value flags into the metadata extra map.
func parseExtra(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: extra field %q is not key=value", types.ErrInvalidMetadata, p)
		}
		out[k] = v
	}
	return out, nil
}

// printRecord renders a result as YAML, or JSON when --json is set.
func printRecord(v any) error {
	if flagJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// printRefund reports the refundable part of the attached deposit.
func printRefund(refund *uint256.Int) {
	if refund != nil && !refund.IsZero() {
		fmt.Printf("refund: %s\n", refund.Dec())
	}
}
