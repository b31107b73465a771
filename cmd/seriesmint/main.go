// Package main provides the seriesmint CLI, a local host for the
// grouped-token ledger contract.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// Exit codes: user errors (bad arguments, domain rejections) and system
// errors (store failures) are distinguished for scripting.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// userErrors lists the domain rejections that map to exitUserError.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrDuplicateSeries,
	types.ErrUnauthorized,
	types.ErrInvalidMetadata,
	types.ErrTransferForbidden,
	types.ErrInsufficientDeposit,
	types.ErrSelfTransfer,
	types.ErrInvalidAccountID,
	types.ErrInvalidSeriesID,
	types.ErrNotInitialized,
	types.ErrAlreadyInitialized,
}

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, ue := range userErrors {
		if errors.Is(err, ue) {
			return exitUserError
		}
	}
	return exitSysError
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
