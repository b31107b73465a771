package types

import "errors"

// Contract operation errors. Every precondition failure aborts the whole
// call; callers match with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateSeries     = errors.New("series id already exists")
	ErrUnauthorized        = errors.New("caller is not authorized")
	ErrInvalidMetadata     = errors.New("invalid metadata")
	ErrTransferForbidden   = errors.New("transfer not allowed to this address")
	ErrInsufficientDeposit = errors.New("attached deposit does not cover storage cost")
	ErrSelfTransfer        = errors.New("receiver is already the token owner")
	ErrInvalidAccountID    = errors.New("invalid account id")
	ErrInvalidSeriesID     = errors.New("series id must be positive")
	ErrNotInitialized      = errors.New("contract is not initialized")
	ErrAlreadyInitialized  = errors.New("contract is already initialized")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
