// Package types defines the ledger entities, storage interfaces,
// configuration, and standard error types for the seriesmint contract.
package types
