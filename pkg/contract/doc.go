// Package contract implements the seriesmint token ledger: a series
// registry, a token ledger, and a transfer-policy guard behind a single
// facade. The contract holds no state of its own; every operation runs
// against an explicit Store and commits or fails atomically.
//
// The host environment authenticates callers and serializes calls; the
// Call value carries the authenticated caller and the attached storage
// deposit into each mutating operation.
package contract
