// Package models defines the core domain models for evenup.
//
// # Models
//
//   - Person: one tracked individual with a money balance and a derived difference
//   - Ledger: the ordered collection of people
//   - Event: a user request (add, remove, money change, clear) applied to a Ledger
//
// A Ledger is a value. Every operation returns a new Ledger and leaves the
// receiver untouched, so callers own exactly one current Ledger and replace it
// after each operation.
//
// # Differences
//
// A person's difference is their money minus the mean money of everyone in the
// ledger, rounded to one decimal place. Differences are recomputed whenever
// money or membership changes; SetMoney deliberately leaves that to the caller
// so a batch of edits needs a single Recompute.
package models
