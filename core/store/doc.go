// Package store abstracts record access for the snapshot engine.
//
// The engine only ever needs three operations against the live instance:
// find-by-equality-filters, create-from-fields, and update-from-fields, all
// over named collections of flat records. The Store interface captures exactly
// that surface, which keeps the reconciliation core free of any storage engine
// dependency.
//
// # Implementations
//
//   - GormStore: dynamic table access over a GORM connection (MySQL in
//     production, sqlite in tests).
//   - InMemoryStore: a process-local store for tests and import rehearsals.
//
// # Sessions
//
// A Store wraps whatever session/transaction context its constructor is given.
// The engine issues operations against it and never manages the transaction
// boundary itself.
package store
