// Package snapshot exports, validates, and reconciles administrative
// configuration snapshots.
//
// A snapshot is a directory of YAML documents, one per entity type, plus a
// manifest summarizing the run. Five entity types are covered: config
// parameters, number sequences, user groups, external identifier bindings,
// and module installation states.
//
// # Reconciliation
//
// Import processes entity types in a fixed dependency order; external id
// bindings go last because they name other records by model and res_id. Each
// type has its own rule:
//
//   - config parameters: upsert by key
//   - user groups: create missing groups by name, never mutate existing ones
//   - sequences: upsert by code, but updates never touch number_next
//   - module states: compare and log drift, never write
//   - external ids: full upsert by (module, name)
//
// Failures split into two levels. A failing record is logged and skipped
// without stopping its type; a failing type aborts the remaining import and
// reports what was applied before it. Export is simpler: it either fully
// succeeds or fully fails as a unit.
//
// # Surfaces
//
//   - Service: the programmatic entry point used by both the CLI and HTTP.
//   - Handler: Fiber routes (POST /snapshot/export, POST /snapshot/import,
//     GET /snapshot/validate).
//   - Transfer: push/pull of snapshot directories to object storage.
package snapshot
