// Package yamldoc is the document codec for snapshot files.
//
// A snapshot is a directory of YAML documents, each a mapping from an entity
// type name to a list of flat records (plus the manifest mapping). This
// package only knows how to move mappings between disk and memory:
//
//   - Write: mapping -> YAML file (parent directories created)
//   - Read: YAML file -> mapping (absent file reads as an empty mapping)
//
// Record shapes and reconciliation semantics live in feature/snapshot.
package yamldoc
