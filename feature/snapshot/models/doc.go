// Package models defines the snapshot record shapes and the live table names
// they are projected from.
//
// Snapshot records are flat and carry yaml tags; they exist only for the
// duration of one export or import call. The Live* structs describe the
// target instance's tables for test migrations only.
package models
