// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures MySQL connections (and sqlite for tests) based on the
// application's configuration.
//
// # Connect
//
// The Connect function establishes a connection to the database. It is
// agnostic to the schema of the target instance; the configuration tables the
// snapshot engine touches are addressed dynamically through the record store.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
