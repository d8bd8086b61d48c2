// Package library persists converted scripts in SQLite.
//
// The Store manages the database connection, schema initialization, and the
// CRUD operations used by the import and scripts commands. Sections are kept
// as a JSON column alongside denormalized counts so listings do not need to
// decode them. Schema changes bump the version in schema.go.
//
// AcquireWriteLock guards imports with a lock file so two processes do not
// create duplicate scripts for the same source.
package library
