// Package sqlite provides a SQLite-backed implementation of the document
// store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. The schema is managed
// through versioned migrations embedded from the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.apimdocs/data/documents.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
