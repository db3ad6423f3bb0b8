// Package client bootstraps the local BiteShare database: it opens the
// SQLite file through the pure-Go modernc driver and applies the embedded
// goose migrations.
//
// A single open connection is kept so that writes never race for the file
// lock and ":memory:" databases behave like a file for the lifetime of the
// handle.
package client
