// Package main provides the entry point for the ticket-office backend.
// It initializes and runs a web server using the Fiber framework that exposes
// cursor-paginated event and ticket listings backed by a relational database
// and per-client box-office settings backed by a MongoDB document store.
package main
