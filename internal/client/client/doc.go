// Package client talks to the FoundrMate HTTP API and opens the client's
// local SQLite store.
package client
