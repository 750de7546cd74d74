// Package server wires the HTTP router, database handle and stores for the
// FolioBoard API. Endpoints register themselves on the Server via the
// endpoints package.
package server
