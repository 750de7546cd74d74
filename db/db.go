// Package db embeds the SQL migrations shipped with the server binary.
package db

import "embed"

// Migrations holds the SQL migration files, applied with golang-migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
