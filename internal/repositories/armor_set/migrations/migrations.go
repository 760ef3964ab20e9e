// Package migrations embeds the goose migrations for the postgres armor set store
package migrations

import "embed"

// FS holds the SQL migration files
//
//go:embed *.sql
var FS embed.FS
