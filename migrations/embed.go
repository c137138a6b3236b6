// Package migrations embeds the goose SQL migrations so the server binary can apply them.
package migrations

import "embed"

// FS holds the *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
