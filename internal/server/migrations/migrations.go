// Package migrations embeds the goose schema migrations, one directory per
// dialect (see dbx.Dialect.Name).
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
