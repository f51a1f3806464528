// Package migrations embeds the SQL migrations for cart storage.
package migrations

import "embed"

//go:embed *.sql
var MigrationsFS embed.FS
