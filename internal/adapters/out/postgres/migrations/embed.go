// Package migrations embeds the SQL schema migrations for the goose provider.
package migrations

import "embed"

// FS holds every *.sql migration, applied in version order.
//
//go:embed *.sql
var FS embed.FS
