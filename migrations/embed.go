// Package migrations embeds the SQL migration files so the server and the
// repo test harness can apply them through goose's programmatic API.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider instead of relying on a filesystem
// path at runtime.
//
//go:embed *.sql
var FS embed.FS
