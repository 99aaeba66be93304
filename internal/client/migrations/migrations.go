// Package migrations embeds the SQLite schema for the local draft cache.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
