// Package migrations embeds the SQL schema of the document store, one directory per dialect
package migrations

import "embed"

// MySQL holds the migrations for the MySQL document store
//
//go:embed mysql/*.sql
var MySQL embed.FS

// SQLite holds the migrations for the SQLite document store
//
//go:embed sqlite/*.sql
var SQLite embed.FS
