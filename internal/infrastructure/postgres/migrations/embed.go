package migrations

import "embed"

// Files migraciones SQL (solo hacia adelante) embebidas en el binario.
//
//go:embed *.sql
var Files embed.FS
