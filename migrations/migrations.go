package migrations

import "embed"

//go:embed identity/*.sql ledger/*.sql campaigns/*.sql
var Migrations embed.FS
