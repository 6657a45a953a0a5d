package models

import (
	"database/sql"
	_ "embed"
)

//go:embed schema.sql
var Schema string

// Migrate applies the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
