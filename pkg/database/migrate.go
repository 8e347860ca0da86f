package database

import (
	"database/sql"
	"fmt"
	"strings"

	"phonehub/pkg/models"
)

// Migrate creates the phones table. The spec columns come from
// models.SpecFields so the schema can never drift from the extractor.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(PhonesDDL()); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func PhonesDDL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS phones (\n")
	b.WriteString("  id INTEGER PRIMARY KEY AUTOINCREMENT,\n")
	b.WriteString("  slug TEXT NOT NULL UNIQUE,\n")
	for _, col := range models.SpecColumns() {
		fmt.Fprintf(&b, "  %s TEXT,\n", col)
	}
	b.WriteString("  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,\n")
	b.WriteString("  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP\n")
	b.WriteString(");")
	return b.String()
}
