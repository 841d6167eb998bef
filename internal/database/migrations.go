package database

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// compositeIndexes back the ownership-chain lookups, which always filter
// on the parent key together with the row id.
var compositeIndexes = []struct {
	table   string
	name    string
	columns string
}{
	{"todo_lists", "idx_todo_lists_user_id_id", "user_id, id"},
	{"list_items", "idx_list_items_list_id_id", "list_id, id"},
}

// AddIndexes creates the composite indexes that AutoMigrate cannot
// express through struct tags. Existing indexes are skipped.
func AddIndexes(db *gorm.DB, l *log.Logger) error {
	migrator := db.Migrator()

	for _, idx := range compositeIndexes {
		if migrator.HasIndex(idx.table, idx.name) {
			l.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		l.Debug("created index", "index", idx.name, "table", idx.table, "columns", idx.columns)
	}

	return nil
}
