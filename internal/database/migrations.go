package database

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations creates the secondary indexes used by the list queries.
func RunMigrations(db *gorm.DB) error {
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

func createIndexes(db *gorm.DB) error {
	statements := []string{
		// Case table default ordering
		`CREATE INDEX IF NOT EXISTS idx_cases_filed_date
		ON cases(filed_date DESC, created_at DESC)`,

		// Sidebar and table filters
		`CREATE INDEX IF NOT EXISTS idx_cases_filters
		ON cases(category, priority, status)`,

		// Schedule ordering
		`CREATE INDEX IF NOT EXISTS idx_hearings_start
		ON hearings(start_at)`,

		// Schedule filters
		`CREATE INDEX IF NOT EXISTS idx_hearings_filters
		ON hearings(judge, case_type, priority, status)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
