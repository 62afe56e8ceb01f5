package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gamevault/config"
)

// setupTestDB points the package globals at a fresh on-disk SQLite database
// (foreign keys on) and runs the real migration path, so tests exercise the
// same schema, views and constraint translation as production.
func setupTestDB(t *testing.T) {
	t.Helper()

	config.InitConfig()
	config.AppConfig.DBDriver = "sqlite"
	config.AppConfig.DBPath = filepath.Join(t.TempDir(), "gamevault_test.db")

	require.NoError(t, InitDB())
	require.NoError(t, InitReportDB())
	require.NoError(t, RunMigrations())

	t.Cleanup(func() {
		_ = CloseReportDB()
		_ = CloseDB()
	})
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func countAuditEntries(t *testing.T, action string, recordID uint) int64 {
	t.Helper()
	var count int64
	err := DB.Model(&AuditLogEntry{}).
		Where("table_name = ? AND action = ? AND record_id = ?", AuditTableGameItem, action, recordID).
		Count(&count).Error
	require.NoError(t, err)
	return count
}
