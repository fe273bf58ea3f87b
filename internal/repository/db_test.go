package repository

import (
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasks-webapi/internal/model"
)

func TestEnsureDirForSQLite(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, ensureDirForSQLite(":memory:"))
	require.NoError(t, ensureDirForSQLite("file::memory:?cache=shared"))
	require.NoError(t, ensureDirForSQLite("tasks.db"))

	nested := filepath.Join(root, "data", "db", "tasks.db")
	require.NoError(t, ensureDirForSQLite("file:"+nested+"?_busy_timeout=5000"))

	info, err := os.Stat(filepath.Dir(nested))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewDB_MigratesTables(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	db, err := NewDB(filepath.Join(t.TempDir(), "nested", "tasks.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	assert.True(t, db.Migrator().HasTable(&model.Category{}))
	assert.True(t, db.Migrator().HasTable(&model.Task{}))
	assert.True(t, db.Migrator().HasIndex(&model.Task{}, "idx_tasks_category_id"))
}
