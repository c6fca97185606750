package history

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"progress-tracker/core/library"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

var runColumns = []string{"id", "trigger_name", "started_at", "finished_at", "duration_ms", "success", "total", "synced", "new_tags", "errors", "error"}

func sampleRun() library.SyncRun {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return library.SyncRun{
		ID:         "6f1c2e2a-8d0b-4d55-9a53-2f7f3b1c9e10",
		Trigger:    "manual",
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Summary:    library.SyncSummary{Success: true, Total: 3, Synced: 2, NewTags: 1, Errors: 1},
	}
}

func TestFromSyncRun(t *testing.T) {
	row := fromSyncRun(sampleRun())
	assert.Equal(t, int64(1500), row.DurationMs)
	assert.Equal(t, "manual", row.Trigger)
	assert.Equal(t, sampleRun(), row.SyncRun())
}

func TestStore_Save(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_runs`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Save(context.Background(), sampleRun()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveFails(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_runs`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.Save(context.Background(), sampleRun())
	assert.ErrorContains(t, err, "failed to save sync run")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_List(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	run := sampleRun()
	rows := sqlmock.NewRows(runColumns).
		AddRow(run.ID, run.Trigger, run.StartedAt, run.FinishedAt, 1500, true, 3, 2, 1, 1, "").
		AddRow("older", "startup", run.StartedAt.Add(-time.Hour), run.StartedAt.Add(-time.Hour), 0, false, 0, 0, 0, 0, "failed to get game list")
	mock.ExpectQuery("SELECT \\* FROM `sync_runs` ORDER BY started_at DESC LIMIT").WillReturnRows(rows)

	runs, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, run, runs[0])
	assert.False(t, runs[1].Summary.Success)
	assert.Equal(t, "failed to get game list", runs[1].Summary.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_List(t *testing.T) {
	db, mock := setupMockDB(t)
	run := sampleRun()
	mock.ExpectQuery("SELECT \\* FROM `sync_runs`").WillReturnRows(
		sqlmock.NewRows(runColumns).AddRow(run.ID, run.Trigger, run.StartedAt, run.FinishedAt, 1500, true, 3, 2, 1, 1, ""))

	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	f := NewFeature(NewStore(db), zap.NewNop())
	require.True(t, f.IsEnabled())
	require.NoError(t, f.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/history?limit=5", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var runs []library.SyncRun
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}

func TestHandler_ListFails(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `sync_runs`").WillReturnError(errors.New("connection reset"))

	app := fiber.New()
	require.NoError(t, NewFeature(NewStore(db), zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/history", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestFeature_DisabledWithoutStore(t *testing.T) {
	assert.False(t, NewFeature(nil, zap.NewNop()).IsEnabled())
}
