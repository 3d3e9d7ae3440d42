package postgres

import (
	"context"
	"testing"
	"time"

	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var collectionStatusColumns = []string{
	"id", "schedule_id", "street_name", "collection_date", "street_id", "barangay_name",
	"collector_id", "status", "marked_at", "marked_by", "created_at", "updated_at",
}

func TestCollectionStatusRepository_UpsertApplied(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionStatusRepository(db)

	id := uuid.New()
	scheduleID := uuid.New()
	collectorID := uuid.New()
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "collection_statuses" .* ON CONFLICT \("schedule_id","street_name","collection_date"\) DO UPDATE SET .*"status"="excluded"."status".* RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(collectionStatusColumns).
			AddRow(id.String(), scheduleID.String(), "Main St", day, nil, "Batasan Hills", collectorID.String(), "collected", now, collectorID.String(), now, now))

	record := &entity.CollectionStatusRecord{
		ScheduleID:     scheduleID,
		StreetName:     "Main St",
		BarangayName:   "Batasan Hills",
		CollectorID:    collectorID,
		CollectionDate: "2026-10-17",
		Status:         entity.StatusCollected,
		MarkedAt:       &now,
		MarkedBy:       &collectorID,
	}

	applied, err := repo.Upsert(context.Background(), record)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, "2026-10-17", record.CollectionDate)
	assert.Equal(t, entity.StatusCollected, record.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionStatusRepository_UpsertGuardKeepsRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionStatusRepository(db)

	mock.ExpectQuery(`INSERT INTO "collection_statuses" .* ON CONFLICT .* DO UPDATE SET .* WHERE "collection_statuses"."status" = \$\d+ RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(collectionStatusColumns))

	record := &entity.CollectionStatusRecord{
		ScheduleID:     uuid.New(),
		StreetName:     "Main St",
		CollectorID:    uuid.New(),
		CollectionDate: "2026-10-17",
		Status:         entity.StatusMissed,
	}

	applied, err := repo.Upsert(context.Background(), record, entity.SweepReplaceableStatuses()...)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, uuid.Nil, record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionStatusRepository_UpsertRejectsInvalidInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionStatusRepository(db)

	_, err := repo.Upsert(context.Background(), &entity.CollectionStatusRecord{
		CollectionDate: "2026-10-17",
		Status:         entity.CollectionStatus("done"),
	})
	assert.Error(t, err)

	_, err = repo.Upsert(context.Background(), &entity.CollectionStatusRecord{
		CollectionDate: "17/10/2026",
		Status:         entity.StatusCollected,
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionStatusRepository_FindNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionStatusRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "collection_statuses" WHERE schedule_id = \$1 AND street_name = \$2 AND collection_date = \$3`).
		WillReturnRows(sqlmock.NewRows(collectionStatusColumns))

	_, err := repo.Find(context.Background(), entity.CollectionKey{
		ScheduleID:     uuid.New(),
		StreetName:     "Main St",
		CollectionDate: "2026-10-17",
	})
	assert.ErrorIs(t, err, repository.ErrCollectionStatusNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkReadNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`UPDATE "notifications" SET "read"=\$1 WHERE id = \$2 AND user_id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_CountUnread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1 AND read = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountUnread(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_DecodesDaysAndRoute(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	id := uuid.New()
	collectorID := uuid.New()
	route := []byte(`{"type":"LineString","coordinates":[[121.0762,14.683],[121.0770,14.6841]]}`)

	mock.ExpectQuery(`SELECT \* FROM "schedules" WHERE collector_id = \$1 ORDER BY collection_time, label`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "collector_id", "label", "street_name", "street_id", "barangay", "days", "collection_time", "route", "created_at", "updated_at",
		}).AddRow(id.String(), collectorID.String(), "Main St pickup", "Main St", nil, "Batasan Hills", "Mon, Thu", "07:00", route, time.Now(), time.Now()))

	schedules, err := repo.FindByCollector(context.Background(), collectorID)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, []string{"Mon", "Thu"}, schedules[0].Days)
	require.Len(t, schedules[0].Route, 2)
	assert.InDelta(t, 14.683, schedules[0].Route[0].Lat(), 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}
