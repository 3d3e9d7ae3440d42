package postgres

import (
	"context"

	"wastetrack/internal/errors"
	"wastetrack/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// migrate creates or updates the tables owned by this service, including the
// composite unique index that the collection status upsert relies on.
func migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.TruckStatusModel{},
		&model.CollectionStatusModel{},
		&model.NotificationModel{},
		&model.ScheduleModel{},
		&model.AccountModel{},
		&model.ReportModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
