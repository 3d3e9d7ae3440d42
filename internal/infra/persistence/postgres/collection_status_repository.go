package postgres

import (
	"context"
	"time"

	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionStatusKeyColumns is the conflict target backed by idx_collection_status_key.
var collectionStatusKeyColumns = []clause.Column{
	{Name: "schedule_id"},
	{Name: "street_name"},
	{Name: "collection_date"},
}

// collectionStatusUpdateColumns are overwritten from the incoming row on conflict.
var collectionStatusUpdateColumns = []string{
	"street_id",
	"barangay_name",
	"collector_id",
	"status",
	"marked_at",
	"marked_by",
	"updated_at",
}

// collectionStatusRepository implements the repository.CollectionStatusRepository interface.
type collectionStatusRepository struct {
	db *gorm.DB
}

// NewCollectionStatusRepository is the constructor for collectionStatusRepository.
func NewCollectionStatusRepository(db *gorm.DB) repository.CollectionStatusRepository {
	return &collectionStatusRepository{
		db: db,
	}
}

// Find retrieves the row for a composite key.
func (repo *collectionStatusRepository) Find(ctx context.Context, key entity.CollectionKey) (*entity.CollectionStatusRecord, error) {
	date, err := parseCollectionDate(key.CollectionDate)
	if err != nil {
		return nil, err
	}

	var statusM model.CollectionStatusModel
	if err := repo.db.WithContext(ctx).
		Where("schedule_id = ? AND street_name = ? AND collection_date = ?", key.ScheduleID, key.StreetName, date).
		First(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection status")
	}

	return toCollectionStatusDomain(&statusM), nil
}

// Upsert atomically inserts or updates the row for the record's composite key.
// The optional guard becomes the WHERE clause of ON CONFLICT DO UPDATE, so a stored
// row in a protected status is left as is and no row is returned.
func (repo *collectionStatusRepository) Upsert(ctx context.Context, record *entity.CollectionStatusRecord, replaceable ...entity.CollectionStatus) (bool, error) {
	if !record.Status.IsValid() {
		return false, domainerrors.ErrValidationFailed.WrapMessage("invalid collection status " + string(record.Status))
	}

	statusM, err := fromCollectionStatusDomain(record)
	if err != nil {
		return false, err
	}

	onConflict := clause.OnConflict{
		Columns:   collectionStatusKeyColumns,
		DoUpdates: clause.AssignmentColumns(collectionStatusUpdateColumns),
	}
	if len(replaceable) > 0 {
		values := make([]any, 0, len(replaceable))
		for _, status := range replaceable {
			values = append(values, string(status))
		}
		onConflict.Where = clause.Where{Exprs: []clause.Expression{
			clause.IN{
				Column: clause.Column{Table: statusM.TableName(), Name: "status"},
				Values: values,
			},
		}}
	}

	result := repo.db.WithContext(ctx).
		Clauses(onConflict, clause.Returning{}).
		Create(statusM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("collection status rejected by check constraint")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrScheduleNotFound.WrapMessage("collection status references an unknown schedule")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert collection status")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	*record = *toCollectionStatusDomain(statusM)

	return true, nil
}

// FindByCollectorAndDate retrieves all rows a collector owns for a calendar date.
func (repo *collectionStatusRepository) FindByCollectorAndDate(ctx context.Context, collectorID uuid.UUID, date string) ([]*entity.CollectionStatusRecord, error) {
	day, err := parseCollectionDate(date)
	if err != nil {
		return nil, err
	}

	var statusModels []*model.CollectionStatusModel
	if err := repo.db.WithContext(ctx).
		Where("collector_id = ? AND collection_date = ?", collectorID, day).
		Order("street_name").
		Find(&statusModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find collection statuses by collector")
	}

	records := make([]*entity.CollectionStatusRecord, 0, len(statusModels))
	for _, statusM := range statusModels {
		records = append(records, toCollectionStatusDomain(statusM))
	}

	return records, nil
}

func parseCollectionDate(date string) (time.Time, error) {
	day, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidDate.WrapMessage(date)
	}

	return day, nil
}

// --- Mapper Functions ---

// toCollectionStatusDomain converts a GORM CollectionStatusModel to a domain CollectionStatusRecord.
func toCollectionStatusDomain(data *model.CollectionStatusModel) *entity.CollectionStatusRecord {
	if data == nil {
		return nil
	}

	return &entity.CollectionStatusRecord{
		ID:             data.ID,
		ScheduleID:     data.ScheduleID,
		StreetName:     data.StreetName,
		StreetID:       data.StreetID,
		BarangayName:   data.BarangayName,
		CollectorID:    data.CollectorID,
		CollectionDate: data.CollectionDate.Format(entity.DateLayout),
		Status:         entity.CollectionStatus(data.Status),
		MarkedAt:       data.MarkedAt,
		MarkedBy:       data.MarkedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCollectionStatusDomain converts a domain CollectionStatusRecord to a GORM CollectionStatusModel.
func fromCollectionStatusDomain(data *entity.CollectionStatusRecord) (*model.CollectionStatusModel, error) {
	date, err := parseCollectionDate(data.CollectionDate)
	if err != nil {
		return nil, err
	}

	return &model.CollectionStatusModel{
		ID:             data.ID,
		ScheduleID:     data.ScheduleID,
		StreetName:     data.StreetName,
		CollectionDate: date,
		StreetID:       data.StreetID,
		BarangayName:   data.BarangayName,
		CollectorID:    data.CollectorID,
		Status:         string(data.Status),
		MarkedAt:       data.MarkedAt,
		MarkedBy:       data.MarkedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}
