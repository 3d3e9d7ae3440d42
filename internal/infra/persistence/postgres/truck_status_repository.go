package postgres

import (
	"context"

	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// truckStatusRepository implements the repository.TruckStatusRepository interface.
type truckStatusRepository struct {
	db *gorm.DB
}

// NewTruckStatusRepository is the constructor for truckStatusRepository.
func NewTruckStatusRepository(db *gorm.DB) repository.TruckStatusRepository {
	return &truckStatusRepository{
		db: db,
	}
}

// Upsert writes the full status row, inserting it on first use.
func (repo *truckStatusRepository) Upsert(ctx context.Context, status *entity.TruckStatus) error {
	statusM := fromTruckStatusDomain(status)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "truck_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_full", "is_collecting", "latitude", "longitude", "updated_at", "updated_by",
			}),
		}).
		Create(statusM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTruckUpdateFailed.WrapMessage("missing required truck status information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert truck status")
	}

	status.UpdatedAt = statusM.UpdatedAt

	return nil
}

// FindByID retrieves the status of a single truck.
func (repo *truckStatusRepository) FindByID(ctx context.Context, truckID string) (*entity.TruckStatus, error) {
	var statusM model.TruckStatusModel

	if err := repo.db.WithContext(ctx).
		Where("truck_id = ?", truckID).
		First(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTruckStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find truck status")
	}

	return toTruckStatusDomain(&statusM), nil
}

// FindAll retrieves every known truck.
func (repo *truckStatusRepository) FindAll(ctx context.Context) ([]*entity.TruckStatus, error) {
	return repo.find(repo.db.WithContext(ctx))
}

// FindCollecting retrieves trucks that are collecting and carry a position fix.
func (repo *truckStatusRepository) FindCollecting(ctx context.Context) ([]*entity.TruckStatus, error) {
	return repo.find(repo.db.WithContext(ctx).
		Where("is_collecting = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true))
}

func (repo *truckStatusRepository) find(query *gorm.DB) ([]*entity.TruckStatus, error) {
	var statusModels []*model.TruckStatusModel
	if err := query.Order("truck_id").Find(&statusModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list truck statuses")
	}

	statuses := make([]*entity.TruckStatus, 0, len(statusModels))
	for _, statusM := range statusModels {
		statuses = append(statuses, toTruckStatusDomain(statusM))
	}

	return statuses, nil
}

// --- Mapper Functions ---

func toTruckStatusDomain(data *model.TruckStatusModel) *entity.TruckStatus {
	if data == nil {
		return nil
	}

	return &entity.TruckStatus{
		TruckID:      data.TruckID,
		IsFull:       data.IsFull,
		IsCollecting: data.IsCollecting,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		UpdatedAt:    data.UpdatedAt,
		UpdatedBy:    data.UpdatedBy,
	}
}

func fromTruckStatusDomain(data *entity.TruckStatus) *model.TruckStatusModel {
	if data == nil {
		return nil
	}

	return &model.TruckStatusModel{
		TruckID:      data.TruckID,
		IsFull:       data.IsFull,
		IsCollecting: data.IsCollecting,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		UpdatedAt:    data.UpdatedAt,
		UpdatedBy:    data.UpdatedBy,
	}
}
