package postgres

import (
	"context"
	"strings"

	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

func (repo *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	var scheduleM model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule by ID")
	}

	return toScheduleDomain(&scheduleM), nil
}

// FindByStreetAndArea matches case-insensitively on street or label and barangay.
func (repo *scheduleRepository) FindByStreetAndArea(ctx context.Context, street, area string) (*entity.Schedule, error) {
	street = entity.CanonicalName(street)
	area = entity.CanonicalName(area)
	if street == "" {
		return nil, repository.ErrScheduleNotFound
	}

	query := repo.db.WithContext(ctx).
		Where("(LOWER(TRIM(street_name)) = LOWER(?) OR LOWER(TRIM(label)) = LOWER(?))", street, street)
	if area != "" {
		query = query.Where("LOWER(TRIM(barangay)) = LOWER(?)", area)
	}

	var scheduleM model.ScheduleModel
	if err := query.Order("id").First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule by street and area")
	}

	return toScheduleDomain(&scheduleM), nil
}

func (repo *scheduleRepository) FindByCollector(ctx context.Context, collectorID uuid.UUID) ([]*entity.Schedule, error) {
	return repo.find(repo.db.WithContext(ctx).Where("collector_id = ?", collectorID))
}

func (repo *scheduleRepository) FindAll(ctx context.Context) ([]*entity.Schedule, error) {
	return repo.find(repo.db.WithContext(ctx))
}

func (repo *scheduleRepository) find(query *gorm.DB) ([]*entity.Schedule, error) {
	var scheduleModels []*model.ScheduleModel
	if err := query.Order("collection_time, label").Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list schedules")
	}

	schedules := make([]*entity.Schedule, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		schedules = append(schedules, toScheduleDomain(scheduleM))
	}

	return schedules, nil
}

// --- Mapper Functions ---

func toScheduleDomain(data *model.ScheduleModel) *entity.Schedule {
	if data == nil {
		return nil
	}

	return &entity.Schedule{
		ID:             data.ID,
		CollectorID:    data.CollectorID,
		Label:          data.Label,
		StreetName:     data.StreetName,
		StreetID:       data.StreetID,
		Barangay:       data.Barangay,
		Days:           splitDays(data.Days),
		CollectionTime: data.CollectionTime,
		Route:          decodeRoute(data.Route),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func splitDays(days string) []string {
	parts := strings.Split(days, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if day := strings.TrimSpace(part); day != "" {
			result = append(result, day)
		}
	}

	return result
}

// decodeRoute reads a GeoJSON LineString geometry. Anything else yields no route.
func decodeRoute(raw []byte) orb.LineString {
	if len(raw) == 0 {
		return nil
	}

	geometry, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil
	}

	line, ok := geometry.Geometry().(orb.LineString)
	if !ok {
		return nil
	}

	return line
}
