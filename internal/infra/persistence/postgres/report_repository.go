package postgres

import (
	"context"

	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// FindByUser retrieves every report filed by the user, oldest first.
func (repo *reportRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error) {
	var reportModels []*model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reports by user")
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, &entity.Report{
			ID:        reportM.ID,
			UserID:    reportM.UserID,
			Title:     reportM.Title,
			Status:    entity.ReportStatus(reportM.Status),
			CreatedAt: reportM.CreatedAt,
			UpdatedAt: reportM.UpdatedAt,
		})
	}

	return reports, nil
}
