package report

import (
	"context"

	"gorm.io/gorm"

	"nourishnet/entities"
)

type (
	ReportRepository interface {
		CreateReport(ctx context.Context, report *entities.Report) error
		GetReportByID(ctx context.Context, id string) (*entities.Report, error)
		GetReports(ctx context.Context, status string, page, limit int) ([]*entities.Report, int64, error)
		UpdateReportStatus(ctx context.Context, id, status string) error
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *entities.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetReportByID(ctx context.Context, id string) (*entities.Report, error) {
	var report entities.Report
	if err := r.db.WithContext(ctx).
		Preload("Reporter").
		Where("id = ?", id).
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetReports(ctx context.Context, status string, page, limit int) ([]*entities.Report, int64, error) {
	var reports []*entities.Report
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Report{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Reporter").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, count, nil
}

func (r *reportRepository) UpdateReportStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Report{}).
		Where("id = ?", id).
		Update("status", status).Error
}
