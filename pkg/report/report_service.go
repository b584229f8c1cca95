package report

import (
	"context"

	"github.com/google/uuid"

	"nourishnet/domain"
	"nourishnet/entities"
)

type (
	ReportService interface {
		CreateReport(ctx context.Context, req domain.CreateReportRequest, reporterID string) (*domain.Report, error)
		GetReports(ctx context.Context, status string, page, limit int) ([]*domain.Report, int64, error)
		ResolveReport(ctx context.Context, reportID string) (*domain.Report, error)
	}

	reportService struct {
		reportRepository ReportRepository
	}
)

func NewReportService(reportRepository ReportRepository) ReportService {
	return &reportService{reportRepository: reportRepository}
}

func (s *reportService) CreateReport(ctx context.Context, req domain.CreateReportRequest, reporterID string) (*domain.Report, error) {
	reporter, err := uuid.Parse(reporterID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	report := &entities.Report{
		ID:         uuid.New(),
		ReporterID: reporter,
		TargetType: req.TargetType,
		TargetID:   targetID,
		Reason:     req.Reason,
		Comments:   req.Comments,
		Status:     domain.ReportStatusOpen,
	}
	if err := s.reportRepository.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	return convertReport(report), nil
}

func (s *reportService) GetReports(ctx context.Context, status string, page, limit int) ([]*domain.Report, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	reports, count, err := s.reportRepository.GetReports(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.Report, 0, len(reports))
	for _, r := range reports {
		result = append(result, convertReport(r))
	}
	return result, count, nil
}

func (s *reportService) ResolveReport(ctx context.Context, reportID string) (*domain.Report, error) {
	report, err := s.reportRepository.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}
	if report.Status == domain.ReportStatusResolved {
		return convertReport(report), nil
	}

	if err := s.reportRepository.UpdateReportStatus(ctx, reportID, domain.ReportStatusResolved); err != nil {
		return nil, err
	}
	report.Status = domain.ReportStatusResolved
	return convertReport(report), nil
}

func convertReport(report *entities.Report) *domain.Report {
	result := &domain.Report{
		ID:         report.ID.String(),
		ReporterID: report.ReporterID.String(),
		TargetType: report.TargetType,
		TargetID:   report.TargetID.String(),
		Reason:     report.Reason,
		Comments:   report.Comments,
		Status:     report.Status,
		CreatedAt:  report.CreatedAt,
	}
	if report.Reporter != nil {
		result.ReporterName = report.Reporter.Name
	}
	return result
}
