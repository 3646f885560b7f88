package repository

import (
	"context"

	"fluency-srv/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	CreateReport(ctx context.Context, opts CreateReportOptions) (*model.Report, error)
	ReplaceReport(ctx context.Context, opts ReplaceReportOptions) (*model.Report, error)
	UpdateReportDetails(ctx context.Context, opts UpdateDetailsOptions) (*model.Report, error)
	UpdateReportGenerated(ctx context.Context, opts UpdateGeneratedOptions) (*model.Report, error)
	ListReports(ctx context.Context) ([]*model.Report, error)
}

//go:generate mockery --name MongoRepository
type MongoRepository interface {
	ReportRepository
}
