package report

import (
	"context"

	"fluency-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	FetchAllReports(ctx context.Context) ([]*model.Report, error)
	UploadDetails(ctx context.Context, input UploadDetailsInput) (UploadDetailsOutput, error)
	UploadAudio(ctx context.Context, input UploadAudioInput) (*model.Report, error)
	GenerateReport(ctx context.Context, input GenerateReportInput) (*model.Report, error)
}
