package usecase

import (
	"context"
	"errors"

	"fluency-srv/internal/model"
	"fluency-srv/internal/report"
	"fluency-srv/internal/report/repository"
)

// FetchAllReports returns every stored report as-is.
func (uc *implUseCase) FetchAllReports(ctx context.Context) ([]*model.Report, error) {
	reports, err := uc.repo.ListReports(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.FetchAllReports: Failed to list reports: %v", err)
		return nil, err
	}
	return reports, nil
}

// UploadDetails registers a learner and story ahead of any audio. The
// canonical path always creates a fresh record with both stage flags
// false.
//
// Deprecated alternate entry point: when input.ID is set, only the
// identity fields of that record are amended; stage flags and any
// stored score are left untouched. New clients should not send an id.
func (uc *implUseCase) UploadDetails(ctx context.Context, input report.UploadDetailsInput) (report.UploadDetailsOutput, error) {
	if input.ID != "" {
		updated, err := uc.repo.UpdateReportDetails(ctx, repository.UpdateDetailsOptions{
			ReportID: input.ID,
			UID:      input.UID,
			Name:     input.Name,
			Story:    input.Story,
		})
		if errors.Is(err, repository.ErrReportNotFound) {
			return report.UploadDetailsOutput{}, report.ErrReportNotFound
		}
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.UploadDetails: Failed to update report details: %v", err)
			return report.UploadDetailsOutput{}, report.ErrReportSaveFailed
		}
		return report.UploadDetailsOutput{Report: updated, Created: false}, nil
	}

	created, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		UID:   input.UID,
		Name:  input.Name,
		Story: input.Story,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.UploadDetails: Failed to create report: %v", err)
		return report.UploadDetailsOutput{}, report.ErrReportSaveFailed
	}

	return report.UploadDetailsOutput{Report: created, Created: true}, nil
}
