package usecase

import (
	"context"
	"errors"
	"fmt"

	"fluency-srv/internal/model"
	"fluency-srv/internal/report"
	"fluency-srv/internal/report/repository"
)

// UploadAudio hands the base64 payload to the storage relay and
// records the returned durable URL. The relay call is fully sequenced
// before any store write, so a relay failure leaves nothing behind.
//
// With an id the record is fully overwritten: identity fields, the new
// URL, audio flag true and generated flag forced back to false — a
// re-upload invalidates any prior score. Without an id a new record is
// created in the audio-attached stage.
func (uc *implUseCase) UploadAudio(ctx context.Context, input report.UploadAudioInput) (*model.Report, error) {
	s3URL, err := uc.relay.UploadAudio(ctx, input.AudioFile)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.UploadAudio: Relay upload failed: %v", err)
		return nil, fmt.Errorf("failed to upload audio: %w", err)
	}

	if input.ID != "" {
		updated, err := uc.repo.ReplaceReport(ctx, repository.ReplaceReportOptions{
			ReportID: input.ID,
			UID:      input.UID,
			Name:     input.Name,
			Story:    input.Story,
			AudioURL: s3URL,
		})
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, report.ErrReportSaveFailed
		}
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.UploadAudio: Failed to replace report: %v", err)
			return nil, report.ErrReportSaveFailed
		}
		return updated, nil
	}

	created, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		UID:             input.UID,
		Name:            input.Name,
		Story:           input.Story,
		AudioURL:        s3URL,
		IsAudioUploaded: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.UploadAudio: Failed to create report: %v", err)
		return nil, report.ErrReportSaveFailed
	}

	return created, nil
}
