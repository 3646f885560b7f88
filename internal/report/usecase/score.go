package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fluency-srv/internal/model"
	"fluency-srv/internal/report"
	"fluency-srv/internal/report/repository"
	"fluency-srv/pkg/sas"
	"fluency-srv/pkg/util"
)

const (
	secureSchemePrefix = "https://"
	storageMarker      = "s3"
	scoringTimeout     = 30 * time.Second
)

// GenerateReport runs the scoring round trip and merges the result
// into the report. The audio URL is checked before anything leaves the
// process: the scoring service is paid per call and must never be
// pointed at an arbitrary or local URL. The store update is a single
// atomic merge, so the record is either unchanged or fully scored.
func (uc *implUseCase) GenerateReport(ctx context.Context, input report.GenerateReportInput) (*model.Report, error) {
	if !strings.HasPrefix(input.AudioURL, secureSchemePrefix) || !strings.Contains(input.AudioURL, storageMarker) {
		return nil, report.ErrInvalidAudioURL
	}

	if uc.config.ScoringAPIKey == "" {
		return nil, report.ErrMissingAPIKey
	}

	scoreCtx, cancel := context.WithTimeout(ctx, scoringTimeout)
	defer cancel()

	resp, err := uc.sas.ScoreReading(scoreCtx, sas.ScoreRequest{
		S3URL:           input.AudioURL,
		ReferenceTextID: input.ReferenceTextID,
	})
	if errors.Is(err, sas.ErrTimeout) {
		uc.l.Errorf(ctx, "report.usecase.GenerateReport: Scoring call timed out after %s", scoringTimeout)
		return nil, report.ErrScoringTimeout
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GenerateReport: Scoring call failed: %v", err)
		return nil, report.ErrInvalidScoringResponse
	}
	if resp == nil || resp.AudioType != sas.AudioTypeOK {
		uc.l.Errorf(ctx, "report.usecase.GenerateReport: Unusable scoring result, audio_type=%q", audioType(resp))
		return nil, report.ErrInvalidScoringResponse
	}

	// The response time is the moment the scoring call returned, in
	// IST regardless of host locale. Captured before the store write.
	responseTime := util.FormatISTMillis(time.Now())
	correctText := encodeWordAlignment(resp.WordScores)

	updated, err := uc.repo.UpdateReportGenerated(ctx, repository.UpdateGeneratedOptions{
		ReportID: input.ID,

		FileID:         resp.FileID,
		AudioType:      resp.AudioType,
		DecodedText:    resp.DecodedText,
		NoWords:        resp.NoWords,
		NoDel:          resp.NoDel,
		DelDetails:     resp.DelDetails,
		NoIns:          resp.NoIns,
		InsDetails:     resp.InsDetails,
		NoSubs:         resp.NoSubs,
		SubsDetails:    resp.SubsDetails,
		NoMiscue:       resp.NoMiscue,
		NoCorr:         resp.NoCorr,
		WCPM:           resp.WCPM,
		SpeechRate:     resp.SpeechRate,
		PronScore:      resp.PronScore,
		PercentAttempt: resp.PercentAttempt,

		CorrectText:  correctText,
		AudioURL:     input.AudioURL,
		RequestTime:  input.RequestTime,
		ResponseTime: responseTime,
	})
	if errors.Is(err, repository.ErrReportNotFound) {
		return nil, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GenerateReport: Failed to merge scoring result: %v", err)
		return nil, report.ErrReportSaveFailed
	}

	return updated, nil
}

func audioType(resp *sas.ScoreResponse) string {
	if resp == nil {
		return ""
	}
	return resp.AudioType
}
