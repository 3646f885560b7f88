package report

import "errors"

var (
	ErrReportNotFound         = errors.New("report not found")
	ErrInvalidAudioURL        = errors.New("invalid s3 url")
	ErrMissingAPIKey          = errors.New("missing sas api key")
	ErrScoringTimeout         = errors.New("sas api timeout: no response from the server")
	ErrInvalidScoringResponse = errors.New("invalid sas api response")
	ErrReportSaveFailed       = errors.New("unable to update or create report document")
)
