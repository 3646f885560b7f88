package http

import (
	"errors"
	"net/http"

	"fluency-srv/internal/report"
	pkgErrors "fluency-srv/pkg/errors"
)

var (
	errReportNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "Report not found")
	errInvalidAudioURL  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid S3 URL")
	errMissingAPIKey    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing SAS API Key")
	errScoringTimeout   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "SAS API timeout: No response from the server.")
	errInvalidScoring   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Invalid SAS API response")
	errReportSaveFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Unable to update or create report document")
)

// mapError translates usecase sentinels into HTTP errors. Anything
// unmapped surfaces as a 500 carrying the error detail, matching the
// upstream-propagation behavior of the failure contract.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrInvalidAudioURL):
		return errInvalidAudioURL
	case errors.Is(err, report.ErrMissingAPIKey):
		return errMissingAPIKey
	case errors.Is(err, report.ErrScoringTimeout):
		return errScoringTimeout
	case errors.Is(err, report.ErrInvalidScoringResponse):
		return errInvalidScoring
	case errors.Is(err, report.ErrReportSaveFailed):
		return errReportSaveFailed
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
