package http

import (
	"fluency-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Fetch all reports
// @Description Return every stored report, unfiltered
// @Tags Report
// @Produce json
// @Success 200 {array} model.Report
// @Failure 500 {object} response.ErrResp
// @Router /reports/fetch-all-reports [get]
func (h *handler) FetchAllReports(c *gin.Context) {
	ctx := c.Request.Context()

	reports, err := h.uc.FetchAllReports(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.FetchAllReports: usecase FetchAllReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, reports)
}

// @Summary Register learner details
// @Description Create a report with learner identity and story, ahead of any audio
// @Tags Report
// @Accept json
// @Produce json
// @Param body body uploadDetailsReq true "Learner details"
// @Success 201 {object} reportSummaryResp
// @Failure 500 {object} response.ErrResp
// @Router /reports/upload-details [post]
func (h *handler) UploadDetails(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadDetailsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UploadDetails(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.UploadDetails: usecase UploadDetails failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	if !o.Created {
		// Legacy amend path returns the full updated record.
		response.OK(c, o.Report)
		return
	}

	response.Created(c, h.newSummaryResp(o.Report, false))
}

// @Summary Attach an audio recording
// @Description Upload base64 audio through the storage relay and attach the durable URL; with _id the record is fully overwritten and any prior score dropped
// @Tags Report
// @Accept json
// @Produce json
// @Param body body uploadAudioReq true "Audio upload request"
// @Success 200 {object} reportSummaryResp
// @Failure 500 {object} response.ErrResp
// @Router /reports/upload-audio [post]
func (h *handler) UploadAudio(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadAudioRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	rpt, err := h.uc.UploadAudio(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.UploadAudio: usecase UploadAudio failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSummaryResp(rpt, true))
}

// @Summary Generate the fluency score
// @Description Run the speech-analysis round trip for an uploaded recording and merge the scored result into the report
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateReportReq true "Report generation request"
// @Success 200 {object} model.Report
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /reports/generate-report [post]
func (h *handler) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	rpt, err := h.uc.GenerateReport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateReport: usecase GenerateReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, rpt)
}
