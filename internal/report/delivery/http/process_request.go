package http

import "github.com/gin-gonic/gin"

func (h *handler) processUploadDetailsRequest(c *gin.Context) (uploadDetailsReq, error) {
	var req uploadDetailsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "report.delivery.http.processUploadDetailsRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}
	return req, nil
}

func (h *handler) processUploadAudioRequest(c *gin.Context) (uploadAudioReq, error) {
	var req uploadAudioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "report.delivery.http.processUploadAudioRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}
	return req, nil
}

func (h *handler) processGenerateReportRequest(c *gin.Context) (generateReportReq, error) {
	var req generateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "report.delivery.http.processGenerateReportRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}
	return req, nil
}
