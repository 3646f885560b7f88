package http

import (
	"fluency-srv/internal/model"
	"fluency-srv/internal/report"
)

type uploadDetailsReq struct {
	// ID is the deprecated amend-in-place entry point; new clients
	// never send it.
	ID    string `json:"_id,omitempty"`
	UID   string `json:"uid" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Story string `json:"story" binding:"required"`
}

func (r uploadDetailsReq) toInput() report.UploadDetailsInput {
	return report.UploadDetailsInput{
		ID:    r.ID,
		UID:   r.UID,
		Name:  r.Name,
		Story: r.Story,
	}
}

type uploadAudioReq struct {
	ID        string `json:"_id,omitempty"`
	UID       string `json:"uid" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Story     string `json:"story" binding:"required"`
	AudioFile string `json:"audioFile" binding:"required"`
}

func (r uploadAudioReq) toInput() report.UploadAudioInput {
	return report.UploadAudioInput{
		ID:        r.ID,
		UID:       r.UID,
		Name:      r.Name,
		Story:     r.Story,
		AudioFile: r.AudioFile,
	}
}

type generateReportReq struct {
	ID              string `json:"_id" binding:"required"`
	AudioURL        string `json:"audio_url" binding:"required"`
	ReferenceTextID string `json:"reference_text_id" binding:"required"`
	RequestTime     string `json:"request_time" binding:"required"`
}

func (r generateReportReq) toInput() report.GenerateReportInput {
	return report.GenerateReportInput{
		ID:              r.ID,
		AudioURL:        r.AudioURL,
		ReferenceTextID: r.ReferenceTextID,
		RequestTime:     r.RequestTime,
	}
}

// reportSummaryResp is the trimmed body for the two upload endpoints:
// identity, stage flags and story, plus the audio URL once one exists.
// Scoring fields are never included here even if present on the record.
type reportSummaryResp struct {
	ID                string `json:"_id"`
	UID               string `json:"uid"`
	Name              string `json:"name"`
	IsAudioUploaded   bool   `json:"is_audio_uploaded"`
	IsReportGenerated bool   `json:"is_report_generated"`
	Story             string `json:"story"`
	AudioURL          string `json:"audio_url,omitempty"`
}

func (h *handler) newSummaryResp(rpt *model.Report, includeAudioURL bool) reportSummaryResp {
	resp := reportSummaryResp{
		ID:                rpt.ID.Hex(),
		UID:               rpt.UID,
		Name:              rpt.Name,
		IsAudioUploaded:   rpt.IsAudioUploaded,
		IsReportGenerated: rpt.IsReportGenerated,
		Story:             rpt.Story,
	}
	if includeAudioURL && rpt.AudioURL != nil {
		resp.AudioURL = *rpt.AudioURL
	}
	return resp
}
