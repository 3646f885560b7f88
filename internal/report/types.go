package report

import "fluency-srv/internal/model"

// UploadDetailsInput registers a learner and story before any audio
// exists. ID is the deprecated alternate entry point: when supplied the
// call amends identity fields of an existing report instead of
// creating one.
type UploadDetailsInput struct {
	ID    string
	UID   string
	Name  string
	Story string
}

// UploadDetailsOutput carries the stored report and whether it was
// newly created (201) or amended through the legacy path (200).
type UploadDetailsOutput struct {
	Report  *model.Report
	Created bool
}

// UploadAudioInput attaches a base64 audio payload to a report. ID is
// optional: present means full overwrite of that record, absent means
// create.
type UploadAudioInput struct {
	ID        string
	UID       string
	Name      string
	Story     string
	AudioFile string
}

// GenerateReportInput triggers the scoring round trip for an uploaded
// recording. RequestTime is the client-observed submission timestamp
// and is persisted verbatim.
type GenerateReportInput struct {
	ID              string
	AudioURL        string
	ReferenceTextID string
	RequestTime     string
}
