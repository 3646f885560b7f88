package repository

// CreateReportOptions inserts a fresh report. AudioURL is empty for the
// details-only path; when set, IsAudioUploaded must be true.
type CreateReportOptions struct {
	UID             string
	Name            string
	Story           string
	AudioURL        string
	IsAudioUploaded bool
}

// ReplaceReportOptions fully overwrites an existing record: identity
// fields, the new audio URL, audio flag true, generated flag false.
// Any previously stored scoring fields are dropped by the replace.
type ReplaceReportOptions struct {
	ReportID string
	UID      string
	Name     string
	Story    string
	AudioURL string
}

// UpdateDetailsOptions merges identity fields only, leaving stage flags
// and optional fields untouched. Legacy upload-details path.
type UpdateDetailsOptions struct {
	ReportID string
	UID      string
	Name     string
	Story    string
}

// UpdateGeneratedOptions merges the complete scoring result into an
// existing record in one atomic update, setting the generated flag.
type UpdateGeneratedOptions struct {
	ReportID string

	// Scoring service result
	FileID         string
	AudioType      string
	DecodedText    string
	NoWords        int
	NoDel          int
	DelDetails     string
	NoIns          int
	InsDetails     string
	NoSubs         int
	SubsDetails    string
	NoMiscue       int
	NoCorr         int
	WCPM           float64
	SpeechRate     float64
	PronScore      float64
	PercentAttempt float64

	// Derived and request-supplied
	CorrectText  string
	AudioURL     string
	RequestTime  string
	ResponseTime string
}
