package sas

import pkghttp "fluency-srv/pkg/http"

// SASConfig holds configuration for the speech-analysis service client.
type SASConfig struct {
	// BaseURL is the full scoring endpoint.
	BaseURL string
	// APIKey is sent in the x-api-key header.
	APIKey     string
	HTTPClient pkghttp.IClient
}

// ScoreRequest identifies the recording and the reference text to
// score it against.
type ScoreRequest struct {
	S3URL           string `json:"s3_url"`
	ReferenceTextID string `json:"reference_text_id"`
}

// ScoreResponse is the scoring service's full result. WordScores is a
// list of per-word tuples whose first element is the classification
// tag; the remaining elements are unspecified and passed through as-is.
type ScoreResponse struct {
	AudioType      string  `json:"audio_type"`
	FileID         string  `json:"file_id"`
	DecodedText    string  `json:"decoded_text"`
	NoWords        int     `json:"no_words"`
	NoDel          int     `json:"no_del"`
	DelDetails     string  `json:"del_details"`
	NoIns          int     `json:"no_ins"`
	InsDetails     string  `json:"ins_details"`
	NoSubs         int     `json:"no_subs"`
	SubsDetails    string  `json:"subs_details"`
	NoMiscue       int     `json:"no_miscue"`
	NoCorr         int     `json:"no_corr"`
	WCPM           float64 `json:"wcpm"`
	SpeechRate     float64 `json:"speech_rate"`
	PronScore      float64 `json:"pron_score"`
	PercentAttempt float64 `json:"percent_attempt"`
	WordScores     [][]any `json:"word_scores"`
}

// sasImpl implements ISAS.
type sasImpl struct {
	baseURL    string
	apiKey     string
	httpClient pkghttp.IClient
}
