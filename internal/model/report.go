package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Stage is the report lifecycle stage derived from the two progress
// flags. The flags stay the persisted representation; Stage makes the
// legal combinations explicit.
type Stage int

const (
	StageDetailsOnly Stage = iota
	StageAudioAttached
	StageScored
)

// Report represents one learner's reading session: identity and story,
// then optionally a durable audio URL, then optionally the scored
// transcription. Scoring fields are pointers so an unscored record
// persists and serializes without them; they are only ever written
// together in a single update.
type Report struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	// Identity, present from creation
	UID               string `bson:"uid" json:"uid"`
	Name              string `bson:"name" json:"name"`
	Story             string `bson:"story" json:"story"`
	IsAudioUploaded   bool   `bson:"is_audio_uploaded" json:"is_audio_uploaded"`
	IsReportGenerated bool   `bson:"is_report_generated" json:"is_report_generated"`

	// Audio stage
	AudioURL *string `bson:"audio_url,omitempty" json:"audio_url,omitempty"`

	// Scoring stage
	FileID         *string  `bson:"file_id,omitempty" json:"file_id,omitempty"`
	AudioType      *string  `bson:"audio_type,omitempty" json:"audio_type,omitempty"`
	DecodedText    *string  `bson:"decoded_text,omitempty" json:"decoded_text,omitempty"`
	NoWords        *int     `bson:"no_words,omitempty" json:"no_words,omitempty"`
	NoDel          *int     `bson:"no_del,omitempty" json:"no_del,omitempty"`
	DelDetails     *string  `bson:"del_details,omitempty" json:"del_details,omitempty"`
	NoIns          *int     `bson:"no_ins,omitempty" json:"no_ins,omitempty"`
	InsDetails     *string  `bson:"ins_details,omitempty" json:"ins_details,omitempty"`
	NoSubs         *int     `bson:"no_subs,omitempty" json:"no_subs,omitempty"`
	SubsDetails    *string  `bson:"subs_details,omitempty" json:"subs_details,omitempty"`
	NoMiscue       *int     `bson:"no_miscue,omitempty" json:"no_miscue,omitempty"`
	NoCorr         *int     `bson:"no_corr,omitempty" json:"no_corr,omitempty"`
	WCPM           *float64 `bson:"wcpm,omitempty" json:"wcpm,omitempty"`
	SpeechRate     *float64 `bson:"speech_rate,omitempty" json:"speech_rate,omitempty"`
	PronScore      *float64 `bson:"pron_score,omitempty" json:"pron_score,omitempty"`
	PercentAttempt *float64 `bson:"percent_attempt,omitempty" json:"percent_attempt,omitempty"`
	CorrectText    *string  `bson:"correct_text,omitempty" json:"correct_text,omitempty"`
	RequestTime    *string  `bson:"request_time,omitempty" json:"request_time,omitempty"`
	ResponseTime   *string  `bson:"response_time,omitempty" json:"response_time,omitempty"`
}

// Stage derives the lifecycle stage from the progress flags. A record
// marked generated without audio is unreachable through any defined
// transition and is reported as corrupt.
func (r *Report) Stage() (Stage, error) {
	switch {
	case r.IsReportGenerated && !r.IsAudioUploaded:
		return StageDetailsOnly, ErrCorruptReportStage
	case r.IsReportGenerated:
		return StageScored, nil
	case r.IsAudioUploaded:
		return StageAudioAttached, nil
	default:
		return StageDetailsOnly, nil
	}
}
