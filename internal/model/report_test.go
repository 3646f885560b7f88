package model

import (
	"errors"
	"testing"
)

func TestReportStage(t *testing.T) {
	tests := []struct {
		name      string
		audio     bool
		generated bool
		want      Stage
		wantErr   error
	}{
		{name: "fresh record is details-only", want: StageDetailsOnly},
		{name: "audio flag alone is audio-attached", audio: true, want: StageAudioAttached},
		{name: "both flags is scored", audio: true, generated: true, want: StageScored},
		{name: "generated without audio is corrupt", generated: true, want: StageDetailsOnly, wantErr: ErrCorruptReportStage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{IsAudioUploaded: tt.audio, IsReportGenerated: tt.generated}
			got, err := r.Stage()
			if got != tt.want {
				t.Errorf("stage %v, want %v", got, tt.want)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err %v, want %v", err, tt.wantErr)
			}
		})
	}
}
