package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fluency-srv/internal/middleware"
	"fluency-srv/internal/model"
	"fluency-srv/internal/report"
	"fluency-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUseCase struct {
	fetchAllFn      func(ctx context.Context) ([]*model.Report, error)
	uploadDetailsFn func(ctx context.Context, input report.UploadDetailsInput) (report.UploadDetailsOutput, error)
	uploadAudioFn   func(ctx context.Context, input report.UploadAudioInput) (*model.Report, error)
	generateFn      func(ctx context.Context, input report.GenerateReportInput) (*model.Report, error)
}

func (f *fakeUseCase) FetchAllReports(ctx context.Context) ([]*model.Report, error) {
	return f.fetchAllFn(ctx)
}

func (f *fakeUseCase) UploadDetails(ctx context.Context, input report.UploadDetailsInput) (report.UploadDetailsOutput, error) {
	return f.uploadDetailsFn(ctx, input)
}

func (f *fakeUseCase) UploadAudio(ctx context.Context, input report.UploadAudioInput) (*model.Report, error) {
	return f.uploadAudioFn(ctx, input)
}

func (f *fakeUseCase) GenerateReport(ctx context.Context, input report.GenerateReportInput) (*model.Report, error) {
	return f.generateFn(ctx, input)
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	h := New(l, uc, nil)
	h.RegisterRoutes(r.Group("/reports"), middleware.New(l))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body %q is not a message envelope: %v", w.Body.String(), err)
	}
	return body.Message
}

func TestFetchAllReportsHandler(t *testing.T) {
	t.Run("returns the raw list", func(t *testing.T) {
		uc := &fakeUseCase{
			fetchAllFn: func(context.Context) ([]*model.Report, error) {
				return []*model.Report{{ID: primitive.NewObjectID(), UID: "u1", Name: "Alice", Story: "s"}}, nil
			},
		}
		w := doJSON(t, newTestRouter(uc), http.MethodGet, "/reports/fetch-all-reports", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", w.Code)
		}

		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("body is not a json array: %v", err)
		}
		if len(got) != 1 || got[0]["uid"] != "u1" {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestUploadDetailsHandler(t *testing.T) {
	t.Run("creation responds 201 with a summary", func(t *testing.T) {
		uc := &fakeUseCase{
			uploadDetailsFn: func(_ context.Context, input report.UploadDetailsInput) (report.UploadDetailsOutput, error) {
				return report.UploadDetailsOutput{
					Report:  &model.Report{ID: primitive.NewObjectID(), UID: input.UID, Name: input.Name, Story: input.Story},
					Created: true,
				}, nil
			},
		}
		w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/upload-details",
			`{"uid": "u1", "name": "Alice", "story": "The fox runs."}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status %d, want 201", w.Code)
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got["uid"] != "u1" || got["is_audio_uploaded"] != false {
			t.Errorf("unexpected summary: %s", w.Body.String())
		}
		if _, present := got["audio_url"]; present {
			t.Error("details summary must not carry an audio url")
		}
	})

	t.Run("legacy amend responds 200 with the full record", func(t *testing.T) {
		id := primitive.NewObjectID()
		url := "https://bucket.s3.example.com/a.wav"
		uc := &fakeUseCase{
			uploadDetailsFn: func(_ context.Context, input report.UploadDetailsInput) (report.UploadDetailsOutput, error) {
				if input.ID != id.Hex() {
					t.Errorf("usecase received id %q, want %q", input.ID, id.Hex())
				}
				return report.UploadDetailsOutput{
					Report: &model.Report{ID: id, UID: input.UID, Name: input.Name, Story: input.Story,
						IsAudioUploaded: true, AudioURL: &url},
					Created: false,
				}, nil
			},
		}
		w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/upload-details",
			`{"_id": "`+id.Hex()+`", "uid": "u1", "name": "Alice", "story": "s"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", w.Code)
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got["audio_url"] != url {
			t.Errorf("legacy path must return the full record, got %s", w.Body.String())
		}
	})

	t.Run("legacy amend of a missing id responds 404", func(t *testing.T) {
		uc := &fakeUseCase{
			uploadDetailsFn: func(context.Context, report.UploadDetailsInput) (report.UploadDetailsOutput, error) {
				return report.UploadDetailsOutput{}, report.ErrReportNotFound
			},
		}
		w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/upload-details",
			`{"_id": "`+primitive.NewObjectID().Hex()+`", "uid": "u1", "name": "n", "story": "s"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status %d, want 404", w.Code)
		}
		if msg := decodeMessage(t, w); msg != "Report not found" {
			t.Errorf("message %q", msg)
		}
	})

	t.Run("missing required fields respond 500", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/upload-details", `{"uid": "u1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status %d, want 500", w.Code)
		}
	})
}

func TestUploadAudioHandler(t *testing.T) {
	t.Run("responds 200 with a summary carrying the url", func(t *testing.T) {
		url := "https://bucket.s3.example.com/audio/1.wav"
		uc := &fakeUseCase{
			uploadAudioFn: func(_ context.Context, input report.UploadAudioInput) (*model.Report, error) {
				return &model.Report{ID: primitive.NewObjectID(), UID: input.UID, Name: input.Name,
					Story: input.Story, IsAudioUploaded: true, AudioURL: &url}, nil
			},
		}
		w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/upload-audio",
			`{"uid": "u1", "name": "Alice", "story": "s", "audioFile": "b64"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", w.Code)
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got["audio_url"] != url || got["is_audio_uploaded"] != true {
			t.Errorf("unexpected summary: %s", w.Body.String())
		}
		if _, present := got["wcpm"]; present {
			t.Error("upload summary must not carry scoring fields")
		}
	})

	t.Run("save failure responds 500 with the document message", func(t *testing.T) {
		uc := &fakeUseCase{
			uploadAudioFn: func(context.Context, report.UploadAudioInput) (*model.Report, error) {
				return nil, report.ErrReportSaveFailed
			},
		}
		w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/upload-audio",
			`{"uid": "u1", "name": "n", "story": "s", "audioFile": "b64"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status %d, want 500", w.Code)
		}
		if msg := decodeMessage(t, w); msg != "Unable to update or create report document" {
			t.Errorf("message %q", msg)
		}
	})
}

func TestGenerateReportHandler(t *testing.T) {
	validBody := `{"_id": "` + primitive.NewObjectID().Hex() + `", "audio_url": "https://bucket.s3.example.com/a.wav", "reference_text_id": "ref1", "request_time": "2024-01-01T00:00:00Z"}`

	statusCases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid url responds 400", report.ErrInvalidAudioURL, http.StatusBadRequest, "Invalid S3 URL"},
		{"missing key responds 400", report.ErrMissingAPIKey, http.StatusBadRequest, "Missing SAS API Key"},
		{"missing report responds 404", report.ErrReportNotFound, http.StatusNotFound, "Report not found"},
		{"timeout responds 500", report.ErrScoringTimeout, http.StatusInternalServerError, "SAS API timeout: No response from the server."},
		{"bad scoring result responds 500", report.ErrInvalidScoringResponse, http.StatusInternalServerError, "Invalid SAS API response"},
	}

	for _, tt := range statusCases {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				generateFn: func(context.Context, report.GenerateReportInput) (*model.Report, error) {
					return nil, tt.err
				},
			}
			w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/generate-report", validBody)
			if w.Code != tt.code {
				t.Fatalf("status %d, want %d", w.Code, tt.code)
			}
			if msg := decodeMessage(t, w); msg != tt.message {
				t.Errorf("message %q, want %q", msg, tt.message)
			}
		})
	}

	t.Run("success responds 200 with the full scored record", func(t *testing.T) {
		correct := "1-fox,2-runs"
		uc := &fakeUseCase{
			generateFn: func(_ context.Context, input report.GenerateReportInput) (*model.Report, error) {
				return &model.Report{ID: primitive.NewObjectID(), UID: "u1",
					IsAudioUploaded: true, IsReportGenerated: true, CorrectText: &correct}, nil
			},
		}
		w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/generate-report", validBody)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", w.Code)
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got["correct_text"] != correct || got["is_report_generated"] != true {
			t.Errorf("unexpected record: %s", w.Body.String())
		}
	})

	t.Run("missing required fields respond 500", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doJSON(t, newTestRouter(uc), http.MethodPost, "/reports/generate-report", `{"_id": "x"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status %d, want 500", w.Code)
		}
	})
}
