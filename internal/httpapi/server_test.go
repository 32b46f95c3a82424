package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/session"
)

func newTestServer(t *testing.T, svc *session.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewServer(svc, nil, nil, nil).Router("test")
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var payload map[string]any
	if len(rec.Body.Bytes()) > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, payload
}

func TestHealthz(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))
	rec, payload := doJSON(t, r, http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if payload["status"] != "ok" {
		t.Errorf("status field = %v, want ok", payload["status"])
	}
}

func TestRecordAnswerEndpoint(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))

	body := `{"item_id": "q1", "subject": "portugues", "correct": true, "difficulty": "medium"}`
	rec, payload := doJSON(t, r, http.MethodPost, "/api/answer", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if payload["quality"] != float64(4) {
		t.Errorf("quality = %v, want 4", payload["quality"])
	}
	overall := payload["overall"].(map[string]any)
	if overall["value"] != float64(1016) {
		t.Errorf("overall = %v, want 1016", overall["value"])
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))

	tests := []struct {
		name string
		body string
	}{
		{"missing item id", `{"subject": "portugues", "correct": true}`},
		{"grade out of range", `{"item_id": "q1", "grade": 9}`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, payload := doJSON(t, r, http.MethodPost, "/api/answer", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if _, ok := payload["error"]; !ok {
				t.Error("expected error envelope")
			}
		})
	}
}

func TestBuildQueueEndpoint(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))

	body := `{"items": [
		{"id": "q1", "subject": "portugues", "topic": "crase"},
		{"id": "q2", "subject": "direito"}
	], "limit": 0}`
	rec, payload := doJSON(t, r, http.MethodPost, "/api/queue", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if payload["count"] != float64(2) {
		t.Errorf("count = %v, want 2 (no cards means everything is due)", payload["count"])
	}
}

func TestScheduleWithoutSubjects(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))

	rec, payload := doJSON(t, r, http.MethodGet, "/api/schedule", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	errObj := payload["error"].(map[string]any)
	if errObj["code"] != "no_subjects" {
		t.Errorf("code = %v, want no_subjects", errObj["code"])
	}
}

func TestScheduleEndpoint(t *testing.T) {
	svc := session.NewService(nil, nil)
	svc.Configure([]planner.Subject{
		{ID: "portugues", Name: "Português", Weight: 3},
	}, planner.DefaultConfig(), session.Exam{})
	r := newTestServer(t, svc)

	// 2026-03-10 is a Tuesday, a study day under the default config.
	rec, payload := doJSON(t, r, http.MethodGet, "/api/schedule?date=2026-03-10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	blocks, ok := payload["blocks"].([]any)
	if !ok || len(blocks) == 0 {
		t.Errorf("expected study blocks, got %v", payload["blocks"])
	}
}

func TestScheduleBadDate(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))
	rec, _ := doJSON(t, r, http.MethodGet, "/api/schedule?date=10-03-2026", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPredictEndpointLowData(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))

	rec, payload := doJSON(t, r, http.MethodGet, "/api/predict", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	pred := payload["prediction"].(map[string]any)
	if pred["predicted_score"] != float64(50) {
		t.Errorf("score = %v, want neutral 50 with no data", pred["predicted_score"])
	}
	if payload["summary"] == "" {
		t.Error("expected a summary")
	}
}

func TestStatsEndpoint(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))

	rec, payload := doJSON(t, r, http.MethodGet, "/api/stats?days=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if _, ok := payload["deck"]; !ok {
		t.Error("expected deck stats")
	}
	forecast, ok := payload["forecast"].([]any)
	if !ok || len(forecast) != 3 {
		t.Errorf("forecast = %v, want 3 days", payload["forecast"])
	}
}

func TestStatsQueueBreakdown(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))

	body := `{"item_id": "q1", "subject": "portugues", "correct": true, "effort": "easy"}`
	if rec, _ := doJSON(t, r, http.MethodPost, "/api/answer", body); rec.Code != http.StatusOK {
		t.Fatalf("record answer status = %d", rec.Code)
	}

	rec, payload := doJSON(t, r, http.MethodGet, "/api/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	q, ok := payload["queue"].(map[string]any)
	if !ok {
		t.Fatalf("expected queue breakdown, got %v", payload["queue"])
	}
	// The pass pushed q1's next review a day out.
	if due, _ := q["due"].([]any); len(due) != 0 {
		t.Errorf("due = %v, want none right after a pass", due)
	}
	notDue, _ := q["not_due"].([]any)
	if len(notDue) != 1 || notDue[0] != "q1" {
		t.Errorf("not_due = %v, want [q1]", notDue)
	}
}

func TestSuggestEndpoint(t *testing.T) {
	svc := session.NewService(nil, nil)
	svc.Configure([]planner.Subject{
		{ID: "portugues", Name: "Português", Weight: 3},
	}, planner.DefaultConfig(), session.Exam{})
	r := newTestServer(t, svc)

	rec, payload := doJSON(t, r, http.MethodGet, "/api/suggest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if payload["id"] != "portugues" {
		t.Errorf("suggested id = %v, want portugues", payload["id"])
	}
}

func TestStatsBadDays(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))
	rec, _ := doJSON(t, r, http.MethodGet, "/api/stats?days=zero", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestProgressEndpoint(t *testing.T) {
	r := newTestServer(t, session.NewService(nil, nil))

	rec, payload := doJSON(t, r, http.MethodGet, "/api/progress?studied_minutes=1440", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	// Default config: 4h over 6 study days is a 1440-minute weekly target.
	if payload["status"] != "on_track" {
		t.Errorf("status = %v, want on_track", payload["status"])
	}
}
