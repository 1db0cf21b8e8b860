package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/ojo007/OnlineGradingExam/internal/api/http"
	"github.com/ojo007/OnlineGradingExam/internal/exam"
	"github.com/ojo007/OnlineGradingExam/internal/grading"
	"github.com/ojo007/OnlineGradingExam/internal/nlp"
)

func TestGradeHandler(t *testing.T) {
	engine := grading.New()
	handler := api.GradeHandler(engine)

	body := `{
		"question": {
			"id": "q1",
			"type": "multiple_choice",
			"points": 2,
			"options": [
				{"id": "A", "text": "Madrid"},
				{"id": "B", "text": "Paris", "is_correct": true}
			]
		},
		"answer": "b"
	}`
	req := httptest.NewRequest(http.MethodPost, "/grade", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var verdict exam.Verdict
	if err := json.Unmarshal(rec.Body.Bytes(), &verdict); err != nil {
		t.Fatal(err)
	}
	if !verdict.IsCorrect || verdict.PointsEarned != 2 {
		t.Errorf("verdict = %+v, want full credit", verdict)
	}
}

func TestGradeHandlerBadJSON(t *testing.T) {
	handler := api.GradeHandler(grading.New())
	req := httptest.NewRequest(http.MethodPost, "/grade", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReportHandler(t *testing.T) {
	engine := grading.New()
	handler := api.ReportHandler(engine)

	body := `{
		"question": {
			"id": "q2",
			"type": "descriptive",
			"points": 3,
			"correct_answer": "Paris is the capital of France."
		},
		"submission": {"question_id": "q2", "answer": "Paris capital"},
		"recorded": {"is_correct": false, "points_earned": 1.2}
	}`
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var report grading.SubmissionReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.Scores == nil {
		t.Fatal("missing score details")
	}
	if report.PointsEarned != 1.2 || report.MaxPoints != 3 {
		t.Errorf("report points = %v/%v", report.PointsEarned, report.MaxPoints)
	}
}

func TestCapabilitiesHandler(t *testing.T) {
	engine := grading.New()
	handler := api.CapabilitiesHandler(engine, nlp.Status{})

	req := httptest.NewRequest(http.MethodGet, "/capabilities", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Enrichment bool `json:"enrichment_available"`
		Semantic   bool `json:"semantic_available"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Enrichment || resp.Semantic {
		t.Errorf("bare engine capabilities = %+v", resp)
	}
}
