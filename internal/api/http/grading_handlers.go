package http

import (
	"encoding/json"
	"net/http"

	"github.com/ojo007/OnlineGradingExam/internal/exam"
	"github.com/ojo007/OnlineGradingExam/internal/grading"
	"github.com/ojo007/OnlineGradingExam/internal/nlp"
)

type gradeReq struct {
	Question exam.Question `json:"question"`
	Answer   string        `json:"answer"`
}

// POST /grade
func GradeHandler(engine *grading.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gradeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		verdict := engine.Grade(r.Context(), req.Question, req.Answer)
		writeJSON(w, verdict)
	}
}

type reportReq struct {
	Question   exam.Question   `json:"question"`
	Submission exam.Submission `json:"submission"`
	Recorded   exam.Verdict    `json:"recorded"`
}

// POST /report
func ReportHandler(engine *grading.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		report := engine.GenerateReport(r.Context(), req.Question, req.Submission, req.Recorded)
		writeJSON(w, report)
	}
}

type examReportReq struct {
	Items        []grading.ReportItem `json:"items"`
	PassingScore float64              `json:"passing_score,omitempty"`
}

// POST /report/exam
func ExamReportHandler(engine *grading.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req examReportReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, engine.ExamReport(r.Context(), req.Items, req.PassingScore))
	}
}

type capabilitiesResp struct {
	grading.Capabilities
	Detail nlp.Status `json:"detail"`
}

// GET /capabilities — diagnostic only.
func CapabilitiesHandler(engine *grading.Engine, status nlp.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, capabilitiesResp{Capabilities: engine.Capabilities(), Detail: status})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
