package grading

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/ojo007/OnlineGradingExam/internal/exam"
)

// SubmissionReport shows how one submission was graded, for audit and
// debugging display. Sub-scores are recomputed with the engine's own
// formulas, so they match the recorded verdict as long as inputs and
// capabilities are unchanged.
type SubmissionReport struct {
	RunID         string            `json:"run_id"`
	QuestionID    string            `json:"question_id"`
	QuestionText  string            `json:"question_text,omitempty"`
	QuestionType  exam.QuestionType `json:"question_type"`
	StudentAnswer string            `json:"student_answer"`
	CorrectAnswer string            `json:"correct_answer,omitempty"`
	PointsEarned  float64           `json:"points_earned"`
	MaxPoints     float64           `json:"max_points"`
	Percentage    float64           `json:"percentage"`
	IsCorrect     bool              `json:"is_correct"`
	Feedback      string            `json:"feedback,omitempty"`
	Choice        *ChoiceDetails    `json:"choice_details,omitempty"`
	Scores        *ScoreDetails     `json:"score_details,omitempty"`
}

// ChoiceDetails explains closed-form grading.
type ChoiceDetails struct {
	CorrectOptions []string `json:"correct_options,omitempty"`
	CorrectAnswer  string   `json:"correct_answer,omitempty"`
	SelectedAnswer string   `json:"selected_answer"`
	IsCorrect      bool     `json:"is_correct"`
}

// ScoreDetails explains free-text grading.
type ScoreDetails struct {
	Method           string        `json:"method"`
	CombinedScore    float64       `json:"combined_score"`
	KeywordScore     float64       `json:"keyword_score"`
	StringSimilarity float64       `json:"string_similarity"`
	EnrichedKeyword  *float64      `json:"enriched_keyword_score,omitempty"`
	SemanticScore    *float64      `json:"semantic_score,omitempty"`
	Threshold        ThresholdInfo `json:"threshold_applied"`
	Capabilities     Capabilities  `json:"features_available"`
}

// ThresholdInfo names the tier band a combined score fell into.
type ThresholdInfo struct {
	Threshold   float64 `json:"threshold"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

func thresholdInfo(t Tier) ThresholdInfo {
	return ThresholdInfo{
		Threshold:   t.Threshold,
		Percentage:  t.Fraction * 100,
		Description: t.Label,
	}
}

// GenerateReport rebuilds the grading picture for a past submission. The
// recorded verdict supplies the persisted outcome; everything else is
// recomputed live.
func (g *Engine) GenerateReport(ctx context.Context, q exam.Question, sub exam.Submission, recorded exam.Verdict) SubmissionReport {
	report := SubmissionReport{
		RunID:         uuid.NewString(),
		QuestionID:    q.ID,
		QuestionText:  q.Text,
		QuestionType:  q.Type,
		StudentAnswer: sub.Answer,
		CorrectAnswer: q.CorrectAnswer,
		PointsEarned:  recorded.PointsEarned,
		MaxPoints:     q.Points,
		Percentage:    percentage(recorded.PointsEarned, q.Points),
		IsCorrect:     recorded.IsCorrect,
		Feedback:      recorded.Feedback,
	}

	switch q.Type {
	case exam.MultipleChoice:
		var correctIDs []string
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correctIDs = append(correctIDs, opt.ID)
			}
		}
		report.Choice = &ChoiceDetails{
			CorrectOptions: correctIDs,
			SelectedAnswer: sub.Answer,
			IsCorrect:      recorded.IsCorrect,
		}
	case exam.TrueFalse:
		report.Choice = &ChoiceDetails{
			CorrectAnswer:  q.CorrectAnswer,
			SelectedAnswer: sub.Answer,
			IsCorrect:      recorded.IsCorrect,
		}
	case exam.ShortAnswer, exam.Descriptive:
		// Recompute unconditionally: short-circuited verdicts carry no
		// breakdown, but the audit view still shows every sub-score.
		if strings.TrimSpace(q.CorrectAnswer) != "" {
			b := g.computeBreakdown(ctx, q.CorrectAnswer, sub.Answer)
			report.Scores = &ScoreDetails{
				Method:           b.Method,
				CombinedScore:    b.Combined,
				KeywordScore:     b.Keyword,
				StringSimilarity: b.StringSimilarity,
				EnrichedKeyword:  b.EnrichedKeyword,
				SemanticScore:    b.Semantic,
				Threshold:        thresholdInfo(TierFor(b.Combined)),
				Capabilities:     g.Capabilities(),
			}
		}
	}
	return report
}

// ReportItem is one graded question in an exam-wide report.
type ReportItem struct {
	Question   exam.Question   `json:"question"`
	Submission exam.Submission `json:"submission"`
	Verdict    exam.Verdict    `json:"verdict"`
}

// TypeSummary aggregates points for one question type.
type TypeSummary struct {
	Count        int             `json:"count"`
	PointsEarned float64         `json:"points_earned"`
	MaxPoints    float64         `json:"max_points"`
	Percentage   float64         `json:"percentage"`
	Questions    []QuestionTotal `json:"questions"`
}

type QuestionTotal struct {
	QuestionID   string  `json:"question_id"`
	PointsEarned float64 `json:"points_earned"`
	MaxPoints    float64 `json:"max_points"`
	Percentage   float64 `json:"percentage"`
}

// ExamSummary is the whole-exam audit report.
type ExamSummary struct {
	RunID       string                            `json:"run_id"`
	TotalPoints float64                           `json:"total_points"`
	MaxPoints   float64                           `json:"max_points"`
	Percentage  float64                           `json:"percentage"`
	Passed      bool                              `json:"passed"`
	Submissions []SubmissionReport                `json:"submissions"`
	ByType      map[exam.QuestionType]TypeSummary `json:"question_type_summary"`
}

// ExamReport builds per-submission reports and rolls totals up by
// question type. A non-positive passing score defaults to 50%.
func (g *Engine) ExamReport(ctx context.Context, items []ReportItem, passingScore float64) ExamSummary {
	if passingScore <= 0 {
		passingScore = 50.0
	}
	summary := ExamSummary{
		RunID:       uuid.NewString(),
		Submissions: make([]SubmissionReport, 0, len(items)),
		ByType:      map[exam.QuestionType]TypeSummary{},
	}
	for _, item := range items {
		report := g.GenerateReport(ctx, item.Question, item.Submission, item.Verdict)
		summary.Submissions = append(summary.Submissions, report)
		summary.TotalPoints += report.PointsEarned
		summary.MaxPoints += report.MaxPoints

		ts := summary.ByType[item.Question.Type]
		ts.Count++
		ts.PointsEarned += report.PointsEarned
		ts.MaxPoints += report.MaxPoints
		ts.Questions = append(ts.Questions, QuestionTotal{
			QuestionID:   item.Question.ID,
			PointsEarned: report.PointsEarned,
			MaxPoints:    report.MaxPoints,
			Percentage:   report.Percentage,
		})
		summary.ByType[item.Question.Type] = ts
	}
	for qt, ts := range summary.ByType {
		ts.Percentage = percentage(ts.PointsEarned, ts.MaxPoints)
		summary.ByType[qt] = ts
	}
	summary.Percentage = percentage(summary.TotalPoints, summary.MaxPoints)
	summary.Passed = summary.Percentage >= passingScore
	return summary
}

func percentage(earned, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Round(earned/max*1000) / 10
}
