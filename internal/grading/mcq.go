package grading

import (
	"strings"

	"github.com/ojo007/OnlineGradingExam/internal/exam"
)

// Accepted spellings for boolean answers.
var (
	trueValues  = map[string]bool{"true": true, "t": true, "yes": true, "y": true, "1": true}
	falseValues = map[string]bool{"false": true, "f": true, "no": true, "n": true, "0": true}
)

// GradeMCQ grades closed-form questions: exact option match for multiple
// choice, synonym-table match for true/false. No NLP. Unsupported types
// earn zero credit without error.
func (g *Engine) GradeMCQ(q exam.Question, submitted string) (bool, float64) {
	switch q.Type {
	case exam.MultipleChoice:
		return gradeMultipleChoice(q, submitted)
	case exam.TrueFalse:
		return gradeTrueFalse(q, submitted)
	default:
		return false, 0.0
	}
}

func gradeMultipleChoice(q exam.Question, submitted string) (bool, float64) {
	submitted = strings.ToUpper(strings.TrimSpace(submitted))

	if len(q.Options) == 0 {
		return false, 0.0
	}

	// First option flagged correct wins if the data has several.
	correctID := ""
	for _, opt := range q.Options {
		if opt.IsCorrect {
			correctID = strings.ToUpper(strings.TrimSpace(opt.ID))
			break
		}
	}
	if correctID == "" || submitted != correctID {
		return false, 0.0
	}
	return true, q.Points
}

func gradeTrueFalse(q exam.Question, submitted string) (bool, float64) {
	submitted = strings.ToLower(strings.TrimSpace(submitted))
	correct := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))

	submittedBool, submittedOK := asBool(submitted)
	correctBool, correctOK := asBool(correct)
	if submittedOK && correctOK && submittedBool == correctBool {
		return true, q.Points
	}

	// Synonym mapping failed for one side; fall back to raw comparison.
	if submitted == correct {
		return true, q.Points
	}
	return false, 0.0
}

func asBool(s string) (bool, bool) {
	if trueValues[s] {
		return true, true
	}
	if falseValues[s] {
		return false, true
	}
	return false, false
}
