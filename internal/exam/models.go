package exam

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
	Descriptive    QuestionType = "descriptive"
)

type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text,omitempty"`
	IsCorrect bool   `json:"is_correct"`
}

// Question is the grader's read-only view of a question. The persistence
// layer owns the full record; graders never mutate it.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Text          string       `json:"text,omitempty"`
	Points        float64      `json:"points"`
	Options       []Option     `json:"options,omitempty"` // multiple_choice only
	CorrectAnswer string       `json:"correct_answer,omitempty"`
}

// Submission pairs a question with the raw answer text a student entered.
type Submission struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Verdict is the outcome of grading one submission.
type Verdict struct {
	IsCorrect    bool            `json:"is_correct"`
	PointsEarned float64         `json:"points_earned"`
	Feedback     string          `json:"feedback,omitempty"`
	Breakdown    *ScoreBreakdown `json:"breakdown,omitempty"`
}

// ScoreBreakdown records the sub-scores behind a descriptive verdict so
// the report generator can show how the points were decided. Pointer
// fields stay nil for sub-scores that were not computed.
type ScoreBreakdown struct {
	Method           string   `json:"method"`
	Combined         float64  `json:"combined_score"`
	Keyword          float64  `json:"keyword_score"`
	StringSimilarity float64  `json:"string_similarity"`
	EnrichedKeyword  *float64 `json:"enriched_keyword_score,omitempty"`
	Semantic         *float64 `json:"semantic_score,omitempty"`
	Tier             string   `json:"tier"`
}
