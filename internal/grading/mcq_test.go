package grading_test

import (
	"testing"

	"github.com/ojo007/OnlineGradingExam/internal/exam"
	"github.com/ojo007/OnlineGradingExam/internal/grading"
)

func mcqQuestion() exam.Question {
	return exam.Question{
		ID:     "q-mcq",
		Type:   exam.MultipleChoice,
		Points: 2,
		Options: []exam.Option{
			{ID: "A", Text: "Madrid"},
			{ID: "B", Text: "Paris", IsCorrect: true},
			{ID: "C", Text: "Rome"},
		},
	}
}

func TestGradeMultipleChoice(t *testing.T) {
	g := grading.New()
	q := mcqQuestion()
	cases := []struct {
		answer string
		ok     bool
		points float64
	}{
		{"B", true, 2},
		{"b", true, 2},
		{"  b  ", true, 2},
		{"A", false, 0},
		{"C", false, 0},
		{"D", false, 0},
		{"", false, 0},
	}
	for _, c := range cases {
		ok, pts := g.GradeMCQ(q, c.answer)
		if ok != c.ok || pts != c.points {
			t.Errorf("answer %q: got (%v, %v), want (%v, %v)", c.answer, ok, pts, c.ok, c.points)
		}
	}
}

func TestMultipleChoiceFirstCorrectOptionWins(t *testing.T) {
	g := grading.New()
	q := mcqQuestion()
	q.Options = append(q.Options, exam.Option{ID: "D", Text: "Paris again", IsCorrect: true})
	if ok, pts := g.GradeMCQ(q, "B"); !ok || pts != q.Points {
		t.Errorf("first flagged option: got (%v, %v)", ok, pts)
	}
	if ok, pts := g.GradeMCQ(q, "D"); ok || pts != 0 {
		t.Errorf("second flagged option: got (%v, %v)", ok, pts)
	}
}

func TestMultipleChoiceDegenerate(t *testing.T) {
	g := grading.New()

	noOptions := mcqQuestion()
	noOptions.Options = nil
	if ok, pts := g.GradeMCQ(noOptions, "B"); ok || pts != 0 {
		t.Errorf("no options: got (%v, %v)", ok, pts)
	}

	noCorrect := mcqQuestion()
	for i := range noCorrect.Options {
		noCorrect.Options[i].IsCorrect = false
	}
	for _, answer := range []string{"A", "B", "C", "anything"} {
		if ok, pts := g.GradeMCQ(noCorrect, answer); ok || pts != 0 {
			t.Errorf("no correct flag, answer %q: got (%v, %v)", answer, ok, pts)
		}
	}
}

func TestGradeTrueFalse(t *testing.T) {
	g := grading.New()
	q := exam.Question{Type: exam.TrueFalse, Points: 1, CorrectAnswer: "true"}
	for _, answer := range []string{"TRUE", "t", "Yes", "y", "1", " true "} {
		if ok, pts := g.GradeMCQ(q, answer); !ok || pts != 1 {
			t.Errorf("answer %q: got (%v, %v), want full credit", answer, ok, pts)
		}
	}
	for _, answer := range []string{"false", "F", "no", "0", "maybe", ""} {
		if ok, pts := g.GradeMCQ(q, answer); ok || pts != 0 {
			t.Errorf("answer %q: got (%v, %v), want zero", answer, ok, pts)
		}
	}
}

func TestTrueFalseSynonymsBothDirections(t *testing.T) {
	g := grading.New()
	q := exam.Question{Type: exam.TrueFalse, Points: 1, CorrectAnswer: "NO"}
	for _, answer := range []string{"false", "f", "n", "0", "No"} {
		if ok, pts := g.GradeMCQ(q, answer); !ok || pts != 1 {
			t.Errorf("answer %q against %q: got (%v, %v)", answer, q.CorrectAnswer, ok, pts)
		}
	}
}

func TestTrueFalseRawFallback(t *testing.T) {
	g := grading.New()
	// answer key outside the synonym tables: raw case-insensitive equality
	q := exam.Question{Type: exam.TrueFalse, Points: 1, CorrectAnswer: "verdadero"}
	if ok, pts := g.GradeMCQ(q, " VERDADERO "); !ok || pts != 1 {
		t.Errorf("raw fallback: got (%v, %v)", ok, pts)
	}
	if ok, pts := g.GradeMCQ(q, "falso"); ok || pts != 0 {
		t.Errorf("raw mismatch: got (%v, %v)", ok, pts)
	}
}

func TestGradeMCQUnsupportedType(t *testing.T) {
	g := grading.New()
	q := exam.Question{Type: exam.Descriptive, Points: 1, CorrectAnswer: "x"}
	if ok, pts := g.GradeMCQ(q, "x"); ok || pts != 0 {
		t.Errorf("unsupported type: got (%v, %v)", ok, pts)
	}
}
