package grading

import (
	"context"

	"github.com/ojo007/OnlineGradingExam/internal/exam"
)

// Enricher supplies lemmatized, stopword-filtered tokens for keyword
// matching. The second return is false when enrichment could not process
// the text; callers fall back to basic keyword matching.
type Enricher interface {
	Tokens(text string) ([]string, bool)
}

// Embedder encodes texts into vectors for semantic comparison. It must be
// safe for concurrent use: many submissions grade in parallel.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Capabilities reports which optional scoring signals the engine was
// built with. Fixed at construction; the combiner's weight selection
// branches on these for the life of the process.
type Capabilities struct {
	Enrichment bool `json:"enrichment_available"`
	Semantic   bool `json:"semantic_available"`
}

// Engine grades submissions. The zero-value option set yields a
// basic-matching engine; capability providers are injected at startup.
type Engine struct {
	enricher Enricher
	embedder Embedder
}

type Option func(*Engine)

// WithEnrichment installs a token enricher; nil leaves the capability off.
func WithEnrichment(e Enricher) Option { return func(g *Engine) { g.enricher = e } }

// WithEmbedder installs a semantic embedder; nil leaves the capability off.
func WithEmbedder(e Embedder) Option { return func(g *Engine) { g.embedder = e } }

func New(opts ...Option) *Engine {
	g := &Engine{}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Engine) Capabilities() Capabilities {
	return Capabilities{
		Enrichment: g.enricher != nil,
		Semantic:   g.embedder != nil,
	}
}

// Grade routes by question type. Every input produces a well-formed
// verdict; unsupported types earn zero credit, never an error.
func (g *Engine) Grade(ctx context.Context, q exam.Question, submitted string) exam.Verdict {
	switch q.Type {
	case exam.MultipleChoice, exam.TrueFalse:
		ok, pts := g.GradeMCQ(q, submitted)
		return exam.Verdict{IsCorrect: ok, PointsEarned: pts}
	case exam.ShortAnswer, exam.Descriptive:
		return g.GradeDescriptive(ctx, q, submitted)
	default:
		return exam.Verdict{Feedback: msgUnsupportedType}
	}
}
