package grading

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/ojo007/OnlineGradingExam/internal/exam"
)

const (
	msgUnsupportedType = "This question type cannot be automatically graded."
	msgNoAnswerKey     = "This question cannot be automatically graded (no correct answer provided)."
	msgNoAnswer        = "No answer provided."
	msgPerfectMatch    = "Excellent answer! Perfect match."
	msgCloseMatch      = "Excellent answer! Very close match."
)

// Cleaned texts at least this similar count as a match without scoring.
const closeMatchRatio = 0.95

// Tier is one band of the combined-score scale. Bands below Good still
// earn partial credit while flagged incorrect; that asymmetry is part of
// the grading contract.
type Tier struct {
	Threshold float64
	Correct   bool
	Fraction  float64
	Label     string
	Feedback  string
}

var tiers = []Tier{
	{0.85, true, 1.00, "Excellent", "Excellent answer! All key points covered."},
	{0.70, true, 0.90, "Good", "Good answer. Most key points covered."},
	{0.55, false, 0.70, "Adequate", "Adequate answer. Some key points missing or incorrect."},
	{0.35, false, 0.40, "Poor", "Answer is on topic but missing important key points."},
	{0.00, false, 0.00, "Incorrect", "Answer is incorrect or missing essential information."},
}

// TierFor maps a combined score to its band. Descending check order,
// first match wins; a pure function of the score.
func TierFor(score float64) Tier {
	for _, t := range tiers[:len(tiers)-1] {
		if score >= t.Threshold {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// GradeDescriptive grades a short-answer or descriptive question against
// its answer key. Exact and near-exact matches short-circuit to full
// credit; otherwise keyword overlap, sequence similarity and the optional
// enriched/semantic signals are weighted into one score and mapped to a
// credit tier. Never returns an error: degenerate inputs yield
// zero-credit verdicts with explanatory feedback.
func (g *Engine) GradeDescriptive(ctx context.Context, q exam.Question, submitted string) exam.Verdict {
	if q.Type != exam.ShortAnswer && q.Type != exam.Descriptive {
		return exam.Verdict{Feedback: msgUnsupportedType}
	}
	correct := q.CorrectAnswer
	if strings.TrimSpace(correct) == "" {
		return exam.Verdict{Feedback: msgNoAnswerKey}
	}

	// Cheap unambiguous wins bypass all scoring.
	if strings.TrimSpace(submitted) == strings.TrimSpace(correct) {
		return fullCredit(q, msgPerfectMatch)
	}
	correctClean := Normalize(correct)
	submittedClean := Normalize(submitted)
	if submittedClean == correctClean {
		return fullCredit(q, msgPerfectMatch)
	}
	if strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct)) {
		return fullCredit(q, msgPerfectMatch)
	}

	if submittedClean == "" {
		return exam.Verdict{Feedback: msgNoAnswer}
	}

	stringSim := SequenceRatio(correctClean, submittedClean)
	if stringSim >= closeMatchRatio {
		return fullCredit(q, msgCloseMatch)
	}

	breakdown := g.computeBreakdown(ctx, correct, submitted)
	tier := TierFor(breakdown.Combined)
	points := round2(q.Points * tier.Fraction)

	return exam.Verdict{
		IsCorrect:    tier.Correct,
		PointsEarned: points,
		Feedback:     detailedFeedback(tier, breakdown),
		Breakdown:    breakdown,
	}
}

// computeBreakdown runs the full scoring stack over the raw texts. The
// report generator calls it directly so audit output always carries
// sub-scores, including for submissions the grader short-circuited.
func (g *Engine) computeBreakdown(ctx context.Context, correct, submitted string) *exam.ScoreBreakdown {
	correctClean := Normalize(correct)
	submittedClean := Normalize(submitted)
	stringSim := SequenceRatio(correctClean, submittedClean)
	basicKeyword := KeywordMatch(correctClean, submittedClean)

	var enriched *float64
	if g.enricher != nil {
		if score, ok := g.enrichedKeywordMatch(correct, submitted); ok {
			enriched = &score
		}
	}

	var semantic *float64
	if g.embedder != nil {
		if score, ok := g.semanticSimilarity(ctx, correct, submitted); ok {
			semantic = &score
		}
	}

	method, combined := combineScores(g.Capabilities(), basicKeyword, enriched, semantic, stringSim)
	keyword := basicKeyword
	if enriched != nil {
		keyword = *enriched
	}
	return &exam.ScoreBreakdown{
		Method:           method,
		Combined:         combined,
		Keyword:          keyword,
		StringSimilarity: stringSim,
		EnrichedKeyword:  enriched,
		Semantic:         semantic,
		Tier:             TierFor(combined).Label,
	}
}

// enrichedKeywordMatch applies the keyword-overlap formula to lemmatized,
// stopword-filtered token sets instead of raw normalized words.
func (g *Engine) enrichedKeywordMatch(correct, submitted string) (float64, bool) {
	correctTokens, ok := g.enricher.Tokens(correct)
	if !ok {
		return 0, false
	}
	submittedTokens, ok := g.enricher.Tokens(submitted)
	if !ok {
		return 0, false
	}

	correctSet := toSet(correctTokens)
	if len(correctSet) == 0 {
		if strings.Join(correctTokens, " ") == strings.Join(submittedTokens, " ") {
			return 1.0, true
		}
		return 0.0, true
	}
	submittedSet := toSet(submittedTokens)
	matches := 0
	for tok := range correctSet {
		if _, hit := submittedSet[tok]; hit {
			matches++
		}
	}
	return float64(matches) / float64(len(correctSet)), true
}

// semanticSimilarity encodes both texts and takes their cosine
// similarity, clamped to [0,1]. A failing embedder disables the
// sub-score for this request only; the failure never reaches the caller.
func (g *Engine) semanticSimilarity(ctx context.Context, correct, submitted string) (float64, bool) {
	vecs, err := g.embedder.Embed(ctx, []string{correct, submitted})
	if err != nil || len(vecs) < 2 {
		log.Printf("grading: semantic similarity unavailable, degrading: %v", err)
		return 0, false
	}
	return cosineSimilarity(vecs[0], vecs[1]), true
}

// combineScores weights the sub-scores by which capabilities produced a
// value this request. The string-similarity weight shrinks as richer
// signals become available. With no enrichment the semantic score is
// ignored even when present: the weight table has no semantic-only row.
func combineScores(caps Capabilities, basicKeyword float64, enriched, semantic *float64, stringSim float64) (string, float64) {
	keyword := basicKeyword
	if caps.Enrichment && enriched != nil {
		keyword = *enriched
	}
	switch {
	case caps.Enrichment && semantic != nil:
		return "enriched keywords + embeddings", 0.4*keyword + 0.5*(*semantic) + 0.1*stringSim
	case caps.Enrichment:
		return "enriched keywords", 0.7*keyword + 0.3*stringSim
	default:
		return "basic text matching", 0.5*basicKeyword + 0.5*stringSim
	}
}

func detailedFeedback(tier Tier, b *exam.ScoreBreakdown) string {
	var sb strings.Builder
	sb.WriteString(tier.Feedback)
	sb.WriteString("\n\n--- Grading Details ---\n")
	fmt.Fprintf(&sb, "Method: %s\n", b.Method)
	fmt.Fprintf(&sb, "Combined Score: %.2f\n", b.Combined)
	fmt.Fprintf(&sb, "Keyword Match: %.2f\n", b.Keyword)
	fmt.Fprintf(&sb, "String Similarity: %.2f\n", b.StringSimilarity)
	if b.Semantic != nil {
		fmt.Fprintf(&sb, "Semantic Similarity: %.2f\n", *b.Semantic)
	}
	if tier.Threshold > 0 {
		fmt.Fprintf(&sb, "Threshold: %.2f (%s - %.0f%%)\n", tier.Threshold, tier.Label, tier.Fraction*100)
	} else {
		fmt.Fprintf(&sb, "Threshold: <%.2f (%s - 0%%)\n", tiers[len(tiers)-2].Threshold, tier.Label)
	}
	return sb.String()
}

func fullCredit(q exam.Question, feedback string) exam.Verdict {
	return exam.Verdict{
		IsCorrect:    true,
		PointsEarned: round2(q.Points),
		Feedback:     feedback,
	}
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, na, nb float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return math.Max(0, math.Min(1, sim))
}

func toSet(tokens []string) map[string]struct{} {
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
