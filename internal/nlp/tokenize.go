package nlp

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ojo007/OnlineGradingExam/internal/grading"
)

const (
	stopwordsFile = "stopwords.txt"
	lemmasFile    = "lemmas.tsv"
)

// foldAccents strips combining marks ("café" -> "cafe"). The chain
// carries internal state, so it is built per call; Tokens must be safe
// for concurrent grading requests.
func foldAccents(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	return out, err
}

// Enricher tokenizes answer text for keyword matching: lowercase,
// accent-fold, strip stopwords, lemmatize via an exception table plus
// English suffix rules. Both word lists live under the process data dir;
// when either is missing the capability stays off.
type Enricher struct {
	stopwords map[string]struct{}
	lemmas    map[string]string
}

// LoadEnricher reads stopwords.txt and lemmas.tsv from dataDir. An error
// means the enrichment capability is unavailable, not that the process
// should stop.
func LoadEnricher(dataDir string) (*Enricher, error) {
	stop, err := loadWordList(filepath.Join(dataDir, stopwordsFile))
	if err != nil {
		return nil, fmt.Errorf("stopword list: %w", err)
	}
	lemmas, err := loadLemmaTable(filepath.Join(dataDir, lemmasFile))
	if err != nil {
		return nil, fmt.Errorf("lemma table: %w", err)
	}
	return &Enricher{stopwords: stop, lemmas: lemmas}, nil
}

// Tokens implements grading.Enricher.
func (e *Enricher) Tokens(text string) ([]string, bool) {
	folded, err := foldAccents(strings.ToLower(text))
	if err != nil {
		return nil, false
	}
	fields := strings.Fields(grading.Normalize(folded))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := e.stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, e.lemmatize(f))
	}
	return tokens, true
}

func (e *Enricher) Stopwords() int { return len(e.stopwords) }
func (e *Enricher) Lemmas() int    { return len(e.lemmas) }

// lemmatize checks the exception table first, then strips regular
// English noun-plural suffixes.
func (e *Enricher) lemmatize(word string) string {
	if lemma, ok := e.lemmas[word]; ok {
		return lemma
	}
	switch {
	case strings.HasSuffix(word, "sses"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "zes"),
		strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "s") && len(word) > 3 &&
		!strings.HasSuffix(word, "ss") && !strings.HasSuffix(word, "us") && !strings.HasSuffix(word, "is"):
		return strings.TrimSuffix(word, "s")
	}
	return word
}

// loadWordList reads one word per line; blank lines and # comments are
// skipped.
func loadWordList(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := map[string]struct{}{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: empty word list", path)
	}
	return words, nil
}

// loadLemmaTable reads tab-separated "form<TAB>lemma" lines.
func loadLemmaTable(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lemmas := map[string]string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s: malformed line %q", path, line)
		}
		lemmas[strings.ToLower(strings.TrimSpace(parts[0]))] = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lemmas) == 0 {
		return nil, fmt.Errorf("%s: empty lemma table", path)
	}
	return lemmas, nil
}
