package nlp

import (
	"context"
	"log"
	"time"

	"github.com/ojo007/OnlineGradingExam/internal/grading"
)

// Config describes the optional resources worth probing for.
type Config struct {
	DataDir          string
	EmbeddingAPIKey  string
	EmbeddingBaseURL string
	EmbeddingModel   string
	ProbeTimeout     time.Duration
}

// Providers holds whatever optional capabilities the probe found. Built
// once at startup and read-only from then on; re-run Detect to change it.
type Providers struct {
	enricher *Enricher
	embedder *EmbeddingClient
	status   Status
}

// Status is the diagnostic view over the probe results.
type Status struct {
	Enrichment     bool   `json:"enrichment_available"`
	Semantic       bool   `json:"semantic_available"`
	DataDir        string `json:"data_dir,omitempty"`
	Stopwords      int    `json:"stopwords,omitempty"`
	Lemmas         int    `json:"lemmas,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
}

// Detect probes each optional capability exactly once. Missing resources
// disable the capability and are logged, never returned as errors: the
// engine must come up with whatever is available.
func Detect(ctx context.Context, cfg Config) *Providers {
	p := &Providers{status: Status{DataDir: cfg.DataDir}}

	if cfg.DataDir == "" {
		log.Printf("nlp: enrichment disabled: no data dir configured")
	} else if enr, err := LoadEnricher(cfg.DataDir); err != nil {
		log.Printf("nlp: enrichment disabled: %v", err)
	} else {
		p.enricher = enr
		p.status.Enrichment = true
		p.status.Stopwords = enr.Stopwords()
		p.status.Lemmas = enr.Lemmas()
		log.Printf("nlp: enrichment enabled (%d stopwords, %d lemmas)", enr.Stopwords(), enr.Lemmas())
	}

	if cfg.EmbeddingAPIKey == "" {
		log.Printf("nlp: semantic similarity disabled: no embedding API key")
	} else {
		client := NewEmbeddingClient(cfg.EmbeddingAPIKey, cfg.EmbeddingBaseURL, cfg.EmbeddingModel)
		timeout := cfg.ProbeTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		probeCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := client.Probe(probeCtx); err != nil {
			log.Printf("nlp: semantic similarity disabled: %v", err)
		} else {
			p.embedder = client
			p.status.Semantic = true
			p.status.EmbeddingModel = client.Model()
			log.Printf("nlp: semantic similarity enabled (model=%s)", client.Model())
		}
	}
	return p
}

// EngineOptions wires the detected providers into a grading engine.
func (p *Providers) EngineOptions() []grading.Option {
	var opts []grading.Option
	if p.enricher != nil {
		opts = append(opts, grading.WithEnrichment(p.enricher))
	}
	if p.embedder != nil {
		opts = append(opts, grading.WithEmbedder(p.embedder))
	}
	return opts
}

func (p *Providers) Status() Status { return p.status }
