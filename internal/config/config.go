package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr    string
	CORSOrigins []string

	// Optional NLP resources; missing values leave capabilities off.
	NLPDataDir            string
	EmbeddingAPIKey       string
	EmbeddingBaseURL      string
	EmbeddingModel        string
	EmbeddingProbeTimeout time.Duration
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:              addr,
		CORSOrigins:           csvOr("CORS_ORIGINS", "http://localhost:3000"),
		NLPDataDir:            envOr("NLP_DATA_DIR", "./nlp_data"),
		EmbeddingAPIKey:       os.Getenv("EMBEDDING_API_KEY"),
		EmbeddingBaseURL:      os.Getenv("EMBEDDING_BASE_URL"),
		EmbeddingModel:        os.Getenv("EMBEDDING_MODEL"),
		EmbeddingProbeTimeout: envDuration("EMBEDDING_PROBE_TIMEOUT", 10*time.Second),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
