package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/ojo007/OnlineGradingExam/internal/api/http"
	"github.com/ojo007/OnlineGradingExam/internal/config"
	"github.com/ojo007/OnlineGradingExam/internal/grading"
	"github.com/ojo007/OnlineGradingExam/internal/nlp"
)

func main() {
	cfg := config.FromEnv()

	// Probe optional NLP resources once; the engine serves with whatever
	// came up.
	providers := nlp.Detect(context.Background(), nlp.Config{
		DataDir:          cfg.NLPDataDir,
		EmbeddingAPIKey:  cfg.EmbeddingAPIKey,
		EmbeddingBaseURL: cfg.EmbeddingBaseURL,
		EmbeddingModel:   cfg.EmbeddingModel,
		ProbeTimeout:     cfg.EmbeddingProbeTimeout,
	})
	engine := grading.New(providers.EngineOptions()...)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/grade", api.GradeHandler(engine))
	r.Post("/report", api.ReportHandler(engine))
	r.Post("/report/exam", api.ExamReportHandler(engine))
	r.Get("/capabilities", api.CapabilitiesHandler(engine, providers.Status()))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	caps := engine.Capabilities()
	log.Printf("listening on %s (enrichment=%v, semantic=%v)", cfg.HTTPAddr, caps.Enrichment, caps.Semantic)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
