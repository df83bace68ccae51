package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/jobshield/internal/analyzer"
	"github.com/jonathan/jobshield/internal/classifier"
	"github.com/jonathan/jobshield/internal/db"
	"github.com/jonathan/jobshield/internal/llm"
	"github.com/jonathan/jobshield/internal/server"
	"github.com/jonathan/jobshield/internal/store"
	"github.com/jonathan/jobshield/internal/verify"
)

// services bundles the wired pipeline and its stores.
type services struct {
	analysis *analyzer.Service
	index    analyzer.ResultIndex
	reports  server.ReportStore
	database *db.DB
	client   llm.Client
}

// close releases held resources.
func (s *services) close() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.database != nil {
		s.database.Close()
	}
}

// buildServices wires the pipeline. Postgres backs the stores when a
// database URL is configured; otherwise in-memory stores are used and
// results do not survive the process. A missing API key disables the
// external classifier, which then contributes its degraded zero signal.
func buildServices(ctx context.Context, apiKey, databaseURL string, classifyTimeout time.Duration) (*services, error) {
	s := &services{}

	var cache verify.CacheStore
	if databaseURL != "" {
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Setup(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to set up database: %w", err)
		}
		s.database = database
		s.index = database
		s.reports = database
		cache = database
	} else {
		log.Printf("Warning: DATABASE_URL not set; using in-memory stores")
		s.index = store.NewMemoryIndex()
		s.reports = store.NewMemoryReports()
		cache = store.NewMemoryCache()
	}

	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			s.close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.client = client
	} else {
		log.Printf("Warning: GEMINI_API_KEY not set; external classifier disabled")
	}

	if classifyTimeout <= 0 {
		classifyTimeout = classifier.DefaultTimeout
	}

	orchestrator := analyzer.NewOrchestrator(
		verify.NewVerifier(cache),
		classifier.NewWithTimeout(s.client, classifyTimeout),
	)
	s.analysis = analyzer.NewService(orchestrator, s.index)

	return s, nil
}
