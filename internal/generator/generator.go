// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator runs the branding pipeline: one remote attempt, a local
// fallback whenever that attempt is unusable, and a best-effort write of the
// result. Generate always returns a valid bundle.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"brandcraft/internal/ai"
	"brandcraft/internal/fallback"
	"brandcraft/internal/models"
)

// Source records which path produced a bundle.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// archiveTimeout bounds a single background archive upload.
const archiveTimeout = 30 * time.Second

// Remote sends a prompt to the text-generation model.
type Remote interface {
	Complete(ctx context.Context, prompt string) (ai.RawResult, error)
}

// Recorder persists a request and the bundle produced for it.
type Recorder interface {
	Record(ctx context.Context, req models.GenerationRequest, bundle models.BrandBundle) (int64, error)
}

// HistoryInvalidator drops any cached copy of the history listing.
type HistoryInvalidator interface {
	InvalidateHistory(ctx context.Context)
}

// Archiver keeps an external copy of a stored record.
type Archiver interface {
	Archive(ctx context.Context, rec models.GenerationRecord) error
}

// Result is the outcome of one generation.
type Result struct {
	Bundle   models.BrandBundle
	Source   Source
	RecordID int64 // 0 when the write failed
}

// Option configures optional collaborators of a Service.
type Option func(*Service)

// WithHistoryInvalidator clears the cached history after each successful write.
func WithHistoryInvalidator(h HistoryInvalidator) Option {
	return func(s *Service) { s.history = h }
}

// WithArchiver copies each stored record in the background.
func WithArchiver(a Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

// WithClock overrides the time source used for archived records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service composes the remote client, the interpreter, the fallback
// generator, and the store. It holds no per-request state and is safe for
// concurrent use when its collaborators are.
type Service struct {
	remote   Remote
	fallback *fallback.Generator
	recorder Recorder
	history  HistoryInvalidator
	archiver Archiver
	now      func() time.Time
	wg       sync.WaitGroup
}

// New creates a Service. recorder may be nil, in which case nothing is stored.
func New(remote Remote, fb *fallback.Generator, recorder Recorder, opts ...Option) *Service {
	s := &Service{
		remote:   remote,
		fallback: fb,
		recorder: recorder,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces exactly one bundle for req and records it. The request
// must already have passed GenerationRequest.Validate.
func (s *Service) Generate(ctx context.Context, req models.GenerationRequest) Result {
	req = req.Normalized()

	bundle, source := s.produce(ctx, req)
	res := Result{Bundle: bundle, Source: source}
	res.RecordID = s.record(ctx, req, bundle)
	return res
}

// produce walks the fallback chain: remote, interpret, heuristic.
func (s *Service) produce(ctx context.Context, req models.GenerationRequest) (models.BrandBundle, Source) {
	raw, err := s.remote.Complete(ctx, ai.BuildPrompt(req))
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			slog.Info("remote generation not configured, using fallback")
		} else {
			slog.Warn("remote generation failed, using fallback", "error", err)
		}
		return s.fallback.Generate(req), SourceFallback
	}

	bundle, err := ai.Interpret(raw)
	if err != nil {
		slog.Info("remote output unusable, using fallback", "reason", err)
		return s.fallback.Generate(req), SourceFallback
	}

	return bundle, SourceRemote
}

// record stores the result. Failures are logged and swallowed since the
// response is already complete.
func (s *Service) record(ctx context.Context, req models.GenerationRequest, bundle models.BrandBundle) int64 {
	if s.recorder == nil {
		return 0
	}

	id, err := s.recorder.Record(ctx, req, bundle)
	if err != nil {
		slog.Error("failed to record generation", "error", err, "idea", req.Idea)
		return 0
	}

	slog.Debug("generation recorded", "id", id)

	if s.history != nil {
		s.history.InvalidateHistory(ctx)
	}

	if s.archiver != nil {
		rec := models.GenerationRecord{
			ID:        id,
			Idea:      req.Idea,
			Style:     req.Style,
			Audience:  req.Audience,
			Bundle:    bundle,
			CreatedAt: s.now().UTC(),
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
			defer cancel()
			if err := s.archiver.Archive(actx, rec); err != nil {
				slog.Warn("failed to archive generation", "id", rec.ID, "error", err)
			}
		}()
	}

	return id
}

// Wait blocks until background archive uploads have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}
