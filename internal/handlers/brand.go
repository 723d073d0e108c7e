// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the generation form, the
// generation endpoint, and the history views.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"brandcraft/internal/generator"
	"brandcraft/internal/models"
	"brandcraft/internal/render"
)

// SourceHeader tells clients which path produced the bundle.
const SourceHeader = "X-Brand-Source"

// Generator runs one generation. It never fails.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) generator.Result
}

// HistoryReader lists stored generations.
type HistoryReader interface {
	ListAll(ctx context.Context) ([]models.GenerationRecord, error)
	Count(ctx context.Context) (int, error)
}

// HistoryCache holds a copy of the history listing. Get reports the version
// it looked at; a listing loaded after a miss is stored with that version.
type HistoryCache interface {
	Get(ctx context.Context) ([]models.GenerationRecord, int64, bool)
	Set(ctx context.Context, version int64, recs []models.GenerationRecord)
}

// Brand groups the page and API handlers. cache may be nil.
type Brand struct {
	renderer  *render.Renderer
	generator Generator
	history   HistoryReader
	cache     HistoryCache
	aiEnabled bool
}

// NewBrand creates the handler group. Pass a nil cache to always read the
// history from the store.
func NewBrand(renderer *render.Renderer, gen Generator, history HistoryReader, cache HistoryCache, aiEnabled bool) *Brand {
	return &Brand{
		renderer:  renderer,
		generator: gen,
		history:   history,
		cache:     cache,
		aiEnabled: aiEnabled,
	}
}

// Index renders the generation form.
func (b *Brand) Index(w http.ResponseWriter, r *http.Request) {
	b.renderer.Page(w, r, "index", &render.PageData{
		Title:     "Generate",
		Section:   "generate",
		AIEnabled: b.aiEnabled,
		Data: map[string]any{
			"Styles":            models.Styles,
			"DefaultStyle":      models.DefaultStyle,
			"MaxIdeaLength":     models.MaxIdeaLength,
			"MaxAudienceLength": models.MaxAudienceLength,
		},
	})
}

// Generate handles POST /generate. Invalid input is the only error a client
// can see; every valid request gets a complete bundle.
func (b *Brand) Generate(w http.ResponseWriter, r *http.Request) {
	req, status, msg := decodeGenerationRequest(w, r)
	if status != 0 {
		writeJSON(w, status, map[string]string{"error": msg})
		return
	}

	res := b.generator.Generate(r.Context(), req)

	slog.Info("brand generated",
		"source", res.Source,
		"style", models.ParseStyle(req.Style),
		"record_id", res.RecordID,
	)

	w.Header().Set(SourceHeader, string(res.Source))
	writeJSON(w, http.StatusOK, res.Bundle)
}

// History renders the stored generations, most recent first.
func (b *Brand) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recs, err := b.history.ListAll(ctx)
	if err != nil {
		slog.Error("list history failed", "error", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	total, err := b.history.Count(ctx)
	if err != nil {
		slog.Warn("count history failed", "error", err)
		total = len(recs)
	}

	b.renderer.Page(w, r, "history", &render.PageData{
		Title:     "History",
		Section:   "history",
		AIEnabled: b.aiEnabled,
		Data: map[string]any{
			"Records": recs,
			"Total":   total,
		},
	})
}

// HistoryJSON serves the history listing as JSON, from the cache when one
// is configured and holds a copy.
func (b *Brand) HistoryJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var version int64
	if b.cache != nil {
		recs, v, ok := b.cache.Get(ctx)
		if ok {
			w.Header().Set("X-Cache", "HIT")
			writeJSON(w, http.StatusOK, recs)
			return
		}
		version = v
	}

	recs, err := b.history.ListAll(ctx)
	if err != nil {
		slog.Error("list history failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load history"})
		return
	}

	if b.cache != nil {
		b.cache.Set(ctx, version, recs)
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, recs)
}

// writeJSON sends data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
