// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// generation.go persists every generation request together with the bundle
// produced for it. The table is append-only: rows are never updated or
// deleted by the application.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"brandcraft/internal/models"
)

// GenerationStore handles generation history operations.
type GenerationStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewGenerationStore creates a new GenerationStore.
func NewGenerationStore(db *sql.DB) *GenerationStore {
	return &GenerationStore{db: db, now: time.Now}
}

// Record inserts one generation and returns its assigned id. The request is
// stored as given; the bundle is stored as JSON.
func (s *GenerationStore) Record(ctx context.Context, req models.GenerationRequest, bundle models.BrandBundle) (int64, error) {
	output, err := json.Marshal(bundle)
	if err != nil {
		return 0, fmt.Errorf("marshal bundle: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO generations (idea, style, audience, output_json, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, req.Idea, req.Style, req.Audience, string(output), s.now().UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert generation: %w", err)
	}

	return id, nil
}

// ListAll returns every stored generation, most recent first. Rows whose
// bundle cannot be decoded are skipped.
func (s *GenerationStore) ListAll(ctx context.Context) ([]models.GenerationRecord, error) {
	return s.list(ctx, `
		SELECT id, idea, style, audience, output_json, created_at
		FROM generations
		ORDER BY created_at DESC, id DESC
	`)
}

// ListRecent is ListAll capped at limit rows. A limit of zero or less
// returns everything.
func (s *GenerationStore) ListRecent(ctx context.Context, limit int) ([]models.GenerationRecord, error) {
	if limit <= 0 {
		return s.ListAll(ctx)
	}
	return s.list(ctx, `
		SELECT id, idea, style, audience, output_json, created_at
		FROM generations
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
}

// Count returns the number of stored generations, corrupt rows included.
func (s *GenerationStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM generations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count generations: %w", err)
	}
	return n, nil
}

func (s *GenerationStore) list(ctx context.Context, query string, args ...any) ([]models.GenerationRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	records := []models.GenerationRecord{}
	for rows.Next() {
		var (
			r      models.GenerationRecord
			output string
		)
		if err := rows.Scan(&r.ID, &r.Idea, &r.Style, &r.Audience, &output, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		if err := json.Unmarshal([]byte(output), &r.Bundle); err != nil {
			slog.Warn("skipping generation with unreadable bundle", "id", r.ID, "error", err)
			continue
		}
		r.CreatedAt = r.CreatedAt.UTC()
		records = append(records, r)
	}
	return records, rows.Err()
}
