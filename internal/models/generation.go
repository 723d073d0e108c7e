package models

import "time"

// GenerationRecord is one persisted (request, bundle, timestamp) triple.
// Records are written once and never modified.
type GenerationRecord struct {
	ID        int64       `json:"id"`
	Idea      string      `json:"idea"`
	Style     string      `json:"style"`
	Audience  string      `json:"audience"`
	Bundle    BrandBundle `json:"bundle"`
	CreatedAt time.Time   `json:"created_at"`
}

// Request returns the request fields of the record.
func (g *GenerationRecord) Request() GenerationRequest {
	return GenerationRequest{Idea: g.Idea, Style: g.Style, Audience: g.Audience}
}
