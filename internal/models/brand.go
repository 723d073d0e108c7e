// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Style selects the naming, palette, and tagline profile used for a bundle.
type Style string

const (
	StyleModern  Style = "Modern"
	StyleMinimal Style = "Minimal"
	StyleLuxury  Style = "Luxury"
	StyleBold    Style = "Bold"
	StylePlayful Style = "Playful"

	// DefaultStyle is used whenever a request names no style or an unknown one.
	DefaultStyle = StyleModern
)

// Styles lists every recognised style in display order.
var Styles = []Style{StyleModern, StyleMinimal, StyleLuxury, StyleBold, StylePlayful}

// ParseStyle resolves a user-supplied style name. Unknown and empty values
// resolve to DefaultStyle instead of failing.
func ParseStyle(s string) Style {
	s = strings.TrimSpace(s)
	for _, st := range Styles {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return DefaultStyle
}

// Request field limits.
const (
	MaxIdeaLength     = 1_000
	MaxAudienceLength = 300
)

// ErrIdeaRequired is the message returned to clients that omit the idea.
const ErrIdeaRequired = "Business idea is required"

// GenerationRequest is the input to the generation pipeline.
type GenerationRequest struct {
	Idea     string `json:"idea"`
	Style    string `json:"style"`
	Audience string `json:"audience"`
}

// Validate checks the request and returns the first user-facing error
// message, or "" if the request is acceptable.
func (r GenerationRequest) Validate() string {
	idea := strings.TrimSpace(r.Idea)
	if idea == "" {
		return ErrIdeaRequired
	}
	if utf8.RuneCountInString(idea) > MaxIdeaLength {
		return "Business idea is too long (max 1,000 characters)"
	}
	if utf8.RuneCountInString(r.Audience) > MaxAudienceLength {
		return "Target audience is too long (max 300 characters)"
	}
	return ""
}

// Normalized returns a copy with surrounding whitespace removed and an
// empty style replaced by the default style name.
func (r GenerationRequest) Normalized() GenerationRequest {
	r.Idea = strings.TrimSpace(r.Idea)
	r.Audience = strings.TrimSpace(r.Audience)
	r.Style = strings.TrimSpace(r.Style)
	if r.Style == "" {
		r.Style = string(DefaultStyle)
	}
	return r
}

// Bundle shape.
const (
	BrandNameCount = 5
	PaletteSize    = 5
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// BrandBundle is the complete set of branding assets produced for one request.
type BrandBundle struct {
	BrandNames     []string `json:"brand_names"`
	Tagline        string   `json:"tagline"`
	Description    string   `json:"description"`
	TargetAudience string   `json:"target_audience"`
	ColorPalette   []string `json:"color_palette"`
	LogoPrompt     string   `json:"logo_prompt"`
	InstagramBio   string   `json:"instagram_bio"`
}

// Normalize trims every text field and lowercases palette entries so that
// model output such as "#2563EB" is accepted.
func (b *BrandBundle) Normalize() {
	b.BrandNames = lo.Map(b.BrandNames, func(n string, _ int) string {
		return strings.TrimSpace(n)
	})
	b.ColorPalette = lo.Map(b.ColorPalette, func(c string, _ int) string {
		return strings.ToLower(strings.TrimSpace(c))
	})
	b.Tagline = strings.TrimSpace(b.Tagline)
	b.Description = strings.TrimSpace(b.Description)
	b.TargetAudience = strings.TrimSpace(b.TargetAudience)
	b.LogoPrompt = strings.TrimSpace(b.LogoPrompt)
	b.InstagramBio = strings.TrimSpace(b.InstagramBio)
}

// Validate reports the first field that does not have the required shape.
func (b BrandBundle) Validate() error {
	if len(b.BrandNames) != BrandNameCount {
		return fmt.Errorf("brand_names: got %d entries, want %d", len(b.BrandNames), BrandNameCount)
	}
	if lo.Contains(b.BrandNames, "") {
		return fmt.Errorf("brand_names: empty entry")
	}
	if len(lo.Uniq(b.BrandNames)) != len(b.BrandNames) {
		return fmt.Errorf("brand_names: entries are not distinct")
	}
	if len(b.ColorPalette) != PaletteSize {
		return fmt.Errorf("color_palette: got %d entries, want %d", len(b.ColorPalette), PaletteSize)
	}
	if bad, found := lo.Find(b.ColorPalette, func(c string) bool { return !hexColor.MatchString(c) }); found {
		return fmt.Errorf("color_palette: %q is not a #rrggbb color", bad)
	}

	required := []struct {
		field, value string
	}{
		{"tagline", b.Tagline},
		{"description", b.Description},
		{"target_audience", b.TargetAudience},
		{"logo_prompt", b.LogoPrompt},
		{"instagram_bio", b.InstagramBio},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: required", f.field)
		}
	}
	return nil
}
