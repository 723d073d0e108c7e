// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns brand names into ASCII slugs safe for object keys and
// file names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonAlphanumeric matches every run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a slug from s. Accents are folded to their base letter
// and every other run of non-alphanumeric characters becomes one hyphen.
// Example: "Café Crème & Co." → "cafe-creme-co"
func Generate(s string) string {
	result := strings.ToLower(foldAccents(s))
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// GenerateMax is Generate capped at max bytes. The cut happens at the last
// hyphen inside the limit when there is one, so words are not split.
func GenerateMax(s string, max int) string {
	result := Generate(s)
	if max <= 0 || len(result) <= max {
		return result
	}
	cut := result[:max]
	if result[max] != '-' {
		if i := strings.LastIndexByte(cut, '-'); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.Trim(cut, "-")
}

// foldAccents strips combining marks after canonical decomposition.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
