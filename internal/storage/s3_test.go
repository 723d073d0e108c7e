package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"brandcraft/internal/models"
)

func testRecord() models.GenerationRecord {
	return models.GenerationRecord{
		ID:       42,
		Idea:     "A coffee shop for coders",
		Style:    "Modern",
		Audience: "Developers",
		Bundle: models.BrandBundle{
			BrandNames:     []string{"Café Crème", "B", "C", "D", "E"},
			Tagline:        "T",
			Description:    "D",
			TargetAudience: "Developers",
			ColorPalette:   []string{"#000000", "#111111", "#222222", "#333333", "#444444"},
			LogoPrompt:     "L",
			InstagramBio:   "I",
		},
		CreatedAt: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC),
	}
}

func TestNewUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty", Config{}},
		{"no endpoint", Config{Bucket: "b", AccessKey: "a", SecretKey: "s"}},
		{"no bucket", Config{Endpoint: "http://s3", AccessKey: "a", SecretKey: "s"}},
		{"no credentials", Config{Endpoint: "http://s3", Bucket: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			if err != nil || c != nil {
				t.Errorf("New: got (%v, %v), want (nil, nil)", c, err)
			}
		})
	}
}

func TestKey(t *testing.T) {
	c, err := New(Config{Endpoint: "http://s3.local/", Bucket: "archive", AccessKey: "a", SecretKey: "s"})
	if err != nil || c == nil {
		t.Fatalf("New: %v", err)
	}

	rec := testRecord()
	if got, want := c.Key(rec), "bundles/2026/03/42-cafe-creme.json"; got != want {
		t.Errorf("Key: got %q, want %q", got, want)
	}

	rec.Bundle.BrandNames = []string{"☕☕"}
	if got, want := c.Key(rec), "bundles/2026/03/42-brand.json"; got != want {
		t.Errorf("Key without sluggable name: got %q, want %q", got, want)
	}

	c, _ = New(Config{Endpoint: "http://s3.local", Bucket: "archive", AccessKey: "a", SecretKey: "s", Prefix: "/brandcraft/"})
	if got := c.Key(testRecord()); !strings.HasPrefix(got, "brandcraft/2026/03/") {
		t.Errorf("Key with custom prefix: got %q", got)
	}
}

func TestArchive(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotType   string
		gotBody   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := New(Config{Endpoint: srv.URL, Bucket: "archive", AccessKey: "a", SecretKey: "s"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.Archive(context.Background(), testRecord()); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method: got %s, want PUT", gotMethod)
	}
	if gotPath != "/archive/bundles/2026/03/42-cafe-creme.json" {
		t.Errorf("path: got %q", gotPath)
	}
	if gotType != "application/json" {
		t.Errorf("content type: got %q", gotType)
	}
	if !strings.Contains(gotBody, `"idea": "A coffee shop for coders"`) {
		t.Errorf("body should carry the record, got %q", gotBody)
	}
}

func TestArchiveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c, _ := New(Config{Endpoint: srv.URL, Bucket: "archive", AccessKey: "a", SecretKey: "s"})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.Archive(ctx, testRecord()); err == nil {
		t.Error("expected error for a rejected upload")
	}
}
