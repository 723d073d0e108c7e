package fallback

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"brandcraft/internal/models"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestKeyword(t *testing.T) {
	tests := []struct {
		idea string
		want string
	}{
		{"A coffee shop for coders", "Coffee"},
		{"an app", "Brand"},
		{"", "Brand"},
		{"   ", "Brand"},
		{"ai for BIKES", "Bikes"},
		{"tiny shoe shop", "Tiny"},
		{"café crème", "Café"},
		{"a b c", "Brand"},
		{"crèmerie paris", "Crèmerie"},
		{"coffee-shop lovers", "Coffee-shop"},
		{"o'reilly books", "O'reilly"},
		{"ÉCOLE de danse", "École"},
	}

	for _, tt := range tests {
		t.Run(tt.idea, func(t *testing.T) {
			if got := Keyword(tt.idea); got != tt.want {
				t.Errorf("Keyword(%q) = %q, want %q", tt.idea, got, tt.want)
			}
		})
	}
}

// TestGenerateShape checks the bundle contract over every style and many
// random streams.
func TestGenerateShape(t *testing.T) {
	styles := []string{"Modern", "Minimal", "Luxury", "Bold", "Playful", "Retro", ""}
	// The last four ideas yield a keyword equal to a style prefix.
	ideas := []string{
		"A coffee shop for coders", "an app", "Eco-friendly running shoes",
		"Tech consulting for startups", "pure spring water", "Iron workshop", "Happy hour bar",
	}

	for _, style := range styles {
		for _, idea := range ideas {
			for seed := uint64(0); seed < 50; seed++ {
				b := NewSeeded(seed).Generate(models.GenerationRequest{Idea: idea, Style: style})

				if err := b.Validate(); err != nil {
					t.Fatalf("style=%q idea=%q seed=%d: %v", style, idea, seed, err)
				}
				if len(b.BrandNames) != 5 {
					t.Fatalf("brand names: got %d, want 5", len(b.BrandNames))
				}
				for _, c := range b.ColorPalette {
					if !hexPattern.MatchString(c) {
						t.Fatalf("color %q does not match %s", c, hexPattern)
					}
				}
			}
		}
	}
}

func TestGenerateUnknownStyleMatchesModern(t *testing.T) {
	for _, style := range []string{"Retro", "", "modernist", "🤖"} {
		for seed := uint64(0); seed < 20; seed++ {
			req := models.GenerationRequest{Idea: "A coffee shop for coders", Audience: "Developers"}

			req.Style = "Modern"
			want := NewSeeded(seed).Generate(req)

			req.Style = style
			got := NewSeeded(seed).Generate(req)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("style %q seed %d differs from Modern (-want +got):\n%s", style, seed, diff)
			}
		}
	}
}

func TestGeneratePaletteSetIsStable(t *testing.T) {
	gen := New(nil)
	for _, style := range models.Styles {
		want := Palette(string(style))
		slices.Sort(want)

		for i := 0; i < 100; i++ {
			got := gen.Generate(models.GenerationRequest{Idea: "idea", Style: string(style)}).ColorPalette
			slices.Sort(got)
			if !slices.Equal(got, want) {
				t.Fatalf("style %s call %d: palette set %v, want %v", style, i, got, want)
			}
		}
	}
}

func TestGenerateDoesNotMutateTables(t *testing.T) {
	before := Palette("Modern")
	gen := NewSeeded(7)
	for i := 0; i < 20; i++ {
		gen.Generate(models.GenerationRequest{Idea: "idea", Style: "Modern"})
	}
	if after := Palette("Modern"); !slices.Equal(before, after) {
		t.Errorf("palette table changed: before %v, after %v", before, after)
	}
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	req := models.GenerationRequest{Idea: "Handmade leather wallets", Style: "Luxury", Audience: "Collectors"}
	a := NewSeeded(42).Generate(req)
	b := NewSeeded(42).Generate(req)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different bundles:\n%s", diff)
	}
}

func TestGenerateNameTemplates(t *testing.T) {
	p := profiles[models.StyleBold]
	b := NewSeeded(3).Generate(models.GenerationRequest{Idea: "gym for climbers", Style: "Bold"})
	names := b.BrandNames

	if !strings.HasSuffix(names[0], "Climbers") || !slices.Contains(p.prefixes, strings.TrimSuffix(names[0], "Climbers")) {
		t.Errorf("names[0] = %q, want <prefix>Climbers", names[0])
	}
	if !strings.HasPrefix(names[1], "Climbers") || !slices.Contains(p.suffixes, strings.TrimPrefix(names[1], "Climbers")) {
		t.Errorf("names[1] = %q, want Climbers<suffix>", names[1])
	}
	word, ok := strings.CutPrefix(names[2], "Climbers ")
	if !ok || !slices.Contains(nameSuffixWords, word) {
		t.Errorf("names[2] = %q, want \"Climbers <Studio|Co|...>\"", names[2])
	}
	if names[3] != "The Bold Climbers" {
		t.Errorf("names[3] = %q, want %q", names[3], "The Bold Climbers")
	}
	if strings.Contains(names[4], "Climbers") {
		t.Errorf("names[4] = %q should not contain the keyword", names[4])
	}
}

func TestGenerateTaglineFromStylePool(t *testing.T) {
	pool := map[string]bool{}
	for _, tpl := range profiles[models.StylePlayful].taglines {
		pool[tpl("Kites")] = true
	}

	for seed := uint64(0); seed < 30; seed++ {
		b := NewSeeded(seed).Generate(models.GenerationRequest{Idea: "kites for kids", Style: "Playful"})
		if !pool[b.Tagline] {
			t.Fatalf("seed %d: tagline %q not in Playful pool", seed, b.Tagline)
		}
	}
}

func TestGenerateAudienceText(t *testing.T) {
	t.Run("with audience", func(t *testing.T) {
		b := NewSeeded(1).Generate(models.GenerationRequest{
			Idea: "A coffee shop for coders", Style: "Modern", Audience: "Developers",
		})
		if b.TargetAudience != "Developers" {
			t.Errorf("target_audience: got %q", b.TargetAudience)
		}
		want := "A Modern approach to A coffee shop for coders, designed for Developers. Innovating the future of your industry."
		if b.Description != want {
			t.Errorf("description:\n got %q\nwant %q", b.Description, want)
		}
		if !strings.Contains(b.InstagramBio, "For Developers") {
			t.Errorf("instagram_bio: got %q", b.InstagramBio)
		}
	})

	t.Run("without audience", func(t *testing.T) {
		b := NewSeeded(1).Generate(models.GenerationRequest{Idea: "A coffee shop", Style: "Minimal"})
		if b.TargetAudience != "General Consumers seeking quality." {
			t.Errorf("target_audience: got %q", b.TargetAudience)
		}
		if !strings.Contains(b.Description, "designed for everyone.") {
			t.Errorf("description: got %q", b.Description)
		}
		if !strings.Contains(b.InstagramBio, "For you") {
			t.Errorf("instagram_bio: got %q", b.InstagramBio)
		}
		if b.LogoPrompt != "A Minimal logo design for A coffee shop, vector style, clean lines, professional." {
			t.Errorf("logo_prompt: got %q", b.LogoPrompt)
		}
	})
}

// A keyword equal to a style prefix must still give five distinct names.
func TestGenerateNamesDistinctWhenKeywordIsPrefix(t *testing.T) {
	tests := []struct {
		idea  string
		style string
	}{
		{"Tech consulting for startups", "Modern"},
		{"pure spring water", "Minimal"},
		{"Iron workshop", "Bold"},
		{"Royal wedding planners", "Luxury"},
		{"Jolly toy store", "Playful"},
	}

	for _, tt := range tests {
		t.Run(tt.idea, func(t *testing.T) {
			for seed := uint64(0); seed < 1000; seed++ {
				b := NewSeeded(seed).Generate(models.GenerationRequest{Idea: tt.idea, Style: tt.style})
				if err := b.Validate(); err != nil {
					t.Fatalf("seed=%d: %v (names %v)", seed, err, b.BrandNames)
				}
			}
		})
	}
}

func TestFreeCombinationScansWhenDrawsCollide(t *testing.T) {
	p := profileFor("Modern")
	var taken []string
	for _, prefix := range p.prefixes {
		for _, suffix := range p.suffixes {
			taken = append(taken, prefix+suffix)
		}
	}
	free := taken[len(taken)-1]
	taken = taken[:len(taken)-1]

	if got := NewSeeded(1).freeCombination(p, taken); got != free {
		t.Errorf("freeCombination: got %q, want %q", got, free)
	}
}
