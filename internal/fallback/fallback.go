// Package fallback generates branding bundles locally from fixed per-style
// tables. It is used whenever the remote model is unavailable or returns
// something unusable, so it never fails and never touches the network.
package fallback

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brandcraft/internal/models"
)

const (
	defaultKeyword  = "Brand"
	minKeywordRunes = 4

	// maxComboDraws bounds random redraws of the prefix+suffix name.
	maxComboDraws = 8

	defaultAudience     = "General Consumers seeking quality."
	defaultAudienceNoun = "everyone"
	defaultBioAudience  = "you"
)

// Rand is the random source used for choices and palette order.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// globalRand delegates to the package-level math/rand/v2 functions, which are
// safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Generator builds bundles from the style tables.
type Generator struct {
	rnd Rand
}

// New creates a Generator. A nil source selects the shared package-level
// source; pass a seeded *rand.Rand for reproducible output.
func New(r Rand) *Generator {
	if r == nil {
		r = globalRand{}
	}
	return &Generator{rnd: r}
}

// NewSeeded returns a Generator whose output is fully determined by seed.
// The returned Generator must not be shared between goroutines.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// Generate produces a complete bundle for the request.
func (g *Generator) Generate(req models.GenerationRequest) models.BrandBundle {
	p := profileFor(req.Style)
	style := string(p.style)
	keyword := Keyword(req.Idea)
	idea := strings.TrimSpace(req.Idea)
	audience := strings.TrimSpace(req.Audience)

	names := []string{
		g.pick(p.prefixes) + keyword,
		keyword + g.pick(p.suffixes),
		keyword + " " + g.pick(nameSuffixWords),
		fmt.Sprintf("The %s %s", style, keyword),
	}
	names = append(names, g.freeCombination(p, names))

	palette := append([]string(nil), p.palette...)
	g.rnd.Shuffle(len(palette), func(i, j int) {
		palette[i], palette[j] = palette[j], palette[i]
	})

	tagline := p.taglines[g.rnd.IntN(len(p.taglines))](keyword)

	return models.BrandBundle{
		BrandNames: names,
		Tagline:    tagline,
		Description: fmt.Sprintf("A %s approach to %s, designed for %s. Innovating the future of your industry.",
			style, idea, orDefault(audience, defaultAudienceNoun)),
		TargetAudience: orDefault(audience, defaultAudience),
		ColorPalette:   palette,
		LogoPrompt:     fmt.Sprintf("A %s logo design for %s, vector style, clean lines, professional.", style, idea),
		InstagramBio: fmt.Sprintf("🚀 %s | ✨ %s vibes | 🌍 For %s | 👇 Check us out!",
			idea, style, orDefault(audience, defaultBioAudience)),
	}
}

// Keyword returns the first word of idea longer than three characters with
// its first letter upper-cased and the rest lower-cased, or "Brand" when
// there is none.
func Keyword(idea string) string {
	word, ok := lo.Find(strings.Fields(idea), func(w string) bool {
		return utf8.RuneCountInString(w) >= minKeywordRunes
	})
	if !ok {
		return defaultKeyword
	}
	// A Caser is stateful, so each call gets its own.
	_, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.Und).String(word[:size]) + cases.Lower(language.Und).String(word[size:])
}

// freeCombination draws a prefix+suffix name not already in taken. A keyword
// equal to a style prefix makes the first draw collide with the
// keyword+suffix name, so a few random redraws are followed by a scan of
// every combination.
func (g *Generator) freeCombination(p profile, taken []string) string {
	for range maxComboDraws {
		name := g.pick(p.prefixes) + g.pick(p.suffixes)
		if !lo.Contains(taken, name) {
			return name
		}
	}
	for _, prefix := range p.prefixes {
		for _, suffix := range p.suffixes {
			if name := prefix + suffix; !lo.Contains(taken, name) {
				return name
			}
		}
	}
	// Unreachable with the built-in tables: 25 combinations, 4 names taken.
	return p.prefixes[0] + p.suffixes[0] + " " + defaultKeyword
}

func (g *Generator) pick(options []string) string {
	return options[g.rnd.IntN(len(options))]
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
