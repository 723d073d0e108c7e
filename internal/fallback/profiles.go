package fallback

import "brandcraft/internal/models"

// profile is the fixed naming and color table for one style.
type profile struct {
	style    models.Style
	prefixes []string
	suffixes []string
	palette  []string
	taglines []func(keyword string) string
}

// nameSuffixWords completes the "<keyword> <word>" candidate for every style.
var nameSuffixWords = []string{"Studio", "Co", "Global", "Works", "Group"}

var profiles = map[models.Style]profile{
	models.StyleModern: {
		style:    models.StyleModern,
		prefixes: []string{"Neo", "Tech", "Ultra", "Next", "Flux"},
		suffixes: []string{"ly", "io", "sys", "lab", "hub"},
		palette:  []string{"#2563eb", "#3b82f6", "#60a5fa", "#1e293b", "#f8fafc"},
		taglines: []func(string) string{
			func(k string) string { return "The Future of " + k + "." },
			func(k string) string { return "Simply " + k + "." },
			func(k string) string { return "Reimagining " + k + "." },
			func(string) string { return "Innovation First." },
		},
	},
	models.StyleMinimal: {
		style:    models.StyleMinimal,
		prefixes: []string{"Pure", "Bare", "Mono", "True", "One"},
		suffixes: []string{"", "base", "node", "dot", "box"},
		palette:  []string{"#000000", "#171717", "#404040", "#d4d4d4", "#ffffff"},
		taglines: []func(string) string{
			func(k string) string { return "Just " + k + "." },
			func(k string) string { return "Pure " + k + "." },
			func(string) string { return "Less is More." },
			func(k string) string { return "The Essence of " + k + "." },
		},
	},
	models.StyleLuxury: {
		style:    models.StyleLuxury,
		prefixes: []string{"Grand", "Elite", "Prime", "Aura", "Royal"},
		suffixes: []string{"gold", "lux", "th", "mont", "vogue"},
		palette:  []string{"#000000", "#1c1917", "#78716c", "#d6d3d1", "#fbbf24"},
		taglines: []func(string) string{
			func(k string) string { return "Exquisitely " + k + "." },
			func(k string) string { return "Beyond " + k + "." },
			func(string) string { return "Defined by Elegance." },
			func(string) string { return "Timeless Quality." },
		},
	},
	models.StyleBold: {
		style:    models.StyleBold,
		prefixes: []string{"Iron", "Mega", "Hyper", "Power", "Stark"},
		suffixes: []string{"force", "impact", "max", "strike", "core"},
		palette:  []string{"#dc2626", "#ea580c", "#fbbf24", "#0f172a", "#ffffff"},
		taglines: []func(string) string{
			func(k string) string { return k + " Evolved." },
			func(k string) string { return "Unstoppable " + k + "." },
			func(string) string { return "Dare to Lead." },
			func(k string) string { return "Power Your " + k + "." },
		},
	},
	models.StylePlayful: {
		style:    models.StylePlayful,
		prefixes: []string{"Go", "Fun", "Happy", "Snap", "Jolly"},
		suffixes: []string{"ify", "joy", "pop", "ster", "roo"},
		palette:  []string{"#ec4899", "#8b5cf6", "#f43f5e", "#fb923c", "#fde047"},
		taglines: []func(string) string{
			func(k string) string { return "Joyfully " + k + "." },
			func(k string) string { return k + " for Everyone." },
			func(string) string { return "Spark Your Day." },
			func(k string) string { return "Make " + k + " Fun." },
		},
	},
}

// profileFor returns the profile of the resolved style. Every value
// ParseStyle returns has an entry.
func profileFor(style string) profile {
	return profiles[models.ParseStyle(style)]
}

// Palette returns a copy of the fixed color set for a style, in table order.
func Palette(style string) []string {
	p := profileFor(style)
	return append([]string(nil), p.palette...)
}
