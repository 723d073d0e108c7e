package ai

import (
	"fmt"

	"brandcraft/internal/models"
)

// BuildPrompt returns the instruction prompt asking the model for a bundle
// as a single JSON object.
func BuildPrompt(req models.GenerationRequest) string {
	audience := req.Audience
	if audience == "" {
		audience = "(not specified, infer one)"
	}

	return fmt.Sprintf(`Act as a creative brand strategist. Generate branding assets for the following business:
Business Idea: %s
Style: %s
Target Audience: %s

You MUST output valid JSON only. Do not add any conversational text.
The JSON object must have exactly these keys:
- "brand_names": (list of 5 distinct strings)
- "tagline": (string)
- "description": (string, max 2 sentences)
- "target_audience": (string, infer if not provided)
- "color_palette": (list of 5 hex color codes like "#1e293b")
- "logo_prompt": (string, prompt for an image generator)
- "instagram_bio": (string, with emojis)
JSON Output:
`, req.Idea, models.ParseStyle(req.Style), audience)
}
