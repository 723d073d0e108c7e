package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"brandcraft/internal/models"
)

// fenceReplacer removes Markdown code-fence markers, tagged and bare.
var fenceReplacer = strings.NewReplacer("```json", "", "```JSON", "", "```", "")

// Interpret extracts a bundle from a raw inference payload. The payload must
// be a non-empty array whose first element carries a "generated_text"
// string; that text, stripped of code fences, must decode to an object that
// passes BrandBundle.Validate. Every failure wraps ErrInvalid.
func Interpret(raw RawResult) (models.BrandBundle, error) {
	text, err := GeneratedText(raw)
	if err != nil {
		return models.BrandBundle{}, err
	}

	cleaned := StripCodeFences(text)

	var bundle models.BrandBundle
	if err := json.Unmarshal([]byte(cleaned), &bundle); err != nil {
		return models.BrandBundle{}, fmt.Errorf("%w: decode: %v", ErrInvalid, err)
	}

	bundle.Normalize()
	if err := bundle.Validate(); err != nil {
		return models.BrandBundle{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return bundle, nil
}

// GeneratedText returns the "generated_text" field of the first element of
// the payload.
func GeneratedText(raw RawResult) (string, error) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("%w: payload is not JSON", ErrInvalid)
	}

	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return "", fmt.Errorf("%w: payload is not an array", ErrInvalid)
	}

	first := root.Get("0")
	if !first.IsObject() {
		return "", fmt.Errorf("%w: payload has no first object", ErrInvalid)
	}

	text := first.Get("generated_text")
	if text.Type != gjson.String {
		return "", fmt.Errorf("%w: missing generated_text", ErrInvalid)
	}

	return text.String(), nil
}

// StripCodeFences removes ```json and ``` markers and surrounding whitespace.
func StripCodeFences(s string) string {
	return strings.TrimSpace(fenceReplacer.Replace(s))
}
