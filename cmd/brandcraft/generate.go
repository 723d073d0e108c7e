package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"brandcraft/internal/generator"
	"brandcraft/internal/models"
)

var (
	genIdea     string
	genStyle    string
	genAudience string
	genJSON     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one brand bundle and store it in the history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.GenerationRequest{Idea: genIdea, Style: genStyle, Audience: genAudience}
		if msg := req.Validate(); msg != "" {
			return errors.New(msg)
		}

		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.generator.Generate(commandContext(cmd), req)

		if genJSON {
			return printJSON(cmd.OutOrStdout(), res.Bundle)
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genIdea, "idea", "i", "", "business idea to brand (required)")
	generateCmd.Flags().StringVarP(&genStyle, "style", "s", string(models.DefaultStyle), "brand style: Modern, Minimal, Luxury, Bold or Playful")
	generateCmd.Flags().StringVarP(&genAudience, "audience", "a", "", "target audience")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "print the bundle as JSON")
	generateCmd.MarkFlagRequired("idea")

	rootCmd.AddCommand(generateCmd)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult writes a readable view of a generation result.
func printResult(w io.Writer, res generator.Result) {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.Bold)

	source := color.GreenString(string(res.Source))
	if res.Source == generator.SourceFallback {
		source = color.YellowString(string(res.Source))
	}
	header.Fprintf(w, "Brand bundle")
	fmt.Fprintf(w, " (%s", source)
	if res.RecordID > 0 {
		fmt.Fprintf(w, ", record #%d", res.RecordID)
	}
	fmt.Fprintln(w, ")")

	printBundle(w, label, res.Bundle)
}

func printBundle(w io.Writer, label *color.Color, b models.BrandBundle) {
	label.Fprintln(w, "Names:")
	for i, n := range b.BrandNames {
		fmt.Fprintf(w, "  %d. %s\n", i+1, n)
	}
	field := func(name, value string) {
		label.Fprintf(w, "%s: ", name)
		fmt.Fprintln(w, value)
	}
	field("Tagline", b.Tagline)
	field("Description", b.Description)
	field("Audience", b.TargetAudience)
	field("Palette", strings.Join(b.ColorPalette, " "))
	field("Logo prompt", b.LogoPrompt)
	field("Instagram bio", b.InstagramBio)
}
