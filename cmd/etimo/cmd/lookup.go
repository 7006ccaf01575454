package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/solfej/etimo/internal/analysis"
	"github.com/solfej/etimo/internal/clipboard"
	"github.com/solfej/etimo/internal/llm"
	"github.com/solfej/etimo/internal/speech"
	"github.com/spf13/cobra"
)

var (
	lookupCopy  bool
	lookupSpeak bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up the etymology of a Spanish word",
	Long: `Look up a Spanish word and print its:
  - English meaning
  - Etymology
  - Related English words sharing the same root
  - Mnemonic
  - Sample sentences

Example:
  etimo lookup ventana
  etimo lookup casa --speak`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupCopy, "copy", false, "copy the analysis to the clipboard")
	lookupCmd.Flags().BoolVar(&lookupSpeak, "speak", false, "pronounce the word after printing")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	word := strings.TrimSpace(args[0])
	if word == "" {
		return fmt.Errorf("empty search term")
	}

	settings := loadSettings()

	client, err := llm.NewClient(settings.Model, settings.BaseURL)
	if err != nil {
		return err
	}

	fmt.Printf("Looking up: %s\n\n", word)

	raw, err := client.Analyze(cmd.Context(), word)
	if err != nil {
		var se *llm.StatusError
		if errors.As(err, &se) {
			return fmt.Errorf("upstream request failed (HTTP %d): check your API key", se.StatusCode)
		}
		return err
	}

	rec, err := analysis.Normalize(raw, word)
	if err != nil {
		if errors.Is(err, analysis.ErrMalformed) {
			return fmt.Errorf("the reply could not be parsed, try again: %w", err)
		}
		return err
	}

	printRecord(rec)

	if lookupCopy {
		if err := clipboard.Write(rec.PlainText()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		} else {
			fmt.Println("\nCopied to clipboard.")
		}
	}

	if lookupSpeak {
		registry := speech.NewRegistry(newEngine(settings))
		if err := registry.Refresh(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		if settings.Voice != "" {
			_ = registry.SelectVoice(settings.Voice)
		}
		if err := registry.Speak(cmd.Context(), rec.Pronunciation); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: playback failed: %v\n", err)
		}
	}

	return nil
}

func printRecord(r *analysis.Record) {
	fmt.Printf("Word: %s\n", r.Word)
	fmt.Printf("  Pronunciation: %s\n", r.Pronunciation)
	fmt.Printf("  Meaning: %s\n", r.EnglishMeaning)
	fmt.Printf("  Family: %s\n", r.LanguageFamily)
	fmt.Printf("  Confidence: %s\n", r.Confidence)
	fmt.Println("  ---")
	fmt.Printf("  Etymology: %s\n", r.Etymology)
	if len(r.RelatedEnglishWords) > 0 {
		fmt.Printf("  Related: %s\n", strings.Join(r.RelatedEnglishWords, ", "))
	}
	fmt.Printf("  Mnemonic: %s\n", r.Mnemonic)
	if len(r.SampleSentences) > 0 {
		fmt.Println("  Sample sentences:")
		for _, s := range r.SampleSentences {
			fmt.Printf("    - %s\n", s.Spanish)
			fmt.Printf("      %s\n", s.English)
		}
	}
}
