package cmd

import (
	"fmt"

	"github.com/solfej/etimo/internal/speech"
	"github.com/spf13/cobra"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the Spanish voices available on this system",
	Long: `List the Spanish voices the system speech engine offers.

The voice marked with * is the one etimo would pick automatically:
an es-US Google voice if present, then any es-US voice, then the first
Spanish voice found.`,
	RunE: runVoices,
}

func init() {
	rootCmd.AddCommand(voicesCmd)
}

func runVoices(cmd *cobra.Command, args []string) error {
	settings := loadSettings()

	engine := newEngine(settings)
	if engine == nil {
		fmt.Println("No speech engine found (install espeak-ng, or run on macOS).")
		return nil
	}

	registry := speech.NewRegistry(engine)
	if err := registry.Refresh(cmd.Context()); err != nil {
		return err
	}

	voices := registry.Voices()
	if len(voices) == 0 {
		fmt.Printf("Engine %s offers no Spanish voices.\n", engine.Name())
		return nil
	}

	selected, _ := registry.Selected()

	fmt.Printf("Engine: %s\n\n", engine.Name())
	for _, v := range voices {
		marker := " "
		if v == selected {
			marker = "*"
		}
		fmt.Printf("%s %-28s %s\n", marker, v.Name, v.Lang)
	}

	return nil
}
