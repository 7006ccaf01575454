// Package cmd contains all CLI commands for etimo.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/solfej/etimo/internal/config"
	"github.com/solfej/etimo/internal/llm"
	"github.com/solfej/etimo/internal/speech"
	"github.com/solfej/etimo/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "etimo",
	Short: "Explore the etymology of Spanish words",
	Long: `etimo looks up Spanish words and explains where they come from:
their English meaning, etymology, English words sharing the same root,
a mnemonic, and sample sentences.

Analyses come from an OpenAI-compatible chat-completion endpoint; set
OPENAI_API_KEY (a .env file in the working directory is read too).
Pronunciation playback uses the system speech engine when one is found.

Running 'etimo' without arguments launches the interactive TUI.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/etimo/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in the .env file and ENV variables if set.
func initConfig() {
	// Best effort; the credential may already be exported.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.Set("config_file", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_file", filepath.Join(dir, config.FileName))
	}

	viper.SetEnvPrefix("ETIMO")
	viper.AutomaticEnv()
}

// configFile returns the configuration file path.
func configFile() string {
	return viper.GetString("config_file")
}

// loadSettings reads the config file, falling back to defaults on error.
func loadSettings() *config.Settings {
	s, err := config.Load(configFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return config.Default()
	}
	return s
}

// newEngine picks the speech engine from settings or autodetects one.
func newEngine(settings *config.Settings) speech.Engine {
	switch settings.SpeechEngine {
	case "say":
		return speech.NewSayEngine(nil)
	case "espeak", "espeak-ng":
		return speech.NewEspeakEngine(settings.SpeechEngine, nil)
	default:
		return speech.DetectEngine(nil)
	}
}

// runTUI launches the interactive TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	settings := loadSettings()

	// No API key is not fatal here; the lookup view explains it on submit.
	client, _ := llm.NewClient(settings.Model, settings.BaseURL)
	registry := speech.NewRegistry(newEngine(settings))

	p := tea.NewProgram(
		tui.NewApp(settings, client, registry),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
