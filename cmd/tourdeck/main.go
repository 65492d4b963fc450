package main

import (
	"fmt"
	"os"

	"tourdeck/internal/config"
	"tourdeck/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dataPath   string
	watch      bool

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tourdeck",
	Short: "tourdeck - tour cards and testimonials in the terminal",
	Long: `tourdeck shows two small widgets:

  Tours         a list of tour cards with read more / show less and
                "Not Interested" removal
  Testimonials  a carousel of reviews with previous, next and Surprise Me

Run without arguments to open the configured start page. Use tab to switch.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, cfg.UI.StartPage)
	},
}

var toursCmd = &cobra.Command{
	Use:   "tours",
	Short: "Open the tours page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, config.PageTours)
	},
}

var reviewsCmd = &cobra.Command{
	Use:     "reviews",
	Aliases: []string{"testimonials"},
	Short:   "Open the testimonials page",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, config.PageReviews)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to .tourdeck/logs")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .tourdeck/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Catalog YAML file (default: built-in catalog)")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "Reload the catalog when the data file changes")

	dataCmd.AddCommand(dataDumpCmd)
	dataCmd.AddCommand(dataValidateCmd)

	rootCmd.AddCommand(toursCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(dataCmd)
}

// setup resolves config, applies flag overrides and starts logging.
func setup(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		loaded.DataPath = dataPath
	}
	if flags.Changed("watch") {
		loaded.Watch = watch
	}
	if verbose {
		loaded.Logging.DebugMode = true
		loaded.Logging.Level = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(loaded.Logging.Settings(), config.StateDir()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg = loaded
	logger = logging.Get(logging.CategoryBoot)
	logger.Info("config resolved",
		zap.String("config", path),
		zap.String("data", cfg.DataPath),
		zap.Bool("watch", cfg.Watch))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
