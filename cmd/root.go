package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/majkprpik/kina/internal/config"
	"github.com/majkprpik/kina/internal/logger"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:          "kina",
	Short:        "Generate and edit random domino tilings",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "Path to kina.yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose logging to .kina/logs/kina.log")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging starts the file logger next to the config file. A logger that
// cannot be opened is not fatal; logs are discarded instead. With --debug the
// log path is reported on stderr.
func setupLogging(cmd *cobra.Command) func() {
	root, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		root = "."
	}
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	if debug {
		fmt.Fprintf(cmd.ErrOrStderr(), "Logging to %s\n", logger.Path())
	}
	return func() { _ = cleanup() }
}

// boardFlags holds the board/generator flags shared by gen and play.
type boardFlags struct {
	width, height int
	seed          int64
	attempts      int
	scaleBudget   bool
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "W", 0, "Board width in cells (default from config)")
	cmd.Flags().IntVarP(&f.height, "height", "H", 0, "Board height in cells (default from config)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed for reproducible tilings (0 = random)")
	cmd.Flags().IntVar(&f.attempts, "attempts", 0, "Maximum generation attempts (default from config)")
	cmd.Flags().BoolVar(&f.scaleBudget, "scale-budget", false, "Grow the attempt budget with the board area")
}

// loadConfig reads the config file and applies any flags the user set.
func (f *boardFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Board.Height = f.height
	}
	if flags.Changed("seed") {
		cfg.Generator.Seed = f.seed
	}
	if flags.Changed("attempts") {
		cfg.Generator.MaxAttempts = f.attempts
	}
	if flags.Changed("scale-budget") {
		cfg.Generator.ScaleBudget = f.scaleBudget
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
