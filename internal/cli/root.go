package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mixmem/internal/config"
	"mixmem/internal/core"
	"mixmem/internal/errors"
	"mixmem/internal/store"
)

var (
	cfgFile string
	dbPath  string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mixmem",
	Short: "Remember which tracks mix well together",
	Long: `Mixmem keeps a personal library of music tracks and the transitions
between them that worked well, so it can suggest what to play next.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.mixmemrc)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database (default: mix-memory.db)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}

// openStore opens the configured database.
func openStore() (*store.Store, error) {
	s, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if Verbose() {
		NormalF("Using database %s", cfg.Database.Path)
	}
	return s, nil
}

// loadNetwork loads the full track network from the configured database.
func loadNetwork(s *store.Store) (*core.Network, error) {
	network, err := s.LoadNetwork()
	if err != nil {
		return nil, fmt.Errorf("failed to load track network: %w", err)
	}
	return network, nil
}
