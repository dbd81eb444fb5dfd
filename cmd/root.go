// =============================================================================
// ASC to VCI Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'generate', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (ascvci)
//   ├── generateCmd (ascvci generate)
//   ├── validateCmd (ascvci validate)
//   ├── lashingCmd  (ascvci lashing)
//   └── versionCmd  (ascvci version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (e.g., --config, --verbose)
//   2. Loading the YAML configuration
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "ascvci",

	Short: "ASC to VCI Converter - Transform ASC cargo manifests to VCI XML",

	Long: `ASC to VCI Converter is a CLI tool that transforms fixed-layout ASC
cargo manifests into VCI XML files suitable for import into the terminal
operating system.

Key Features:
  - Discharge and load manifest ingestion with header extraction
  - Equipment type resolution via a static abbreviation table
  - Planner workbook (XLSX) assignment lists
  - Reconciliation of manifests against externally curated lists
  - Lashing eligibility reporting for MSC stow positions
  - Deterministic, byte-stable VCI XML output with archival

Example Usage:
  ascvci generate --discharge call.dis --load call.lod --workbook plan.xlsx
  ascvci validate --discharge call.dis --workbook plan.xlsx
  ascvci lashing --discharge call.dis --load call.lod`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// Persistent flags are available to this command and all subcommands.

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// loadConfig reads the configuration file named by --config. A missing file
// yields the built-in defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// buildLogger constructs the zap logger for a command run. The --verbose
// flag forces debug level regardless of configuration.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
