// =============================================================================
// ASC to VCI Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. A single YAML file carries everything the pipeline needs
// that is not supplied per invocation: the terminal's port code, the legacy
// port alias table, per-origin account codes, output locations, and logging.
//
// CONFIGURATION FILE:
//   config.yaml in the working directory by default; override with --config.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration loaded from config.yaml.
type Config struct {
	// =========================================================================
	// PORT SETTINGS
	// =========================================================================

	// Port is the selected port call. Containers whose normalized
	// port-of-discharge (discharge side) or port-of-load (load side) starts
	// with this code are included in the merge.
	// Default: "KRPUS"
	Port string `yaml:"port"`

	// PortAliases maps legacy port codes to their canonical form. Both the
	// manifest parser and the merge step normalize through this table.
	// Default: {"KRBUS": "KRPUS"}
	PortAliases map[string]string `yaml:"port_aliases"`

	// =========================================================================
	// ACCOUNT SETTINGS
	// =========================================================================

	// DischargeAccountCode is the account code applied to containers named
	// in the discharge-side account list. Default: "MSC"
	DischargeAccountCode string `yaml:"discharge_account_code"`

	// LoadAccountCode is the account code applied to containers named in
	// the load-side account list. Default: "MSC"
	LoadAccountCode string `yaml:"load_account_code"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated VCI XML files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// OutputArchiveDir is the directory where generated XML files are
	// copied for long-term storage. Empty disables archival.
	OutputArchiveDir string `yaml:"output_archive_dir"`

	// FilenameFormat defines the output file name. Placeholders:
	//   {port}      - Selected port code
	//   {vessel}    - Vessel name from the discharge manifest header
	//   {voyage}    - Voyage code from the discharge manifest header
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMM)
	//   {uuid}      - The export job ID
	// Default: "VCI_{port}_{vessel}_{voyage}_{timestamp}.xml"
	FilenameFormat string `yaml:"filename_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// validates it. A missing file is not an error: the defaults describe a
// fully working setup, so Load falls back to Default() in that case.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = "KRPUS"
	}
	if cfg.PortAliases == nil {
		cfg.PortAliases = map[string]string{"KRBUS": "KRPUS"}
	}
	if cfg.DischargeAccountCode == "" {
		cfg.DischargeAccountCode = "MSC"
	}
	if cfg.LoadAccountCode == "" {
		cfg.LoadAccountCode = "MSC"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.FilenameFormat == "" {
		cfg.FilenameFormat = "VCI_{port}_{vessel}_{voyage}_{timestamp}.xml"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the loaded configuration for values the pipeline cannot
// work with.
func validate(cfg *Config) error {
	cfg.Port = strings.ToUpper(strings.TrimSpace(cfg.Port))
	if len(cfg.Port) < 2 || len(cfg.Port) > 5 {
		return fmt.Errorf("port code %q must be 2-5 characters", cfg.Port)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	for alias, canonical := range cfg.PortAliases {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(canonical) == "" {
			return fmt.Errorf("port alias %q -> %q contains an empty code", alias, canonical)
		}
	}

	return nil
}

// NormalizePort translates a legacy port code to its canonical form using
// the configured alias table. Unknown codes pass through unchanged.
func (c *Config) NormalizePort(code string) string {
	if canonical, ok := c.PortAliases[code]; ok {
		return canonical
	}
	return code
}
