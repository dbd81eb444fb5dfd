// =============================================================================
// ASC to VCI Converter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which reconciles the ASC
// manifests against the planner workbook without generating any output.
//
// COMMAND USAGE:
//   ascvci validate --discharge call.dis --load call.lod --workbook plan.xlsx
//
// EXIT CODE:
//   0 when reconciliation passes, non-zero otherwise.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/ascparser"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/typemap"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/validation"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/xlsxlists"
)

var validateFlags struct {
	dischargeFile string
	loadFile      string
	workbookFile  string
	port          string
}

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Reconcile ASC manifests against the planner workbook",
	Long: `Validate ingests the manifests and compares the MSC containers of each
side against the workbook assignment lists (DIS/TSD for discharge, LOD/TSL
for load). Every discrepancy is listed; the command fails when any exist.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.dischargeFile, "discharge", "d", "", "Path to the discharge ASC manifest")
	validateCmd.Flags().StringVarP(&validateFlags.loadFile, "load", "l", "", "Path to the load ASC manifest")
	validateCmd.Flags().StringVarP(&validateFlags.workbookFile, "workbook", "w", "", "Path to the planner workbook (XLSX)")
	validateCmd.Flags().StringVar(&validateFlags.port, "port", "", "Override the configured port call code")
	validateCmd.MarkFlagRequired("workbook")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if validateFlags.port != "" {
		cfg.Port = validateFlags.port
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ingestor := ascparser.NewIngestor(typemap.NewResolver(), cfg.PortAliases, logger)

	discharge, err := ingestManifest(ingestor, validateFlags.dischargeFile, types.OriginDischarge)
	if err != nil {
		return err
	}
	load, err := ingestManifest(ingestor, validateFlags.loadFile, types.OriginLoad)
	if err != nil {
		return err
	}

	lists, err := xlsxlists.ParseWorkbook(validateFlags.workbookFile)
	if err != nil {
		return fmt.Errorf("failed to parse workbook: %w", err)
	}

	report := validation.Validate(discharge, load, lists.Assignments, cfg.Port, cfg.PortAliases)
	fmt.Print(report.Summary)

	if !report.Passed {
		return fmt.Errorf("reconciliation failed")
	}
	return nil
}

// ingestManifest reads and ingests one manifest; a blank path yields an
// empty registry.
func ingestManifest(ingestor *ascparser.Ingestor, path string, origin types.Origin) (types.Registry, error) {
	if path == "" {
		return make(types.Registry), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	registry, _ := ingestor.Ingest(string(data), origin)
	return registry, nil
}
