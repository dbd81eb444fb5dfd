// =============================================================================
// ASC to VCI Converter - Lashing Command
// =============================================================================
//
// This file defines the 'lashing' command, which builds the lashing
// worksheet for a port call: MSC containers split into lashing-eligible and
// ineligible rows by bay parity and tier.
//
// COMMAND USAGE:
//   ascvci lashing --discharge call.dis --load call.lod
//   ascvci lashing --discharge call.dis --format csv --output lashing.csv
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/ascparser"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/lashing"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/typemap"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

var lashingFlags struct {
	dischargeFile string
	loadFile      string
	format        string
	outputFile    string
}

// lashingCmd represents the 'lashing' command.
var lashingCmd = &cobra.Command{
	Use:   "lashing",
	Short: "Build the lashing worksheet from ASC manifests",
	Long: `Lashing ingests the manifests and classifies every MSC container with a
stow position: containers in odd bays always require lashing, containers in
even bays require it from tier 69 upward. The worksheet lists eligible and
ineligible containers separately, sorted by stow position.`,
	RunE: runLashing,
}

func init() {
	rootCmd.AddCommand(lashingCmd)

	lashingCmd.Flags().StringVarP(&lashingFlags.dischargeFile, "discharge", "d", "", "Path to the discharge ASC manifest")
	lashingCmd.Flags().StringVarP(&lashingFlags.loadFile, "load", "l", "", "Path to the load ASC manifest")
	lashingCmd.Flags().StringVarP(&lashingFlags.format, "format", "f", "tsv", "Output format: tsv or csv")
	lashingCmd.Flags().StringVarP(&lashingFlags.outputFile, "output", "o", "", "Write the worksheet to a file instead of stdout")
}

func runLashing(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ingestor := ascparser.NewIngestor(typemap.NewResolver(), cfg.PortAliases, logger)

	discharge, err := ingestManifest(ingestor, lashingFlags.dischargeFile, types.OriginDischarge)
	if err != nil {
		return err
	}
	load, err := ingestManifest(ingestor, lashingFlags.loadFile, types.OriginLoad)
	if err != nil {
		return err
	}

	report := lashing.Build(discharge, load, nil)

	var output string
	switch lashingFlags.format {
	case "tsv":
		output = lashing.TSV(report.Lashing)
	case "csv":
		output, err = lashing.CSV(report.Lashing)
		if err != nil {
			return fmt.Errorf("failed to render worksheet: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want tsv or csv)", lashingFlags.format)
	}

	if lashingFlags.outputFile != "" {
		if err := os.WriteFile(lashingFlags.outputFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write worksheet: %w", err)
		}
		fmt.Printf("Worksheet:   %s\n", lashingFlags.outputFile)
	} else {
		fmt.Print(output)
	}

	fmt.Printf("Lashing:     %d\n", len(report.Lashing))
	fmt.Printf("Non-lashing: %d\n", len(report.NonLashing))
	fmt.Printf("MSC total:   %d (discharge %d, load %d)\n",
		report.Summary.Total, report.Summary.Discharge, report.Summary.Load)

	return nil
}
