// =============================================================================
// ASC to VCI Converter - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the full conversion
// pipeline: manifest ingestion, workbook parsing, reconciliation, merge, and
// VCI XML generation.
//
// COMMAND USAGE:
//   ascvci generate --discharge call.dis --load call.lod --workbook plan.xlsx
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/converter"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/typemap"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var generateFlags struct {
	dischargeFile        string
	loadFile             string
	workbookFile         string
	dgListFile           string
	oogListFile          string
	dischargeAccountFile string
	loadAccountFile      string
	skipValidation       bool
	port                 string
}

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a VCI XML file from ASC manifests",
	Long: `Generate runs the full conversion pipeline for one port call:

  1. Ingest the discharge and load ASC manifests
  2. Read the planner workbook assignment lists
  3. Reconcile the manifests against the lists
  4. Merge both sides and apply accounts and transfer flags
  5. Write the VCI XML file and archive a copy

At least one of --discharge and --load must be provided. Reconciliation
failures abort the run unless --skip-validation is set.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.dischargeFile, "discharge", "d", "", "Path to the discharge ASC manifest")
	generateCmd.Flags().StringVarP(&generateFlags.loadFile, "load", "l", "", "Path to the load ASC manifest")
	generateCmd.Flags().StringVarP(&generateFlags.workbookFile, "workbook", "w", "", "Path to the planner workbook (XLSX)")
	generateCmd.Flags().StringVar(&generateFlags.dgListFile, "dg-list", "", "Path to a free-text list of confirmed DG containers")
	generateCmd.Flags().StringVar(&generateFlags.oogListFile, "oog-list", "", "Path to a free-text list of confirmed OOG containers")
	generateCmd.Flags().StringVar(&generateFlags.dischargeAccountFile, "discharge-account-list", "", "Path to a free-text list of discharge containers to re-account")
	generateCmd.Flags().StringVar(&generateFlags.loadAccountFile, "load-account-list", "", "Path to a free-text list of load containers to re-account")
	generateCmd.Flags().BoolVar(&generateFlags.skipValidation, "skip-validation", false, "Generate output even when reconciliation fails")
	generateCmd.Flags().StringVar(&generateFlags.port, "port", "", "Override the configured port call code")
}

// =============================================================================
// COMMAND EXECUTION
// =============================================================================

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateFlags.port != "" {
		cfg.Port = generateFlags.port
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	conv := converter.New(cfg, logger)
	result := conv.Run(converter.Inputs{
		DischargeFile:            generateFlags.dischargeFile,
		LoadFile:                 generateFlags.loadFile,
		WorkbookFile:             generateFlags.workbookFile,
		DGListFile:               generateFlags.dgListFile,
		OOGListFile:              generateFlags.oogListFile,
		DischargeAccountListFile: generateFlags.dischargeAccountFile,
		LoadAccountListFile:      generateFlags.loadAccountFile,
		SkipValidation:           generateFlags.skipValidation,
	})

	if !result.Success {
		if !result.Validation.Passed {
			fmt.Fprintln(os.Stderr, result.Validation.Summary)
		}
		return result.Error
	}

	// Surface equipment abbreviations the static table could not resolve
	// so the operator can install overrides before the next run.
	if len(result.Unmapped) > 0 {
		logger.Warn("unmapped equipment types", zap.Int("count", len(result.Unmapped)))
		review := typemap.NewReviewTable()
		review.Merge(result.Unmapped)
		fmt.Printf("Unmapped equipment types (%d need mapping):\n", review.NeedsMapping(conv.Resolver()))
		for _, row := range review.Rows(conv.Resolver()) {
			label := row.Original
			if label == "" {
				label = "(blank)"
			}
			line := fmt.Sprintf("  %-12s %-8s %s", row.Container, label, row.Status)
			if recs := typemap.Recommend(row.Original); row.Original != "" && len(recs) > 0 {
				line += fmt.Sprintf("  (suggestion: %s %s)", recs[0].Type, recs[0].Description)
			}
			fmt.Println(line)
		}
	}

	fmt.Printf("Vessel:     %s\n", result.Header.Vessel)
	fmt.Printf("Voyage:     %s\n", result.Header.Voyage)
	fmt.Printf("Containers: %d (discharge %d, load %d)\n",
		result.Stats.MergedContainers,
		result.Stats.DischargeContainers,
		result.Stats.LoadContainers)
	cargo := result.SpecialCargo
	if n := len(cargo.DischargeDG) + len(cargo.LoadDG); n > 0 {
		fmt.Printf("DG cargo:   %d (discharge %d, load %d)\n", n, len(cargo.DischargeDG), len(cargo.LoadDG))
	}
	if n := len(cargo.DischargeOOG) + len(cargo.LoadOOG); n > 0 {
		fmt.Printf("OOG cargo:  %d (discharge %d, load %d)\n", n, len(cargo.DischargeOOG), len(cargo.LoadOOG))
	}
	if result.PartnerCargo {
		fmt.Println("Note: partner operator cargo present")
	}
	if result.ForeignAccount {
		fmt.Println("Note: containers assigned to a non-MSC account")
	}
	fmt.Printf("Output:     %s\n", result.OutputFile)
	if result.ArchiveFile != "" {
		fmt.Printf("Archived:   %s\n", result.ArchiveFile)
	}

	return nil
}
