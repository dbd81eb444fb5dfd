// =============================================================================
// ASC to VCI Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the ASC to VCI Converter CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   ascvci generate      - Convert ASC manifests into a VCI XML file
//   ascvci validate      - Reconcile manifests against the planner workbook
//   ascvci lashing       - Build the lashing worksheet
//   ascvci version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/ASC-to-VCI-conversion/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
