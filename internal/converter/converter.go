// =============================================================================
// ASC to VCI Converter - Conversion Pipeline
// =============================================================================
//
// This module drives a full port-call conversion: both ASC manifests are
// ingested, the planner workbook and curated lists are applied, the merged
// registry is reconciled against the assignment lists, and the VCI XML file
// is generated, written, and archived.
//
// The converter owns the run; the packages it calls are side-effect free so
// every step can be exercised in isolation.
//
// =============================================================================

package converter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/ascparser"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/config"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/merger"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/typemap"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/validation"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/xlsxlists"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/xmlwriter"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/pkg/utils"
)

// =============================================================================
// INPUT AND RESULT STRUCTURES
// =============================================================================

// Inputs names the files for one port call.
type Inputs struct {
	// DischargeFile and LoadFile are the ASC manifests. At least one must
	// be provided.
	DischargeFile string
	LoadFile      string

	// WorkbookFile is the planner workbook carrying the assignment lists.
	// Optional.
	WorkbookFile string

	// DGListFile and OOGListFile are free-text files naming containers
	// whose dangerous-goods / out-of-gauge status was confirmed outside
	// the manifest. Optional.
	DGListFile  string
	OOGListFile string

	// DischargeAccountListFile and LoadAccountListFile name the containers
	// to re-account per origin; the codes come from configuration.
	// Optional.
	DischargeAccountListFile string
	LoadAccountListFile      string

	// SkipValidation generates output even when reconciliation fails.
	SkipValidation bool
}

// Result represents the outcome of one conversion run.
type Result struct {
	// OutputFile is the path to the generated VCI file.
	// This is empty if processing failed.
	OutputFile string

	// ArchiveFile is the path to the archived copy, when archival is
	// configured.
	ArchiveFile string

	// Header is the vessel/voyage metadata extracted from the manifests.
	Header types.ManifestHeader

	// Validation is the reconciliation report.
	Validation validation.Report

	// Unmapped contains equipment abbreviations the static table could
	// not resolve during ingestion.
	Unmapped []typemap.UnmappedEntry

	// SpecialCargo lists the MSC containers flagged DG or OOG per side.
	SpecialCargo validation.SpecialCargo

	// PartnerCargo is true when any container carries a non-MSC operator.
	PartnerCargo bool

	// ForeignAccount is true when any container was re-accounted away
	// from MSC.
	ForeignAccount bool

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// DischargeContainers is the number of containers parsed from the
	// discharge manifest.
	DischargeContainers int

	// LoadContainers is the number of containers parsed from the load
	// manifest.
	LoadContainers int

	// MergedContainers is the number of containers in the generated file.
	MergedContainers int

	// ValidationIssues is the number of reconciliation discrepancies.
	ValidationIssues int

	// ProcessingTime is the time taken for the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of one port call to a VCI file.
type Converter struct {
	cfg      *config.Config
	resolver *typemap.Resolver
	logger   *zap.Logger
}

// New creates a new Converter instance. A nil logger disables logging.
func New(cfg *config.Config, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		cfg:      cfg,
		resolver: typemap.NewResolver(),
		logger:   logger,
	}
}

// Resolver exposes the type resolver so callers can inspect unmapped
// abbreviations or install overrides between runs.
func (c *Converter) Resolver() *typemap.Resolver {
	return c.resolver
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
//
// PROCESSING STEPS:
//  1. Ingest the discharge and load manifests
//  2. Parse the planner workbook
//  3. Parse the curated DG/OOG lists
//  4. Reconcile manifests against the assignment lists
//  5. Apply type overrides and merge
//  6. Generate the VCI XML
//  7. Write the output file and archive it
func (c *Converter) Run(in Inputs) Result {
	startTime := time.Now()
	result := Result{Success: false}

	if in.DischargeFile == "" && in.LoadFile == "" {
		result.Error = fmt.Errorf("no manifest file provided")
		return result
	}

	// =========================================================================
	// STEP 1: INGEST MANIFESTS
	// =========================================================================

	ingestor := ascparser.NewIngestor(c.resolver, c.cfg.PortAliases, c.logger)

	discharge, dischargeHeader, err := c.ingestFile(ingestor, in.DischargeFile, types.OriginDischarge)
	if err != nil {
		result.Error = err
		return result
	}
	load, loadHeader, err := c.ingestFile(ingestor, in.LoadFile, types.OriginLoad)
	if err != nil {
		result.Error = err
		return result
	}

	result.Header = pickHeader(dischargeHeader, loadHeader)
	result.Stats.DischargeContainers = len(discharge)
	result.Stats.LoadContainers = len(load)

	// =========================================================================
	// STEP 2: PARSE PLANNER WORKBOOK
	// =========================================================================

	lists := &xlsxlists.WorkbookLists{}
	if in.WorkbookFile != "" {
		lists, err = xlsxlists.ParseWorkbook(in.WorkbookFile)
		if err != nil {
			result.Error = fmt.Errorf("failed to parse workbook: %w", err)
			return result
		}
		c.logger.Info("workbook parsed",
			zap.Int("dis", len(lists.Assignments.DIS)),
			zap.Int("tsd", len(lists.Assignments.TSD)),
			zap.Int("lod", len(lists.Assignments.LOD)),
			zap.Int("tsl", len(lists.Assignments.TSL)))
	}

	// =========================================================================
	// STEP 3: PARSE CURATED DG/OOG LISTS
	// =========================================================================

	curated, err := c.readCuratedLists(in)
	if err != nil {
		result.Error = err
		return result
	}

	accountLists, err := readAccountLists(in)
	if err != nil {
		result.Error = err
		return result
	}

	// =========================================================================
	// STEP 4: RECONCILE
	// =========================================================================

	result.Validation = validation.Validate(discharge, load, lists.Assignments, c.cfg.Port, c.cfg.PortAliases)
	result.Stats.ValidationIssues = len(result.Validation.Discharge) + len(result.Validation.Load)

	if !result.Validation.Passed {
		c.logger.Warn("reconciliation failed",
			zap.Int("dischargeIssues", len(result.Validation.Discharge)),
			zap.Int("loadIssues", len(result.Validation.Load)))
		if !in.SkipValidation {
			result.Error = fmt.Errorf("reconciliation failed with %d issue(s)", result.Stats.ValidationIssues)
			return result
		}
	}

	// =========================================================================
	// STEP 5: APPLY OVERRIDES AND MERGE
	// =========================================================================

	c.resolver.ApplyOverrides(discharge)
	c.resolver.ApplyOverrides(load)

	merged := merger.Merge(discharge, load, merger.Inputs{
		Port:        c.cfg.Port,
		Aliases:     c.cfg.PortAliases,
		Assignments: lists.Assignments,
		Accounts: merger.AccountAssignments{
			DischargeCode: c.cfg.DischargeAccountCode,
			LoadCode:      c.cfg.LoadAccountCode,
			Lists:         accountLists,
		},
		TPF:   lists.TPF,
		Truck: lists.Truck,
	}, c.logger)

	result.Stats.MergedContainers = len(merged)
	result.Unmapped = c.resolver.DrainUnmapped()
	result.SpecialCargo = validation.SummarizeSpecialCargo(discharge, load)
	result.PartnerCargo = validation.HasPartnerCargo(discharge, load)
	result.ForeignAccount = validation.HasForeignAccount(merged, nil)

	// =========================================================================
	// STEP 6: GENERATE VCI XML
	// =========================================================================

	xmlData := xmlwriter.Generate(merged, curated)

	// =========================================================================
	// STEP 7: WRITE OUTPUT AND ARCHIVE
	// =========================================================================

	outputPath, archivePath, err := c.writeOutput(xmlData, result.Header)
	if err != nil {
		result.Error = err
		return result
	}
	result.OutputFile = outputPath
	result.ArchiveFile = archivePath

	result.Stats.ProcessingTime = time.Since(startTime)
	result.Success = true

	c.logger.Info("conversion complete",
		zap.String("output", result.OutputFile),
		zap.Int("containers", result.Stats.MergedContainers),
		zap.Duration("elapsed", result.Stats.ProcessingTime))

	return result
}

// =============================================================================
// PIPELINE STEPS
// =============================================================================

// ingestFile reads and ingests one manifest; a blank path yields an empty
// registry.
func (c *Converter) ingestFile(ingestor *ascparser.Ingestor, path string, origin types.Origin) (types.Registry, types.ManifestHeader, error) {
	if path == "" {
		return make(types.Registry), types.ManifestHeader{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.ManifestHeader{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	registry, header := ingestor.Ingest(string(data), origin)
	return registry, header, nil
}

// pickHeader prefers the discharge manifest's header, falling back to the
// load side for any segment the discharge side left unknown.
func pickHeader(discharge, load types.ManifestHeader) types.ManifestHeader {
	header := discharge
	if header.Vessel == "" || header.Vessel == "UNKNOWNVSL" {
		if load.Vessel != "" {
			header.Vessel = load.Vessel
		}
	}
	if header.Voyage == "" || header.Voyage == "UNKNOWNVOY" {
		if load.Voyage != "" {
			header.Voyage = load.Voyage
		}
	}
	return header
}

// readCuratedLists loads the optional DG/OOG confirmation lists.
func (c *Converter) readCuratedLists(in Inputs) (xmlwriter.CuratedFlags, error) {
	curated := xmlwriter.CuratedFlags{
		DG:  make(map[types.ContainerNumber]bool),
		OOG: make(map[types.ContainerNumber]bool),
	}

	load := func(path string, target map[types.ContainerNumber]bool) error {
		if path == "" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read list %s: %w", path, err)
		}
		for _, number := range xlsxlists.ParseContainerList(string(data)) {
			target[number] = true
		}
		return nil
	}

	if err := load(in.DGListFile, curated.DG); err != nil {
		return curated, err
	}
	if err := load(in.OOGListFile, curated.OOG); err != nil {
		return curated, err
	}
	return curated, nil
}

// readAccountLists loads the optional per-origin account lists.
func readAccountLists(in Inputs) (types.OriginLists, error) {
	var lists types.OriginLists

	read := func(path string) ([]types.ContainerNumber, error) {
		if path == "" {
			return nil, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read list %s: %w", path, err)
		}
		return xlsxlists.ParseContainerList(string(data)), nil
	}

	var err error
	if lists.Discharge, err = read(in.DischargeAccountListFile); err != nil {
		return lists, err
	}
	if lists.Load, err = read(in.LoadAccountListFile); err != nil {
		return lists, err
	}
	return lists, nil
}

// writeOutput names, writes, and archives the VCI file.
func (c *Converter) writeOutput(xmlData []byte, header types.ManifestHeader) (string, string, error) {
	fm := utils.NewFileManager(c.cfg.OutputDir, c.cfg.OutputArchiveDir)
	if err := fm.EnsureDirectories(); err != nil {
		return "", "", err
	}

	fileName := c.generateOutputFileName(header)

	outputPath, err := fm.WriteOutputFile(fileName, xmlData)
	if err != nil {
		return "", "", err
	}

	archivePath := ""
	if c.cfg.OutputArchiveDir != "" {
		archivePath, err = fm.ArchiveOutputFile(outputPath)
		if err != nil {
			return "", "", err
		}
	}

	return outputPath, archivePath, nil
}

// generateOutputFileName applies the configured file name format, falling
// back to the standard VCI naming when no format is set.
func (c *Converter) generateOutputFileName(header types.ManifestHeader) string {
	if c.cfg.FilenameFormat == "" {
		return utils.VCIFileName(c.cfg.Port, header.Vessel, header.Voyage, time.Now())
	}

	vessel := header.Vessel
	if vessel == "UNKNOWNVSL" {
		vessel = ""
	}
	voyage := header.Voyage
	if voyage == "UNKNOWNVOY" {
		voyage = ""
	}

	name := utils.GenerateOutputFileName(c.cfg.FilenameFormat, map[string]string{
		"port":   c.cfg.Port,
		"vessel": vessel,
		"voyage": voyage,
	})

	// Blank vessel/voyage placeholders leave doubled separators behind.
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return name
}
