package app

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/ofplab/ofpdgen/internal/errors"
	"github.com/ofplab/ofpdgen/internal/fixture"
	"github.com/ofplab/ofpdgen/internal/logging"
)

// DefaultOutputDir is where fixtures land when no override is given,
// matching the layout the conformance suite expects to find checked in.
const DefaultOutputDir = "packet_data"

type GenerateOptions struct {
	OutputDir    string
	PCAPPath     string
	SkipManifest bool
	Verbose      bool
	LogFile      string
}

// RunGenerate performs the full matrix generation: every registered
// protocol version crossed with every registered message kind, one
// fixture file per pair, fail-fast on the first error.
func RunGenerate(opts GenerateOptions) error {
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	level := logging.LogLevelInfo
	if opts.Verbose {
		level = logging.LogLevelVerbose
	}
	logger, err := logging.NewLogger(level, opts.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	versions := fixture.DefaultVersions()
	messages := fixture.DefaultMessages()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.WrapWriteError(fmt.Errorf("create output dir: %w", err), outputDir)
	}

	harness := &fixture.Harness{
		BaseDir:  outputDir,
		Versions: versions,
		Messages: messages,
		Log:      logger,
	}
	results, err := harness.Run()
	if err != nil {
		return wrapHarnessError(err)
	}

	if !opts.SkipManifest {
		if err := fixture.WriteManifest(outputDir, results); err != nil {
			return errors.WrapWriteError(err, fixture.ManifestPath(outputDir))
		}
	}

	if opts.PCAPPath != "" {
		if err := fixture.WriteMatrixPCAP(opts.PCAPPath, versions, messages); err != nil {
			return wrapHarnessError(err)
		}
		logger.Verbose("wrote capture %s", opts.PCAPPath)
	}

	logger.LogRun(len(results), len(versions), len(messages), outputDir)
	fmt.Fprintf(os.Stdout, "Generated %d fixture(s) under %s\n", len(results), outputDir)
	return nil
}

// wrapHarnessError maps the harness error taxonomy onto user-facing
// wrappers; anything unrecognized passes through unchanged.
func wrapHarnessError(err error) error {
	var verr *fixture.VersionError
	if goerrors.As(err, &verr) {
		return errors.WrapVersionError(err, verr.Label)
	}
	var eerr *fixture.EncodeError
	if goerrors.As(err, &eerr) {
		return errors.WrapEncodingError(err, eerr.Version, eerr.Message)
	}
	var werr *fixture.WriteError
	if goerrors.As(err, &werr) {
		return errors.WrapWriteError(err, werr.Path)
	}
	return err
}
