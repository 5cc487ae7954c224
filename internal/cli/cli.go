// Package cli defines the methylgrid command tree. Subcommands share one
// validated app.Config built from the persistent flags.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/methylgrid/methylgrid/internal/app"
)

// ExitError is a command failure that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flags holds the raw persistent flag values before validation.
type flags struct {
	manifest  string
	rawReads  string
	genomes   string
	workdir   string
	profile   string
	logLevel  string
	logFormat string
}

// NewRootCmd builds the command tree. Command output goes to outW, logs to
// errW.
func NewRootCmd(outW, errW io.Writer) *cobra.Command {
	fl := &flags{}

	root := &cobra.Command{
		Use:   "methylgrid",
		Short: "Plan bisulfite-sequencing pipeline runs from a sample manifest",
		Long: `methylgrid reads a tab-separated sample manifest, validates it against the
raw-reads and genome directories, and emits a deterministic task graph for an
external execution engine. It never runs the bioinformatics tools itself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVarP(&fl.manifest, "manifest", "m", "config/samples.tsv", "path to the tab-separated sample manifest")
	pf.StringVar(&fl.rawReads, "raw-reads", "00_raw_reads", "directory containing the raw *_R1/_R2.fastq.gz files")
	pf.StringVar(&fl.genomes, "genomes", "data", "genome root, one subdirectory per genome")
	pf.StringVar(&fl.workdir, "workdir", ".", "root directory the staged output directories hang off")
	pf.StringVar(&fl.profile, "profile", "", "optional HCL resource profile")
	pf.StringVar(&fl.logLevel, "log-level", "info", "logging level: 'debug', 'info', 'warn', or 'error'")
	pf.StringVar(&fl.logFormat, "log-format", "text", "log output format: 'text' or 'json'")

	root.AddCommand(
		newPlanCmd(fl, outW, errW),
		newValidateCmd(fl, outW, errW),
		newTargetsCmd(fl, outW, errW),
		newGraphCmd(fl, outW, errW),
		newVersionCmd(),
	)
	return root
}

// newApp validates the flag set and constructs the App shared plumbing.
func (fl *flags) newApp(outW, errW io.Writer) (*app.App, error) {
	logFormat := strings.ToLower(fl.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(fl.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg, err := app.NewConfig(app.Config{
		ManifestPath: fl.manifest,
		RawReadsDir:  fl.rawReads,
		GenomeRoot:   fl.genomes,
		Workdir:      fl.workdir,
		ProfilePath:  fl.profile,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	a, err := app.NewApp(outW, errW, cfg)
	if err != nil {
		return nil, fmt.Errorf("startup failed: %w", err)
	}
	return a, nil
}
