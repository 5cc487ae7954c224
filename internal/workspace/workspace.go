// Package workspace models the on-disk layout a pipeline run reads from:
// the raw-reads directory and the genome root. Before any task is declared
// it answers whether everything a manifest row references exists, and which
// genomes (and FASTA files) are actually on disk.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/methylgrid/methylgrid/internal/ctxlog"
	"github.com/methylgrid/methylgrid/internal/manifest"
)

// FastaExt is the suffix genome reference files must carry, directly inside
// their genome directory (no recursion).
const FastaExt = ".fa"

// Read-pair suffix contract from the raw-reads collaborator. Strict: no
// tolerance for _1/.R1 variants.
const (
	R1Suffix = "_R1.fastq.gz"
	R2Suffix = "_R2.fastq.gz"
)

// MissingInputFileError reports a raw read file referenced by the manifest
// but absent from the raw-reads directory.
type MissingInputFileError struct {
	SampleID string
	Path     string
}

func (e *MissingInputFileError) Error() string {
	return fmt.Sprintf("sample %q: raw read file not found: %s", e.SampleID, e.Path)
}

// MissingGenomeError reports a genome directory referenced by the manifest
// but absent from the genome root.
type MissingGenomeError struct {
	SampleID string
	Genome   string
	Path     string
}

func (e *MissingGenomeError) Error() string {
	return fmt.Sprintf("sample %q: genome %q directory not found: %s", e.SampleID, e.Genome, e.Path)
}

// Genome is one reference directory discovered under the genome root.
type Genome struct {
	Name string
	Path string
	// FastaFiles are the *.fa files directly inside Path, sorted. Zero is
	// legal but unusual; discovery logs it.
	FastaFiles []string
}

// Workspace holds the two input roots of a run. Both are read-only for the
// lifetime of a graph build.
type Workspace struct {
	RawReadsDir string
	GenomeRoot  string
}

// New returns a Workspace after confirming both roots are directories.
func New(rawReadsDir, genomeRoot string) (*Workspace, error) {
	for _, dir := range []string{rawReadsDir, genomeRoot} {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("workspace root %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("workspace root %s: not a directory", dir)
		}
	}
	return &Workspace{RawReadsDir: rawReadsDir, GenomeRoot: genomeRoot}, nil
}

// CheckRow validates one manifest row against the filesystem: both read
// files under the raw-reads root, the genome directory under the genome
// root. Fail-fast on the first violation.
func (w *Workspace) CheckRow(row manifest.Row) error {
	for _, f := range []string{row.R1File, row.R2File} {
		p := filepath.Join(w.RawReadsDir, f)
		if !fileExists(p) {
			return &MissingInputFileError{SampleID: row.SampleID, Path: p}
		}
	}
	gp := filepath.Join(w.GenomeRoot, row.Genome)
	if !dirExists(gp) {
		return &MissingGenomeError{SampleID: row.SampleID, Genome: row.Genome, Path: gp}
	}
	return nil
}

// Genomes lists every directory under the genome root with its FASTA files.
// The listing is taken once per graph build and treated as immutable; names
// come back sorted.
func (w *Workspace) Genomes(ctx context.Context) ([]Genome, error) {
	logger := ctxlog.FromContext(ctx)

	entries, err := os.ReadDir(w.GenomeRoot)
	if err != nil {
		return nil, fmt.Errorf("listing genome root %s: %w", w.GenomeRoot, err)
	}

	var genomes []Genome
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		g := Genome{Name: entry.Name(), Path: filepath.Join(w.GenomeRoot, entry.Name())}
		g.FastaFiles, err = listByExt(g.Path, FastaExt)
		if err != nil {
			return nil, err
		}
		if len(g.FastaFiles) == 0 {
			logger.Warn("Genome directory contains no FASTA files.", "genome", g.Name, "path", g.Path)
		}
		genomes = append(genomes, g)
	}
	sort.Slice(genomes, func(i, j int) bool { return genomes[i].Name < genomes[j].Name })

	logger.Debug("Genome discovery complete.", "count", len(genomes))
	return genomes, nil
}

// listByExt returns the files directly inside dir whose names end with ext,
// as full sorted paths.
func listByExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
