// Package testutil builds throwaway pipeline workspaces for tests: a
// raw-reads directory, a genome root, and a manifest file under one tempdir.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Workspace is a temporary on-disk pipeline layout rooted at Root. It is
// removed automatically when the test finishes.
type Workspace struct {
	Root         string
	RawReadsDir  string
	GenomeRoot   string
	ManifestPath string
}

// NewWorkspace creates the directory skeleton under t.TempDir().
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	root := t.TempDir()
	w := &Workspace{
		Root:         root,
		RawReadsDir:  filepath.Join(root, "00_raw_reads"),
		GenomeRoot:   filepath.Join(root, "data"),
		ManifestPath: filepath.Join(root, "samples.tsv"),
	}
	require.NoError(t, os.MkdirAll(w.RawReadsDir, 0o755))
	require.NoError(t, os.MkdirAll(w.GenomeRoot, 0o755))
	return w
}

// AddReadPair creates empty {sample}_R1.fastq.gz / {sample}_R2.fastq.gz
// files under the raw-reads directory.
func (w *Workspace) AddReadPair(t *testing.T, sampleID string) {
	t.Helper()
	for _, suffix := range []string{"_R1.fastq.gz", "_R2.fastq.gz"} {
		touch(t, filepath.Join(w.RawReadsDir, sampleID+suffix))
	}
}

// AddGenome creates a genome directory containing the named FASTA files.
func (w *Workspace) AddGenome(t *testing.T, name string, fastaNames ...string) {
	t.Helper()
	dir := filepath.Join(w.GenomeRoot, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, fa := range fastaNames {
		touch(t, filepath.Join(dir, fa))
	}
}

// WriteManifest writes the given rows, tab-joining each row's cells. Rows
// starting with "#" are written verbatim as comments.
func (w *Workspace) WriteManifest(t *testing.T, rows ...[]string) {
	t.Helper()
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteByte('\n')
	}
	require.NoError(t, os.WriteFile(w.ManifestPath, []byte(sb.String()), 0o644))
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}
