package plan

import (
	"fmt"
	"path/filepath"

	"github.com/methylgrid/methylgrid/internal/workspace"
)

// Staged output directories, by convention, under the working root. The
// numbering mirrors execution order; 00_raw_reads and data/ are inputs owned
// by the workspace package.
const (
	DirTrimmed     = "01_trimmed_reads"
	DirAligned     = "02_aligned"
	DirDedup       = "03_deduplicated"
	DirMethylation = "04_methylation"
	DirRenamed     = "05_renamed_covs"
)

// Layout derives every artifact path of a run from the working root. All
// methods are pure; nothing here touches the filesystem.
type Layout struct {
	Workdir string
}

func (l Layout) join(dir, name string) string {
	return filepath.Join(l.Workdir, dir, name)
}

// TrimmedR1 and TrimmedR2 follow the trimmer's validated-pair naming.
func (l Layout) TrimmedR1(sampleID string) string {
	return l.join(DirTrimmed, sampleID+"_R1_val_1.fq.gz")
}

func (l Layout) TrimmedR2(sampleID string) string {
	return l.join(DirTrimmed, sampleID+"_R2_val_2.fq.gz")
}

// pairKey is the {sample}.{genome} stem shared by every per-pair artifact.
func pairKey(sampleID, genome string) string {
	return sampleID + "." + genome
}

func (l Layout) AlignedBAM(sampleID, genome string) string {
	return l.join(DirAligned, pairKey(sampleID, genome)+"_pe.bam")
}

func (l Layout) DedupBAM(sampleID, genome string) string {
	return l.join(DirDedup, pairKey(sampleID, genome)+"_pe.deduplicated.bam")
}

// Coverage is the permanent extraction output the rename stage links to.
func (l Layout) Coverage(sampleID, genome string) string {
	return l.join(DirMethylation, pairKey(sampleID, genome)+"_pe.deduplicated.bismark.cov.gz")
}

// BedGraph is the second extraction output; durable but prunable once the
// run is complete.
func (l Layout) BedGraph(sampleID, genome string) string {
	return l.join(DirMethylation, pairKey(sampleID, genome)+"_pe.deduplicated.bedGraph.gz")
}

// ContextFileGlob matches the large per-context intermediates (CpG_OT_*,
// CHH_OB_*, ...) the extractor writes next to its outputs. They are removed
// after extraction succeeds, never depended on.
func (l Layout) ContextFileGlob(sampleID, genome string) string {
	return l.join(DirMethylation, fmt.Sprintf("C*_O*_%s*.txt", pairKey(sampleID, genome)))
}

// RenamedCoverage is the flat, stable name downstream analysis picks up:
// a same-filesystem link, keyed {sample}.{genome}.
func (l Layout) RenamedCoverage(sampleID, genome string) string {
	return l.join(DirRenamed, pairKey(sampleID, genome)+".cov")
}

// GenomePrepMarker is the directory the genome-preparation tool creates
// inside a genome directory; its presence marks the index as built.
func (l Layout) GenomePrepMarker(g workspace.Genome) string {
	return filepath.Join(g.Path, "Bisulfite_Genome")
}

// FastaIndex is the per-FASTA index file.
func (l Layout) FastaIndex(fastaPath string) string {
	return fastaPath + ".fai"
}
