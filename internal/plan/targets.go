package plan

import (
	"sort"

	"github.com/methylgrid/methylgrid/internal/sample"
	"github.com/methylgrid/methylgrid/internal/workspace"
)

// Targets enumerates the complete set of artifact paths a finished run must
// have produced, across every stage and (sample, genome) pair. A run is
// complete iff every returned path exists. Prunable extraction side-outputs
// are deliberately absent: deleting them must not mark a run incomplete.
//
// The result is sorted, and identical for any manifest row order that folds
// into the same registry.
func Targets(reg *sample.Registry, genomes []workspace.Genome, layout Layout) []string {
	var targets []string

	for _, g := range genomes {
		targets = append(targets, layout.GenomePrepMarker(g))
		for _, fasta := range g.FastaFiles {
			targets = append(targets, layout.FastaIndex(fasta))
		}
	}

	for _, s := range reg.SortedSamples() {
		targets = append(targets, layout.TrimmedR1(s.ID), layout.TrimmedR2(s.ID))
		for _, g := range s.GenomeNames() {
			targets = append(targets,
				layout.AlignedBAM(s.ID, g),
				layout.DedupBAM(s.ID, g),
				layout.Coverage(s.ID, g),
				layout.RenamedCoverage(s.ID, g),
			)
		}
	}

	sort.Strings(targets)
	return targets
}
