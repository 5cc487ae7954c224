// Package sample folds manifest rows into the run's sample model: one Sample
// per sample id, each owning a genome → score-min mapping. The fold is where
// all cross-row consistency rules live.
package sample

import (
	"sort"

	"github.com/methylgrid/methylgrid/internal/manifest"
)

// Sample is a sequencing library. Everything except Genomes is fixed by the
// first manifest row that mentions the sample; later rows may only add new
// genome mappings.
type Sample struct {
	ID      string
	ShortID string // display only, never part of an artifact path
	Library LibraryType
	R1File  string
	R2File  string

	// Genomes maps genome name to the alignment score-min threshold for
	// this sample against that genome.
	Genomes map[string]string
}

// GenomeNames returns the mapped genome names in sorted order.
func (s *Sample) GenomeNames() []string {
	names := make([]string, 0, len(s.Genomes))
	for g := range s.Genomes {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

// Registry is the finalized sample mapping. It is built once by folding
// manifest rows and read-only afterwards.
type Registry struct {
	samples map[string]*Sample
	order   []string // first-seen order, for stable logs
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{samples: make(map[string]*Sample)}
}

// Add folds one manifest row into the registry. The row must already have
// passed filesystem validation.
func (r *Registry) Add(row manifest.Row) error {
	lib, err := ParseLibraryType(row.LibraryType)
	if err != nil {
		if ulErr, ok := err.(*UnsupportedLibraryTypeError); ok {
			ulErr.SampleID = row.SampleID
		}
		return err
	}

	s, seen := r.samples[row.SampleID]
	if !seen {
		r.samples[row.SampleID] = &Sample{
			ID:      row.SampleID,
			ShortID: row.ShortID,
			Library: lib,
			R1File:  row.R1File,
			R2File:  row.R2File,
			Genomes: map[string]string{row.Genome: row.ScoreMin},
		}
		r.order = append(r.order, row.SampleID)
		return nil
	}

	// Repeated sample id: the first row's values are canonical and later
	// rows must match them exactly. A differing value is never an override.
	if err := s.checkConsistent(row, lib); err != nil {
		return err
	}
	if _, dup := s.Genomes[row.Genome]; dup {
		return &DuplicateGenomeMappingError{SampleID: s.ID, Genome: row.Genome}
	}
	s.Genomes[row.Genome] = row.ScoreMin
	return nil
}

func (s *Sample) checkConsistent(row manifest.Row, lib LibraryType) error {
	mismatch := func(field, want, got string) error {
		return &InconsistentSampleDeclarationError{SampleID: s.ID, Field: field, Want: want, Got: got}
	}
	if row.ShortID != s.ShortID {
		return mismatch("short_id", s.ShortID, row.ShortID)
	}
	if lib != s.Library {
		return mismatch("library_type", string(s.Library), string(lib))
	}
	if row.R1File != s.R1File {
		return mismatch("r1_file", s.R1File, row.R1File)
	}
	if row.R2File != s.R2File {
		return mismatch("r2_file", s.R2File, row.R2File)
	}
	return nil
}

// Get returns the sample for an id, or nil.
func (r *Registry) Get(id string) *Sample {
	return r.samples[id]
}

// Len returns the number of distinct samples.
func (r *Registry) Len() int {
	return len(r.samples)
}

// Samples returns all samples in first-seen manifest order.
func (r *Registry) Samples() []*Sample {
	out := make([]*Sample, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.samples[id])
	}
	return out
}

// SortedSamples returns all samples ordered by id. Artifact enumeration uses
// this so its output does not depend on manifest row order.
func (r *Registry) SortedSamples() []*Sample {
	out := r.Samples()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
