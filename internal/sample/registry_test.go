package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgrid/methylgrid/internal/manifest"
)

func row(sampleID, shortID, lib, genome, scoreMin string) manifest.Row {
	return manifest.Row{
		SampleID:    sampleID,
		ShortID:     shortID,
		LibraryType: lib,
		R1File:      sampleID + "_R1.fastq.gz",
		R2File:      sampleID + "_R2.fastq.gz",
		Genome:      genome,
		ScoreMin:    scoreMin,
	}
}

func TestAddNewSample(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(row("S1", "shortS1", "bsseq", "hg38", "0.2")))

	s := reg.Get("S1")
	require.NotNil(t, s)
	assert.Equal(t, "shortS1", s.ShortID)
	assert.Equal(t, LibraryBSSeq, s.Library)
	assert.Equal(t, "S1_R1.fastq.gz", s.R1File)
	assert.Equal(t, map[string]string{"hg38": "0.2"}, s.Genomes)
}

func TestAddSecondGenomeForSample(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(row("S1", "shortS1", "bsseq", "hg38", "0.2")))
	require.NoError(t, reg.Add(row("S1", "shortS1", "bsseq", "mm10", "0.6")))

	s := reg.Get("S1")
	assert.Equal(t, map[string]string{"hg38": "0.2", "mm10": "0.6"}, s.Genomes)
	assert.Equal(t, []string{"hg38", "mm10"}, s.GenomeNames())
	assert.Equal(t, 1, reg.Len())
}

func TestUnsupportedLibraryType(t *testing.T) {
	reg := NewRegistry()
	err := reg.Add(row("S1", "shortS1", "nome-seq", "hg38", "0.2"))
	require.Error(t, err)

	var unsupported *UnsupportedLibraryTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "S1", unsupported.SampleID)
	assert.Equal(t, "nome-seq", unsupported.Value)
	// The offending value must survive into the message verbatim.
	assert.Contains(t, err.Error(), "nome-seq")
}

func TestInconsistentRedeclaration(t *testing.T) {
	cases := []struct {
		name  string
		row   manifest.Row
		field string
	}{
		{"short id", row("S1", "other", "bsseq", "mm10", "0.2"), "short_id"},
		{"library type", row("S1", "shortS1", "emseq", "mm10", "0.2"), "library_type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry()
			require.NoError(t, reg.Add(row("S1", "shortS1", "bsseq", "hg38", "0.2")))

			err := reg.Add(tc.row)
			var inconsistent *InconsistentSampleDeclarationError
			require.ErrorAs(t, err, &inconsistent)
			assert.Equal(t, "S1", inconsistent.SampleID)
			assert.Equal(t, tc.field, inconsistent.Field)
		})
	}

	t.Run("read file names", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add(row("S1", "shortS1", "bsseq", "hg38", "0.2")))

		bad := row("S1", "shortS1", "bsseq", "mm10", "0.2")
		bad.R2File = "S1_other_R2.fastq.gz"
		err := reg.Add(bad)
		var inconsistent *InconsistentSampleDeclarationError
		require.ErrorAs(t, err, &inconsistent)
		assert.Equal(t, "r2_file", inconsistent.Field)
		assert.Equal(t, "S1_R2.fastq.gz", inconsistent.Want)
		assert.Equal(t, "S1_other_R2.fastq.gz", inconsistent.Got)
	})
}

func TestDuplicateGenomeMapping(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(row("S1", "shortS1", "bsseq", "hg38", "0.2")))

	// Same parameter value is still a duplicate declaration.
	err := reg.Add(row("S1", "shortS1", "bsseq", "hg38", "0.2"))
	var dup *DuplicateGenomeMappingError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "S1", dup.SampleID)
	assert.Equal(t, "hg38", dup.Genome)

	// Differing parameter is equally fatal.
	err = reg.Add(row("S1", "shortS1", "bsseq", "hg38", "0.6"))
	require.ErrorAs(t, err, &dup)
}

func TestFoldIsDeterministic(t *testing.T) {
	rows := []manifest.Row{
		row("S2", "shortS2", "swift", "hg38", "0.2"),
		row("S1", "shortS1", "bsseq", "hg38", "0.2"),
		row("S1", "shortS1", "bsseq", "mm10", "0.6"),
	}

	fold := func() *Registry {
		reg := NewRegistry()
		for _, r := range rows {
			require.NoError(t, reg.Add(r))
		}
		return reg
	}

	a, b := fold(), fold()
	require.Equal(t, a.Len(), b.Len())
	for _, s := range a.Samples() {
		assert.Equal(t, s, b.Get(s.ID))
	}
}

func TestIterationOrders(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(row("S2", "shortS2", "swift", "hg38", "0.2")))
	require.NoError(t, reg.Add(row("S1", "shortS1", "bsseq", "hg38", "0.2")))

	var seen []string
	for _, s := range reg.Samples() {
		seen = append(seen, s.ID)
	}
	assert.Equal(t, []string{"S2", "S1"}, seen, "Samples preserves first-seen order")

	seen = seen[:0]
	for _, s := range reg.SortedSamples() {
		seen = append(seen, s.ID)
	}
	assert.Equal(t, []string{"S1", "S2"}, seen, "SortedSamples orders by id")
}
