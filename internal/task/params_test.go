package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/methylgrid/methylgrid/internal/sample"
)

func TestTrimParamsByLibrary(t *testing.T) {
	assert.Equal(t, TrimParams{}, TrimParamsFor(sample.LibraryBSSeq))
	assert.Equal(t,
		TrimParams{ClipR1: 10, ClipR2: 10, ThreePrimeClipR1: 10, ThreePrimeClipR2: 10},
		TrimParamsFor(sample.LibraryEMSeq))
	assert.Equal(t,
		TrimParams{ClipR1: 10, ClipR2: 15, ThreePrimeClipR1: 10, ThreePrimeClipR2: 10},
		TrimParamsFor(sample.LibrarySwift))
}

func TestMethylationParamsByLibrary(t *testing.T) {
	assert.Equal(t, MethylationParams{IgnoreR2: 2}, MethylationParamsFor(sample.LibraryBSSeq))
	assert.Equal(t, MethylationParams{}, MethylationParamsFor(sample.LibraryEMSeq))
	assert.Equal(t, MethylationParams{}, MethylationParamsFor(sample.LibrarySwift))
}

func TestParamMapsOmitZeroValues(t *testing.T) {
	assert.Empty(t, TrimParamsFor(sample.LibraryBSSeq).Map(),
		"a bsseq trim task carries no clip parameters at all")

	swift := TrimParamsFor(sample.LibrarySwift).Map()
	assert.Equal(t, map[string]string{
		"clip_r1":             "10",
		"clip_r2":             "15",
		"three_prime_clip_r1": "10",
		"three_prime_clip_r2": "10",
	}, swift)

	assert.Equal(t, map[string]string{"ignore_r2": "2"}, MethylationParamsFor(sample.LibraryBSSeq).Map())
	assert.Empty(t, MethylationParamsFor(sample.LibrarySwift).Map())
}

func TestDefaultHintsCoverEveryStage(t *testing.T) {
	for _, stage := range Stages {
		h, ok := DefaultHints[stage]
		assert.True(t, ok, "stage %s has no default hints", stage)
		assert.Positive(t, h.TimeMin, "stage %s", stage)
		assert.Positive(t, h.MemMB, "stage %s", stage)
		assert.Positive(t, h.Cores, "stage %s", stage)
	}
}
