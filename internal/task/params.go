package task

import (
	"strconv"

	"github.com/methylgrid/methylgrid/internal/sample"
)

// TrimParams are the read-clipping settings the trim stage passes through to
// the trimmer. Zero value means "no clipping flag emitted".
type TrimParams struct {
	ClipR1           int
	ClipR2           int
	ThreePrimeClipR1 int
	ThreePrimeClipR2 int
}

// MethylationParams are the extraction-stage settings. IgnoreR2 skips the
// first N bases of the second read.
type MethylationParams struct {
	IgnoreR2 int
}

// Per-library policy. Centralized here so the three near-duplicate stage
// branches stay one table instead of scattered conditionals.
//
// bsseq libraries need no clipping but the first two bases of read 2 are
// unreliable after bisulfite conversion; EM-seq and Swift kits attach
// adapters that must be clipped instead.
var trimParamsByLibrary = map[sample.LibraryType]TrimParams{
	sample.LibraryBSSeq: {},
	sample.LibraryEMSeq: {ClipR1: 10, ClipR2: 10, ThreePrimeClipR1: 10, ThreePrimeClipR2: 10},
	sample.LibrarySwift: {ClipR1: 10, ClipR2: 15, ThreePrimeClipR1: 10, ThreePrimeClipR2: 10},
}

var methylationParamsByLibrary = map[sample.LibraryType]MethylationParams{
	sample.LibraryBSSeq: {IgnoreR2: 2},
	sample.LibraryEMSeq: {},
	sample.LibrarySwift: {},
}

// TrimParamsFor returns the trim-stage policy for a library type.
func TrimParamsFor(lib sample.LibraryType) TrimParams {
	return trimParamsByLibrary[lib]
}

// MethylationParamsFor returns the extraction-stage policy for a library type.
func MethylationParamsFor(lib sample.LibraryType) MethylationParams {
	return methylationParamsByLibrary[lib]
}

// Map renders the params into a spec parameter bag, omitting zero values so
// a bsseq trim task carries no clip keys at all.
func (p TrimParams) Map() map[string]string {
	m := map[string]string{}
	put := func(k string, v int) {
		if v != 0 {
			m[k] = strconv.Itoa(v)
		}
	}
	put("clip_r1", p.ClipR1)
	put("clip_r2", p.ClipR2)
	put("three_prime_clip_r1", p.ThreePrimeClipR1)
	put("three_prime_clip_r2", p.ThreePrimeClipR2)
	return m
}

// Map renders the params into a spec parameter bag, omitting zero values.
func (p MethylationParams) Map() map[string]string {
	m := map[string]string{}
	if p.IgnoreR2 != 0 {
		m["ignore_r2"] = strconv.Itoa(p.IgnoreR2)
	}
	return m
}
