package sample

import "fmt"

// UnsupportedLibraryTypeError reports a manifest row whose library_type
// column is not one of the recognized values. The offending value is carried
// verbatim so the operator can spot typos without opening the manifest.
type UnsupportedLibraryTypeError struct {
	SampleID string
	Value    string
}

func (e *UnsupportedLibraryTypeError) Error() string {
	return fmt.Sprintf("sample %q: unsupported library type %q (supported: %v)",
		e.SampleID, e.Value, SupportedLibraryTypes)
}

// InconsistentSampleDeclarationError reports a repeated sample id whose
// immutable attributes differ from the first declaration.
type InconsistentSampleDeclarationError struct {
	SampleID string
	Field    string
	Want     string // value from the first-seen row, the canonical one
	Got      string
}

func (e *InconsistentSampleDeclarationError) Error() string {
	return fmt.Sprintf("sample %q: inconsistent redeclaration of %s: first seen %q, now %q",
		e.SampleID, e.Field, e.Want, e.Got)
}

// DuplicateGenomeMappingError reports a (sample, genome) pair declared more
// than once, regardless of whether the score-min values agree.
type DuplicateGenomeMappingError struct {
	SampleID string
	Genome   string
}

func (e *DuplicateGenomeMappingError) Error() string {
	return fmt.Sprintf("sample %q: genome %q mapped more than once (each genome may carry only one score_min per sample)",
		e.SampleID, e.Genome)
}
