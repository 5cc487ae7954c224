package sample

// LibraryType is the sequencing protocol family of a sample. It decides the
// trimming and methylation-extraction parameterization downstream.
type LibraryType string

const (
	LibraryBSSeq LibraryType = "bsseq"
	LibraryEMSeq LibraryType = "emseq"
	LibrarySwift LibraryType = "swift"
)

// SupportedLibraryTypes lists the recognized values, in the order user-facing
// messages should show them.
var SupportedLibraryTypes = []LibraryType{LibraryBSSeq, LibraryEMSeq, LibrarySwift}

// ParseLibraryType converts a manifest cell into a LibraryType. There is no
// coercion: anything but an exact match fails.
func ParseLibraryType(s string) (LibraryType, error) {
	switch LibraryType(s) {
	case LibraryBSSeq:
		return LibraryBSSeq, nil
	case LibraryEMSeq:
		return LibraryEMSeq, nil
	case LibrarySwift:
		return LibrarySwift, nil
	default:
		return "", &UnsupportedLibraryTypeError{Value: s}
	}
}
