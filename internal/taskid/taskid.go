// Package taskid defines the canonical string identity of a task node:
// `task.<stage>.<scope>` where scope is a sample id, a genome name, a
// `<sample>.<genome>` pair, or a FASTA basename for per-file stages. The
// scheme exists so logs, plan files, and DOT output all agree on names.
package taskid

import (
	"fmt"
	"regexp"
	"strings"
)

const prefix = "task"

// segmentRegex accepts one dot-free segment of an address.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Address is the structured form of a task identifier.
type Address struct {
	Stage string
	// Scope segments after the stage, e.g. ["S1"], ["hg38"], or
	// ["S1", "hg38"]. May be empty only transiently during construction.
	Scope []string
}

// New builds an address from a stage and scope segments. Segments containing
// dots are rewritten with underscores so the canonical string stays
// round-trippable; sample ids and genome names in practice never carry dots.
func New(stage string, scope ...string) Address {
	cleaned := make([]string, len(scope))
	for i, s := range scope {
		cleaned[i] = strings.ReplaceAll(s, ".", "_")
	}
	return Address{Stage: stage, Scope: cleaned}
}

// String serializes the address into its canonical dotted form.
func (a Address) String() string {
	parts := append([]string{prefix, a.Stage}, a.Scope...)
	return strings.Join(parts, ".")
}

// Parse reconstructs an Address from its canonical string form.
func Parse(rawID string) (Address, error) {
	if rawID == "" {
		return Address{}, fmt.Errorf("identifier cannot be empty")
	}
	parts := strings.Split(rawID, ".")
	if len(parts) < 3 || parts[0] != prefix {
		return Address{}, fmt.Errorf("invalid task identifier %q: want task.<stage>.<scope>", rawID)
	}
	for _, p := range parts[1:] {
		if !segmentRegex.MatchString(p) {
			return Address{}, fmt.Errorf("invalid segment %q in task identifier %q", p, rawID)
		}
	}
	return Address{Stage: parts[1], Scope: parts[2:]}, nil
}
