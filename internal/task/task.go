// Package task defines the declarative unit of work handed to the external
// execution engine, plus the static per-stage policy tables (resource hints
// and library-type-conditional tool parameters).
package task

// Stage names the pipeline stages in execution order. The planner only
// declares them; an external engine runs them.
type Stage string

const (
	StageGenomePrep  Stage = "genome_prep"
	StageFaidx       Stage = "faidx"
	StageTrim        Stage = "trim"
	StageAlign       Stage = "align"
	StageDedup       Stage = "dedup"
	StageMethylation Stage = "methylation"
	StageRename      Stage = "rename"
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{
	StageGenomePrep,
	StageFaidx,
	StageTrim,
	StageAlign,
	StageDedup,
	StageMethylation,
	StageRename,
}

// Hints are the static scheduling hints for one task. They do not scale
// with genome size; callers planning runs over wildly different genomes
// must compensate through a profile override.
type Hints struct {
	TimeMin int `yaml:"time_min"`
	MemMB   int `yaml:"mem_mb"`
	Cores   int `yaml:"cores"`
}

// Spec is a pure value describing one task: what to read, what to write,
// and with which parameters. Dependency edges are kept in the graph, not
// here, so a Spec can be serialized on its own.
type Spec struct {
	ID      string            `yaml:"id"`
	Stage   Stage             `yaml:"stage"`
	Sample  string            `yaml:"sample,omitempty"`
	Genome  string            `yaml:"genome,omitempty"`
	Inputs  []string          `yaml:"inputs"`
	Outputs []string          `yaml:"outputs"`
	Params  map[string]string `yaml:"params,omitempty"`
	Hints   Hints             `yaml:"hints"`

	// Prunable lists the subset of Outputs the engine may delete once the
	// whole run has completed. They do not count toward run completion.
	Prunable []string `yaml:"prunable,omitempty"`

	// Cleanup globs name large intermediates the engine should remove once
	// the task succeeds. Distinct from Outputs: nothing downstream may
	// depend on them.
	Cleanup []string `yaml:"cleanup,omitempty"`
}

// DefaultHints is the static resource policy per stage. A profile file may
// override individual fields per stage.
var DefaultHints = map[Stage]Hints{
	StageGenomePrep:  {TimeMin: 720, MemMB: 16000, Cores: 4},
	StageFaidx:       {TimeMin: 30, MemMB: 1000, Cores: 1},
	StageTrim:        {TimeMin: 480, MemMB: 8000, Cores: 4},
	StageAlign:       {TimeMin: 1440, MemMB: 32000, Cores: 8},
	StageDedup:       {TimeMin: 360, MemMB: 16000, Cores: 2},
	StageMethylation: {TimeMin: 720, MemMB: 16000, Cores: 6},
	StageRename:      {TimeMin: 5, MemMB: 100, Cores: 1},
}

// Alignment insert-size bounds, uniform across library types. The maximum
// sits above the aligner's stock default to keep longer read-pairs mapped;
// both are profile-tunable.
const (
	DefaultMinInsert = 0
	DefaultMaxInsert = 1000
)
