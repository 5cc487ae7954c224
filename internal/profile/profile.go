// Package profile loads the optional HCL pipeline profile: per-stage
// resource-hint overrides and the alignment insert-size bounds. A run
// without a profile file uses the static defaults from the task package.
package profile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/methylgrid/methylgrid/internal/ctxlog"
	"github.com/methylgrid/methylgrid/internal/task"
)

// Profile is the merged resource policy for a run.
type Profile struct {
	MinInsert int
	MaxInsert int

	hints map[task.Stage]task.Hints
}

// hclProfile is the top-level structure of a profile file for decoding.
type hclProfile struct {
	MinInsert *int             `hcl:"min_insert,optional"`
	MaxInsert *int             `hcl:"max_insert,optional"`
	Stages    []*hclStageBlock `hcl:"stage,block"`
}

// hclStageBlock is one `stage "<name>" { ... }` override block. Absent
// attributes keep their defaults.
type hclStageBlock struct {
	Name    string `hcl:"name,label"`
	TimeMin *int   `hcl:"time_min,optional"`
	MemMB   *int   `hcl:"mem_mb,optional"`
	Cores   *int   `hcl:"cores,optional"`
}

// evalContext exposes unit constants to profile expressions, so a block can
// say `time_min = 24 * hour` or `mem_mb = 32 * gb`.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"minute": cty.NumberIntVal(1),
			"hour":   cty.NumberIntVal(60),
			"day":    cty.NumberIntVal(24 * 60),
			"mb":     cty.NumberIntVal(1),
			"gb":     cty.NumberIntVal(1024),
		},
	}
}

// Default returns a profile carrying only the built-in policy.
func Default() *Profile {
	p := &Profile{
		MinInsert: task.DefaultMinInsert,
		MaxInsert: task.DefaultMaxInsert,
		hints:     make(map[task.Stage]task.Hints, len(task.DefaultHints)),
	}
	for stage, h := range task.DefaultHints {
		p.hints[stage] = h
	}
	return p
}

// Load parses an HCL profile file and merges it over the defaults.
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}

	var parsed hclProfile
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, diags)
	}

	p := Default()
	if parsed.MinInsert != nil {
		p.MinInsert = *parsed.MinInsert
	}
	if parsed.MaxInsert != nil {
		p.MaxInsert = *parsed.MaxInsert
	}

	seen := make(map[string]bool)
	for _, block := range parsed.Stages {
		stage := task.Stage(block.Name)
		base, known := p.hints[stage]
		if !known {
			return nil, fmt.Errorf("profile %s: unknown stage %q", path, block.Name)
		}
		if seen[block.Name] {
			return nil, fmt.Errorf("profile %s: duplicate stage block %q", path, block.Name)
		}
		seen[block.Name] = true

		if block.TimeMin != nil {
			base.TimeMin = *block.TimeMin
		}
		if block.MemMB != nil {
			base.MemMB = *block.MemMB
		}
		if block.Cores != nil {
			base.Cores = *block.Cores
		}
		p.hints[stage] = base
		logger.Debug("Stage hints overridden by profile.", "stage", block.Name, "hints", base)
	}

	return p, nil
}

// HintsFor returns the effective hints for a stage.
func (p *Profile) HintsFor(stage task.Stage) task.Hints {
	return p.hints[stage]
}
