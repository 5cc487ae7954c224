// Package plan turns a finalized sample registry and a genome listing into
// the artifact target set and the task graph an external execution engine
// consumes. Everything here is a pure function over its inputs; no task is
// ever run, no output path ever written.
package plan

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/methylgrid/methylgrid/internal/ctxlog"
	"github.com/methylgrid/methylgrid/internal/dag"
	"github.com/methylgrid/methylgrid/internal/profile"
	"github.com/methylgrid/methylgrid/internal/sample"
	"github.com/methylgrid/methylgrid/internal/task"
	"github.com/methylgrid/methylgrid/internal/taskid"
	"github.com/methylgrid/methylgrid/internal/workspace"
)

// Build constructs the complete, validated task graph for a run.
//
// First pass creates one node per (stage, scope) combination; second pass
// links the stage chain explicitly; third pass re-verifies the path
// contract: outputs are globally unique, and every declared input is either
// a source artifact under one of the workspace roots or the declared output
// of a dependency.
func Build(ctx context.Context, reg *sample.Registry, ws *workspace.Workspace, genomes []workspace.Genome, layout Layout, prof *profile.Profile) (*dag.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	b := &builder{
		graph:  dag.New(),
		layout: layout,
		prof:   prof,
		ws:     ws,
	}

	for _, g := range genomes {
		b.genomeTasks(g)
	}
	for _, s := range reg.SortedSamples() {
		b.sampleTasks(s)
	}
	if b.err != nil {
		return nil, b.err
	}
	logger.Debug("Task node creation complete.", "node_count", b.graph.Len())

	if err := b.link(reg, genomes); err != nil {
		return nil, err
	}
	logger.Debug("Task linking complete.")

	if err := verify(b.graph, ws); err != nil {
		return nil, err
	}
	if err := b.graph.DetectCycles(); err != nil {
		return nil, fmt.Errorf("error validating task graph: %w", err)
	}
	logger.Debug("Task graph verification passed.")

	return b.graph, nil
}

type builder struct {
	graph  *dag.Graph
	layout Layout
	prof   *profile.Profile
	ws     *workspace.Workspace
	err    error
}

// add registers a spec, stamping the stage's effective resource hints.
func (b *builder) add(spec *task.Spec) {
	if b.err != nil {
		return
	}
	spec.Hints = b.prof.HintsFor(spec.Stage)
	b.err = b.graph.AddNode(spec)
}

func (b *builder) genomeTasks(g workspace.Genome) {
	b.add(&task.Spec{
		ID:      taskid.New(string(task.StageGenomePrep), g.Name).String(),
		Stage:   task.StageGenomePrep,
		Genome:  g.Name,
		Inputs:  append([]string(nil), g.FastaFiles...),
		Outputs: []string{b.layout.GenomePrepMarker(g)},
	})

	for _, fasta := range g.FastaFiles {
		base := strings.TrimSuffix(filepath.Base(fasta), workspace.FastaExt)
		b.add(&task.Spec{
			ID:      taskid.New(string(task.StageFaidx), g.Name, base).String(),
			Stage:   task.StageFaidx,
			Genome:  g.Name,
			Inputs:  []string{fasta},
			Outputs: []string{b.layout.FastaIndex(fasta)},
		})
	}
}

func (b *builder) sampleTasks(s *sample.Sample) {
	b.add(&task.Spec{
		ID:     taskid.New(string(task.StageTrim), s.ID).String(),
		Stage:  task.StageTrim,
		Sample: s.ID,
		Inputs: []string{
			filepath.Join(b.ws.RawReadsDir, s.R1File),
			filepath.Join(b.ws.RawReadsDir, s.R2File),
		},
		Outputs: []string{b.layout.TrimmedR1(s.ID), b.layout.TrimmedR2(s.ID)},
		Params:  task.TrimParamsFor(s.Library).Map(),
	})

	for _, genome := range s.GenomeNames() {
		b.pairTasks(s, genome)
	}
}

// pairTasks emits the per-(sample, genome) chain: align, dedup, extraction,
// rename.
func (b *builder) pairTasks(s *sample.Sample, genome string) {
	genomeDir := workspace.Genome{Name: genome, Path: filepath.Join(b.ws.GenomeRoot, genome)}

	aligned := b.layout.AlignedBAM(s.ID, genome)
	b.add(&task.Spec{
		ID:     taskid.New(string(task.StageAlign), s.ID, genome).String(),
		Stage:  task.StageAlign,
		Sample: s.ID,
		Genome: genome,
		Inputs: []string{
			b.layout.TrimmedR1(s.ID),
			b.layout.TrimmedR2(s.ID),
			b.layout.GenomePrepMarker(genomeDir),
		},
		Outputs: []string{aligned},
		Params: map[string]string{
			"score_min":  "L,0," + s.Genomes[genome],
			"min_insert": strconv.Itoa(b.prof.MinInsert),
			"max_insert": strconv.Itoa(b.prof.MaxInsert),
		},
	})

	dedup := b.layout.DedupBAM(s.ID, genome)
	b.add(&task.Spec{
		ID:      taskid.New(string(task.StageDedup), s.ID, genome).String(),
		Stage:   task.StageDedup,
		Sample:  s.ID,
		Genome:  genome,
		Inputs:  []string{aligned},
		Outputs: []string{dedup},
	})

	coverage := b.layout.Coverage(s.ID, genome)
	b.add(&task.Spec{
		ID:       taskid.New(string(task.StageMethylation), s.ID, genome).String(),
		Stage:    task.StageMethylation,
		Sample:   s.ID,
		Genome:   genome,
		Inputs:   []string{dedup},
		Outputs:  []string{coverage, b.layout.BedGraph(s.ID, genome)},
		Prunable: []string{b.layout.BedGraph(s.ID, genome)},
		Params:   task.MethylationParamsFor(s.Library).Map(),
		Cleanup:  []string{b.layout.ContextFileGlob(s.ID, genome)},
	})

	b.add(&task.Spec{
		ID:      taskid.New(string(task.StageRename), s.ID, genome).String(),
		Stage:   task.StageRename,
		Sample:  s.ID,
		Genome:  genome,
		Inputs:  []string{coverage},
		Outputs: []string{b.layout.RenamedCoverage(s.ID, genome)},
		Params:  map[string]string{"link": "hard"},
	})
}

// link wires the stage chain. Edges are explicit; verify re-derives them
// from paths afterwards to catch drift between the two.
func (b *builder) link(reg *sample.Registry, genomes []workspace.Genome) error {
	edge := func(fromStage task.Stage, fromScope []string, toStage task.Stage, toScope []string) error {
		from := taskid.New(string(fromStage), fromScope...).String()
		to := taskid.New(string(toStage), toScope...).String()
		return b.graph.AddEdge(from, to)
	}

	known := make(map[string]bool, len(genomes))
	for _, g := range genomes {
		known[g.Name] = true
	}

	for _, s := range reg.SortedSamples() {
		for _, g := range s.GenomeNames() {
			if !known[g] {
				// Validation guarantees the directory exists, so a miss here
				// means discovery and validation disagree about the root.
				return fmt.Errorf("genome %q mapped by sample %q was not discovered under the genome root", g, s.ID)
			}
			pair := []string{s.ID, g}
			if err := edge(task.StageTrim, []string{s.ID}, task.StageAlign, pair); err != nil {
				return err
			}
			if err := edge(task.StageGenomePrep, []string{g}, task.StageAlign, pair); err != nil {
				return err
			}
			if err := edge(task.StageAlign, pair, task.StageDedup, pair); err != nil {
				return err
			}
			if err := edge(task.StageDedup, pair, task.StageMethylation, pair); err != nil {
				return err
			}
			if err := edge(task.StageMethylation, pair, task.StageRename, pair); err != nil {
				return err
			}
		}
	}
	return nil
}

// verify asserts the two invariants the external engine relies on: no two
// tasks declare the same output path, and every input is either a source
// artifact under a workspace root or an output of a declared dependency.
func verify(g *dag.Graph, ws *workspace.Workspace) error {
	producers := make(map[string]string)
	for _, spec := range g.Specs() {
		for _, out := range spec.Outputs {
			if prev, dup := producers[out]; dup {
				return fmt.Errorf("output path %s declared by both %s and %s", out, prev, spec.ID)
			}
			producers[out] = spec.ID
		}
	}

	for _, spec := range g.Specs() {
		deps, err := g.Dependencies(spec.ID)
		if err != nil {
			return err
		}
		depSet := make(map[string]bool, len(deps))
		for _, d := range deps {
			depSet[d] = true
		}
		for _, in := range spec.Inputs {
			if producer, ok := producers[in]; ok {
				if !depSet[producer] {
					return fmt.Errorf("task %s consumes %s but has no edge from its producer %s", spec.ID, in, producer)
				}
				continue
			}
			if !underRoot(in, ws.RawReadsDir) && !underRoot(in, ws.GenomeRoot) {
				return fmt.Errorf("task %s input %s is neither a source artifact nor a produced output", spec.ID, in)
			}
		}
	}
	return nil
}

func underRoot(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
