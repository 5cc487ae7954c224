package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/methylgrid/methylgrid/internal/ctxlog"
	"github.com/methylgrid/methylgrid/internal/dag"
	"github.com/methylgrid/methylgrid/internal/manifest"
	"github.com/methylgrid/methylgrid/internal/plan"
	"github.com/methylgrid/methylgrid/internal/sample"
	"github.com/methylgrid/methylgrid/internal/workspace"
)

// Result is everything one planning pass derives from the manifest and the
// workspace. All fields are read-only once returned.
type Result struct {
	Registry *sample.Registry
	Genomes  []workspace.Genome
	Targets  []string
	Graph    *dag.Graph
}

// Validate runs the manifest through parsing, per-row filesystem validation,
// and the registry fold. Any failure aborts before a single task is
// declared: fail before run, not mid-run.
func (a *App) Validate(ctx context.Context) (*sample.Registry, *workspace.Workspace, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger

	ws, err := workspace.New(a.cfg.RawReadsDir, a.cfg.GenomeRoot)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(a.cfg.ManifestPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	reg := sample.NewRegistry()
	reader := manifest.NewReader(f)
	rows := 0
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if err := ws.CheckRow(row); err != nil {
			return nil, nil, err
		}
		if err := reg.Add(row); err != nil {
			return nil, nil, err
		}
		rows++
	}

	logger.Info("Manifest validated.",
		"manifest", a.cfg.ManifestPath, "rows", rows, "samples", reg.Len())
	for _, s := range reg.Samples() {
		logger.Debug("Sample registered.",
			"sample", s.ID, "short_id", s.ShortID, "library", s.Library, "genomes", s.GenomeNames())
	}
	return reg, ws, nil
}

// BuildGraph runs the full planning pass: validation, genome discovery,
// target enumeration, graph construction.
func (a *App) BuildGraph(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	reg, ws, err := a.Validate(ctx)
	if err != nil {
		return nil, err
	}

	genomes, err := ws.Genomes(ctx)
	if err != nil {
		return nil, err
	}

	layout := plan.Layout{Workdir: a.cfg.Workdir}
	targets := plan.Targets(reg, genomes, layout)

	graph, err := plan.Build(ctx, reg, ws, genomes, layout, a.prof)
	if err != nil {
		return nil, fmt.Errorf("failed to build task graph: %w", err)
	}

	a.logger.Info("Task graph built.",
		"tasks", graph.Len(), "targets", len(targets), "genomes", len(genomes))
	return &Result{Registry: reg, Genomes: genomes, Targets: targets, Graph: graph}, nil
}

// Plan performs a full planning pass and writes the YAML plan document to w.
func (a *App) Plan(ctx context.Context, w io.Writer) error {
	res, err := a.BuildGraph(ctx)
	if err != nil {
		return err
	}
	doc, err := plan.NewDocument(res.Graph, res.Targets, a.cfg.ManifestPath)
	if err != nil {
		return err
	}
	if err := doc.Write(w); err != nil {
		return err
	}
	a.logger.Info("Plan emitted.", "run_id", doc.RunID, "tasks", doc.TaskCount)
	return nil
}
