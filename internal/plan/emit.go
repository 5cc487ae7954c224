package plan

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/methylgrid/methylgrid/internal/dag"
	"github.com/methylgrid/methylgrid/internal/task"
)

// Document is the serialized handoff to the external execution engine: a run
// header plus every task with its resolved dependency list. Task order and
// dependency order are sorted, so two plans built from the same inputs diff
// clean apart from run_id and generated_at.
type Document struct {
	RunID       string     `yaml:"run_id"`
	GeneratedAt time.Time  `yaml:"generated_at"`
	Manifest    string     `yaml:"manifest"`
	TaskCount   int        `yaml:"task_count"`
	Targets     []string   `yaml:"targets"`
	Tasks       []PlanTask `yaml:"tasks"`
}

// PlanTask is one task entry in the document.
type PlanTask struct {
	task.Spec `yaml:",inline"`
	Deps      []string `yaml:"deps,omitempty"`
}

// NewDocument assembles the plan document from a built graph and the
// enumerated target set.
func NewDocument(g *dag.Graph, targets []string, manifestPath string) (*Document, error) {
	doc := &Document{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Manifest:    manifestPath,
		TaskCount:   g.Len(),
		Targets:     targets,
	}
	for _, spec := range g.Specs() {
		deps, err := g.Dependencies(spec.ID)
		if err != nil {
			return nil, err
		}
		doc.Tasks = append(doc.Tasks, PlanTask{Spec: *spec, Deps: deps})
	}
	return doc, nil
}

// Write marshals the document as YAML.
func (d *Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding plan document: %w", err)
	}
	return enc.Close()
}
