package dag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgrid/methylgrid/internal/task"
)

func spec(id string, stage task.Stage) *task.Spec {
	return &task.Spec{ID: id, Stage: stage}
}

func TestAddNode(t *testing.T) {
	g := New()
	require.NoError(t, g.AddNode(spec("task.trim.S1", task.StageTrim)))
	assert.Equal(t, 1, g.Len())
	assert.NotNil(t, g.Spec("task.trim.S1"))

	err := g.AddNode(spec("task.trim.S1", task.StageTrim))
	assert.ErrorContains(t, err, "duplicate task node")
	assert.Equal(t, 1, g.Len())
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddNode(spec("task.trim.S1", task.StageTrim)))
		require.NoError(t, g.AddNode(spec("task.align.S1.hg38", task.StageAlign)))

		require.NoError(t, g.AddEdge("task.trim.S1", "task.align.S1.hg38"))

		deps, err := g.Dependencies("task.align.S1.hg38")
		require.NoError(t, err)
		assert.Equal(t, []string{"task.trim.S1"}, deps)

		dependents, err := g.Dependents("task.trim.S1")
		require.NoError(t, err)
		assert.Equal(t, []string{"task.align.S1.hg38"}, dependents)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddNode(spec("a", task.StageTrim)))

		assert.ErrorContains(t, g.AddEdge("dne", "a"), "source node not found")
		assert.ErrorContains(t, g.AddEdge("a", "dne"), "destination node not found")
		assert.ErrorContains(t, g.AddEdge("a", "a"), "self-referential edge")
	})
}

func TestIDsAndSpecsAreSorted(t *testing.T) {
	g := New()
	require.NoError(t, g.AddNode(spec("task.trim.S2", task.StageTrim)))
	require.NoError(t, g.AddNode(spec("task.align.S1.hg38", task.StageAlign)))
	require.NoError(t, g.AddNode(spec("task.trim.S1", task.StageTrim)))

	assert.Equal(t, []string{"task.align.S1.hg38", "task.trim.S1", "task.trim.S2"}, g.IDs())

	var ids []string
	for _, s := range g.Specs() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, g.IDs(), ids)
}

func TestDetectCycles(t *testing.T) {
	t.Run("empty graph has no cycles", func(t *testing.T) {
		assert.NoError(t, New().DetectCycles())
	})

	t.Run("valid dag has no cycles", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "c", "d"} {
			require.NoError(t, g.AddNode(spec(id, task.StageTrim)))
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("a", "c")) // transitive edge
		require.NoError(t, g.AddEdge("c", "d"))
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("direct cycle is detected", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddNode(spec("a", task.StageTrim)))
		require.NoError(t, g.AddNode(spec("b", task.StageAlign)))
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))
		assert.ErrorContains(t, g.DetectCycles(), "cycle detected")
	})

	t.Run("longer cycle is detected", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "c"} {
			require.NoError(t, g.AddNode(spec(id, task.StageTrim)))
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("c", "a"))
		assert.ErrorContains(t, g.DetectCycles(), "cycle detected")
	})
}

func TestWriteDOT(t *testing.T) {
	g := New()
	trim := spec("task.trim.S1", task.StageTrim)
	trim.Sample = "S1"
	align := spec("task.align.S1.hg38", task.StageAlign)
	align.Sample, align.Genome = "S1", "hg38"
	require.NoError(t, g.AddNode(trim))
	require.NoError(t, g.AddNode(align))
	require.NoError(t, g.AddEdge("task.trim.S1", "task.align.S1.hg38"))

	var sb strings.Builder
	require.NoError(t, g.WriteDOT(&sb, "test"))
	out := sb.String()

	assert.Contains(t, out, `digraph "test"`)
	assert.Contains(t, out, `"task.trim.S1" -> "task.align.S1.hg38";`)
	assert.Contains(t, out, "S1/hg38")
}
