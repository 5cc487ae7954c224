package taskid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringForms(t *testing.T) {
	assert.Equal(t, "task.trim.S1", New("trim", "S1").String())
	assert.Equal(t, "task.align.S1.hg38", New("align", "S1", "hg38").String())
	assert.Equal(t, "task.genome_prep.hg38", New("genome_prep", "hg38").String())
}

func TestDotsInScopeAreSanitized(t *testing.T) {
	// Dotted genome names would otherwise break the dotted address format.
	assert.Equal(t, "task.align.S1.GRCh38_p13", New("align", "S1", "GRCh38.p13").String())
}

func TestParseRoundTrip(t *testing.T) {
	addr := New("align", "S1", "hg38")
	parsed, err := Parse(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
	assert.Equal(t, "align", parsed.Stage)
	assert.Equal(t, []string{"S1", "hg38"}, parsed.Scope)
}

func TestParseRejectsBadIdentifiers(t *testing.T) {
	for _, in := range []string{
		"",
		"task",
		"task.trim", // no scope
		"step.trim.S1",
		"task..S1",
		"task.trim.S 1",
	} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}
