package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"version"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "methylgrid")
}

func TestRunUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"frobnicate"})
	assert.Error(t, err)
}

func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"--help"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "plan")
	assert.Contains(t, out.String(), "validate")
}
