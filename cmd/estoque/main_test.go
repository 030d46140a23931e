package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaultCommand(t *testing.T) {
	// Caso 1: sin argumentos ⇒ shell
	fs := flag.NewFlagSet("estoque", flag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, withDefaultCommand(fs, "shell"))
	assert.Equal(t, []string{"shell"}, fs.Args())

	// Caso 2: subcomando explícito ⇒ se respeta
	fs = flag.NewFlagSet("estoque", flag.ContinueOnError)
	require.NoError(t, fs.Parse([]string{"serve", "-addr", ":9000"}))
	require.NoError(t, withDefaultCommand(fs, "shell"))
	assert.Equal(t, []string{"serve", "-addr", ":9000"}, fs.Args())
}
