package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "fivepoint", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommandHelp(t *testing.T) {
	cmd := rootCmd

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "five-point algorithm")
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "solve")
	assert.Contains(t, output, "generate")
}

func TestRootCommandVersion(t *testing.T) {
	cmd := rootCmd

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	// Flag values persist across executions of the shared root command, so
	// the help flag set by an earlier --help run is cleared explicitly.
	cmd.SetArgs([]string{"--version", "--help=false"})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "fivepoint version")
}

func TestGetRootCommand(t *testing.T) {
	assert.Same(t, rootCmd, GetRootCommand())
}
