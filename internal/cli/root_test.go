package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "summary")
	assert.Contains(t, names, "evaluate")
	assert.Contains(t, names, "compare")
}

func TestRootCommandInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeSalesCSV(t, dir)

	_, err := execute(t, "--format", "xml", "summary", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad input")))

	wrapped := WrapExitError(ExitFailure, "outer", errors.New("inner"))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.Contains(t, wrapped.Error(), "outer")
	assert.Contains(t, wrapped.Error(), "inner")
	assert.NotNil(t, errors.Unwrap(wrapped))
}

func TestExitErrorMessageOnly(t *testing.T) {
	err := NewExitError(ExitFailure, "just a message")
	assert.Equal(t, "just a message", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
