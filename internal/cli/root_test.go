package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBareInvocationRunsBrowser(t *testing.T) {
	cmd, _, err := rootCmd.Find(nil)
	require.NoError(t, err)
	assert.Equal(t, rootCmd, cmd)
	assert.NotNil(t, cmd.RunE)
}

func TestResetIsClearAlias(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"reset"})
	require.NoError(t, err)
	assert.Equal(t, "clear", cmd.Name())
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Task 'x' not found", capitalize("task 'x' not found"))
	assert.Equal(t, "Already Upper", capitalize("Already Upper"))
	assert.Equal(t, "", capitalize(""))
}
