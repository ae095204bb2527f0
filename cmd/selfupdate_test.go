package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelfUpdateCmd(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd()

	assert.Equal(t, "self-update", selfUpdateCmd.Use)
	assert.NotEmpty(t, selfUpdateCmd.Short)
	assert.NotEmpty(t, selfUpdateCmd.Long)
	assert.NotNil(t, selfUpdateCmd.RunE)
}

func TestRunSelfUpdateWithDevVersion(t *testing.T) {
	for _, version := range []string{"dev", ""} {
		t.Run("version="+version, func(t *testing.T) {
			originalVersion := rootCmd.Version
			defer func() { rootCmd.Version = originalVersion }()
			rootCmd.Version = version

			err := runSelfUpdate(nil, []string{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot self-update a development version")
		})
	}
}

func TestSelfUpdateCommandHelp(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd()
	var buf bytes.Buffer
	selfUpdateCmd.SetOut(&buf)
	selfUpdateCmd.SetErr(&buf)
	selfUpdateCmd.SetArgs([]string{"--help"})

	require.NoError(t, selfUpdateCmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Checks for the latest release")
	assert.Contains(t, output, "self-update")
}

func TestRepositorySlug(t *testing.T) {
	slug, err := repositorySlug(" acme/cinematch ")
	require.NoError(t, err)
	assert.Equal(t, "acme/cinematch", slug)

	_, err = repositorySlug("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update.repository")

	for _, bad := range []string{"acme", "/cinematch", "acme/", "acme/cinematch/extra"} {
		_, err := repositorySlug(bad)
		assert.Error(t, err, bad)
	}
}

// Note: the actual update is not exercised here since it needs network access
// and would replace the test binary.
