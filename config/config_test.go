package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spyderisk/domain-csv2nq/config"
)

func TestValidate(t *testing.T) {
	opts := config.Default()
	require.Error(t, opts.Validate())

	opts.Input = "model"
	require.Error(t, opts.Validate())

	opts.Output = "model.nq"
	require.NoError(t, opts.Validate())
}

func TestParse(t *testing.T) {
	opts, err := config.Parse([]byte("expanded: true\nversionInfo: \"1.2.3\"\n"))
	require.NoError(t, err)
	assert.True(t, opts.Expanded)
	assert.Equal(t, "1.2.3", opts.VersionInfo)
	assert.False(t, opts.Unfiltered)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("expanded: [broken\n"))
	require.Error(t, err)
}

func TestLoaderAppliesDefaultsWithoutOverridingFlags(t *testing.T) {
	dir := t.TempDir()
	content := "mapping: icons.json\nexpanded: true\nlabel: FromFile\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.OptionsFile), []byte(content), 0o644))

	opts := config.Default()
	opts.Input = dir
	opts.Output = "out.nq"
	opts.Label = "FromFlag"

	require.NoError(t, config.NewLoader(nil).Apply(opts))

	assert.Equal(t, "icons.json", opts.Mapping)
	assert.True(t, opts.Expanded)
	assert.Equal(t, "FromFlag", opts.Label, "flag values win over file defaults")
}

func TestLoaderMissingFileIsNotAnError(t *testing.T) {
	opts := config.Default()
	opts.Input = t.TempDir()
	require.NoError(t, config.NewLoader(nil).Apply(opts))
}
