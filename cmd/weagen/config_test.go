package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSiteConfig(t *testing.T) {
	path := writeConfig(t, `
location:
  city: Golden
  country: USA
  latitude: 39.74
  longitude: -105.18
  time_zone: -7
  elevation: 1829
tau_beam: [0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3]
tau_diffuse: [2.4, 2.4, 2.4, 2.4, 2.4, 2.4, 2.4, 2.4, 2.4, 2.4, 2.4, 2.4]
`)
	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)

	loc := cfg.SunpathLocation()
	assert.Equal(t, "Golden", loc.City)
	assert.Equal(t, 39.74, loc.Latitude)
	assert.Equal(t, -7.0, loc.TimeZone)

	require.Len(t, cfg.TauBeam, 12)
	require.NotNil(t, cfg.TauBeam[0])
	assert.Equal(t, 0.3, *cfg.TauBeam[0])

	// A YAML null leaves a month unset rather than zero.
	gapped := writeConfig(t, `
location:
  city: X
tau_beam: [0.3, null, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3]
`)
	cfg, err = LoadSiteConfig(gapped)
	require.NoError(t, err)
	assert.Nil(t, cfg.TauBeam[1])
}

func TestLoadSiteConfigErrors(t *testing.T) {
	_, err := LoadSiteConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadSiteConfig(writeConfig(t, "location: ["))
	assert.Error(t, err)

	_, err = LoadSiteConfig(writeConfig(t, "location:\n  latitude: 99\n"))
	assert.Error(t, err)

	_, err = LoadSiteConfig(writeConfig(t, "location:\n  longitude: -200\n"))
	assert.Error(t, err)
}
