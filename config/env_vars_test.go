package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SITE_DOMAIN", "SITE_ZONE", "SITE_CONTENTS", "SITE_SETTINGS",
		"CDK_DEPLOY_ACCOUNT", "CDK_DEPLOY_REGION", "CDK_DEFAULT_ACCOUNT", "CDK_DEFAULT_REGION",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadEnv_DeployPair(t *testing.T) {
	clearEnv(t)
	t.Setenv("SITE_DOMAIN", "example.org")
	t.Setenv("SITE_CONTENTS", "./site")
	t.Setenv("CDK_DEPLOY_ACCOUNT", "111111111111")
	t.Setenv("CDK_DEPLOY_REGION", "eu-west-1")
	t.Setenv("CDK_DEFAULT_ACCOUNT", "222222222222")
	t.Setenv("CDK_DEFAULT_REGION", "us-west-2")

	site, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, validSite(), site)
}

func TestLoadEnv_FallsBackToCdkDefaults(t *testing.T) {
	clearEnv(t)
	// An incomplete deploy pair is ignored as a whole.
	t.Setenv("CDK_DEPLOY_ACCOUNT", "111111111111")
	t.Setenv("CDK_DEFAULT_ACCOUNT", "222222222222")
	t.Setenv("CDK_DEFAULT_REGION", "us-west-2")

	site, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "222222222222", site.Account)
	assert.Equal(t, "us-west-2", site.Region)
}

func TestParseFlags_OverridesEnvironment(t *testing.T) {
	base := validSite()
	inv, err := ParseFlags([]string{"-d", "example.net", "--contents", "./public", "-preflight"}, base, nil)
	require.NoError(t, err)
	assert.Equal(t, "example.net", inv.Site.Domain)
	assert.Equal(t, "./public", inv.Site.Contents)
	assert.Equal(t, base.Account, inv.Site.Account)
	assert.True(t, inv.Preflight)
	assert.False(t, inv.Verbose)
}

func TestParseFlags_LongNames(t *testing.T) {
	inv, err := ParseFlags([]string{
		"--domain", "www.example.org",
		"--zone", "example.org",
		"--accountid", "111111111111",
		"--region", "eu-west-1",
		"--settings", "site.yaml",
		"-c", "s3://artifacts/site.zip",
	}, Site{}, nil)
	require.NoError(t, err)
	assert.Equal(t, Site{
		Domain:       "www.example.org",
		Zone:         "example.org",
		Contents:     "s3://artifacts/site.zip",
		Account:      "111111111111",
		Region:       "eu-west-1",
		SettingsPath: "site.yaml",
	}, inv.Site)
}

func TestParseFlags_Errors(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseFlags([]string{"-unknown"}, Site{}, &out)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ParseFlags([]string{"-d", "example.org", "extra"}, Site{}, &out)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "unexpected arguments")

	out.Reset()
	_, err = ParseFlags([]string{"-h"}, Site{}, &out)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-contents")
}

func TestLoad_ValidatesBeforeReturning(t *testing.T) {
	clearEnv(t)
	t.Setenv("CDK_DEPLOY_ACCOUNT", "111111111111")
	t.Setenv("CDK_DEPLOY_REGION", "eu-west-1")

	_, err := Load([]string{"-d", "example.org"}, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "Contents is required")

	inv, err := Load([]string{"-d", "example.org", "-c", "./site"}, nil)
	require.NoError(t, err)
	assert.Equal(t, validSite(), inv.Site)
}
