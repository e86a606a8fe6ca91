package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraCfg "github.com/rocky-jaiswal/static-site-cdk/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_EmptyPathIsDefault(t *testing.T) {
	s, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, "index.html", s.IndexDocument)
	assert.Equal(t, "error.html", s.ErrorDocument)
	assert.Equal(t, TLSPolicy2019, s.MinimumTLSPolicy)
	assert.Equal(t, PriceClassAll, s.PriceClass)
	assert.True(t, s.FallbackErrorPageOrDefault())
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "site.yaml", `
errorDocument: 404.html
minimumTlsPolicy: TLSv1.2_2021
priceClass: PriceClass_100
alternativeNames:
  - www.example.org
fallbackErrorPage: false
tags:
  team: web
`)
	s, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "index.html", s.IndexDocument)
	assert.Equal(t, "404.html", s.ErrorDocument)
	assert.Equal(t, TLSPolicy2021, s.MinimumTLSPolicy)
	assert.Equal(t, PriceClass100, s.PriceClass)
	assert.Equal(t, []string{"www.example.org"}, s.AlternativeNames)
	assert.False(t, s.FallbackErrorPageOrDefault())
	assert.Equal(t, map[string]string{"team": "web"}, s.Tags)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "site.toml", `
indexDocument = "home.html"
alternativeNames = ["www.example.org", "blog.example.org"]
certificateArn = "arn:aws:acm:us-east-1:111111111111:certificate/abc"

[tags]
team = "web"
`)
	s, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "home.html", s.IndexDocument)
	assert.Equal(t, []string{"www.example.org", "blog.example.org"}, s.AlternativeNames)
	assert.Equal(t, "arn:aws:acm:us-east-1:111111111111:certificate/abc", s.CertificateArn)
	assert.Equal(t, "web", s.Tags["team"])
}

func TestLoadConfig_EmptyYAMLDocument(t *testing.T) {
	s, err := LoadConfig(writeFile(t, "site.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeFile(t, "site.json", "{}"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadConfig(writeFile(t, "site.yaml", "priceClass: [oops"))
	require.ErrorContains(t, err, "error unmarshalling site settings")

	_, err = LoadConfig(writeFile(t, "site.yaml", "priceclass: PriceClass_100\n"))
	require.ErrorContains(t, err, "error unmarshalling site settings")

	_, err = LoadConfig(writeFile(t, "site.toml", "unknownKey = 1\n"))
	require.ErrorContains(t, err, "unknown keys")

	_, err = LoadConfig(writeFile(t, "site.yaml", "minimumTlsPolicy: TLSv1\n"))
	require.ErrorIs(t, err, infraCfg.ErrInvalidConfig)

	_, err = LoadConfig(writeFile(t, "site.yaml", "alternativeNames: [WWW.example.org]\n"))
	require.ErrorIs(t, err, infraCfg.ErrInvalidConfig)

	_, err = LoadConfig(writeFile(t, "site.yaml", "indexDocument: pages/index.html\n"))
	require.ErrorIs(t, err, infraCfg.ErrInvalidConfig)
}
