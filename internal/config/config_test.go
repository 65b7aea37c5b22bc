package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("SHOPSYNC_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	assert.False(t, Exists())

	cfg := &models.Config{
		Remote: models.Remote{Endpoint: "https://shop.example.com/api"},
		Deployment: models.DeploymentConfig{
			FailOnDelete: true,
			Workers:      8,
			MaxReports:   20,
		},
	}
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingConfigIsEmpty(t *testing.T) {
	t.Setenv("SHOPSYNC_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &models.Config{}, cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHOPSYNC_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("SHOPSYNC_REMOTE_ENDPOINT", "https://env.example.com/api")
	t.Setenv("SHOPSYNC_DEPLOYMENT_WORKERS", "2")
	t.Setenv("SHOPSYNC_DEPLOYMENT_FAIL_ON_DELETE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", cfg.Remote.Endpoint)
	assert.Equal(t, 2, cfg.Deployment.Workers)
	assert.True(t, cfg.Deployment.FailOnDelete)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	t.Setenv("SHOPSYNC_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, Save(&models.Config{
		Remote: models.Remote{Endpoint: "https://file.example.com/api"},
	}))

	t.Setenv("SHOPSYNC_REMOTE_ENDPOINT", "https://env.example.com/api")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", cfg.Remote.Endpoint)
}

func TestLoadDesired(t *testing.T) {
	writeDoc := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "shop.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}

	t.Run("parses all sections", func(t *testing.T) {
		path := writeDoc(t, `
shop:
  displayGrossPrices: true

channels:
  - name: Germany
    slug: germany
    currencyCode: EUR
    defaultCountry: DE

attributes:
  - name: Material
    inputType: DROPDOWN
    values: [Cotton, Wool]

productTypes:
  - name: Clothing
    isShippingRequired: true
    productAttributes:
      - name: Size
        inputType: DROPDOWN
        values: [S, M, L]
      - name: Material

pageTypes:
  - name: Blog Post
    attributes:
      - name: Author
        inputType: PLAIN_TEXT

categories:
  - name: Apparel
    slug: apparel
    subcategories:
      - name: Shirts
        slug: shirts
`)
		cfg, err := LoadDesired(path)
		require.NoError(t, err)

		require.NotNil(t, cfg.Shop)
		require.NotNil(t, cfg.Shop.DisplayGrossPrices)
		assert.True(t, *cfg.Shop.DisplayGrossPrices)

		require.Len(t, cfg.Channels, 1)
		assert.Equal(t, "germany", cfg.Channels[0].Slug)

		require.Len(t, cfg.ProductTypes, 1)
		attrs := cfg.ProductTypes[0].ProductAttributes
		require.Len(t, attrs, 2)
		assert.False(t, attrs[0].IsReference(), "an inline definition carries an input type")
		assert.True(t, attrs[1].IsReference(), "a bare name is a reference")

		require.Len(t, cfg.Categories, 1)
		require.Len(t, cfg.Categories[0].Subcategories, 1)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		path := writeDoc(t, "channnels:\n  - name: Typo\n")
		_, err := LoadDesired(path)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeConfigInvalid))
	})

	t.Run("empty document is empty configuration", func(t *testing.T) {
		path := writeDoc(t, "")
		cfg, err := LoadDesired(path)
		require.NoError(t, err)
		assert.Nil(t, cfg.Shop)
		assert.Empty(t, cfg.Channels)
	})

	t.Run("missing file suggests init", func(t *testing.T) {
		_, err := LoadDesired(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeConfigNotFound))
		assert.Contains(t, err.Error(), "shopsync init")
	})
}
