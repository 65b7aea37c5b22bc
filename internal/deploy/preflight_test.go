package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsync/internal/testutil"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

func TestPreflightAcceptsValidConfiguration(t *testing.T) {
	assert.NoError(t, Preflight(testutil.SampleConfiguration()))
}

func TestPreflightDuplicateChannelSlug(t *testing.T) {
	cfg := &models.Configuration{
		Channels: []models.Channel{
			{Name: "Germany", Slug: "europe", CurrencyCode: "EUR", DefaultCountry: "DE"},
			{Name: "France", Slug: "europe", CurrencyCode: "EUR", DefaultCountry: "FR"},
		},
	}

	err := Preflight(cfg)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDuplicateKey))
	assert.Contains(t, err.Error(), "europe")
}

func TestPreflightDuplicateProductTypeName(t *testing.T) {
	cfg := &models.Configuration{
		ProductTypes: []models.ProductType{
			{Name: "Clothing"},
			{Name: "Clothing"},
		},
	}

	err := Preflight(cfg)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDuplicateKey))
}

func TestPreflightCategorySlugScopedToLevel(t *testing.T) {
	t.Run("same slug under different parents is fine", func(t *testing.T) {
		cfg := &models.Configuration{
			Categories: []models.Category{
				{Name: "Men", Slug: "men", Subcategories: []models.Category{{Name: "Shoes", Slug: "shoes"}}},
				{Name: "Women", Slug: "women", Subcategories: []models.Category{{Name: "Shoes", Slug: "shoes"}}},
			},
		}
		assert.NoError(t, Preflight(cfg))
	})

	t.Run("same slug under one parent is rejected", func(t *testing.T) {
		cfg := &models.Configuration{
			Categories: []models.Category{
				{Name: "Men", Slug: "men", Subcategories: []models.Category{
					{Name: "Shoes", Slug: "shoes"},
					{Name: "Sneakers", Slug: "shoes"},
				}},
			},
		}
		err := Preflight(cfg)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDuplicateKey))
	})
}

func TestPreflightValidatesNestedAttributeInputs(t *testing.T) {
	cfg := &models.Configuration{
		ProductTypes: []models.ProductType{
			{Name: "Clothing", VariantAttributes: []models.AttributeInput{
				{Name: "Notes", InputType: models.InputTypePlainText, VariantSelection: true},
			}},
		},
	}

	err := Preflight(cfg)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidationFailed))
	assert.Contains(t, err.Error(), "Clothing")
}

func TestCheckPolicy(t *testing.T) {
	deleteSummary := &models.DiffSummary{}
	deleteSummary.Add(models.DiffResult{
		Operation:  models.OperationDelete,
		EntityType: models.EntityTypeChannels,
		EntityName: "Legacy",
	})

	valueSummary := &models.DiffSummary{}
	valueSummary.Add(models.DiffResult{
		Operation:  models.OperationUpdate,
		EntityType: models.EntityTypeProductTypes,
		EntityName: "Clothing",
		Changes: []models.Change{
			{Field: "productAttributes.Size.values", CurrentValue: "XS", DesiredValue: nil},
		},
	})

	t.Run("inactive policy allows everything", func(t *testing.T) {
		assert.NoError(t, CheckPolicy(deleteSummary, Policy{}))
		assert.NoError(t, CheckPolicy(valueSummary, Policy{}))
	})

	t.Run("blocks deletions", func(t *testing.T) {
		err := CheckPolicy(deleteSummary, Policy{FailOnDelete: true})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodePolicyBlocked))
	})

	t.Run("blocks remote-only values", func(t *testing.T) {
		err := CheckPolicy(valueSummary, Policy{FailOnDelete: true})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodePolicyBlocked))
		assert.Contains(t, err.Error(), "Clothing")
	})

	t.Run("clean diff passes", func(t *testing.T) {
		clean := &models.DiffSummary{}
		clean.Add(models.DiffResult{Operation: models.OperationCreate, EntityType: models.EntityTypeChannels, EntityName: "Germany"})
		assert.NoError(t, CheckPolicy(clean, Policy{FailOnDelete: true}))
	})
}
