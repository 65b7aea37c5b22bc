package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsync/pkg/models"
)

func TestCompareChannelCreate(t *testing.T) {
	local := models.Channel{
		Name:           "Germany",
		Slug:           "germany",
		CurrencyCode:   "EUR",
		DefaultCountry: "DE",
	}

	result := CompareChannel(local, nil)
	require.NotNil(t, result)
	assert.Equal(t, models.OperationCreate, result.Operation)
	assert.Equal(t, models.EntityTypeChannels, result.EntityType)
	assert.Equal(t, "Germany", result.EntityName)
	assert.Equal(t, local, result.Desired)
}

func TestCompareChannelCurrencyChanged(t *testing.T) {
	local := models.Channel{Name: "Germany", Slug: "germany", CurrencyCode: "EUR", DefaultCountry: "DE"}
	remote := &models.RemoteChannel{
		ID: "ch-1",
		Channel: models.Channel{
			Name: "Germany", Slug: "germany", CurrencyCode: "USD", DefaultCountry: "DE",
		},
	}

	result := CompareChannel(local, remote)
	require.NotNil(t, result)
	assert.Equal(t, models.OperationUpdate, result.Operation)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "currencyCode", result.Changes[0].Field)
	assert.Equal(t, "USD", result.Changes[0].CurrentValue)
	assert.Equal(t, "EUR", result.Changes[0].DesiredValue)
}

func TestCompareChannelIdentical(t *testing.T) {
	local := models.Channel{Name: "Germany", Slug: "germany", CurrencyCode: "EUR", DefaultCountry: "DE"}
	remote := &models.RemoteChannel{ID: "ch-1", Channel: local}

	assert.Nil(t, CompareChannel(local, remote))
}

func TestCompareShop(t *testing.T) {
	gross := true
	local := &models.ShopSettings{DisplayGrossPrices: &gross}

	t.Run("differs from remote", func(t *testing.T) {
		remoteGross := false
		result := CompareShop(local, &models.ShopSettings{DisplayGrossPrices: &remoteGross})
		require.NotNil(t, result)
		assert.Equal(t, models.OperationUpdate, result.Operation)
		require.Len(t, result.Changes, 1)
		assert.Equal(t, "displayGrossPrices", result.Changes[0].Field)
	})

	t.Run("identical", func(t *testing.T) {
		remoteGross := true
		assert.Nil(t, CompareShop(local, &models.ShopSettings{DisplayGrossPrices: &remoteGross}))
	})

	t.Run("unset local fields ignored", func(t *testing.T) {
		sender := "Old Sender"
		assert.Nil(t, CompareShop(local, &models.ShopSettings{
			DisplayGrossPrices:    &gross,
			DefaultMailSenderName: &sender,
		}))
	})

	t.Run("section not configured", func(t *testing.T) {
		assert.Nil(t, CompareShop(nil, &models.ShopSettings{}))
	})
}

func TestCompareProductTypeAddedValue(t *testing.T) {
	local := models.ProductType{
		Name:               "Clothing",
		IsShippingRequired: true,
		ProductAttributes: []models.AttributeInput{
			{Name: "Size", InputType: models.InputTypeDropdown, Values: []string{"S", "M", "L", "XL"}},
		},
	}
	remote := &models.RemoteProductType{
		ID:                 "pt-1",
		Name:               "Clothing",
		IsShippingRequired: true,
		ProductAttributes: []models.RemoteAttribute{
			{ID: "attr-1", Name: "Size", Kind: models.AttributeKindProduct,
				InputType: models.InputTypeDropdown, Values: []string{"S", "M", "L"}},
		},
	}

	result := CompareProductType(local, remote, nil)
	require.NotNil(t, result)
	assert.Equal(t, models.OperationUpdate, result.Operation)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "XL", result.Changes[0].DesiredValue)
	assert.Contains(t, result.Changes[0].Description, `add value "XL"`)
}

func TestCompareProductTypeRemoteOnlyValueNeverRemoved(t *testing.T) {
	local := models.ProductType{
		Name: "Clothing",
		ProductAttributes: []models.AttributeInput{
			{Name: "Size", InputType: models.InputTypeDropdown, Values: []string{"S"}},
		},
	}
	remote := &models.RemoteProductType{
		ID:   "pt-1",
		Name: "Clothing",
		ProductAttributes: []models.RemoteAttribute{
			{ID: "attr-1", Name: "Size", InputType: models.InputTypeDropdown, Values: []string{"S", "M"}},
		},
	}

	result := CompareProductType(local, remote, nil)
	require.NotNil(t, result)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "M", result.Changes[0].CurrentValue)
	assert.Nil(t, result.Changes[0].DesiredValue)
	assert.Contains(t, result.Changes[0].Description, "never removed")
}

func TestCompareProductTypeReferenceUsesResolvedValues(t *testing.T) {
	local := models.ProductType{
		Name: "Clothing",
		ProductAttributes: []models.AttributeInput{
			{Name: "Size"}, // reference, no inline definition
		},
	}
	remote := &models.RemoteProductType{
		ID:   "pt-1",
		Name: "Clothing",
		ProductAttributes: []models.RemoteAttribute{
			{ID: "attr-1", Name: "Size", InputType: models.InputTypeDropdown, Values: []string{"S", "M"}},
		},
	}
	resolved := map[string]models.RemoteAttribute{
		"Size": {ID: "attr-1", Name: "Size", Values: []string{"S", "M"}},
	}

	// The reference resolves to the same values the type already carries,
	// so there is no phantom diff.
	assert.Nil(t, CompareProductType(local, remote, resolved))
}

func TestCompareProductTypeUnassignedAttribute(t *testing.T) {
	local := models.ProductType{
		Name: "Clothing",
		ProductAttributes: []models.AttributeInput{
			{Name: "Material", InputType: models.InputTypeDropdown, Values: []string{"Cotton"}},
		},
	}
	remote := &models.RemoteProductType{ID: "pt-1", Name: "Clothing"}

	result := CompareProductType(local, remote, nil)
	require.NotNil(t, result)
	require.Len(t, result.Changes, 1)
	assert.Contains(t, result.Changes[0].Description, `assign attribute "Material"`)
}

func TestCompareCategoriesSubtreeCreate(t *testing.T) {
	local := []models.Category{
		{Name: "Apparel", Slug: "apparel", Subcategories: []models.Category{
			{Name: "Shirts", Slug: "shirts"},
			{Name: "Trousers", Slug: "trousers"},
		}},
	}

	results := CompareCategories(local, nil)
	// A subtree present only locally is one CREATE for the whole subtree.
	require.Len(t, results, 1)
	assert.Equal(t, models.OperationCreate, results[0].Operation)
	assert.Equal(t, "Apparel", results[0].EntityName)
	created, ok := results[0].Desired.(models.Category)
	require.True(t, ok)
	assert.Len(t, created.Subcategories, 2)
}

func TestCompareCategoriesNestedChanges(t *testing.T) {
	local := []models.Category{
		{Name: "Apparel", Slug: "apparel", Subcategories: []models.Category{
			{Name: "Shirts", Slug: "shirts"},
			{Name: "Hats", Slug: "hats"},
		}},
	}
	remote := []models.RemoteCategory{
		{ID: "cat-1", Name: "Apparel", Slug: "apparel", Subcategories: []models.RemoteCategory{
			{ID: "cat-2", Name: "Shirts", Slug: "shirts"},
			{ID: "cat-3", Name: "Shoes", Slug: "shoes"},
		}},
	}

	results := CompareCategories(local, remote)
	require.Len(t, results, 2)
	assert.Equal(t, models.OperationCreate, results[0].Operation)
	assert.Equal(t, "Apparel/Hats", results[0].EntityName)
	assert.Equal(t, models.OperationDelete, results[1].Operation)
	assert.Equal(t, "Apparel/Shoes", results[1].EntityName)
}

func TestCompareCategoriesRename(t *testing.T) {
	local := []models.Category{{Name: "Apparel & More", Slug: "apparel"}}
	remote := []models.RemoteCategory{{ID: "cat-1", Name: "Apparel", Slug: "apparel"}}

	results := CompareCategories(local, remote)
	require.Len(t, results, 1)
	assert.Equal(t, models.OperationUpdate, results[0].Operation)
	require.Len(t, results[0].Changes, 1)
	assert.Equal(t, "name", results[0].Changes[0].Field)
}

func TestCompareAttributeGrowthOnly(t *testing.T) {
	local := models.AttributeInput{
		Name: "Size", InputType: models.InputTypeDropdown, Values: []string{"S", "M"},
	}

	t.Run("create when absent", func(t *testing.T) {
		result := CompareAttribute(local, nil)
		require.NotNil(t, result)
		assert.Equal(t, models.OperationCreate, result.Operation)
	})

	t.Run("no result when identical", func(t *testing.T) {
		assert.Nil(t, CompareAttribute(local, &models.RemoteAttribute{
			ID: "attr-1", Name: "Size", Values: []string{"S", "M"},
		}))
	})

	t.Run("update on added value", func(t *testing.T) {
		result := CompareAttribute(local, &models.RemoteAttribute{
			ID: "attr-1", Name: "Size", Values: []string{"S"},
		})
		require.NotNil(t, result)
		assert.Equal(t, models.OperationUpdate, result.Operation)
		require.Len(t, result.Changes, 1)
		assert.Equal(t, "M", result.Changes[0].DesiredValue)
	})

	t.Run("empty local value list still reports remote-only values", func(t *testing.T) {
		result := CompareAttribute(models.AttributeInput{
			Name: "Size", InputType: models.InputTypeDropdown,
		}, &models.RemoteAttribute{
			ID: "attr-1", Name: "Size", Values: []string{"S", "M"},
		})
		require.NotNil(t, result)
		require.Len(t, result.Changes, 2)
		for _, c := range result.Changes {
			assert.Nil(t, c.DesiredValue)
			assert.Contains(t, c.Description, "never removed")
		}
	})
}
