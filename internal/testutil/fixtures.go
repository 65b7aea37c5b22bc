package testutil

import (
	"shopsync/pkg/models"
)

// GermanyChannel is the canonical test channel.
func GermanyChannel() models.Channel {
	return models.Channel{
		Name:           "Germany",
		Slug:           "germany",
		CurrencyCode:   "EUR",
		DefaultCountry: "DE",
		IsActive:       true,
	}
}

// ClothingProductType returns a product type with a dropdown size attribute.
func ClothingProductType(sizes ...string) models.ProductType {
	return models.ProductType{
		Name:               "Clothing",
		IsShippingRequired: true,
		ProductAttributes: []models.AttributeInput{
			{
				Name:      "Size",
				InputType: models.InputTypeDropdown,
				Values:    sizes,
			},
		},
	}
}

// RemoteSizeAttribute returns the remote counterpart of the size attribute.
func RemoteSizeAttribute(id string, values ...string) models.RemoteAttribute {
	return models.RemoteAttribute{
		ID:        id,
		Name:      "Size",
		Kind:      models.AttributeKindProduct,
		InputType: models.InputTypeDropdown,
		Values:    values,
	}
}

// SampleConfiguration returns a small but complete desired-state document.
func SampleConfiguration() *models.Configuration {
	displayGross := true
	return &models.Configuration{
		Shop: &models.ShopSettings{
			DisplayGrossPrices: &displayGross,
		},
		Channels: []models.Channel{GermanyChannel()},
		ProductTypes: []models.ProductType{
			ClothingProductType("S", "M", "L"),
		},
		Categories: []models.Category{
			{Name: "Apparel", Slug: "apparel", Subcategories: []models.Category{
				{Name: "Shirts", Slug: "shirts"},
			}},
		},
	}
}
