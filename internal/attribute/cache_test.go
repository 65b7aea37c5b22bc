package attribute

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsync/pkg/models"
)

func TestCacheFirstWriterWins(t *testing.T) {
	cache := NewCache()

	cache.Put(models.RemoteAttribute{ID: "attr-1", Name: "Size", Kind: models.AttributeKindProduct})
	cache.Put(models.RemoteAttribute{ID: "attr-2", Name: "Size", Kind: models.AttributeKindProduct})

	attr, ok := cache.Get("Size", models.AttributeKindProduct)
	require.True(t, ok)
	assert.Equal(t, "attr-1", attr.ID)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheKindIsPartOfTheKey(t *testing.T) {
	cache := NewCache()

	cache.Put(models.RemoteAttribute{ID: "attr-1", Name: "Author", Kind: models.AttributeKindProduct})
	cache.Put(models.RemoteAttribute{ID: "attr-2", Name: "Author", Kind: models.AttributeKindContent})

	product, ok := cache.Get("Author", models.AttributeKindProduct)
	require.True(t, ok)
	content, ok2 := cache.Get("Author", models.AttributeKindContent)
	require.True(t, ok2)

	assert.Equal(t, "attr-1", product.ID)
	assert.Equal(t, "attr-2", content.ID)
	assert.Equal(t, 2, cache.Len())
}

func TestCacheMiss(t *testing.T) {
	cache := NewCache()

	_, ok := cache.Get("Missing", models.AttributeKindProduct)
	assert.False(t, ok)
}

func TestCacheReplaceOverwrites(t *testing.T) {
	cache := NewCache()

	cache.Put(models.RemoteAttribute{ID: "attr-1", Name: "Size", Kind: models.AttributeKindProduct, Values: []string{"S", "M"}})
	cache.Replace(models.RemoteAttribute{ID: "attr-1", Name: "Size", Kind: models.AttributeKindProduct, Values: []string{"S", "M", "L"}})

	attr, ok := cache.Get("Size", models.AttributeKindProduct)
	require.True(t, ok)
	assert.Equal(t, []string{"S", "M", "L"}, attr.Values)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheConcurrentPut(t *testing.T) {
	cache := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cache.Put(models.RemoteAttribute{
				ID:   fmt.Sprintf("attr-%d", n),
				Name: "Size",
				Kind: models.AttributeKindProduct,
			})
		}(i)
	}
	wg.Wait()

	attr, ok := cache.Get("Size", models.AttributeKindProduct)
	require.True(t, ok)
	assert.NotEmpty(t, attr.ID)
	assert.Equal(t, 1, cache.Len())
}
