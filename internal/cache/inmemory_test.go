package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()

	c.Set(ctx, "k1", "v1", time.Minute)
	v, found := c.Get(ctx, "k1")
	assert.True(t, found)
	assert.Equal(t, "v1", v)

	c.Delete(ctx, "k1")
	_, found = c.Get(ctx, "k1")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()

	c.Set(ctx, PrefixTranslation+"dictionary", "a", time.Minute)
	c.Set(ctx, PrefixProduct+"p1", "b", time.Minute)

	c.DeleteByPrefix(ctx, PrefixTranslation)

	_, found := c.Get(ctx, PrefixTranslation+"dictionary")
	assert.False(t, found)
	_, found = c.Get(ctx, PrefixProduct+"p1")
	assert.True(t, found)
}

func TestGenerateKey(t *testing.T) {
	key := GenerateKey(PrefixProduct, "tenant-1", "p1")
	assert.Equal(t, PrefixProduct+":tenant-1:p1", key)
}
