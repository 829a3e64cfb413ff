package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := New()

	assert.Len(t, c.All(), 9)
	assert.Len(t, c.Featured(), 6)

	p, ok := c.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Beginner Rocket Kit", p.Name)
	assert.Equal(t, 29.99, p.Price)

	_, ok = c.ByID("999")
	assert.False(t, ok)
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := New()

	all := c.All()
	all[0].Name = "mutated"

	p, ok := c.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Beginner Rocket Kit", p.Name)
}
