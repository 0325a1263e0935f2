package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSessionPrice(t *testing.T) {
	assert.Equal(t, float64(999), GetSessionPrice("DSA"))
	assert.Equal(t, float64(1499), GetSessionPrice("System Design"))
	assert.Equal(t, float64(599), GetSessionPrice("Behavioral"))
	assert.Equal(t, float64(999), GetSessionPrice("Origami"), "unknown fields fall back to the default")
}

func TestIsKnownField(t *testing.T) {
	assert.True(t, IsKnownField("Data Science"))
	assert.True(t, IsKnownField("Analytics"))
	assert.False(t, IsKnownField("Origami"))
}

func TestGetPricingMapCoversAllFields(t *testing.T) {
	m := GetPricingMap()
	for _, field := range []string{"DSA", "Data Science", "Analytics", "System Design", "Behavioral"} {
		p, ok := m[field]
		assert.True(t, ok, "missing pricing for %s", field)
		assert.Equal(t, field, p.ID)
		assert.Greater(t, p.Price, float64(0))
	}
}
