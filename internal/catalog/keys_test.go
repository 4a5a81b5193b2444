package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailKey_IsDeterministic(t *testing.T) {
	assert.Equal(t, DetailKey(42), DetailKey(42))
	assert.NotEqual(t, DetailKey(1), DetailKey(2))
	assert.Equal(t, "product:detail:42", DetailKey(42))
}

func TestListKey_IsDeterministicFunctionOfCriteria(t *testing.T) {
	brand := int64(5)
	a := ListCriteria{Page: 0, Size: 20, Sort: "id", BrandID: &brand}
	b := ListCriteria{Page: 0, Size: 20, Sort: "id", BrandID: &brand}
	assert.Equal(t, ListKey(a), ListKey(b))

	c := ListCriteria{Page: 1, Size: 20, Sort: "id", BrandID: &brand}
	assert.NotEqual(t, ListKey(a), ListKey(c))

	noBrand := ListCriteria{Page: 0, Size: 20, Sort: "id"}
	assert.NotEqual(t, ListKey(a), ListKey(noBrand))
}

func TestIsCacheablePage(t *testing.T) {
	assert.True(t, isCacheablePage(0))
	assert.True(t, isCacheablePage(2))
	assert.False(t, isCacheablePage(3))
	assert.False(t, isCacheablePage(10))
}
