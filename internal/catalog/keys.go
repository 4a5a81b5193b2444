// Package catalog composes the Redis detail/list caches with the
// postgres-backed product table and the rank reader into the product read
// path (GET /products/:id, GET /products).
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	detailKeyPrefix = "product:detail"
	listKeyPrefix   = "product:list"
)

// DetailKey is the deterministic cache key for a single product's detail
// payload.
func DetailKey(productID int64) string {
	return fmt.Sprintf("%s:%d", detailKeyPrefix, productID)
}

// ListCriteria selects and orders a product listing query; BrandID nil
// means "all brands".
type ListCriteria struct {
	Page    int
	Size    int
	Sort    string
	BrandID *int64
}

// ListKey hashes criteria into a deterministic cache key: equivalent
// requests always produce the byte-identical key.
func ListKey(c ListCriteria) string {
	brand := "none"
	if c.BrandID != nil {
		brand = fmt.Sprintf("%d", *c.BrandID)
	}
	raw := fmt.Sprintf("page=%d&size=%d&sort=%s&brand=%s", c.Page, c.Size, c.Sort, brand)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%s:%s", listKeyPrefix, hex.EncodeToString(sum[:]))
}

// cacheableListPage bounds which pages consult the list cache: tail pages
// are rare and small, so bypassing the cache for them avoids filling it
// with long-tail, rarely-reused entries.
const cacheableListPage = 3

func isCacheablePage(page int) bool {
	return page < cacheableListPage
}
