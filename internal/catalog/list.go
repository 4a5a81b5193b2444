package catalog

import (
	"context"
	"encoding/json"
	"time"

	"productranking/internal/store/postgres"
)

const listCacheTTL = 1 * time.Hour

// cachedList is the small JSON payload the list cache stores: only the
// ordered ids and total count, never the full product payloads.
type cachedList struct {
	ProductIDs []int64 `json:"productIds"`
	Total      int     `json:"total"`
}

// ListResult is one page of the product listing.
type ListResult struct {
	Products []CachedProductDetailV1
	Total    int
}

// FindProducts serves the list view. Pages below cacheableListPage consult
// the list cache; a hit preserves the cached id order exactly, resolving
// each id's detail from its own cache with a single batched DB fetch for
// whatever subset misses. Tail pages bypass both caches.
func FindProducts(ctx context.Context, c ListCriteria) (ListResult, error) {
	if !isCacheablePage(c.Page) {
		return loadFromDB(ctx, c)
	}

	key := ListKey(c)
	raw, found, err := client.Get(ctx, key)
	if err != nil {
		return ListResult{}, err
	}
	if !found {
		result, err := loadFromDB(ctx, c)
		if err != nil {
			return ListResult{}, err
		}
		if err := writeListCache(ctx, key, result); err != nil {
			return ListResult{}, err
		}
		return result, nil
	}

	var cached cachedList
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return ListResult{}, err
	}
	return resolveFromListCache(ctx, cached)
}

func loadFromDB(ctx context.Context, c ListCriteria) (ListResult, error) {
	products, total, err := dbFindProducts(ctx, postgres.ListCriteria{
		Page: c.Page, Size: c.Size, Sort: c.Sort, BrandID: c.BrandID,
	})
	if err != nil {
		return ListResult{}, err
	}

	details := make([]CachedProductDetailV1, 0, len(products))
	for _, p := range products {
		detail := fromProduct(p)
		if err := writeDetailCache(ctx, DetailKey(p.ID), detail); err != nil {
			return ListResult{}, err
		}
		details = append(details, detail)
	}

	return ListResult{Products: details, Total: total}, nil
}

func writeListCache(ctx context.Context, key string, result ListResult) error {
	ids := make([]int64, len(result.Products))
	for i, p := range result.Products {
		ids[i] = p.ID
	}
	raw, err := json.Marshal(cachedList{ProductIDs: ids, Total: result.Total})
	if err != nil {
		return err
	}
	return client.Set(ctx, key, string(raw), listCacheTTL)
}

// resolveFromListCache resolves each cached id's detail, batching a single
// DB fetch for whatever ids miss their own detail cache, then splices the
// fetched details back into the cached order. The final order always
// matches cached.ProductIDs exactly, even when some entries came from the
// DB and others from cache.
func resolveFromListCache(ctx context.Context, cached cachedList) (ListResult, error) {
	details := make([]*CachedProductDetailV1, len(cached.ProductIDs))
	var missingIDs []int64

	for i, id := range cached.ProductIDs {
		detail, ok, err := readDetailCache(ctx, DetailKey(id))
		if err != nil {
			return ListResult{}, err
		}
		if ok {
			d := detail
			details[i] = &d
		} else {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		products, err := dbFindProductsByIDs(ctx, missingIDs)
		if err != nil {
			return ListResult{}, err
		}
		for i, id := range cached.ProductIDs {
			if details[i] != nil {
				continue
			}
			p, found := products[id]
			if !found {
				continue
			}
			detail := fromProduct(p)
			if err := writeDetailCache(ctx, DetailKey(id), detail); err != nil {
				return ListResult{}, err
			}
			details[i] = &detail
		}
	}

	out := make([]CachedProductDetailV1, 0, len(details))
	for _, d := range details {
		if d != nil {
			out = append(out, *d)
		}
	}

	return ListResult{Products: out, Total: cached.Total}, nil
}
