package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"productranking/internal/events"
	"productranking/internal/rank"
	"productranking/internal/ranking"
	"productranking/internal/redisrank"
	"productranking/internal/store/postgres"
)

// detailCacheTTL is how long a detail cache entry survives before a
// read falls back to the DB again, bounding staleness for rarely-viewed
// products that never get explicitly invalidated.
const detailCacheTTL = 6 * time.Hour

// CachedProductDetailV1 is the JSON payload stored in the detail cache and
// returned by the detail read path.
type CachedProductDetailV1 struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	BrandID *int64          `json:"brandId,omitempty"`
	Price   decimal.Decimal `json:"price"`
	Stock   int64           `json:"stock"`
	Rank    *int            `json:"rank,omitempty"`
}

func fromProduct(p postgres.Product) CachedProductDetailV1 {
	return CachedProductDetailV1{
		ID:      p.ID,
		Name:    p.Name,
		BrandID: p.BrandID,
		Price:   p.Price,
		Stock:   p.Stock,
	}
}

// FindProductByID serves the detail view: detail cache first, DB on miss,
// rank resolved soft-fail, and a ProductViewedEventV1 emitted synchronously
// before returning. Returns (detail, false, nil) when the product does not
// exist.
func FindProductByID(ctx context.Context, productID int64, userID *int64) (CachedProductDetailV1, bool, error) {
	key := DetailKey(productID)

	detail, ok, err := readDetailCache(ctx, key)
	if err != nil {
		return CachedProductDetailV1{}, false, err
	}
	if !ok {
		p, found, err := dbFindProductByID(ctx, productID)
		if err != nil {
			return CachedProductDetailV1{}, false, err
		}
		if !found {
			return CachedProductDetailV1{}, false, nil
		}
		detail = fromProduct(p)
		if err := writeDetailCache(ctx, key, detail); err != nil {
			return CachedProductDetailV1{}, false, err
		}
	}

	if r, found, err := rank.FindRank(ctx, productID, ranking.Hourly); err == nil && found {
		detail.Rank = &r
	}
	// Any error resolving rank is swallowed by design: rank is auxiliary
	// to the detail response, never a reason to fail the request.

	events.Publish(ctx, events.ProductViewedEventV1{ProductID: productID, UserID: userID})

	return detail, true, nil
}

func readDetailCache(ctx context.Context, key string) (CachedProductDetailV1, bool, error) {
	raw, found, err := client.Get(ctx, key)
	if err != nil || !found {
		return CachedProductDetailV1{}, false, err
	}
	var detail CachedProductDetailV1
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		return CachedProductDetailV1{}, false, err
	}
	return detail, true, nil
}

func writeDetailCache(ctx context.Context, key string, detail CachedProductDetailV1) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, string(raw), detailCacheTTL)
}

// client is the package-level Redis handle catalog's detail/list caches
// read and write through, mirroring redisrank's own package-level client
// convention. Production wiring installs the same *redisrank.GoRedisClient
// used by redisrank; tests install a testsupport.FakeRedis.
var client redisrank.Client

// Init installs the Redis client catalog reads the detail/list caches
// through.
func Init(c redisrank.Client) {
	client = c
}

// dbFindProductByID, dbFindProducts and dbFindProductsByIDs are function
// variables rather than direct calls into postgres so that cache-hit/miss
// composition logic (resolveFromListCache in particular) can be tested
// against a recording stub instead of a live database.
var (
	dbFindProductByID   = postgres.FindProductByID
	dbFindProducts      = postgres.FindProducts
	dbFindProductsByIDs = postgres.FindProductsByIDs
)
