package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations. Injected as a
// dependency so it can be swapped for a distributed cache or disabled in tests.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProductSearchClient defines the interface for the retail product search
// collaborator (Kassalapp). The core treats it as an opaque data source.
type ProductSearchClient interface {
	SearchProducts(ctx context.Context, query string) ([]Product, error)
}
