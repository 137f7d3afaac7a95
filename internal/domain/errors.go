package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters fail shape validation
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrBatchTooLarge is returned when a classify-batch request exceeds the limit
	ErrBatchTooLarge = errors.New("batch size exceeds limit")

	// ErrProductNotFound is returned when no products match a search query
	ErrProductNotFound = errors.New("no matching products found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrKassalAPIFailure is returned when a Kassalapp API request fails
	ErrKassalAPIFailure = errors.New("kassalapp API request failed")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
