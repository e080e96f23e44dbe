package common

import "time"

// CacheInterface is the contract the reference-data caches rely on.
type CacheInterface interface {
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the value and true if found, nil and false otherwise.
	Get(key string) (interface{}, bool)

	Delete(key string)

	// GetOrSet returns the cached value, or loads and caches it.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)
}
