package usecase

import "time"

// ExportCacheRepository caches rendered spreadsheet exports so repeated
// downloads within the expiration window skip the rebuild.
type ExportCacheRepository interface {
	Save(key string, data []byte, expiration time.Duration) error
	// Find returns nil with no error on a cache miss.
	Find(key string) ([]byte, error)
}
