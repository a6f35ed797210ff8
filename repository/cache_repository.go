package repository

// CacheRepository is a string cache for computed quote payloads.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
