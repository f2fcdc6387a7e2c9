package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Entry[T any] struct {
	Expiration int64 `json:"expiration"`
	Data       T     `json:"data"`
}

var ErrExpired = errors.New("cache entry expired")

func cacheKey(key string) string {
	return "cache." + key
}

func setCache[T any](key string, ttl int64, value T) error {
	entry := Entry[T]{Data: value}
	if ttl > 0 {
		entry.Expiration = time.Now().Unix() + ttl
	}
	viper.Set(cacheKey(key), entry)
	if settings != nil {
		settings.changed = true
	}
	return nil
}

func getCache[T any](key string) (T, error) {
	entry := Entry[T]{}
	value := viper.Get(cacheKey(key))
	if value == nil {
		return entry.Data, fmt.Errorf("no cache data for %s", key)
	}
	if err := mapstructure.Decode(value, &entry); err != nil {
		return entry.Data, fmt.Errorf("failed to get cache data for %s", key)
	}

	if entry.Expiration != 0 && entry.Expiration < time.Now().Unix() {
		return entry.Data, ErrExpired
	}

	return entry.Data, nil
}

func invalidateCache(key string) error {
	viper.Set(cacheKey(key), nil)
	configMap := viper.AllSettings()
	if cache, ok := configMap["cache"].(map[string]interface{}); ok {
		delete(cache, key)
	}
	encodedConfig, err := json.MarshalIndent(configMap, "", " ")
	if err != nil {
		return err
	}
	if err := viper.ReadConfig(bytes.NewReader(encodedConfig)); err != nil {
		return err
	}
	if settings != nil {
		settings.changed = true
	}
	return nil
}

const CATALOG_CACHE_TTL_SECONDS = 24 * 60 * 60

// catalogCacheKey gives every catalog URL a stable key that is safe to use
// as a viper path segment.
func catalogCacheKey(source string) string {
	return "catalog-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(source)).String()
}

// CatalogCache keeps downloaded catalogs in the settings file.
type CatalogCache struct{}

func (CatalogCache) Get(source string) ([]byte, bool) {
	data, err := getCache[string](catalogCacheKey(source))
	if err != nil {
		if errors.Is(err, ErrExpired) {
			invalidateCache(catalogCacheKey(source))
		}
		return nil, false
	}
	return []byte(data), true
}

func (CatalogCache) Put(source string, data []byte) {
	setCache(catalogCacheKey(source), CATALOG_CACHE_TTL_SECONDS, string(data))
}

func (CatalogCache) Invalidate(source string) {
	invalidateCache(catalogCacheKey(source))
}
