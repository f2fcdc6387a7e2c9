package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

//go:embed atoms.json
var defaultData []byte

// Default returns the embedded periodic table, ordered by atomic number.
func Default() (*Catalog, error) {
	return Decode(defaultData)
}

// Cache keeps fetched catalog bodies between runs.
type Cache interface {
	Get(source string) ([]byte, bool)
	Put(source string, data []byte)
}

// Loader resolves a catalog source: empty for the embedded dataset, an
// http(s) URL, or a file path.
type Loader struct {
	Client *http.Client
	Cache  Cache
}

// IsRemote reports whether source must be fetched over the network.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// Load reads and decodes the catalog at source.
func (l *Loader) Load(ctx context.Context, source string) (*Catalog, error) {
	if source == "" {
		return Default()
	}

	var data []byte
	var err error
	cached := false
	switch {
	case IsRemote(source):
		data, cached, err = l.fetch(ctx, source)
	case hasScheme(source):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	default:
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", source, err)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}
	// only bodies that decode are cached
	if IsRemote(source) && !cached && l.Cache != nil {
		l.Cache.Put(source, data)
	}
	return c, nil
}

// fetch returns the body at source and whether it came from the cache.
func (l *Loader) fetch(ctx context.Context, source string) ([]byte, bool, error) {
	if l.Cache != nil {
		if data, ok := l.Cache.Get(source); ok {
			return data, true, nil
		}
	}

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")
	res, err := client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("response failed with status %s", res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, false, err
	}
	return data, false, nil
}

func hasScheme(source string) bool {
	u, err := url.Parse(source)
	// single letters are windows drive names
	return err == nil && len(u.Scheme) > 1
}
