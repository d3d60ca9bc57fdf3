package discover

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/minio/highwayhash"
)

// cacheKey is the fixed 256-bit HighwayHash key used to fingerprint file
// contents. It need not be secret; HighwayHash is used here purely as a
// fast, well-distributed content hash, not for authentication.
var cacheKey = make([]byte, 32)

// ContentHash returns the hex-encoded HighwayHash-256 of src.
func ContentHash(src []byte) (string, error) {
	h, err := highwayhash.New(cacheKey)
	if err != nil {
		return "", err
	}
	h.Write(src)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Cache records the content hash last scanned for each file path, so a
// repeat `svtags scan` invocation over an unchanged tree can skip
// re-emitting a file's tags entirely (spec.md §12 supplemented feature: a
// content-hash cache with no bearing on the emitted tag stream for a
// changed file).
type Cache struct {
	path string

	mu     sync.Mutex
	hashes map[string]string
	dirty  bool
}

// OpenCache loads (or creates) a cache file under dir. An empty dir
// disables caching entirely: Unchanged always reports false, and
// Remember/Save become no-ops.
func OpenCache(dir string) (*Cache, error) {
	if dir == "" {
		return &Cache{}, nil
	}
	path := filepath.Join(dir, "svtags-cache.json")
	c := &Cache{path: path, hashes: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &c.hashes); err != nil {
		return nil, err
	}
	return c, nil
}

// Unchanged reports whether path's last recorded content hash matches
// hash — i.e. whether the file can be skipped this run.
func (c *Cache) Unchanged(path, hash string) bool {
	if c == nil || c.hashes == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hashes[path] == hash
}

// Remember records path's content hash for the next run.
func (c *Cache) Remember(path, hash string) {
	if c == nil || c.hashes == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hashes[path] = hash
	c.dirty = true
}

// Save persists the cache to disk, if it was opened against a directory
// and has pending changes.
func (c *Cache) Save() error {
	if c == nil || c.path == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(c.hashes)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
