package split

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"

	"github.com/wendigo/ignite/assemble"
	"github.com/wendigo/ignite/ast"
)

// Cache keys are fixed for the process lifetime; they only need to
// resist accidental collision, not be reproducible across restarts.
const (
	cacheKey0 = 0x9ae16a3b2f90404f
	cacheKey1 = 0xc3a5c85c97cb3127
)

// Cache is a fixed-capacity LRU of previously computed two-step
// artifacts, keyed by a hash of the source query's rendered SQL text
// and its parameter type shape. Split itself stays pure and cache-free;
// Cache is optional infrastructure a coordinator can use to avoid
// re-deriving the same map/reduce pair for a hot prepared statement.
//
// Cache is safe for concurrent use, guarded by a single mutex.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    []uint64
	entries  map[uint64]*assemble.TwoStepQuery
}

// NewCache returns a Cache holding at most capacity entries, evicting
// least-recently-used entries once full.
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[uint64]*assemble.TwoStepQuery, capacity),
	}
}

// Get returns a deep copy of the cached artifact for (source, params),
// or nil, false on a miss. The copy means a caller mutating its own
// result — e.g. appending to an entry's Params — can never corrupt the
// cached value.
func (c *Cache) Get(source *ast.Select, params []any) (*assemble.TwoStepQuery, bool) {
	key := cacheKeyFor(source, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	result, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.touch(key)
	return result.Clone(), true
}

// Put records result under the key derived from (source, params),
// evicting the least-recently-used entry if the cache is at capacity.
// result is stored as a deep copy, for the same reason Get returns one.
func (c *Cache) Put(source *ast.Select, params []any, result *assemble.TwoStepQuery) {
	key := cacheKeyFor(source, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if c.capacity > 0 && len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	} else {
		c.touch(key)
	}
	c.entries[key] = result.Clone()
}

// touch moves key to the most-recently-used end of c.order. Caller
// holds c.mu.
func (c *Cache) touch(key uint64) {
	if i := slices.Index(c.order, key); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	c.order = append(c.order, key)
}

// cacheKeyFor hashes the source query's rendered SQL text together
// with params' type shape — never params' values, since positional
// placeholders don't affect the rewrite and hashing values would
// needlessly fragment the cache across otherwise-identical queries.
func cacheKeyFor(source *ast.Select, params []any) uint64 {
	var b strings.Builder
	b.WriteString(ast.String(source))
	for _, p := range params {
		fmt.Fprintf(&b, "|%T", p)
	}
	return siphash.Hash(cacheKey0, cacheKey1, []byte(b.String()))
}
