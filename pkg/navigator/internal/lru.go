package internal

// LRU is a small least-recently-used cache. Evicted values are handed to
// onEvict so callers can release native resources such as textures.
type LRU[V any] struct {
	values  map[string]V
	order   []string // oldest first
	maxSize int
	onEvict func(key string, value V)
}

// NewLRU creates a cache holding at most maxSize values.
func NewLRU[V any](maxSize int, onEvict func(key string, value V)) *LRU[V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &LRU[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		onEvict: onEvict,
	}
}

func (c *LRU[V]) Get(key string) (V, bool) {
	value, exists := c.values[key]
	if exists {
		c.moveToEnd(key)
	}
	return value, exists
}

// Set stores value under key. A value it replaces is passed to onEvict.
func (c *LRU[V]) Set(key string, value V) {
	if old, exists := c.values[key]; exists {
		c.values[key] = value
		c.moveToEnd(key)
		c.evict(key, old)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = value
	c.order = append(c.order, key)
}

func (c *LRU[V]) Len() int {
	return len(c.order)
}

func (c *LRU[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *LRU[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if value, exists := c.values[oldest]; exists {
		delete(c.values, oldest)
		c.evict(oldest, value)
	}
}

func (c *LRU[V]) evict(key string, value V) {
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}

// Purge evicts every value.
func (c *LRU[V]) Purge() {
	for _, key := range c.order {
		c.evict(key, c.values[key])
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}
