package curve

type key struct {
	n, k int
}

// Cache memoizes curves by (n, k) for the duration of one rendering pass.
// It is not safe for concurrent use.
type Cache struct {
	curves map[key]*Curve
	misses int
}

func NewCache() *Cache {
	return &Cache{curves: make(map[key]*Curve)}
}

// Get returns the cached curve for (n, k), computing it on first use.
// Failed computations are not cached.
func (c *Cache) Get(n, k int) (*Curve, error) {
	if cv, ok := c.curves[key{n, k}]; ok {
		return cv, nil
	}
	cv, err := Compute(n, k)
	if err != nil {
		return nil, err
	}
	c.misses++
	c.curves[key{n, k}] = cv
	return cv, nil
}

// Family is like the package-level Family but served from the cache.
func (c *Cache) Family(n int, ks []int) ([]*Curve, error) {
	out := make([]*Curve, 0, len(ks))
	for _, k := range ks {
		cv, err := c.Get(n, k)
		if err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, nil
}

// Len returns the number of cached curves.
func (c *Cache) Len() int { return len(c.curves) }

// Computed returns how many curves were actually evaluated.
func (c *Cache) Computed() int { return c.misses }

// Reset drops every cached curve, e.g. when n changes.
func (c *Cache) Reset() {
	c.curves = make(map[key]*Curve)
}
