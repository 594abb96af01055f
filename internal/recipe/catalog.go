package recipe

import "sort"

// Catalog is an immutable snapshot of key -> Record.
//
// A Catalog is safe for concurrent reads. It never hands out references into
// its own storage.
type Catalog struct {
	records map[string]Record
}

// NewCatalog copies m into a new Catalog. Later changes to m are not seen.
func NewCatalog(m map[string]Record) *Catalog {
	records := make(map[string]Record, len(m))
	for k, r := range m {
		records[k] = r.Clone()
	}
	return &Catalog{records: records}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Keys returns all keys in ascending order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return []string{}
	}
	keys := make([]string, 0, len(c.records))
	for k := range c.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a copy of the record stored under key.
func (c *Catalog) Get(key string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	r, ok := c.records[key]
	if !ok {
		return Record{}, false
	}
	return r.Clone(), true
}

// Each calls fn for every record until fn returns false. The record is a
// shallow copy: fn must not modify its ingredient slice or rating.
func (c *Catalog) Each(fn func(key string, r Record) bool) {
	if c == nil {
		return
	}
	for k, r := range c.records {
		if !fn(k, r) {
			return
		}
	}
}
