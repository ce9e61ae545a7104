package domain

import (
	"bytes"
	"encoding/json"
)

// CountTable is a frequency table over a single record field. Keys keep
// first-seen ordering, which drives the left-to-right order of dashboard
// cards and chart bars. It is recomputed from the current dataset on every
// read; nothing persists it.
type CountTable struct {
	keys   []string
	counts map[string]int
}

// NewCountTable returns an empty table.
func NewCountTable() *CountTable {
	return &CountTable{counts: make(map[string]int)}
}

// Add increments the count for key, registering it on first sight.
func (t *CountTable) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Get returns the count for key, zero if the key was never added.
func (t *CountTable) Get(key string) int {
	return t.counts[key]
}

// Keys returns the keys in first-seen order.
func (t *CountTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of distinct keys.
func (t *CountTable) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts, which equals the number of records
// the table was built from.
func (t *CountTable) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// MarshalJSON emits a JSON object whose member order matches first-seen
// key order. encoding/json would otherwise sort map keys and scramble the
// rendering order the frontend relies on.
func (t *CountTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(t.counts[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
