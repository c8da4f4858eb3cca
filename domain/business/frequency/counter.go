package frequency

import "sort"

// Entry is one value of a frequency table and the amount of times it was seen
type Entry[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// Counter counts how many times each value appears.
// + less: natural order of the values, used to break ties between equal counts
type Counter[K comparable] struct {
	counts map[K]int
	total  int
	less   func(a, b K) bool
}

func NewCounter[K comparable](less func(a, b K) bool) *Counter[K] {
	return &Counter[K]{
		counts: make(map[K]int),
		less:   less,
	}
}

func (c *Counter[K]) UpdateCounter(value K) {
	c.counts[value] += 1
	c.total += 1
}

func (c *Counter[K]) IsEmpty() bool {
	return c.total == 0
}

// Mode returns the most frequent value. If several values share the highest
// count the lowest one in natural order wins. ok is false if nothing was counted.
func (c *Counter[K]) Mode() (mode Entry[K], ok bool) {
	for value, count := range c.counts {
		if !ok || count > mode.Count || (count == mode.Count && c.less(value, mode.Value)) {
			mode = Entry[K]{Value: value, Count: count}
			ok = true
		}
	}
	return mode, ok
}

// Sorted returns every value with its count, most frequent first. Values with
// the same count keep their natural order.
func (c *Counter[K]) Sorted() []Entry[K] {
	entries := make([]Entry[K], 0, len(c.counts))
	for value, count := range c.counts {
		entries = append(entries, Entry[K]{Value: value, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return c.less(entries[i].Value, entries[j].Value)
	})
	return entries
}

// Min returns the lowest counted value in natural order
func (c *Counter[K]) Min() (K, bool) {
	return c.extreme(c.less)
}

// Max returns the highest counted value in natural order
func (c *Counter[K]) Max() (K, bool) {
	return c.extreme(func(a, b K) bool { return c.less(b, a) })
}

func (c *Counter[K]) extreme(before func(a, b K) bool) (K, bool) {
	var result K
	found := false
	for value := range c.counts {
		if !found || before(value, result) {
			result = value
			found = true
		}
	}
	return result, found
}
