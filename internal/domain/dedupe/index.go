package dedupe

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/okian/ats/internal/domain/model"
)

// Index maps normalized names to the candidates carrying them.
// Keys iterate in the order they were first seen and each bucket keeps the
// order of the input list.
type Index struct {
	normalizer *Normalizer
	buckets    *orderedmap.OrderedMap[string, []model.Candidate]
	size       int
}

// BuildIndex groups list by normalized name in a single pass.
func (d *Detector) BuildIndex(list []model.Candidate) *Index {
	idx := &Index{
		normalizer: d.normalizer,
		buckets:    orderedmap.New[string, []model.Candidate](),
	}
	for _, c := range list {
		key := d.normalizer.Normalize(c.Name)
		bucket, _ := idx.buckets.Get(key)
		idx.buckets.Set(key, append(bucket, c))
		idx.size++
	}
	return idx
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int { return idx.buckets.Len() }

// Size returns the number of indexed candidates.
func (idx *Index) Size() int { return idx.size }

// Keys returns the keys in first-seen order.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, idx.buckets.Len())
	for pair := idx.buckets.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns a copy of the bucket stored under key.
func (idx *Index) Get(key string) ([]model.Candidate, bool) {
	bucket, ok := idx.buckets.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(bucket), true
}

// Lookup normalizes name and returns the matching bucket.
func (idx *Index) Lookup(name string) []model.Candidate {
	bucket, _ := idx.Get(idx.normalizer.Normalize(name))
	return bucket
}

// Each calls fn for every bucket in key order until fn returns false.
// fn must not modify the bucket.
func (idx *Index) Each(fn func(key string, bucket []model.Candidate) bool) {
	for pair := idx.buckets.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}
