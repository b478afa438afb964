package gazepoint

import (
	"fmt"

	"github.com/gazelab/gazed/params"
	"github.com/golang/groupcache/lru"
	"github.com/mitchellh/hashstructure/v2"
)

// NewDedupeLRUFunc returns a filter dropping repeated samples.
// Trackers flushing a stuck buffer can emit the same row more than
// once; those copies carry no information and skew duration sums.
func NewDedupeLRUFunc() func(Point) bool {
	var dedupeCache = lru.New(params.DedupeCacheSize)
	return func(p Point) bool {
		hash, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
		if err != nil {
			return false
		}
		key := fmt.Sprintf("%d", hash)
		_, ok := dedupeCache.Get(key)
		if ok {
			return false
		}
		dedupeCache.Add(key, true)
		return true
	}
}
