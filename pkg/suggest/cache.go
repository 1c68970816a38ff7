package suggest

import (
	"math"
	"strings"
	"sync"

	"github.com/bastiangx/wordhint/pkg/feedback"
	"github.com/charmbracelet/log"
)

// FilterCache remembers admissible index sets by feedback and rules, so that
// repeated queries over the same game state skip the corpus scan. The least
// recently used set is evicted once maxSets is reached.
type FilterCache struct {
	sets        map[string][]int
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	misses      int64
	maxSets     int
	mu          sync.Mutex
}

func NewFilterCache(maxSets int) *FilterCache {
	return &FilterCache{
		sets:       make(map[string][]int, maxSets),
		accessTime: make(map[string]int64, maxSets),
		maxSets:    maxSets,
	}
}

func cacheKey(records []feedback.Record, rules []Rule) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.String())
		b.WriteByte(',')
	}
	b.WriteByte('|')
	b.WriteString(strings.Join(RuleNames(rules), ","))
	return b.String()
}

// Get returns the cached set for key. The slice is shared and must not be
// modified.
func (fc *FilterCache) Get(key string) ([]int, bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	set, ok := fc.sets[key]
	if !ok {
		fc.misses++
		return nil, false
	}
	fc.hits++
	fc.accessTime[key] = fc.nextAccessTime()
	return set, true
}

func (fc *FilterCache) Put(key string, set []int) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if _, ok := fc.sets[key]; !ok && len(fc.sets) >= fc.maxSets {
		fc.evictLRU()
	}
	fc.sets[key] = set
	fc.accessTime[key] = fc.nextAccessTime()
}

func (fc *FilterCache) Stats() map[string]int {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	return map[string]int{
		"cacheSets":   len(fc.sets),
		"maxSets":     fc.maxSets,
		"cacheHits":   int(fc.hits),
		"cacheMisses": int(fc.misses),
	}
}

func (fc *FilterCache) nextAccessTime() int64 {
	fc.accessCount++
	return fc.accessCount
}

func (fc *FilterCache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = math.MaxInt64

	for key, t := range fc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(fc.sets, oldestKey)
		delete(fc.accessTime, oldestKey)
		log.Debugf("Evicted filter set %q from cache", oldestKey)
	}
}
