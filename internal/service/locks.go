package service

import (
	"hash/fnv"
	"sync"
)

const lockShards = 256

// customerLocks is a fixed pool of mutexes keyed by customer id. Two customers may
// share a shard; memory stays bounded regardless of how many customers are seen.
type customerLocks struct {
	shards [lockShards]sync.Mutex
}

// lock acquires the mutex for the customer and returns the unlock function.
func (l *customerLocks) lock(customerID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(customerID))
	mu := &l.shards[h.Sum32()%lockShards]
	mu.Lock()
	return mu.Unlock
}
