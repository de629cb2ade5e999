package traverse

import "sync"

// maxPooledCapacity bounds the work-list size of pooled traversers so one
// huge graph does not pin its buffers forever.
const maxPooledCapacity = 1 << 22

// traverserPool holds default-option Traversers for MultiSourceBFS.
var traverserPool = sync.Pool{
	New: func() any {
		return New()
	},
}

// getTraverser retrieves a Traverser from the pool.
func getTraverser() *Traverser {
	return traverserPool.Get().(*Traverser)
}

// putTraverser returns t to the pool. Traversers that grew past
// maxPooledCapacity are dropped.
func putTraverser(t *Traverser, n int) {
	if n > maxPooledCapacity {
		return
	}
	traverserPool.Put(t)
}
