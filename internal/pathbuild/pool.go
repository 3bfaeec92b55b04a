package pathbuild

import "sync"

const (
	defaultPartCap = 8  // most paths are <8 parts deep
	maxPartCap     = 64 // don't pool excessively deep builders
)

var builderPool = sync.Pool{
	New: func() any {
		return &Builder{
			parts: make([]part, 0, defaultPartCap),
		}
	},
}

// Get retrieves a Builder from the pool, reset and ready to use.
func Get() *Builder {
	b := builderPool.Get().(*Builder)
	b.Reset()
	return b
}

// Put returns a Builder to the pool if not oversized.
func Put(b *Builder) {
	if b == nil || cap(b.parts) > maxPartCap {
		return // let GC collect oversized builders
	}
	builderPool.Put(b)
}
